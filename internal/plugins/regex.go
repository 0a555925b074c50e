package plugins

import (
	"context"
	"regexp"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

const (
	PatternEmail  = "Email"
	PatternURL    = "URL"
	PatternIPv4   = "IPv4"
	PatternPhone  = "Phone (CN)"
	PatternDate   = "Date (YYYY-MM-DD)"
	PatternCustom = "Custom"
)

var presetPatterns = map[string]*regexp.Regexp{
	PatternEmail: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	PatternURL:   regexp.MustCompile(`https?://[^\s]+|www\.[a-zA-Z0-9][a-zA-Z0-9-]+[a-zA-Z0-9]\.[^\s]{2,}`),
	PatternIPv4:  regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	PatternPhone: regexp.MustCompile(`(?:\+?86)?1[3-9]\d{9}`),
	PatternDate:  regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
}

var separatorEscapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Regex 按预设或自定义正则提取匹配项，去重后按出现顺序拼接。
type Regex struct{}

func (Regex) Name() string     { return "regex" }
func (Regex) Title() string    { return "Regex Extractor" }
func (Regex) Category() string { return action.CategoryDevtools }

func (Regex) Available(sel action.Selection) action.Availability { return nonEmpty(sel) }

func (r Regex) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	patternType := action.StringSetting(h, r.Name(), "patternType", PatternEmail)
	separator := separatorEscapes.Replace(action.StringSetting(h, r.Name(), "separator", `\n`))

	re, ok := presetPatterns[patternType]
	if patternType == PatternCustom {
		custom := action.StringSetting(h, r.Name(), "customRegex", "")
		if custom == "" {
			notify(h, i18n.MsgHint, msg(h, i18n.MsgRegexNeedCustom))
			return nil
		}
		compiled, err := regexp.Compile(custom)
		if err != nil {
			notify(h, i18n.MsgFailed, msg(h, i18n.MsgRegexInvalid))
			return nil
		}
		re, ok = compiled, true
	}
	if !ok {
		re = presetPatterns[PatternEmail]
	}

	matches := uniqueMatches(re, sel.Text)
	if len(matches) == 0 {
		notify(h, i18n.MsgRegexNone, msg(h, i18n.MsgRegexNoneBody, patternType))
		return nil
	}
	if err := h.PasteText(strings.Join(matches, separator)); err != nil {
		return err
	}
	notify(h, i18n.MsgRegexFound, msg(h, i18n.MsgRegexFoundBody, len(matches)))
	return nil
}

func uniqueMatches(re *regexp.Regexp, text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range re.FindAllString(text, -1) {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
