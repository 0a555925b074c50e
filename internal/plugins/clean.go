package plugins

import (
	"context"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// CleanOptions 对应 [plugins.clean] 下的开关。
type CleanOptions struct {
	FullToHalf       bool
	TrimLines        bool
	RemoveEmptyLines bool
	Deduplicate      bool
	SortLines        bool
	// Locale 决定排序规则。
	Locale language.Tag
}

type Clean struct{}

func (Clean) Name() string     { return "clean" }
func (Clean) Title() string    { return "Text Cleaner" }
func (Clean) Category() string { return action.CategoryText }

func (Clean) Available(sel action.Selection) action.Availability { return nonEmpty(sel) }

func (c Clean) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	opts := CleanOptions{
		FullToHalf:       action.BoolSetting(h, c.Name(), "fullToHalf", false),
		TrimLines:        action.BoolSetting(h, c.Name(), "trimLines", true),
		RemoveEmptyLines: action.BoolSetting(h, c.Name(), "removeEmptyLines", true),
		Deduplicate:      action.BoolSetting(h, c.Name(), "deduplicate", false),
		SortLines:        action.BoolSetting(h, c.Name(), "sortLines", false),
		Locale:           language.Make(h.Language().Code()),
	}
	out := CleanText(sel.Text, opts)
	if out == sel.Text {
		notify(h, i18n.MsgHint, msg(h, i18n.MsgCleanNoop))
		return nil
	}
	if err := h.PasteText(out); err != nil {
		return err
	}
	notify(h, i18n.MsgCleanDone, "")
	return nil
}

// CleanText 按固定顺序执行：全角转半角、去首尾空白、去空行、去重、排序。
func CleanText(text string, opts CleanOptions) string {
	lines := splitLines(text)
	if opts.FullToHalf {
		for i, line := range lines {
			lines[i] = width.Narrow.String(line)
		}
	}
	if opts.TrimLines {
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
	}
	if opts.RemoveEmptyLines {
		kept := lines[:0]
		for _, line := range lines {
			if line != "" {
				kept = append(kept, line)
			}
		}
		lines = kept
	}
	if opts.Deduplicate {
		seen := make(map[string]struct{}, len(lines))
		kept := lines[:0]
		for _, line := range lines {
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			kept = append(kept, line)
		}
		lines = kept
	}
	if opts.SortLines {
		collate.New(opts.Locale).SortStrings(lines)
	}
	return strings.Join(lines, "\n")
}
