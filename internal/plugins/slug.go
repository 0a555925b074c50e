package plugins

import (
	"context"
	"regexp"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

var (
	slugDrop     = regexp.MustCompile(`[^\w\s\x{4e00}-\x{9fa5}-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

type Slug struct{}

func (Slug) Name() string     { return "slug" }
func (Slug) Title() string    { return "Slug Generator" }
func (Slug) Category() string { return action.CategoryText }

func (Slug) Available(sel action.Selection) action.Availability { return nonBlank(sel) }

func (Slug) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	slug := Slugify(sel.Text)
	if slug == "" {
		notify(h, i18n.MsgFailed, msg(h, i18n.MsgSlugEmpty))
		return nil
	}
	if err := h.PasteText(slug); err != nil {
		return err
	}
	notify(h, i18n.MsgSlugDone, slug)
	return nil
}

// Slugify 保留 ASCII 单词字符、空白、常用汉字与连字符，分隔符统一为 "-"。
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugDrop.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
