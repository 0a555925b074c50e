package plugins

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

// JSON 在压缩与四空格缩进之间切换。原文包含换行视为已格式化。
type JSON struct{}

func (JSON) Name() string     { return "json" }
func (JSON) Title() string    { return "JSON Formatter" }
func (JSON) Category() string { return action.CategoryDevtools }

func (JSON) Available(sel action.Selection) action.Availability {
	return action.Allow(looksLikeJSON(strings.TrimSpace(sel.Text)))
}

func looksLikeJSON(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if !(first == '{' && last == '}') && !(first == '[' && last == ']') {
		return false
	}
	return json.Valid([]byte(s))
}

func (JSON) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	src := []byte(strings.TrimSpace(sel.Text))
	if !json.Valid(src) {
		notify(h, i18n.MsgFailed, msg(h, i18n.MsgJSONInvalid))
		return nil
	}
	var buf bytes.Buffer
	done := i18n.MsgJSONFormatted
	if strings.Contains(sel.Text, "\n") {
		done = i18n.MsgJSONCompacted
		if err := json.Compact(&buf, src); err != nil {
			return err
		}
	} else if err := json.Indent(&buf, src, "", "    "); err != nil {
		return err
	}
	if err := h.PasteText(buf.String()); err != nil {
		return err
	}
	notify(h, done, "")
	return nil
}
