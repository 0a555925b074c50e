package plugins

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"
	"unicode/utf8"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

var base64Pattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

// Base64 自动判断方向：看起来是合法 Base64 且解码后是 UTF-8 文本时解码，否则编码。
type Base64 struct{}

func (Base64) Name() string     { return "base64" }
func (Base64) Title() string    { return "Base64 Converter" }
func (Base64) Category() string { return action.CategoryDevtools }

func (Base64) Available(sel action.Selection) action.Availability { return nonBlank(sel) }

func (Base64) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	if decoded, ok := decodeBase64Text(strings.TrimSpace(sel.Text)); ok {
		if err := h.PasteText(decoded); err != nil {
			return err
		}
		notify(h, i18n.MsgBase64Decoded, "")
		return nil
	}
	if err := h.PasteText(base64.StdEncoding.EncodeToString([]byte(sel.Text))); err != nil {
		return err
	}
	notify(h, i18n.MsgBase64Encoded, "")
	return nil
}

func decodeBase64Text(s string) (string, bool) {
	if s == "" || len(s)%4 != 0 || !base64Pattern.MatchString(s) {
		return "", false
	}
	raw, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil || !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}
