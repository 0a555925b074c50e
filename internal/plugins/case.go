package plugins

import (
	"context"
	"unicode/utf8"

	"biu-actions/internal/action"
	"biu-actions/internal/casecycle"
	"biu-actions/internal/i18n"
	"biu-actions/internal/logger"
)

// longResult 超过该长度的结果不直接放进通知正文。
const longResult = 50

type Case struct{}

func (Case) Name() string     { return "case" }
func (Case) Title() string    { return "Case Converter" }
func (Case) Category() string { return action.CategoryText }

func (Case) Available(sel action.Selection) action.Availability {
	for i := 0; i < len(sel.Text); i++ {
		c := sel.Text[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return action.Allow(true)
		}
	}
	return action.Allow(false)
}

func (Case) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	res := casecycle.Explain(sel.Text)
	logger.Named("action").WithField("action", "case").
		Debugf("detected=%s target=%s words=%d", res.Detected, res.Target, len(res.Words))
	if res.Output == "" || !res.Changed() {
		notify(h, i18n.MsgHint, msg(h, i18n.MsgNoChange))
		return nil
	}
	if err := h.PasteText(res.Output); err != nil {
		return err
	}
	body := res.Output
	if utf8.RuneCountInString(body) > longResult {
		body = msg(h, i18n.MsgConvertedLong)
	}
	notify(h, i18n.MsgConverted, body)
	return nil
}
