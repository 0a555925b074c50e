package plugins

import (
	"context"
	"fmt"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
	"biu-actions/internal/llm"
)

const translateSystemPrompt = "You are a professional translator. Translate the user's text into %s. " +
	"Keep formatting, line breaks and code blocks. Return only the translation."

// Translate 把选中文本翻译成 targetLanguage（默认界面语言），结果显示在窗口中。
type Translate struct {
	LLM   llm.Completer
	Model string
}

func (t *Translate) Name() string     { return "translate" }
func (t *Translate) Title() string    { return "Advanced Translator" }
func (t *Translate) Category() string { return action.CategoryOnline }

func (t *Translate) Available(sel action.Selection) action.Availability { return nonEmpty(sel) }

func (t *Translate) Perform(ctx context.Context, sel action.Selection, h action.Host) error {
	if !llmReady(t.LLM, h) {
		return nil
	}
	target := i18n.Normalize(action.StringSetting(h, t.Name(), "targetLanguage", h.Language().Code()))
	reply, err := t.LLM.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf(translateSystemPrompt, target.PromptName())},
		{Role: llm.RoleUser, Content: sel.Text},
	}, modelFor(h, t.Name(), t.Model))
	if err != nil {
		return err
	}
	return h.ShowWindow(action.Window{
		Title:    msg(h, i18n.MsgTranslation) + " · " + target.DisplayName(),
		Body:     reply,
		Width:    400,
		Height:   300,
		Floating: true,
	})
}
