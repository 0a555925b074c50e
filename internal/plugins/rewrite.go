package plugins

import (
	"context"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/llm"
)

const rewriteSystemPrompt = "You are a text rewriting assistant. Your task is to rewrite the given text according to the user's instructions. " +
	"IMPORTANT: Return ONLY the rewritten text without any explanations, commentary, or additional formatting. " +
	"Do not include phrases like 'Here is the rewritten text' or any other meta-commentary. Just output the rewritten text directly."

// DefaultRewritePrompt 未配置 promptTemplate 时使用。
const DefaultRewritePrompt = "Rewrite the text to be clear, concise and natural, keeping its language and meaning. "

// Rewrite 按 promptTemplate 改写选中文本并直接粘贴回去。
type Rewrite struct {
	LLM   llm.Completer
	Model string
}

func (r *Rewrite) Name() string     { return "rewrite" }
func (r *Rewrite) Title() string    { return "AI Rewriter" }
func (r *Rewrite) Category() string { return action.CategoryOnline }

func (r *Rewrite) Available(sel action.Selection) action.Availability { return nonBlank(sel) }

func (r *Rewrite) Perform(ctx context.Context, sel action.Selection, h action.Host) error {
	if !llmReady(r.LLM, h) {
		return nil
	}
	template := action.StringSetting(h, r.Name(), "promptTemplate", DefaultRewritePrompt)
	reply, err := r.LLM.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: rewriteSystemPrompt},
		{Role: llm.RoleUser, Content: template + "the original text is: " + sel.Text},
	}, modelFor(h, r.Name(), r.Model))
	if err != nil {
		return err
	}
	return h.PasteText(strings.TrimSpace(reply))
}
