package plugins

import (
	"context"
	"strings"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
	"biu-actions/internal/llm"

	"github.com/tidwall/gjson"
)

// Chat 是带上下文的多轮对话。历史保存在调用方传入的 Session 中，
// contextMessageCount 决定除本轮输入外还带上多少条历史。
type Chat struct {
	LLM     llm.Completer
	Model   string
	Session *llm.Session
	Now     func() time.Time
}

func (c *Chat) Name() string     { return "chat" }
func (c *Chat) Title() string    { return "AI Chat" }
func (c *Chat) Category() string { return action.CategoryOnline }

func (c *Chat) Available(sel action.Selection) action.Availability { return nonBlank(sel) }

func (c *Chat) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Chat) Perform(ctx context.Context, sel action.Selection, h action.Host) error {
	if c.Session == nil {
		c.Session = llm.NewSession()
	}
	if llm.IsResetCommand(sel.Text) {
		c.Session.Reset()
		notify(h, i18n.MsgChatReset, msg(h, i18n.MsgChatResetBody))
		return nil
	}
	if !llmReady(c.LLM, h) {
		return nil
	}

	prompt := strings.TrimSpace(systemRoles(action.StringSetting(h, c.Name(), "systemRoles", "")) + " " +
		msg(h, i18n.MsgChatSelection, sel.Text))
	c.Session.Append(llm.RoleUser, prompt, c.now())

	history := action.IntSetting(h, c.Name(), "contextMessageCount", 0)
	if history < 0 {
		history = 0
	}
	reply, err := c.LLM.Complete(ctx, c.Session.Window(history+1), modelFor(h, c.Name(), c.Model))
	if err != nil {
		c.Session.DropLast()
		return err
	}
	c.Session.Append(llm.RoleAssistant, reply, c.now())
	return h.ShowWindow(action.Window{Title: c.Title(), Body: reply, Width: 480, Height: 360, Floating: true})
}

// systemRoles 拼接 [{"value":"...","enabled":true}] 中启用的角色提示。
func systemRoles(config string) string {
	if !gjson.Valid(config) {
		return ""
	}
	var parts []string
	for _, role := range gjson.Parse(config).Array() {
		if role.Get("enabled").Bool() {
			parts = append(parts, role.Get("value").String())
		}
	}
	return strings.Join(parts, " ")
}
