// Package plugins 实现内置的选区动作：大小写循环、编解码、格式化、检索与 LLM 相关动作。
package plugins

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
	"biu-actions/internal/llm"
)

// Deps 汇总动作需要的外部依赖。LLM 为空时 LLM 类动作会提示配置错误。
type Deps struct {
	LLM     llm.Completer
	Model   string
	Session *llm.Session

	HTTPClient      *http.Client
	CurrencyBaseURL string

	Now      func() time.Time
	Location *time.Location
}

// Default 按工具栏顺序注册全部内置动作。
func Default(d Deps) *action.Registry {
	if d.Session == nil {
		d.Session = llm.NewSession()
	}
	return action.NewRegistry(
		Case{},
		Base64{},
		Hash{},
		JSON{},
		Slug{},
		Clean{},
		&Timestamp{Location: d.Location},
		WordCount{},
		Regex{},
		MarkdownTable{},
		Search{},
		&Currency{Client: d.HTTPClient, BaseURL: d.CurrencyBaseURL},
		&Rewrite{LLM: d.LLM, Model: d.Model},
		&Translate{LLM: d.LLM, Model: d.Model},
		&Chat{LLM: d.LLM, Model: d.Model, Session: d.Session, Now: d.Now},
	)
}

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

func splitLines(text string) []string {
	return lineBreak.Split(text, -1)
}

func notify(h action.Host, title i18n.Key, body string) {
	h.Notify(i18n.T(h.Language(), title), body)
}

func msg(h action.Host, key i18n.Key, args ...any) string {
	return i18n.T(h.Language(), key, args...)
}

func nonBlank(sel action.Selection) action.Availability {
	return action.Allow(strings.TrimSpace(sel.Text) != "")
}

func nonEmpty(sel action.Selection) action.Availability {
	return action.Allow(sel.Text != "")
}
