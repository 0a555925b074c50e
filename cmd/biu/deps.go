package main

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/config"
	"biu-actions/internal/history"
	"biu-actions/internal/llm"
	"biu-actions/internal/plugins"
	"biu-actions/internal/session"
)

const (
	llmTimeout  = 60 * time.Second
	httpTimeout = 15 * time.Second
)

// buildRegistry 根据配置组装全部动作。未配置 token 时 LLM 保持 nil，相关动作会提示配置。
func buildRegistry(cfg config.Config, sess *llm.Session) *action.Registry {
	d := plugins.Deps{
		Model:      cfg.LLM.Model,
		Session:    sess,
		HTTPClient: &http.Client{Timeout: httpTimeout},
		Now:        time.Now,
		Location:   time.Local,
	}
	if base, ok := cfg.Plugin("currency", "baseURL"); ok {
		d.CurrencyBaseURL = base
	}
	if strings.TrimSpace(cfg.LLM.Token) != "" {
		client, err := llm.New(llm.Options{
			APIKey:  cfg.LLM.Token,
			BaseURL: cfg.LLM.URL,
			Model:   cfg.LLM.Model,
			Timeout: llmTimeout,
		})
		if err != nil {
			log.Warnf("init llm client: %v", err)
		} else {
			d.LLM = client
		}
	}
	return plugins.Default(d)
}

func (e env) sessions() *session.Store {
	return session.NewStore(filepath.Join(e.dir, "sessions"))
}

func (e env) history() *history.Store {
	return &history.Store{Path: filepath.Join(e.dir, "history.jsonl")}
}

// record 追加一条执行记录；失败只记日志。
func (e env) record(name, text string, runErr error) {
	if e.dir == "" {
		return
	}
	entry := history.Entry{Action: name, Chars: len([]rune(text)), OK: runErr == nil}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	if err := e.history().Append(entry); err != nil {
		log.Warnf("append history: %v", err)
	}
}
