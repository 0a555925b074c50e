package plugins

import (
	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
	"biu-actions/internal/llm"
)

// llmReady 检查 LLM 是否已配置，未配置时提示用户并返回 false。
func llmReady(c llm.Completer, h action.Host) bool {
	if c != nil {
		return true
	}
	notify(h, i18n.MsgConfigError, msg(h, i18n.MsgLLMNotConfigured))
	return false
}

// modelFor 优先使用动作级别的 model 配置。
func modelFor(h action.Host, name, fallback string) string {
	return action.StringSetting(h, name, "model", fallback)
}
