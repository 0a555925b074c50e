package config

import (
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// plugins.<action>.<key>=value sets a plugin option; unknown keys are ignored.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "url", "llm.url":
			cfg.LLM.URL = val
		case "token", "llm.token":
			cfg.LLM.Token = val
		case "model", "llm.model":
			cfg.LLM.Model = val
		case "language", "lang":
			cfg.Language = val
		case "log_level":
			cfg.LogLevel = val
		default:
			if rest, ok := strings.CutPrefix(key, "plugins."); ok {
				action, option, found := strings.Cut(rest, ".")
				if found && action != "" && option != "" {
					cfg.SetPlugin(action, option, val)
				}
			}
		}
	}
	return cfg
}
