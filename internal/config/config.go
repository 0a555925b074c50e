package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// DefaultModel 未配置模型时使用的默认值。
const DefaultModel = "gpt-4o-mini"

// Config is the only persisted config file schema.
type Config struct {
	Language string                    `toml:"language,omitempty"`
	LogLevel string                    `toml:"log_level,omitempty"`
	LLM      LLM                       `toml:"llm"`
	Plugins  map[string]map[string]any `toml:"plugins,omitempty"`
	Source   string                    `toml:"-"`
}

// LLM 描述 OpenAI 兼容接口的连接参数。
type LLM struct {
	URL   string `toml:"url,omitempty"`
	Token string `toml:"token,omitempty"`
	Model string `toml:"model,omitempty"`
}

// envOverrides 读取环境变量。BIU_ 变量优先于 OpenAI SDK 约定的变量；
// tag 写全名，避免 envconfig 回退到无前缀的 LANGUAGE 等系统变量。
type envOverrides struct {
	URL           string `envconfig:"BIU_LLM_URL"`
	Token         string `envconfig:"BIU_LLM_TOKEN"`
	Model         string `envconfig:"BIU_LLM_MODEL"`
	Language      string `envconfig:"BIU_LANGUAGE"`
	LogLevel      string `envconfig:"BIU_LOG_LEVEL"`
	OpenAIKey     string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
}

func Default() Config {
	return Config{
		LLM:     LLM{Model: DefaultModel},
		Plugins: map[string]map[string]any{},
	}
}

// Dir 返回配置目录 ~/.biu。
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".biu")
}

func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// Load 读取配置文件并叠加环境变量；文件不存在时只使用默认值与环境变量。
func Load(path string) (Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadFile 只读取配置文件，不叠加环境变量；写回配置前使用，避免把环境变量里的 token 落盘。
func ReadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if cfg.Plugins == nil {
		cfg.Plugins = map[string]map[string]any{}
	}
	if strings.TrimSpace(cfg.LLM.Model) == "" {
		cfg.LLM.Model = DefaultModel
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	if cfg.LLM.Token == "" {
		setIfNotEmpty(&cfg.LLM.Token, env.OpenAIKey)
	}
	if cfg.LLM.URL == "" {
		setIfNotEmpty(&cfg.LLM.URL, env.OpenAIBaseURL)
	}
	setIfNotEmpty(&cfg.LLM.URL, env.URL)
	setIfNotEmpty(&cfg.LLM.Token, env.Token)
	setIfNotEmpty(&cfg.LLM.Model, env.Model)
	setIfNotEmpty(&cfg.Language, env.Language)
	setIfNotEmpty(&cfg.LogLevel, env.LogLevel)
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Plugin 返回某个动作的配置项，值统一转为字符串；空值视为未配置。
func (c Config) Plugin(action, key string) (string, bool) {
	table, ok := c.Plugins[action]
	if !ok {
		return "", false
	}
	raw, ok := table[key]
	if !ok || raw == nil {
		return "", false
	}
	val := fmt.Sprint(raw)
	if val == "" {
		return "", false
	}
	return val, true
}

// SetPlugin 设置动作配置项，必要时创建表。
func (c *Config) SetPlugin(action, key string, value any) {
	if c.Plugins == nil {
		c.Plugins = map[string]map[string]any{}
	}
	table := c.Plugins[action]
	if table == nil {
		table = map[string]any{}
		c.Plugins[action] = table
	}
	table[key] = value
}
