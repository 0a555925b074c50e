package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"biu-actions/internal/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// DefaultBaseURL 未配置 url 时使用的地址。
const DefaultBaseURL = "https://api.openai.com/v1"

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client 封装 OpenAI 兼容的 chat completions 接口。
type Client struct {
	api     *openai.Client
	model   string
	baseURL string
	log     *logger.LogEntry
}

var _ Completer = (*Client)(nil)

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("missing api key: set BIU_LLM_TOKEN or [llm] token in ~/.biu/config.toml")
	}
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimRight(normalizeBaseURL(base), "/")
	cfg := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(base),
		option.WithMaxRetries(0),
	}
	if opts.Timeout > 0 {
		cfg = append(cfg, option.WithRequestTimeout(opts.Timeout))
	}
	client := openai.NewClient(cfg...)
	return &Client{
		api:     &client,
		model:   opts.Model,
		baseURL: base,
		log:     logger.Named("llm"),
	}, nil
}

// BaseURL returns the normalized endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) resolveModel(model string) string {
	if strings.TrimSpace(model) != "" {
		return model
	}
	return c.model
}

// Complete 发送一次非流式请求，返回第一条 choice 的文本（已去除首尾空白）。
func (c *Client) Complete(ctx context.Context, messages []Message, model string) (string, error) {
	model = c.resolveModel(model)
	if strings.TrimSpace(model) == "" {
		return "", errors.New("missing model")
	}
	c.log.WithField("model", model).WithField("messages", len(messages)).Debug("-> request")

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: toChatMessages(messages),
	})
	if err != nil {
		err = wrapHTTPError(err)
		c.log.WithField("model", model).Errorf("!! request failed: %v", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty response from api")
	}
	c.log.WithField("model", model).WithField("chars", len(text)).Debug("<- response")
	return text, nil
}

// Ping 要求模型只回复 pong，用于检查连通性与凭据。
func (c *Client) Ping(ctx context.Context, model string) (string, error) {
	return c.Complete(ctx, []Message{
		{Role: RoleSystem, Content: "Reply with exactly: pong (lowercase, no punctuation, no newline)."},
		{Role: RoleUser, Content: "ping"},
	}, model)
}

func toChatMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

func wrapHTTPError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr != nil {
		raw := strings.TrimSpace(apiErr.RawJSON())
		if raw != "" {
			return fmt.Errorf("http_%d: %s", apiErr.StatusCode, raw)
		}
		return fmt.Errorf("http_%d: %v", apiErr.StatusCode, err)
	}
	return err
}
