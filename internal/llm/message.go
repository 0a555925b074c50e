package llm

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Completer 是动作依赖的最小模型接口，便于测试替换。
type Completer interface {
	Complete(ctx context.Context, messages []Message, model string) (string, error)
}
