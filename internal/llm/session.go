package llm

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session 是调用方持有的对话状态：消息历史与最近一次交互时间。
// 动作本身不保存任何全局状态，同一个 Session 在多次调用之间显式传递。
type Session struct {
	ID       string
	Messages []Message
	LastChat time.Time
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// Append 追加一条消息并刷新 LastChat。
func (s *Session) Append(role Role, content string, now time.Time) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
	s.LastChat = now
}

// Window 返回最近 n 条消息；n <= 0 时只返回最后一条（即本轮输入）。
func (s *Session) Window(n int) []Message {
	if len(s.Messages) == 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	start := len(s.Messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]Message, len(s.Messages)-start)
	copy(out, s.Messages[start:])
	return out
}

// DropLast 移除最后一条消息，请求失败时用来撤回本轮输入。
func (s *Session) DropLast() {
	if len(s.Messages) > 0 {
		s.Messages = s.Messages[:len(s.Messages)-1]
	}
}

// Reset 清空历史并换一个新的会话 ID。
func (s *Session) Reset() {
	s.Messages = nil
	s.LastChat = time.Time{}
	s.ID = uuid.NewString()
}

// IsResetCommand 判断输入是否为重置对话指令。
func IsResetCommand(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "reset chat")
}
