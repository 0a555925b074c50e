package llm

import (
	"testing"
	"time"
)

func TestSession_WindowAndReset(t *testing.T) {
	s := NewSession()
	if s.ID == "" {
		t.Fatalf("expected session id")
	}
	if got := s.Window(5); got != nil {
		t.Fatalf("empty session window = %v", got)
	}

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Append(RoleUser, "one", now)
	s.Append(RoleAssistant, "two", now.Add(time.Second))
	s.Append(RoleUser, "three", now.Add(2*time.Second))

	if !s.LastChat.Equal(now.Add(2 * time.Second)) {
		t.Fatalf("LastChat = %v", s.LastChat)
	}
	if got := s.Window(0); len(got) != 1 || got[0].Content != "three" {
		t.Fatalf("Window(0) = %v", got)
	}
	if got := s.Window(2); len(got) != 2 || got[0].Content != "two" {
		t.Fatalf("Window(2) = %v", got)
	}
	if got := s.Window(10); len(got) != 3 {
		t.Fatalf("Window(10) = %v", got)
	}

	id := s.ID
	s.Reset()
	if len(s.Messages) != 0 || !s.LastChat.IsZero() || s.ID == id {
		t.Fatalf("Reset did not clear session: %+v", s)
	}
}

func TestIsResetCommand(t *testing.T) {
	for _, in := range []string{"reset chat", "  Reset Chat \n"} {
		if !IsResetCommand(in) {
			t.Fatalf("IsResetCommand(%q) = false", in)
		}
	}
	if IsResetCommand("reset") {
		t.Fatalf("reset alone is not a reset command")
	}
}

func TestSession_DropLast(t *testing.T) {
	s := NewSession()
	s.DropLast()
	s.Append(RoleUser, "one", time.Time{})
	s.Append(RoleUser, "two", time.Time{})
	s.DropLast()
	if len(s.Messages) != 1 || s.Messages[0].Content != "one" {
		t.Fatalf("DropLast left %v", s.Messages)
	}
}
