// Package session 把对话 Session 持久化到 ~/.biu/sessions，使独立的命令行调用之间能延续上下文。
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"biu-actions/internal/llm"
)

// DefaultIdle 超过该时长未交互的会话不再自动续用。
const DefaultIdle = 30 * time.Minute

type Record struct {
	ID       string        `json:"id"`
	Messages []llm.Message `json:"messages"`
	LastChat time.Time     `json:"last_chat"`
	Updated  time.Time     `json:"updated"`
}

// Store 以 <id>.json 的形式保存会话。
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) ensureDir() error {
	if s == nil || strings.TrimSpace(s.Dir) == "" {
		return errors.New("session store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.Dir, id+".json")
}

func (s *Store) Save(sess *llm.Session) error {
	if sess == nil {
		return errors.New("nil session")
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	rec := Record{ID: sess.ID, Messages: sess.Messages, LastChat: sess.LastChat, Updated: time.Now()}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(sess.ID), data, 0o600)
}

func (s *Store) Load(id string) (*llm.Session, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return &llm.Session{ID: rec.ID, Messages: rec.Messages, LastChat: rec.LastChat}, nil
}

// List 返回全部会话记录，最近更新的在前。
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var records []Record
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Updated.After(records[j].Updated)
	})
	return records, nil
}

// Resume 返回最近一次在 maxIdle 内有交互的会话，否则新建一个。
func (s *Store) Resume(maxIdle time.Duration, now time.Time) *llm.Session {
	records, err := s.List()
	if err != nil || len(records) == 0 {
		return llm.NewSession()
	}
	last := records[0]
	if last.LastChat.IsZero() || now.Sub(last.LastChat) > maxIdle {
		return llm.NewSession()
	}
	return &llm.Session{ID: last.ID, Messages: last.Messages, LastChat: last.LastChat}
}
