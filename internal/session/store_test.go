package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"biu-actions/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadList(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "sessions"))
	records, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	sess := llm.NewSession()
	sess.Append(llm.RoleUser, "hi", now)
	sess.Append(llm.RoleAssistant, "hello", now)
	require.NoError(t, s.Save(sess))

	got, err := s.Load(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Messages, got.Messages)
	assert.True(t, got.LastChat.Equal(now))

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "garbage.json"), []byte("{"), 0o600))
	records, err = s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, sess.ID, records[0].ID)
}

func TestStore_Resume(t *testing.T) {
	s := NewStore(t.TempDir())
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	fresh := s.Resume(DefaultIdle, now)
	assert.Empty(t, fresh.Messages)

	sess := llm.NewSession()
	sess.Append(llm.RoleUser, "hi", now.Add(-10*time.Minute))
	require.NoError(t, s.Save(sess))

	resumed := s.Resume(DefaultIdle, now)
	assert.Equal(t, sess.ID, resumed.ID)
	assert.Len(t, resumed.Messages, 1)

	stale := s.Resume(DefaultIdle, now.Add(time.Hour))
	assert.NotEqual(t, sess.ID, stale.ID)
	assert.Empty(t, stale.Messages)
}

func TestStore_Errors(t *testing.T) {
	var empty Store
	assert.Error(t, empty.Save(llm.NewSession()))
	assert.Error(t, NewStore(t.TempDir()).Save(nil))
	_, err := NewStore(t.TempDir()).Load("missing")
	assert.Error(t, err)
}
