package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStoreAppendAndRecent(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	path := filepath.Join(tmp, "history.jsonl")
	s := &Store{Path: path}

	if got, err := s.Recent(0); err != nil || len(got) != 0 {
		t.Fatalf("Recent on missing file: got=%v err=%v", got, err)
	}
	if err := s.Append(Entry{Action: "  "}); err != nil {
		t.Fatalf("Append blank: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("blank action should not create the file, stat err=%v", err)
	}

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{"case", "json", "slug"} {
		if err := s.Append(Entry{Action: name, Chars: 3, OK: true, TS: ts}); err != nil {
			t.Fatalf("Append %s: %v", name, err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].Action != "json" || got[1].Action != "slug" {
		t.Fatalf("Recent(2) = %+v", got)
	}
	if !got[1].TS.Equal(ts) || !got[1].OK {
		t.Fatalf("entry not preserved: %+v", got[1])
	}
}

func TestStoreSkipsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join([]string{
		`{"action":"case","ok":true,"ts":"2025-01-01T00:00:00Z"}`,
		`{not json}`,
		`{"chars":4}`,
		`{"action":"hash","ok":false,"error":"boom","ts":"2025-01-01T00:00:00Z"}`,
		"",
	}, "\n")), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := (&Store{Path: path}).Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[1].Error != "boom" {
		t.Fatalf("Recent = %+v", got)
	}
}

func TestStoreErrors(t *testing.T) {
	t.Parallel()

	var s *Store
	if err := s.Append(Entry{Action: "x"}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	s = &Store{}
	if err := s.Append(Entry{Action: "x"}); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := s.Recent(1); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
