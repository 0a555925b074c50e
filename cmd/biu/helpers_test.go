package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biu-actions/internal/config"
	"biu-actions/internal/logger"
)

// testStreams 返回非 TTY 的内存流；stdin 为空时回退到 clip。
func testStreams(stdin, clip string) (streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return streams{
		In:    strings.NewReader(stdin),
		InTTY: false,
		Out:   &out,
		Err:   &errOut,
		ReadClipboard: func() (string, error) {
			if clip == "" {
				return "", errors.New("empty clipboard")
			}
			return clip, nil
		},
	}, &out, &errOut
}

// testEnv 在临时目录中加载配置，隔离会话与历史文件。
func testEnv(t *testing.T, toml string) env {
	t.Helper()
	t.Cleanup(logger.Discard())
	t.Setenv("BIU_LLM_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("BIU_LANGUAGE", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(toml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	e, err := loadEnv(rootArgs{configPath: path})
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	return e
}

func TestLoadEnvAppliesOverrides(t *testing.T) {
	e := testEnv(t, "language = \"en\"\n")
	if e.cfg.Language != "en" {
		t.Fatalf("language = %q", e.cfg.Language)
	}
	e2, err := loadEnv(rootArgs{configPath: filepath.Join(e.dir, "config.toml"), overrides: []string{"model=m2"}})
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	if e2.cfg.LLM.Model != "m2" {
		t.Fatalf("model = %q", e2.cfg.LLM.Model)
	}
	if e2.cfg.LLM.Model == config.DefaultModel {
		t.Fatalf("override not applied")
	}
}
