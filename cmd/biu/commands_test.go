package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biu-actions/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCycle(t *testing.T) {
	s, out, errOut := testStreams("", "")
	require.NoError(t, runCycle([]string{"--explain", "hello_world"}, s))
	assert.Equal(t, "hello-world\n", out.String())
	assert.Contains(t, errOut.String(), "detected=snake target=kebab")

	s, out, _ = testStreams("userId\nHTTP_STATUS\n", "")
	require.NoError(t, runCycle([]string{"--lines"}, s))
	assert.Equal(t, "UserId\nhttp-status\n", out.String())

	s, out, _ = testStreams("", "")
	require.NoError(t, runCycle([]string{"--to", "camel", "--text", "Http Request Body"}, s))
	assert.Equal(t, "httpRequestBody\n", out.String())

	s, _, _ = testStreams("", "")
	assert.Error(t, runCycle([]string{"--to", "screaming", "x"}, s))
}

func TestRunActionToStdout(t *testing.T) {
	e := testEnv(t, "language = \"en\"\n")

	s, out, errOut := testStreams("", "")
	require.NoError(t, runAction(e, []string{"--stdout", "--no-color", "case", "hello_world"}, s))
	assert.Equal(t, "hello-world\n", out.String())
	assert.Contains(t, errOut.String(), "Converted")

	s, out, _ = testStreams(`{"a":1}`, "")
	require.NoError(t, runAction(e, []string{"--stdout", "JSON"}, s))
	assert.Equal(t, "{\n    \"a\": 1\n}\n", out.String())

	s, _, errOut = testStreams("", "")
	err := runAction(e, []string{"--stdout", "--text", "nope", "json"}, s)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Hint")

	entries, err := e.history().Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "case", entries[0].Action)
	assert.True(t, entries[1].OK)
	assert.False(t, entries[2].OK)
}

func TestRunActionErrors(t *testing.T) {
	e := testEnv(t, "")
	s, _, _ := testStreams("", "")
	assert.Error(t, runAction(e, nil, s))
	assert.ErrorContains(t, runAction(e, []string{"--stdout", "nope", "x"}, s), "unknown action")

	entries, err := e.history().Recent(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunActionChatWithoutToken(t *testing.T) {
	e := testEnv(t, "language = \"en\"\n")
	s, out, errOut := testStreams("", "")
	require.NoError(t, runAction(e, []string{"--stdout", "chat", "hi"}, s))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Configuration Error")
}

func TestRunList(t *testing.T) {
	e := testEnv(t, "")
	s, out, _ := testStreams("", "")
	require.NoError(t, runList(e, nil, s))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 15)
	assert.Contains(t, lines[0], "case")

	s, out, _ = testStreams("", "")
	require.NoError(t, runList(e, []string{"--text", "100 USD"}, s))
	assert.Contains(t, out.String(), "* currency")
	assert.NotContains(t, out.String(), "json")
}

func TestRunHistory(t *testing.T) {
	e := testEnv(t, "")
	e.record("case", "abc", nil)
	e.record("hash", "abcd", assert.AnError)

	var out strings.Builder
	require.NoError(t, runHistory(e, []string{"-n", "1"}, &out))
	assert.Contains(t, out.String(), "hash")
	assert.Contains(t, out.String(), "failed: "+assert.AnError.Error())
	assert.NotContains(t, out.String(), "case")
}

func TestRunCatalog(t *testing.T) {
	t.Cleanup(logger.Discard())
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(
		"# Plugins\n\n### ✍️ 文本处理 (Text Processing)\n\n- [Case](https://github.com/x/y/releases/latest/download/CaseConverter.swiftbiux)\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "CaseConverter"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "CaseConverter", "manifest.json"), []byte(
		`{"identifier":"com.x.case","name":"Case Converter","version":"1.0","description":"cycle case","author":"zwpaper"}`), 0o644))

	var out strings.Builder
	require.NoError(t, runCatalog([]string{"--root", root}, &out))
	assert.Contains(t, out.String(), "wrote 1 plugins in 1 categories")

	data, err := os.ReadFile(filepath.Join(root, "plugins.json"))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	plugins := got["plugins"].([]any)
	require.Len(t, plugins, 1)
	assert.Equal(t, "text-processing", plugins[0].(map[string]any)["categoryId"])

	out.Reset()
	require.NoError(t, runCatalog([]string{"--root", root, "--out", "-", "--format", "yaml"}, &out))
	assert.Contains(t, out.String(), "com.x.case")
}

func TestRunPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := strings.TrimSpace(r.Header.Get("Authorization")); got != "Bearer test-key" {
			http.Error(w, "missing auth", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"pong"}}]}`))
	}))
	t.Cleanup(srv.Close)

	e := testEnv(t, "[llm]\ntoken = \"test-key\"\nurl = \""+srv.URL+"\"\n")
	var out strings.Builder
	require.NoError(t, runPing(e, []string{"--timeout", "5"}, &out))
	assert.Equal(t, "ok: pong\n", out.String())

	out.Reset()
	assert.Error(t, runPing(e, []string{"--api-key", "wrong"}, &out))

	e.cfg.LLM.Token = ""
	assert.ErrorContains(t, runPing(e, nil, &out), "missing api key")
}

func TestRunConfigSetKeepsEnvOutOfFile(t *testing.T) {
	e := testEnv(t, "language = \"zh\"\n")
	t.Setenv("BIU_LLM_TOKEN", "from-env")

	var out strings.Builder
	require.NoError(t, runConfig(e, []string{"path"}, &out))
	assert.Equal(t, e.cfg.Source+"\n", out.String())

	out.Reset()
	require.NoError(t, runConfig(e, []string{"set", "language=en", "plugins.clean.sortLines=true"}, &out))
	assert.Contains(t, out.String(), "updated")

	data, err := os.ReadFile(e.cfg.Source)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "from-env")

	reloaded, err := loadEnv(rootArgs{configPath: e.cfg.Source})
	require.NoError(t, err)
	assert.Equal(t, "en", reloaded.cfg.Language)
	v, ok := reloaded.cfg.Plugin("clean", "sortLines")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	assert.Error(t, runConfig(e, nil, &out))
	assert.Error(t, runConfig(e, []string{"set"}, &out))
	assert.Error(t, runConfig(e, []string{"set", "novalue"}, &out))
	assert.Error(t, runConfig(e, []string{"unset"}, &out))
}
