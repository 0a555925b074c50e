package tui

import (
	"strings"
	"testing"

	"biu-actions/internal/action"
	"biu-actions/internal/host"
	"biu-actions/internal/logger"
	"biu-actions/internal/plugins"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, text string) (*Model, *host.Recorder) {
	t.Helper()
	t.Cleanup(logger.Discard())
	rec := host.NewRecorder()
	m := New(Options{
		Registry:  plugins.Default(plugins.Deps{}),
		Selection: action.Selection{Text: text},
		Host:      rec,
	})
	return m, rec
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// press 发送按键并同步执行返回的命令，把结果再送回模型。
func press(t *testing.T, m *Model, key tea.KeyType) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	if cmd == nil {
		return nil
	}
	if done, ok := cmd().(actionDoneMsg); ok {
		m.Update(done)
		return nil
	}
	return cmd
}

func TestModel_FilterAndRun(t *testing.T) {
	m, rec := newTestModel(t, "hello_world")
	require.NotEmpty(t, m.matches)

	typeText(m, "case")
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "case", sel.Name())

	press(t, m, tea.KeyEnter)
	assert.Equal(t, []string{"hello-world"}, rec.Pastes)
	assert.Equal(t, []string{"case"}, m.Performed())
	require.Len(t, m.footer, 1)
	assert.Equal(t, "Converted", m.footer[0].Title)
	assert.Empty(t, rec.Notifications, "notifications are rendered by the toolbar")
	assert.Contains(t, m.View(), "Converted")
}

func TestModel_Navigation(t *testing.T) {
	m, _ := newTestModel(t, "some text")
	n := len(m.matches)
	require.Greater(t, n, 2)

	press(t, m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)
	press(t, m, tea.KeyUp)
	press(t, m, tea.KeyUp)
	assert.Equal(t, n-1, m.cursor)

	typeText(m, "zzzz")
	assert.Empty(t, m.matches)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "no matches")
	assert.Nil(t, press(t, m, tea.KeyEnter))
}

func TestModel_ContextMatchFirst(t *testing.T) {
	m, _ := newTestModel(t, "99 EUR")
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "currency", sel.Name())
}

func TestModel_WindowAndQuit(t *testing.T) {
	m, _ := newTestModel(t, "hello")
	m.Update(actionDoneMsg{name: "translate", windows: []action.Window{{Title: "Translation", Body: "bonjour"}}})
	view := m.View()
	assert.Contains(t, view, "Translation")
	assert.Contains(t, view, "bonjour")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Nil(t, m.window)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", m.View())
}

func TestPreviewAndWrap(t *testing.T) {
	assert.Equal(t, "a ⏎ b", preview("a\nb", 20))
	assert.Equal(t, "(empty selection)", preview("  ", 40))
	got := preview(strings.Repeat("你", 10), 7)
	assert.LessOrEqual(t, len([]rune(got)), 4)

	assert.Equal(t, []string{"hello", "world"}, wrap("hello world", 6))
	assert.Equal(t, []string{"你好", "世界"}, wrap("你好世界", 4))
	assert.Equal(t, []string{"a", "", "b"}, wrap("a\n\nb", 10))
}
