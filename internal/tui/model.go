// Package tui 提供选区动作的终端工具栏：过滤、选择并执行动作，结果显示在底部。
package tui

import (
	"context"

	"biu-actions/internal/action"
	"biu-actions/internal/host"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Registry  *action.Registry
	Selection action.Selection
	// Host 负责粘贴与打开链接；通知和窗口由工具栏自己展示。
	Host    action.Host
	Context context.Context
}

// actionDoneMsg 在动作执行结束后回到 Update。
type actionDoneMsg struct {
	name          string
	notifications []host.Notification
	windows       []action.Window
	err           error
}

type Model struct {
	opts      Options
	ctx       context.Context
	input     textinput.Model
	available []action.Action
	matches   []action.Action
	cursor    int
	width     int
	height    int

	running   string
	footer    []host.Notification
	window    *action.Window
	lastErr   error
	performed []string
	quitting  bool
}

func New(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "filter actions"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Focus()

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{opts: opts, ctx: ctx, input: ti, width: 80, height: 24}
	if opts.Registry != nil {
		m.available = opts.Registry.Available(opts.Selection)
	}
	m.refilter()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Performed 返回本次会话中执行过的动作名。
func (m *Model) Performed() []string {
	return append([]string(nil), m.performed...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case actionDoneMsg:
		m.running = ""
		m.footer = msg.notifications
		m.window = nil
		if len(msg.windows) > 0 {
			w := msg.windows[len(msg.windows)-1]
			m.window = &w
		}
		m.lastErr = msg.err
		if msg.err == nil {
			m.performed = append(m.performed, msg.name)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.window != nil && msg.Type == tea.KeyEsc {
				m.window = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			m.move(-1)
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
			m.move(1)
			return m, nil
		case tea.KeyEnter:
			return m, m.runSelected()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.matches)) % len(m.matches)
}

func (m *Model) refilter() {
	m.matches = action.Find(m.available, m.input.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
}

// Selected 返回光标所在的动作。
func (m *Model) Selected() (action.Action, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return nil, false
	}
	return m.matches[m.cursor], true
}

func (m *Model) runSelected() tea.Cmd {
	a, ok := m.Selected()
	if !ok || m.running != "" {
		return nil
	}
	m.running = a.Name()
	reg, sel, ctx := m.opts.Registry, m.opts.Selection, m.ctx
	h := &captureHost{Host: m.opts.Host}
	return func() tea.Msg {
		err := action.Run(ctx, reg, a.Name(), sel, h)
		return actionDoneMsg{name: a.Name(), notifications: h.notifications, windows: h.windows, err: err}
	}
}
