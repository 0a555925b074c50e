package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C4A1FF"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2F2A3D"))
	previewStyle  = lipgloss.NewStyle().Faint(true)
	noticeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EBCB8B"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	windowStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
)

const maxListLines = 10

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width < 24 {
		width = 24
	}

	var b strings.Builder
	b.WriteString(previewStyle.Render(preview(m.opts.Selection.Text, width-2)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.listView(width))

	if m.running != "" {
		b.WriteString("\n\n")
		b.WriteString(descStyle.Render("running " + m.running + "…"))
	}
	if footer := m.footerView(width); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}
	if m.window != nil {
		b.WriteString("\n\n")
		b.WriteString(m.windowView(width))
	}
	return b.String()
}

// preview 把选区压成一行并按显示宽度截断。
func preview(text string, width int) string {
	flat := strings.Join(strings.Fields(strings.ReplaceAll(text, "\n", " ⏎ ")), " ")
	if flat == "" {
		flat = "(empty selection)"
	}
	return runewidth.Truncate(flat, width, "…")
}

func (m *Model) listView(width int) string {
	if len(m.matches) == 0 {
		return descStyle.Render("no matches")
	}
	nameWidth := 0
	for _, a := range m.matches {
		if w := runewidth.StringWidth(a.Name()); w > nameWidth {
			nameWidth = w
		}
	}
	start := 0
	if m.cursor >= maxListLines {
		start = m.cursor - maxListLines + 1
	}
	end := start + maxListLines
	if end > len(m.matches) {
		end = len(m.matches)
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		a := m.matches[i]
		marker := "  "
		if i == m.cursor {
			marker = "› "
		}
		name := runewidth.FillRight(a.Name(), nameWidth)
		title := runewidth.Truncate(a.Title(), width-nameWidth-6, "…")
		line := fmt.Sprintf("%s%s  %s", marker, nameStyle.Render(name), descStyle.Render(title))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) footerView(width int) string {
	var lines []string
	for _, n := range m.footer {
		line := noticeStyle.Render(n.Title)
		if body := strings.TrimSpace(n.Body); body != "" {
			line += " " + descStyle.Render(runewidth.Truncate(strings.ReplaceAll(body, "\n", " · "), width-runewidth.StringWidth(n.Title)-2, "…"))
		}
		lines = append(lines, line)
	}
	if m.lastErr != nil && len(lines) == 0 {
		lines = append(lines, errorStyle.Render(m.lastErr.Error()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) windowView(width int) string {
	inner := width - 4
	var content []string
	if title := strings.TrimSpace(m.window.Title); title != "" {
		content = append(content, titleStyle.Render(title), "")
	}
	content = append(content, wrap(m.window.Body, inner)...)
	return windowStyle.Width(width - 2).Render(strings.Join(content, "\n"))
}
