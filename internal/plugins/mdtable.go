package plugins

import (
	"context"
	"regexp"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"

	"github.com/mattn/go-runewidth"
)

var separatorCell = regexp.MustCompile(`^[-\s:]+$`)

// MarkdownTable 按显示宽度对齐 Markdown 表格列，CJK 字符按两列计算。
type MarkdownTable struct{}

func (MarkdownTable) Name() string     { return "mdtable" }
func (MarkdownTable) Title() string    { return "Markdown Table Formatter" }
func (MarkdownTable) Category() string { return action.CategoryText }

func (MarkdownTable) Available(sel action.Selection) action.Availability {
	text := strings.TrimSpace(sel.Text)
	return action.Allow(strings.Contains(text, "|") && len(strings.Split(text, "\n")) >= 2)
}

func (MarkdownTable) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	out := FormatTable(sel.Text)
	if out == sel.Text {
		notify(h, i18n.MsgHint, msg(h, i18n.MsgTableAligned))
		return nil
	}
	if err := h.PasteText(out); err != nil {
		return err
	}
	notify(h, i18n.MsgTableFormatted, "")
	return nil
}

// FormatTable 返回对齐后的表格；少于两行表格行时原样返回。
func FormatTable(text string) string {
	var rows [][]string
	for _, line := range splitLines(strings.TrimSpace(text)) {
		if strings.Contains(strings.TrimSpace(line), "|") {
			rows = append(rows, splitRow(line))
		}
	}
	if len(rows) < 2 {
		return text
	}

	// 分隔行至少输出三个 "-"，列宽也按此计算，保证再次格式化结果不变。
	var widths []int
	for _, row := range rows {
		sep := isSeparatorRow(row)
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			w := runewidth.StringWidth(cell)
			if sep && w < 3 {
				w = 3
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sep := isSeparatorRow(row)
		cells := make([]string, len(row))
		for i, cell := range row {
			if sep {
				if len(cell) < 3 {
					cell = "---"
				}
				if pad := widths[i] - len(cell); pad > 0 {
					cell += strings.Repeat("-", pad)
				}
			} else if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				cell += strings.Repeat(" ", pad)
			}
			cells[i] = " " + cell + " "
		}
		lines = append(lines, "|"+strings.Join(cells, "|")+"|")
	}
	return strings.Join(lines, "\n")
}

func splitRow(line string) []string {
	content := strings.TrimSpace(line)
	content = strings.TrimPrefix(content, "|")
	content = strings.TrimSuffix(content, "|")
	cells := strings.Split(content, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func isSeparatorRow(row []string) bool {
	for _, cell := range row {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}
