package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, width)...)
	}
	return lines
}

func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	out := []string{}
	current := ""
	for _, word := range strings.Fields(line) {
		switch {
		case current == "" && runewidth.StringWidth(word) > width:
			out = append(out, breakWord(word, width)...)
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			out = append(out, current)
			current = ""
			if runewidth.StringWidth(word) > width {
				out = append(out, breakWord(word, width)...)
			} else {
				current = word
			}
		}
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

// breakWord 按显示宽度硬切没有空格的长串，CJK 文本走这里。
func breakWord(word string, width int) []string {
	out := []string{}
	current := []rune{}
	w := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
			w = 0
		}
		current = append(current, r)
		w += rw
	}
	if len(current) > 0 {
		out = append(out, string(current))
	}
	return out
}
