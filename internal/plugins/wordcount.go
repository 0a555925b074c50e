package plugins

import (
	"context"
	"unicode"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

type WordCount struct{}

func (WordCount) Name() string     { return "wordcount" }
func (WordCount) Title() string    { return "Word Count" }
func (WordCount) Category() string { return action.CategoryProductivity }

func (WordCount) Available(sel action.Selection) action.Availability { return nonEmpty(sel) }

func (WordCount) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	chars, lines := CountText(sel.Text)
	notify(h, i18n.MsgWordCount, msg(h, i18n.MsgWordCountBody, chars, lines))
	return nil
}

// CountText 返回不含空白的字符数与行数。
func CountText(text string) (chars, lines int) {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			chars++
		}
	}
	return chars, len(splitLines(text))
}
