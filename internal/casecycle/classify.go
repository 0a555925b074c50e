package casecycle

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// shape 汇总分类所需的文本特征，只计算一次。
type shape struct {
	allLower      bool
	allUpper      bool
	hasSpace      bool
	hasUnderscore bool
	hasDash       bool
	first         rune
	hasUpper      bool
}

func shapeOf(text string) shape {
	letters := hasLetter(text)
	first, _ := utf8.DecodeRuneInString(text)
	return shape{
		allLower:      letters && text == strings.ToLower(text),
		allUpper:      letters && text == strings.ToUpper(text),
		hasSpace:      strings.Contains(text, " "),
		hasUnderscore: strings.Contains(text, "_"),
		hasDash:       strings.Contains(text, "-"),
		first:         first,
		hasUpper:      strings.IndexFunc(text, unicode.IsUpper) >= 0,
	}
}

func (s shape) delimited() bool {
	return s.hasSpace || s.hasUnderscore || s.hasDash
}

// Classify returns the style text is currently written in. The checks form a
// decision list evaluated top to bottom; the first match wins.
func Classify(text string, words []string) Style {
	return classify(shapeOf(text), words)
}

func classify(s shape, words []string) Style {
	switch {
	case s.hasUnderscore && !s.hasSpace:
		return Snake
	case s.hasDash && !s.hasSpace:
		return Kebab
	case s.allLower && s.hasSpace:
		return LowerSpace
	case s.allUpper && s.hasSpace:
		return UpperSpace
	case s.hasSpace && allCapitalized(words):
		return TitleSpace
	case !s.delimited() && unicode.IsLower(s.first) && s.hasUpper:
		return Camel
	case !s.delimited() && unicode.IsUpper(s.first):
		return Pascal
	}
	return Unknown
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
