package casecycle

import (
	"strings"
	"unicode"
)

// Segment 将文本拆分为单词序列。
//
// 分隔符（空白、下划线、连字符）折叠为单个边界；小写后接大写处插入边界
// （helloWorld -> hello World）；连续大写后接首字母大写单词处插入边界
// （PDFLoader -> PDF Loader）。只丢弃空片段，纯符号片段（如 &、/）作为单词保留。
func Segment(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	runes = collapseDelimiters(runes)
	runes = splitCamel(runes)
	runes = splitAcronym(runes)

	var words []string
	for _, part := range strings.Split(string(runes), " ") {
		if part == "" {
			continue
		}
		words = append(words, part)
	}
	return words
}

func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func collapseDelimiters(in []rune) []rune {
	out := make([]rune, 0, len(in))
	inRun := false
	for _, r := range in {
		if isDelimiter(r) {
			if !inRun {
				out = append(out, ' ')
			}
			inRun = true
			continue
		}
		inRun = false
		out = append(out, r)
	}
	return out
}

func splitCamel(in []rune) []rune {
	out := make([]rune, 0, len(in)+4)
	for i, r := range in {
		if i > 0 && unicode.IsLower(in[i-1]) && unicode.IsUpper(r) {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return out
}

// splitAcronym breaks "PDFLoader" before the 'L': an uppercase rune preceded by
// an uppercase rune and followed by a lowercase one starts a new word.
func splitAcronym(in []rune) []rune {
	out := make([]rune, 0, len(in)+4)
	for i, r := range in {
		if i > 0 && i+1 < len(in) &&
			unicode.IsUpper(in[i-1]) && unicode.IsUpper(r) && unicode.IsLower(in[i+1]) {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return out
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
