package casecycle

import (
	"strings"
	"unicode/utf8"
)

// Format joins words in the given style. Unknown renders as LowerSpace.
func Format(style Style, words []string) string {
	switch style {
	case UpperSpace:
		return joinMapped(words, " ", strings.ToUpper)
	case TitleSpace:
		return joinMapped(words, " ", capitalize)
	case Camel:
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(strings.ToLower(w))
				continue
			}
			b.WriteString(capitalize(w))
		}
		return b.String()
	case Pascal:
		return joinMapped(words, "", capitalize)
	case Snake:
		return joinMapped(words, "_", strings.ToLower)
	case Kebab:
		return joinMapped(words, "-", strings.ToLower)
	default:
		return joinMapped(words, " ", strings.ToLower)
	}
}

func joinMapped(words []string, sep string, fn func(string) string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fn(w)
	}
	return strings.Join(out, sep)
}

// capitalize 首字母大写，其余小写。
func capitalize(w string) string {
	if w == "" {
		return w
	}
	_, size := utf8.DecodeRuneInString(w)
	return strings.ToUpper(w[:size]) + strings.ToLower(w[size:])
}
