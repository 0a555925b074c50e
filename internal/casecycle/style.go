package casecycle

import (
	"fmt"
	"strings"
)

// Style 表示一种单词拼接风格。
type Style int

const (
	Unknown Style = iota
	LowerSpace
	UpperSpace
	TitleSpace
	Camel
	Pascal
	Snake
	Kebab
)

// Order 是循环顺序，最后一个元素回到第一个。
var Order = []Style{Snake, Kebab, LowerSpace, UpperSpace, TitleSpace, Camel, Pascal}

var styleNames = map[Style]string{
	Unknown:    "unknown",
	LowerSpace: "lower",
	UpperSpace: "upper",
	TitleSpace: "title",
	Camel:      "camel",
	Pascal:     "pascal",
	Snake:      "snake",
	Kebab:      "kebab",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Next returns the style that follows s in Order. Unknown has no successor.
func (s Style) Next() Style {
	for i, st := range Order {
		if st == s {
			return Order[(i+1)%len(Order)]
		}
	}
	return Unknown
}

// ParseStyle accepts the names printed by String plus a few common aliases.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lower", "lower-space", "lowerspace":
		return LowerSpace, nil
	case "upper", "upper-space", "upperspace":
		return UpperSpace, nil
	case "title", "title-space", "titlespace":
		return TitleSpace, nil
	case "camel", "camelcase":
		return Camel, nil
	case "pascal", "pascalcase":
		return Pascal, nil
	case "snake", "snake_case":
		return Snake, nil
	case "kebab", "kebab-case":
		return Kebab, nil
	}
	return Unknown, fmt.Errorf("unknown case style %q", name)
}
