// Package casecycle 识别一段文本的大小写风格，并将其转换为循环中的下一种风格。
//
// 循环顺序：snake -> kebab -> lower -> upper -> title -> camel -> pascal -> snake。
// 所有函数都是纯函数，无共享状态，可并发调用。
package casecycle

// Result 描述一次转换的完整过程，便于调用方展示与记录。
type Result struct {
	Input    string
	Output   string
	Words    []string
	Detected Style
	Target   Style
}

// Changed reports whether the conversion produced different text.
func (r Result) Changed() bool {
	return r.Output != r.Input
}

// Cycle returns text rewritten in the style that follows its current one.
// Text without letters or digits is returned unchanged.
func Cycle(text string) string {
	return Explain(text).Output
}

// Explain runs the same steps as Cycle and reports the intermediate values.
func Explain(text string) Result {
	res := Result{Input: text, Output: text}
	if !hasAlnum(text) {
		return res
	}
	words := Segment(text)
	s := shapeOf(text)
	res.Words = words
	res.Detected = classify(s, words)
	if res.Detected != Unknown {
		res.Target = res.Detected.Next()
	} else {
		res.Target = fallback(s, words)
	}
	res.Output = Format(res.Target, words)
	return res
}

// fallback picks a target for text that matched no rule in the decision list.
func fallback(s shape, words []string) Style {
	if s.hasSpace {
		if !s.allUpper {
			return UpperSpace
		}
		return TitleSpace
	}
	if len(words) == 1 {
		switch {
		case s.allLower:
			return UpperSpace
		case s.allUpper:
			return TitleSpace
		default:
			return LowerSpace
		}
	}
	return LowerSpace
}

// Convert formats text directly in the requested style, skipping detection.
func Convert(text string, target Style) string {
	if !hasAlnum(text) {
		return text
	}
	return Format(target, Segment(text))
}
