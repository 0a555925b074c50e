package catalog

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	sectionSplit  = regexp.MustCompile(`(?m)^###\s+`)
	headerPattern = regexp.MustCompile(`^(?:.\s+)?(.+?)\s+\((.+?)\)$`)
	downloadLink  = regexp.MustCompile(`releases/latest/download/(.+?)\.swiftbiux`)
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]+`)
)

var categoryIcons = map[string]string{
	"text-processing": "edit_note",
	"devtools":        "build",
	"productivity":    "speed",
	"online-services": "cloud",
	"data-creative":   "palette",
	"system":          "settings",
	"utilities":       "extension",
}

// Sections 是 README 中解析出的分类及插件目录到分类的映射。
type Sections struct {
	Categories     []Category
	PluginCategory map[string]string
}

// ParseReadme 按三级标题切分 README。标题形如 "✍️ 文本处理与转换 (Text Processing)"。
func ParseReadme(content string) Sections {
	out := Sections{PluginCategory: map[string]string{}}
	parts := sectionSplit.Split(content, -1)
	for _, section := range parts[1:] {
		header := section
		if i := strings.IndexByte(section, '\n'); i >= 0 {
			header = section[:i]
		}
		m := headerPattern.FindStringSubmatch(strings.TrimSpace(header))
		if m == nil {
			continue
		}
		zh := strings.TrimLeftFunc(strings.TrimSpace(m[1]), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		en := strings.TrimSpace(m[2])
		id := CategoryID(en)
		icon, ok := categoryIcons[id]
		if !ok {
			icon = "extension"
		}
		out.Categories = append(out.Categories, Category{ID: id, Title: Text{En: en, Zh: zh}, Icon: icon})
		for _, link := range downloadLink.FindAllStringSubmatch(section, -1) {
			out.PluginCategory[link[1]] = id
		}
	}
	return out
}

// CategoryID 把英文标题转成 kebab 形式的分类 ID。
func CategoryID(title string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
