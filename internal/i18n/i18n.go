package i18n

import "strings"

// Language 描述用户希望使用的语言。
// 使用简短的语言代码（如 zh、en），既用于通知文本，也用作翻译动作的目标语言。
type Language string

const (
	LanguageChinese  Language = "zh"
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
	LanguageKorean   Language = "ko"
	LanguageFrench   Language = "fr"
	LanguageGerman   Language = "de"
	LanguageSpanish  Language = "es"

	// DefaultLanguage 未配置时的默认语言。
	DefaultLanguage = LanguageChinese
)

type languageInfo struct {
	display string
	prompt  string
	aliases []string
}

var languages = map[Language]languageInfo{
	LanguageChinese:  {display: "中文", prompt: "Simplified Chinese", aliases: []string{"zh-cn", "zh_cn", "zh-hans", "cn", "chinese", "中文"}},
	LanguageEnglish:  {display: "English", prompt: "English", aliases: []string{"en-us", "en_us", "en-gb", "english"}},
	LanguageJapanese: {display: "日本語", prompt: "Japanese", aliases: []string{"ja-jp", "jp", "japanese", "日本語"}},
	LanguageKorean:   {display: "한국어", prompt: "Korean", aliases: []string{"ko-kr", "kr", "korean"}},
	LanguageFrench:   {display: "Français", prompt: "French", aliases: []string{"fr-fr", "french"}},
	LanguageGerman:   {display: "Deutsch", prompt: "German", aliases: []string{"de-de", "german"}},
	LanguageSpanish:  {display: "Español", prompt: "Spanish", aliases: []string{"es-es", "spanish"}},
}

var aliasIndex = func() map[string]Language {
	m := make(map[string]Language)
	for lang, info := range languages {
		m[string(lang)] = lang
		for _, alias := range info.aliases {
			m[alias] = lang
		}
	}
	return m
}()

// Normalize 将用户输入的语言值转换为统一的语言代码。
// 空字符串回退到默认语言，未知值原样保留（小写）。
func Normalize(value string) Language {
	lang := strings.ToLower(strings.TrimSpace(value))
	if lang == "" {
		return DefaultLanguage
	}
	if known, ok := aliasIndex[lang]; ok {
		return known
	}
	return Language(lang)
}

// Code 返回规范化后的语言代码，空值回退到默认语言。
func (l Language) Code() string {
	return string(Normalize(string(l)))
}

// Known reports whether l maps to a language with its own metadata.
func (l Language) Known() bool {
	_, ok := languages[Normalize(string(l))]
	return ok
}

// DisplayName 返回适合展示的语言名称，未知语言直接返回代码。
func (l Language) DisplayName() string {
	if info, ok := languages[Normalize(string(l))]; ok {
		return info.display
	}
	return l.Code()
}

// PromptName 返回写入模型提示词时使用的英文语言名。
func (l Language) PromptName() string {
	if info, ok := languages[Normalize(string(l))]; ok {
		return info.prompt
	}
	return l.Code()
}
