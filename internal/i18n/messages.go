package i18n

import "fmt"

// Key 标识一条面向用户的提示文本。
type Key string

const (
	MsgConverted        Key = "converted"
	MsgConvertedLong    Key = "converted_long"
	MsgNoChange         Key = "no_change"
	MsgHint             Key = "hint"
	MsgFailed           Key = "failed"
	MsgUnavailable      Key = "unavailable"
	MsgBase64Decoded    Key = "base64_decoded"
	MsgBase64Encoded    Key = "base64_encoded"
	MsgHashDone         Key = "hash_done"
	MsgJSONCompacted    Key = "json_compacted"
	MsgJSONFormatted    Key = "json_formatted"
	MsgJSONInvalid      Key = "json_invalid"
	MsgSlugDone         Key = "slug_done"
	MsgSlugEmpty        Key = "slug_empty"
	MsgCleanDone        Key = "clean_done"
	MsgCleanNoop        Key = "clean_noop"
	MsgTimestamp        Key = "timestamp"
	MsgDate             Key = "date"
	MsgDateSeconds      Key = "date_seconds"
	MsgTimeInvalid      Key = "time_invalid"
	MsgWordCount        Key = "word_count"
	MsgWordCountBody    Key = "word_count_body"
	MsgRegexFound       Key = "regex_found"
	MsgRegexFoundBody   Key = "regex_found_body"
	MsgRegexNone        Key = "regex_none"
	MsgRegexNoneBody    Key = "regex_none_body"
	MsgRegexInvalid     Key = "regex_invalid"
	MsgRegexNeedCustom  Key = "regex_need_custom"
	MsgTableFormatted   Key = "table_formatted"
	MsgTableAligned     Key = "table_aligned"
	MsgTableInvalid     Key = "table_invalid"
	MsgConfigError      Key = "config_error"
	MsgAPIError         Key = "api_error"
	MsgChatReset        Key = "chat_reset"
	MsgChatResetBody    Key = "chat_reset_body"
	MsgCurrencyNoNumber Key = "currency_no_number"
	MsgCurrencyPair     Key = "currency_pair"
	MsgCurrencyRate     Key = "currency_rate"
	MsgLLMNotConfigured Key = "llm_not_configured"
	MsgChatSelection    Key = "chat_selection"
	MsgTranslation      Key = "translation"
)

var catalog = map[Language]map[Key]string{
	LanguageChinese: {
		MsgConverted:        "已转换",
		MsgConvertedLong:    "格式转换成功",
		MsgNoChange:         "无法转换或已是目标格式",
		MsgHint:             "提示",
		MsgFailed:           "操作失败",
		MsgUnavailable:      "当前选择不适用此动作",
		MsgBase64Decoded:    "Base64 解码成功",
		MsgBase64Encoded:    "Base64 编码成功",
		MsgHashDone:         "哈希计算完成",
		MsgJSONCompacted:    "JSON 已压缩",
		MsgJSONFormatted:    "JSON 已格式化",
		MsgJSONInvalid:      "无效的 JSON 格式",
		MsgSlugDone:         "Slug 生成成功",
		MsgSlugEmpty:        "无法生成有效的 Slug",
		MsgCleanDone:        "清洗完成",
		MsgCleanNoop:        "文本已符合当前规则",
		MsgTimestamp:        "时间戳转换",
		MsgDate:             "日期转换",
		MsgDateSeconds:      "秒: %d",
		MsgTimeInvalid:      "无效的时间格式",
		MsgWordCount:        "统计结果",
		MsgWordCountBody:    "字符数: %d\n行数: %d",
		MsgRegexFound:       "提取成功",
		MsgRegexFoundBody:   "共找到 %d 个结果",
		MsgRegexNone:        "未找到匹配项",
		MsgRegexNoneBody:    "当前模式: %s",
		MsgRegexInvalid:     "无效的正则表达式",
		MsgRegexNeedCustom:  "请在设置中配置自定义正则表达式",
		MsgTableFormatted:   "表格格式化成功",
		MsgTableAligned:     "表格已经对齐",
		MsgTableInvalid:     "无法解析表格结构",
		MsgConfigError:      "配置错误",
		MsgAPIError:         "接口请求失败",
		MsgChatReset:        "对话已重置",
		MsgChatResetBody:    "聊天记录已清空",
		MsgCurrencyNoNumber: "选中内容中没有有效数字",
		MsgCurrencyPair:     "不支持该货币对",
		MsgCurrencyRate:     "1 %s ≈ %s %s",
		MsgLLMNotConfigured: "请先在配置中设置 llm.token",
		MsgChatSelection:    "我选择的内容是“%s”",
		MsgTranslation:      "翻译",
	},
	LanguageEnglish: {
		MsgConverted:        "Converted",
		MsgConvertedLong:    "Format converted",
		MsgNoChange:         "Cannot convert or already in target format",
		MsgHint:             "Hint",
		MsgFailed:           "Action failed",
		MsgUnavailable:      "This action does not apply to the selection",
		MsgBase64Decoded:    "Base64 decoded",
		MsgBase64Encoded:    "Base64 encoded",
		MsgHashDone:         "Hashes calculated",
		MsgJSONCompacted:    "JSON compacted",
		MsgJSONFormatted:    "JSON formatted",
		MsgJSONInvalid:      "Invalid JSON",
		MsgSlugDone:         "Slug generated",
		MsgSlugEmpty:        "Could not build a valid slug",
		MsgCleanDone:        "Text cleaned",
		MsgCleanNoop:        "Text already satisfies the rules",
		MsgTimestamp:        "Timestamp converted",
		MsgDate:             "Date converted",
		MsgDateSeconds:      "Seconds: %d",
		MsgTimeInvalid:      "Invalid time format",
		MsgWordCount:        "Statistics",
		MsgWordCountBody:    "Characters: %d\nLines: %d",
		MsgRegexFound:       "Extracted",
		MsgRegexFoundBody:   "Found %d result(s)",
		MsgRegexNone:        "No matches",
		MsgRegexNoneBody:    "Pattern: %s",
		MsgRegexInvalid:     "Invalid regular expression",
		MsgRegexNeedCustom:  "Configure a custom regular expression in settings",
		MsgTableFormatted:   "Table formatted",
		MsgTableAligned:     "Table already aligned",
		MsgTableInvalid:     "Could not parse table",
		MsgConfigError:      "Configuration Error",
		MsgAPIError:         "API Request Failed",
		MsgChatReset:        "Conversation Reset",
		MsgChatResetBody:    "The chat history has been cleared.",
		MsgCurrencyNoNumber: "Could not find a valid number in selection.",
		MsgCurrencyPair:     "Currency pair not supported.",
		MsgCurrencyRate:     "1 %s ≈ %s %s",
		MsgLLMNotConfigured: "Please set llm.token in the config file.",
		MsgChatSelection:    "The selected text is \"%s\"",
		MsgTranslation:      "Translation",
	},
}

// T 返回指定语言的提示文本，未知语言回退到默认语言，未知 key 原样返回。
func T(lang Language, key Key, args ...any) string {
	table, ok := catalog[Normalize(lang.Code())]
	if !ok {
		table = catalog[DefaultLanguage]
	}
	text, ok := table[key]
	if !ok {
		text = string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}
