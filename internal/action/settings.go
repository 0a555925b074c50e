package action

import (
	"strconv"
	"strings"
)

// StringSetting 读取动作配置，空值返回默认值。
func StringSetting(h Host, action, key, def string) string {
	if v, ok := h.Config(action, key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// BoolSetting 读取布尔配置，接受 "true"/"false" 等 strconv 能解析的写法。
func BoolSetting(h Host, action, key string, def bool) bool {
	v, ok := h.Config(action, key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// IntSetting 读取整数配置，无法解析时返回默认值。
func IntSetting(h Host, action, key string, def int) int {
	v, ok := h.Config(action, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}
