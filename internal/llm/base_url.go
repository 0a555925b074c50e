package llm

import (
	"net/url"
	"regexp"
	"strings"
)

var endpointSuffixes = []string{"/chat/completions", "/completions", "/responses"}

var versionSegment = regexp.MustCompile(`/v\d+$`)

// normalizeBaseURL 接受用户粘贴的完整接口地址或根地址，统一为 SDK 需要的 base url。
// 已带版本段（/v1、/api/v3 等）的地址保持不变，否则补 /v1。
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	p := strings.TrimRight(parsed.Path, "/")
	for _, suffix := range endpointSuffixes {
		if strings.HasSuffix(p, suffix) {
			p = strings.TrimRight(strings.TrimSuffix(p, suffix), "/")
			break
		}
	}
	for strings.Contains(p, "/v1/v1") {
		p = strings.ReplaceAll(p, "/v1/v1", "/v1")
	}
	if !versionSegment.MatchString(p) {
		p += "/v1"
	}
	parsed.Path = p
	return parsed.String()
}
