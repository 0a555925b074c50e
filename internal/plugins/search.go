package plugins

import (
	"context"
	"net/url"
	"strings"

	"biu-actions/internal/action"
	"biu-actions/internal/logger"

	"github.com/tidwall/gjson"
)

// DefaultSearchURL 未配置或配置无效时使用。
const DefaultSearchURL = "https://www.google.com/search?q=%s"

// Search 用第一个启用的搜索引擎打开选中文本。
// searchEngines 配置形如 [{"value":"Name|https://host/?q=%s","enabled":true}]。
type Search struct{}

func (Search) Name() string     { return "search" }
func (Search) Title() string    { return "Multi Search" }
func (Search) Category() string { return action.CategoryProductivity }

func (Search) Available(sel action.Selection) action.Availability { return nonBlank(sel) }

func (s Search) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	pattern := searchPattern(action.StringSetting(h, s.Name(), "searchEngines", ""))
	query := strings.ReplaceAll(url.QueryEscape(sel.Text), "+", "%20")
	return h.OpenURL(strings.Replace(pattern, "%s", query, 1))
}

func searchPattern(config string) string {
	if strings.TrimSpace(config) == "" {
		return DefaultSearchURL
	}
	if !gjson.Valid(config) {
		logger.Named("action").WithField("action", "search").Warn("searchEngines is not valid JSON")
		return DefaultSearchURL
	}
	pattern := DefaultSearchURL
	gjson.Parse(config).ForEach(func(_, engine gjson.Result) bool {
		if !engine.Get("enabled").Bool() {
			return true
		}
		value := engine.Get("value").String()
		if value == "" {
			return false
		}
		if parts := strings.Split(value, "|"); len(parts) == 2 {
			pattern = parts[1]
		} else {
			pattern = value
		}
		return false
	})
	return pattern
}
