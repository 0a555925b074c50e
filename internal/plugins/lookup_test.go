package plugins

import (
	"testing"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/host"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp(t *testing.T) {
	ts := &Timestamp{Location: time.UTC}
	assert.True(t, ts.Available(action.Selection{Text: " 1700000000 "}).Available)
	assert.True(t, ts.Available(action.Selection{Text: "2024-01-02"}).Available)
	assert.False(t, ts.Available(action.Selection{Text: "hello"}).Available)
	assert.False(t, ts.Available(action.Selection{Text: "  "}).Available)

	cases := []struct {
		in    string
		want  string
		title string
	}{
		{in: "1700000000", want: "2023-11-14 22:13:20", title: "Timestamp converted"},
		{in: "1700000000000", want: "2023-11-14 22:13:20", title: "Timestamp converted"},
		{in: "0", want: "1970-01-01 00:00:00", title: "Timestamp converted"},
		{in: "2024-01-02", want: "1704153600", title: "Date converted"},
		{in: "2024-01-02T00:00:00+08:00", want: "1704124800", title: "Date converted"},
	}
	for _, tc := range cases {
		rec := host.NewRecorder()
		perform(t, ts, tc.in, rec)
		assert.Equal(t, tc.want, rec.LastPaste(), "input %q", tc.in)
		assert.Equal(t, tc.title, rec.LastNotification().Title, "input %q", tc.in)
	}

	rec := host.NewRecorder()
	perform(t, ts, "2024-01-02", rec)
	assert.Equal(t, "Seconds: 1704153600", rec.LastNotification().Body)

	rec = host.NewRecorder()
	perform(t, ts, "not a date", rec)
	assert.Empty(t, rec.Pastes)
	assert.Equal(t, "Invalid time format", rec.LastNotification().Body)
}

func TestRegex(t *testing.T) {
	text := "mail a@b.com or c@d.org, again a@b.com; ip 10.0.0.1 see https://x.io/p?q=1 on 2024-05-06 call 13812345678"
	cases := []struct {
		name     string
		settings map[string]string
		want     string
		body     string
	}{
		{name: "default email", want: "a@b.com\nc@d.org", body: "Found 2 result(s)"},
		{name: "ipv4 tab separated", settings: map[string]string{"patternType": "IPv4", "separator": `\t`}, want: "10.0.0.1", body: "Found 1 result(s)"},
		{name: "url", settings: map[string]string{"patternType": "URL"}, want: "https://x.io/p?q=1", body: "Found 1 result(s)"},
		{name: "date", settings: map[string]string{"patternType": "Date (YYYY-MM-DD)"}, want: "2024-05-06", body: "Found 1 result(s)"},
		{name: "phone", settings: map[string]string{"patternType": "Phone (CN)"}, want: "13812345678", body: "Found 1 result(s)"},
		{name: "custom", settings: map[string]string{"patternType": "Custom", "customRegex": `\b[a-z]{4}\b`, "separator": ", "}, want: "mail, call", body: "Found 2 result(s)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := host.NewRecorder()
			for k, v := range tc.settings {
				rec.Set("regex", k, v)
			}
			perform(t, Regex{}, text, rec)
			assert.Equal(t, tc.want, rec.LastPaste())
			assert.Equal(t, tc.body, rec.LastNotification().Body)
		})
	}
}

func TestRegex_Failures(t *testing.T) {
	rec := host.NewRecorder().Set("regex", "patternType", "Custom")
	perform(t, Regex{}, "x", rec)
	assert.Equal(t, "Configure a custom regular expression in settings", rec.LastNotification().Body)

	rec = host.NewRecorder().Set("regex", "patternType", "Custom").Set("regex", "customRegex", "(")
	perform(t, Regex{}, "x", rec)
	assert.Equal(t, "Invalid regular expression", rec.LastNotification().Body)

	rec = host.NewRecorder().Set("regex", "patternType", "IPv4")
	perform(t, Regex{}, "nothing here", rec)
	assert.Empty(t, rec.Pastes)
	assert.Equal(t, host.Notification{Title: "No matches", Body: "Pattern: IPv4"}, rec.LastNotification())
}

func TestSearch(t *testing.T) {
	rec := host.NewRecorder()
	perform(t, Search{}, "hello world&more", rec)
	assert.Equal(t, []string{"https://www.google.com/search?q=hello%20world%26more"}, rec.URLs)

	engines := `[{"value":"Bing|https://www.bing.com/search?q=%s","enabled":false},` +
		`{"value":"DuckDuckGo|https://duckduckgo.com/?q=%s","enabled":true}]`
	rec = host.NewRecorder().Set("search", "searchEngines", engines)
	perform(t, Search{}, "go", rec)
	assert.Equal(t, []string{"https://duckduckgo.com/?q=go"}, rec.URLs)

	rec = host.NewRecorder().Set("search", "searchEngines", `[{"value":"https://s.example/?k=%s","enabled":true}]`)
	perform(t, Search{}, "x", rec)
	assert.Equal(t, []string{"https://s.example/?k=x"}, rec.URLs)

	rec = host.NewRecorder().Set("search", "searchEngines", "not json")
	perform(t, Search{}, "x", rec)
	assert.Equal(t, []string{"https://www.google.com/search?q=x"}, rec.URLs)
}
