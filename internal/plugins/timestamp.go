package plugins

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

// DisplayLayout 是时间戳转换结果的展示格式。
const DisplayLayout = "2006-01-02 15:04:05"

var digitsOnly = regexp.MustCompile(`^\d+$`)

// dateLayouts 是可识别的日期写法，不含时区的按 Location 解析。
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// Timestamp 在 Unix 时间戳与本地时间之间互转。10 位及以下视为秒，更长视为毫秒。
type Timestamp struct {
	Location *time.Location
}

func (t *Timestamp) Name() string     { return "timestamp" }
func (t *Timestamp) Title() string    { return "Timestamp Converter" }
func (t *Timestamp) Category() string { return action.CategoryDevtools }

func (t *Timestamp) loc() *time.Location {
	if t.Location != nil {
		return t.Location
	}
	return time.Local
}

func (t *Timestamp) Available(sel action.Selection) action.Availability {
	text := strings.TrimSpace(sel.Text)
	if text == "" {
		return action.Allow(false)
	}
	if digitsOnly.MatchString(text) {
		return action.Allow(true)
	}
	_, ok := parseDate(text, t.loc())
	return action.Allow(ok)
}

func (t *Timestamp) Perform(_ context.Context, sel action.Selection, h action.Host) error {
	text := strings.TrimSpace(sel.Text)
	if digitsOnly.MatchString(text) {
		if ts, ok := fromUnix(text); ok {
			local := ts.In(t.loc()).Format(DisplayLayout)
			if err := h.PasteText(local); err != nil {
				return err
			}
			notify(h, i18n.MsgTimestamp, local)
			return nil
		}
	}
	date, ok := parseDate(text, t.loc())
	if !ok {
		notify(h, i18n.MsgFailed, msg(h, i18n.MsgTimeInvalid))
		return nil
	}
	secs := date.Unix()
	if err := h.PasteText(strconv.FormatInt(secs, 10)); err != nil {
		return err
	}
	notify(h, i18n.MsgDate, msg(h, i18n.MsgDateSeconds, secs))
	return nil
}

func fromUnix(digits string) (time.Time, bool) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	if len(digits) <= 10 {
		return time.Unix(n, 0), true
	}
	return time.UnixMilli(n), true
}

func parseDate(text string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, text, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
