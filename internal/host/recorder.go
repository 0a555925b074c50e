package host

import (
	"biu-actions/internal/action"
	"biu-actions/internal/i18n"
)

// Notification 是一条记录下来的通知。
type Notification struct {
	Title string
	Body  string
}

// Recorder 在内存中记录动作对宿主的所有调用，供测试与 dry-run 使用。
type Recorder struct {
	Pastes        []string
	Notifications []Notification
	Windows       []action.Window
	URLs          []string
	Settings      map[string]map[string]string
	Lang          i18n.Language
	// PasteErr 非空时 PasteText 返回该错误。
	PasteErr error
}

var _ action.Host = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{Settings: map[string]map[string]string{}, Lang: i18n.LanguageEnglish}
}

// Set 设置某个动作的配置项，返回自身便于链式调用。
func (r *Recorder) Set(name, key, value string) *Recorder {
	if r.Settings == nil {
		r.Settings = map[string]map[string]string{}
	}
	if r.Settings[name] == nil {
		r.Settings[name] = map[string]string{}
	}
	r.Settings[name][key] = value
	return r
}

func (r *Recorder) PasteText(text string) error {
	if r.PasteErr != nil {
		return r.PasteErr
	}
	r.Pastes = append(r.Pastes, text)
	return nil
}

func (r *Recorder) Notify(title, body string) {
	r.Notifications = append(r.Notifications, Notification{Title: title, Body: body})
}

func (r *Recorder) ShowWindow(w action.Window) error {
	r.Windows = append(r.Windows, w)
	return nil
}

func (r *Recorder) OpenURL(url string) error {
	r.URLs = append(r.URLs, url)
	return nil
}

func (r *Recorder) Config(name, key string) (string, bool) {
	v, ok := r.Settings[name][key]
	return v, ok
}

func (r *Recorder) Language() i18n.Language {
	if r.Lang == "" {
		return i18n.DefaultLanguage
	}
	return r.Lang
}

// LastPaste returns the most recent pasted text, or "" if nothing was pasted.
func (r *Recorder) LastPaste() string {
	if len(r.Pastes) == 0 {
		return ""
	}
	return r.Pastes[len(r.Pastes)-1]
}

// LastNotification returns the most recent notification.
func (r *Recorder) LastNotification() Notification {
	if len(r.Notifications) == 0 {
		return Notification{}
	}
	return r.Notifications[len(r.Notifications)-1]
}
