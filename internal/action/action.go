// Package action 定义选区动作的契约：可用性判断、执行入口，以及宿主提供的能力接口。
package action

import (
	"context"

	"biu-actions/internal/i18n"
)

// Selection 描述用户当前选中的内容。除文本外的字段都是可选的宿主信息。
type Selection struct {
	Text    string
	ScreenX int
	ScreenY int
	App     string
}

// Availability 是可用性判断的结果。ContextMatch 为 true 的动作在工具栏中排在前面。
type Availability struct {
	Available    bool
	ContextMatch bool
}

// Allow 构造只关心是否可用的结果。
func Allow(ok bool) Availability {
	return Availability{Available: ok}
}

// Window 描述一个由宿主渲染的浮动窗口。
type Window struct {
	Title    string
	Body     string
	Width    int
	Height   int
	Floating bool
}

// Host 是动作能调用的全部宿主能力。
type Host interface {
	PasteText(text string) error
	Notify(title, body string)
	OpenURL(url string) error
	ShowWindow(w Window) error
	Config(action, key string) (string, bool)
	Language() i18n.Language
}

// Action 是一个工具栏动作。
type Action interface {
	Name() string
	Title() string
	Category() string
	Available(sel Selection) Availability
	Perform(ctx context.Context, sel Selection, h Host) error
}

const (
	CategoryText         = "text-processing"
	CategoryDevtools     = "devtools"
	CategoryProductivity = "productivity"
	CategoryOnline       = "online-services"
)
