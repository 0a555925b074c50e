package tui

import (
	"biu-actions/internal/action"
	"biu-actions/internal/host"
)

// captureHost 把通知和窗口留给工具栏渲染，其余能力交给底层宿主。
type captureHost struct {
	action.Host
	notifications []host.Notification
	windows       []action.Window
}

func (c *captureHost) Notify(title, body string) {
	c.notifications = append(c.notifications, host.Notification{Title: title, Body: body})
}

func (c *captureHost) ShowWindow(w action.Window) error {
	c.windows = append(c.windows, w)
	return nil
}
