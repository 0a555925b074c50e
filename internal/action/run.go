package action

import (
	"context"
	"errors"
	"fmt"

	"biu-actions/internal/i18n"
	"biu-actions/internal/logger"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnavailable   = errors.New("action not available for selection")
)

// Run 解析并执行一个动作。失败时会通过宿主通知用户，并把错误返回给调用方。
func Run(ctx context.Context, reg *Registry, name string, sel Selection, h Host) error {
	log := logger.Named("action").WithField("action", name)
	a, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if !a.Available(sel).Available {
		log.Info("skipped: not available")
		h.Notify(i18n.T(h.Language(), i18n.MsgHint), i18n.T(h.Language(), i18n.MsgUnavailable))
		return fmt.Errorf("%w: %s", ErrUnavailable, name)
	}
	log.WithField("chars", len([]rune(sel.Text))).Debug("perform")
	if err := a.Perform(ctx, sel, h); err != nil {
		log.Warnf("perform failed: %v", err)
		h.Notify(i18n.T(h.Language(), i18n.MsgFailed), err.Error())
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Info("performed")
	return nil
}
