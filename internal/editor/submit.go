// Package editor holds the dashboard form controllers. Each editor owns the
// current form snapshot, applies user edits through the form package and
// submits the mapped payload through the API client.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/form"
)

// ErrSubmitInFlight is returned when a submit is started while another one
// for the same form has not finished.
var ErrSubmitInFlight = errors.New("editor: submit already in progress")

// SubmitGuard mirrors the disabled submit button: at most one submission
// runs at a time. It does not lock form state.
type SubmitGuard struct {
	busy atomic.Bool
}

// Busy reports whether a submission is running.
func (g *SubmitGuard) Busy() bool {
	return g.busy.Load()
}

// Run executes fn unless another Run is in progress.
func (g *SubmitGuard) Run(fn func() error) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer g.busy.Store(false)
	return fn()
}

// submit validates payload and sends it. Validation failures are returned
// as form.ValidationErrors without touching the network. Failed sends are
// not retried.
func submit[P, R any](
	ctx context.Context,
	guard *SubmitGuard,
	logger *zap.Logger,
	entity string,
	payload P,
	validate func(P) form.ValidationErrors,
	send func(context.Context, P) (R, error),
) (R, error) {
	var result R
	err := guard.Run(func() error {
		if errs := validate(payload); len(errs) > 0 {
			logger.Debug("submit blocked by validation", zap.String("entity", entity), zap.Int("errors", len(errs)))
			return errs
		}
		res, err := send(ctx, payload)
		if err != nil {
			logger.Warn("submit failed", zap.String("entity", entity), zap.Error(err))
			return fmt.Errorf("save %s: %w", entity, err)
		}
		result = res
		return nil
	})
	return result, err
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
