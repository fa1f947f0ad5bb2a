// Package locate resolves the operator's own position through a pluggable
// provider with a bounded wait. Each failure cause gets its own error so
// the dashboard can word the notice precisely.
package locate

import (
	"context"
	"errors"
	"time"

	"fieldtrack/models"
	"fieldtrack/utils"
)

// Geolocation fault taxonomy. ErrTimedOut also covers a caller context
// that expires before the provider answers.
var (
	ErrPermissionDenied = errors.New("geolocation permission denied")
	ErrUnavailable      = errors.New("position unavailable")
	ErrTimedOut         = errors.New("geolocation timed out")
)

// Provider supplies the operator's current position. Implementations wrap
// whatever the host platform offers; tests inject stubs.
type Provider interface {
	CurrentPosition(ctx context.Context) (models.Position, error)
}

// Resolve asks the provider for a fix, waiting at most timeout. The wait
// is always bounded: a zero timeout gets a 5s default.
func Resolve(ctx context.Context, p Provider, timeout time.Duration) (models.Position, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		pos models.Position
		err error
	}
	ch := make(chan result, 1)
	go func() {
		pos, err := p.CurrentPosition(ctx)
		ch <- result{pos, err}
	}()

	select {
	case <-ctx.Done():
		utils.L().Warn("geolocation timed out after %s", timeout)
		return models.Position{}, ErrTimedOut
	case res := <-ch:
		if res.err != nil {
			return models.Position{}, res.err
		}
		return res.pos, nil
	}
}

// NoticeFor maps a geolocation fault to its user-facing notice message.
func NoticeFor(err error) models.Notice {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return models.LocateNotice("Location access was denied. Enable location permissions to see your own position.")
	case errors.Is(err, ErrTimedOut):
		return models.LocateNotice("Locating you took too long. Try again.")
	default:
		return models.LocateNotice("Your position could not be determined.")
	}
}
