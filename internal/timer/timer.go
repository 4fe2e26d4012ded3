package timer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oshokin/blink-button/internal/execmode"
)

// TickFunc is invoked on every timer tick. The context it receives is
// tagged with the interrupt execution mode, since ticks are delivered
// from the timer goroutine rather than the main control path.
type TickFunc func(ctx context.Context)

var (
	// ErrInvalidPeriod is returned when the tick period is not positive.
	ErrInvalidPeriod = errors.New("tick period must be positive")
	// ErrNilTickFunc is returned when no tick callback is provided.
	ErrNilTickFunc = errors.New("tick callback is required")
)

// Repeating invokes a callback at a fixed period until stopped.
//
// Start and Stop are idempotent: starting a running timer keeps the
// existing schedule (period and phase unchanged), stopping a stopped
// timer is a no-op. This mirrors the duplicate-press tolerance the
// control logic relies on.
type Repeating struct {
	// mu protects the running-state fields below.
	mu sync.Mutex
	// cancel stops the tick goroutine; nil while stopped.
	cancel context.CancelFunc
	// done is closed once the tick goroutine has exited.
	done chan struct{}
}

// NewRepeating returns a stopped repeating timer.
func NewRepeating() *Repeating {
	return &Repeating{}
}

// Start begins invoking tick every period. If the timer is already
// running the call succeeds without altering the existing schedule.
// The tick goroutine inherits the provided context, so canceling it
// also stops the timer.
func (t *Repeating) Start(ctx context.Context, period time.Duration, tick TickFunc) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}

	if tick == nil {
		return ErrNilTickFunc
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		// Already running, keep the current schedule.
		return nil
	}

	runCtx, cancel := context.WithCancel(execmode.NewContext(ctx, execmode.Interrupt))
	done := make(chan struct{})

	t.cancel = cancel
	t.done = done

	go func() {
		defer close(done)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				tick(runCtx)
			}
		}
	}()

	return nil
}

// Stop cancels the schedule and waits for the tick goroutine to exit,
// so no tick is delivered after Stop returns. A tick already in flight
// completes first. Stopping a stopped timer returns nil.
func (t *Repeating) Stop(_ context.Context) error {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	<-done

	return nil
}

// Running reports whether the timer currently has a schedule.
func (t *Repeating) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancel != nil
}
