package blinker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/blink-button/internal/domain/blink"
	"github.com/oshokin/blink-button/internal/execmode"
	"github.com/oshokin/blink-button/internal/hal"
	"github.com/oshokin/blink-button/internal/logger"
	"github.com/oshokin/blink-button/internal/timer"
)

// Diagnostic lines. The texts are fixed by the tutorial and asserted by tests.
const (
	msgStarted             = "Scheduler tutorial example started."
	msgStartToggling       = "Start toggling LED 1."
	msgStopToggling        = "Stop toggling LED 1."
	msgButtonThreadMode    = "Button handler is executing in thread/main mode."
	msgButtonInterruptMode = "Button handler is executing in interrupt handler mode."
	msgTimerThreadMode     = "Timeout handler is executing in thread/main mode."
	msgTimerInterruptMode  = "Timeout handler is executing in interrupt handler mode."
)

// Timer is the periodic callback collaborator driving the LED toggle.
type Timer interface {
	Start(ctx context.Context, period time.Duration, tick timer.TickFunc) error
	Stop(ctx context.Context) error
}

// AbortFunc is the fatal-error policy for collaborator failures raised
// inside event handlers, where there is no caller to return an error to.
// The default policy aborts the process; tests inject a recorder.
type AbortFunc func(ctx context.Context, err error)

// defaultAbort halts the program at the point of detection. Collaborator
// failures are not recoverable, so there is no retry or cleanup phase.
func defaultAbort(ctx context.Context, err error) {
	logger.Fatalf(ctx, "Collaborator failure: %v", err)
}

// controller owns the blink state and drives the LED on each timer tick.
// It is unexported to keep the event sources decoupled from the
// implementation.
type controller struct {
	// timer schedules the periodic toggle callback.
	timer Timer
	// led is the output driven on each tick.
	led hal.LED
	// period is the fixed toggle interval.
	period time.Duration
	// abort is the fatal-error policy for tick-time failures.
	abort AbortFunc

	// mu protects state.
	mu sync.Mutex
	// state is the current blink state, Stopped at power-on.
	state blink.State
}

// newController creates a stopped controller. A nil abort installs the
// process-aborting default.
func newController(t Timer, led hal.LED, period time.Duration, abort AbortFunc) *controller {
	if abort == nil {
		abort = defaultAbort
	}

	return &controller{
		timer:  t,
		led:    led,
		period: period,
		abort:  abort,
	}
}

// Start schedules the toggle callback at the fixed period and moves the
// state to Running. Starting while already running keeps the existing
// schedule, so the observable period never changes.
func (c *controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.timer.Start(ctx, c.period, c.HandleTick); err != nil {
		return fmt.Errorf("start blink timer: %w", err)
	}

	c.state = blink.Running

	return nil
}

// Stop cancels the schedule and moves the state to Stopped. No tick is
// delivered after Stop returns. Stopping while stopped is a no-op.
func (c *controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.timer.Stop(ctx); err != nil {
		return fmt.Errorf("stop blink timer: %w", err)
	}

	c.state = blink.Stopped

	return nil
}

// State reports the current blink state.
func (c *controller) State() blink.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// HandleTick is the periodic callback: it toggles the LED and logs the
// execution mode of the delivery. It must not block, as it may run on
// an interrupt-like delivery goroutine.
func (c *controller) HandleTick(ctx context.Context) {
	if err := c.led.Toggle(); err != nil {
		c.abort(ctx, fmt.Errorf("toggle LED: %w", err))

		return
	}

	if execmode.FromContext(ctx) == execmode.Interrupt {
		logger.Info(ctx, msgTimerInterruptMode)
	} else {
		logger.Info(ctx, msgTimerThreadMode)
	}
}

// dispatcher translates button identifiers into controller actions and
// logs each dispatch together with its execution mode.
type dispatcher struct {
	// control receives the start/stop commands.
	control *controller
	// abort is the fatal-error policy for command failures.
	abort AbortFunc
}

// newDispatcher wires a dispatcher to the controller. A nil abort
// installs the process-aborting default.
func newDispatcher(control *controller, abort AbortFunc) *dispatcher {
	if abort == nil {
		abort = defaultAbort
	}

	return &dispatcher{
		control: control,
		abort:   abort,
	}
}

// HandleButton handles a single debounced press. Recognized buttons log
// their action line first, then the command runs, then the execution
// mode line is logged. Unrecognized buttons are ignored with no
// observable side effect. Safe to call from any delivery goroutine.
func (d *dispatcher) HandleButton(ctx context.Context, button blink.Button) {
	switch button {
	case blink.ButtonStart:
		logger.Info(ctx, msgStartToggling)

		if err := d.control.Start(ctx); err != nil {
			d.abort(ctx, err)

			return
		}
	case blink.ButtonStop:
		logger.Info(ctx, msgStopToggling)

		if err := d.control.Stop(ctx); err != nil {
			d.abort(ctx, err)

			return
		}
	default:
		return
	}

	if execmode.FromContext(ctx) == execmode.Interrupt {
		logger.Info(ctx, msgButtonInterruptMode)
	} else {
		logger.Info(ctx, msgButtonThreadMode)
	}
}
