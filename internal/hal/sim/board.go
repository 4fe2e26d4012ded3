package sim

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/oshokin/blink-button/internal/domain/blink"
	"github.com/oshokin/blink-button/internal/execmode"
	"github.com/oshokin/blink-button/internal/hal"
	"github.com/oshokin/blink-button/internal/logger"
)

// Option customizes the simulated board.
type Option func(*Board)

// WithInput attaches a reader whose lines are interpreted as button
// presses: "1" (or "start") presses the start button, "2" (or "stop")
// the stop button. Used to drive the tutorial from stdin.
func WithInput(r io.Reader) Option {
	return func(b *Board) {
		b.input = r
	}
}

// WithMode sets the execution mode the board tags its deliveries with.
// The simulator defaults to thread/main mode, matching the tutorial's
// deferred-dispatch stage; real GPIO backends deliver in interrupt mode.
func WithMode(m execmode.Mode) Option {
	return func(b *Board) {
		b.mode = m
	}
}

// Board is an in-process stand-in for the dev board: presses are
// injected programmatically (or read from an input stream) and the LED
// level is recorded instead of driving a pin.
type Board struct {
	// led records the simulated output level.
	led *LED
	// input optionally feeds presses from a stream, one per line.
	input io.Reader
	// mode tags delivered events; defaults to thread/main.
	mode execmode.Mode

	// mu protects handler and closed.
	mu sync.Mutex
	// handler receives button events once Watch has been called.
	handler hal.ButtonHandler
	// closed suppresses deliveries after Close.
	closed bool
}

// New returns a simulated board with the LED off and no watcher armed.
func New(opts ...Option) *Board {
	b := &Board{
		led:  new(LED),
		mode: execmode.Thread,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// LED returns the recorded LED output.
func (b *Board) LED() hal.LED {
	return b.led
}

// Watch arms the handler and, when an input stream is attached, starts
// translating its lines into presses until the stream ends or the
// context is canceled.
func (b *Board) Watch(ctx context.Context, handler hal.ButtonHandler) error {
	b.mu.Lock()
	b.handler = handler
	b.mu.Unlock()

	if b.input == nil {
		return nil
	}

	go b.feed(ctx)

	return nil
}

// feed reads press commands line by line from the attached input.
func (b *Board) feed(ctx context.Context) {
	scanner := bufio.NewScanner(b.input)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		var button blink.Button

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "1", "start":
			button = blink.ButtonStart
		case "2", "stop":
			button = blink.ButtonStop
		case "":
			continue
		default:
			logger.Debugf(ctx, "Ignoring unrecognized input line")

			continue
		}

		b.Press(ctx, button)
	}
}

// Press delivers a single debounced press to the armed handler,
// tagged with the board's execution mode. Presses before Watch or
// after Close are dropped, as a real event source would drop edges
// while the interrupt is unarmed.
func (b *Board) Press(ctx context.Context, button blink.Button) {
	b.mu.Lock()
	handler := b.handler
	if b.closed {
		handler = nil
	}
	b.mu.Unlock()

	if handler == nil {
		return
	}

	handler(execmode.NewContext(ctx, b.mode), button)
}

// Close disarms the handler and turns the LED off.
func (b *Board) Close() error {
	b.mu.Lock()
	b.closed = true
	b.handler = nil
	b.mu.Unlock()

	return b.led.Off()
}

// LED records the logical level of the simulated output pin.
type LED struct {
	// mu protects level and toggles.
	mu sync.Mutex
	// level is the current logical level, false = off.
	level bool
	// toggles counts Toggle calls for liveness assertions.
	toggles int
}

// Toggle inverts the recorded level.
func (l *LED) Toggle() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = !l.level
	l.toggles++

	return nil
}

// Off forces the recorded level low.
func (l *LED) Off() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = false

	return nil
}

// Level reports the current logical level.
func (l *LED) Level() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

// Toggles reports how many times the LED has been toggled.
func (l *LED) Toggles() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.toggles
}
