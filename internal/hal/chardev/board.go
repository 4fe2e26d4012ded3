//go:build linux

package chardev

import (
	"context"
	"fmt"
	"sync"
	"time"

	cdev "github.com/warthog618/go-gpiocdev"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/domain/blink"
	"github.com/oshokin/blink-button/internal/execmode"
	"github.com/oshokin/blink-button/internal/hal"
	"github.com/oshokin/blink-button/internal/logger"
)

// Board drives real pins through the Linux GPIO character device.
// Button lines are requested with pull-up bias, falling-edge detection
// and kernel debouncing, matching the tutorial's electrical setup.
type Board struct {
	// chip is the character device name, e.g. "gpiochip0".
	chip string
	// startOffset and stopOffset are the button line offsets.
	startOffset, stopOffset int
	// debounce is the kernel debounce period for button lines.
	debounce time.Duration
	// led drives the output line.
	led *ledLine

	// mu protects the requested button lines.
	mu sync.Mutex
	// buttons are the claimed input lines, nil until Watch.
	buttons []*cdev.Line
}

// Open claims the LED output line and prepares the button mapping.
// The LED starts off.
//
//nolint:ireturn // Symmetric with the non-Linux stub.
func Open(cfg *config.Config) (hal.Board, error) {
	line, err := cdev.RequestLine(cfg.Chip, cfg.LEDLine, cdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request LED line %s:%d: %w", cfg.Chip, cfg.LEDLine, err)
	}

	return &Board{
		chip:        cfg.Chip,
		startOffset: cfg.StartButtonLine,
		stopOffset:  cfg.StopButtonLine,
		debounce:    cfg.DebouncePeriod,
		led:         &ledLine{line: line},
	}, nil
}

// LED returns the output line driver.
func (b *Board) LED() hal.LED {
	return b.led
}

// Watch claims both button lines and begins delivering debounced
// falling-edge events to the handler. Events arrive on the character
// device's event goroutine and are tagged as interrupt-mode deliveries.
func (b *Board) Watch(ctx context.Context, handler hal.ButtonHandler) error {
	eventCtx := execmode.NewContext(ctx, execmode.Interrupt)

	request := func(offset int, button blink.Button) (*cdev.Line, error) {
		return cdev.RequestLine(b.chip, offset,
			cdev.WithPullUp,
			cdev.WithFallingEdge,
			cdev.WithDebounce(b.debounce),
			cdev.WithEventHandler(func(event cdev.LineEvent) {
				if event.Type != cdev.LineEventFallingEdge {
					return
				}

				logger.Debugf(eventCtx, "Edge on %s:%d (%s button)", b.chip, offset, button)
				handler(eventCtx, button)
			}))
	}

	startLine, err := request(b.startOffset, blink.ButtonStart)
	if err != nil {
		return fmt.Errorf("request start button line %s:%d: %w", b.chip, b.startOffset, err)
	}

	stopLine, err := request(b.stopOffset, blink.ButtonStop)
	if err != nil {
		_ = startLine.Close()

		return fmt.Errorf("request stop button line %s:%d: %w", b.chip, b.stopOffset, err)
	}

	b.mu.Lock()
	b.buttons = []*cdev.Line{startLine, stopLine}
	b.mu.Unlock()

	return nil
}

// Close releases the button lines, turns the LED off and reverts it to
// an input so the pin is not left driven.
func (b *Board) Close() error {
	b.mu.Lock()
	buttons := b.buttons
	b.buttons = nil
	b.mu.Unlock()

	for _, line := range buttons {
		_ = line.Close()
	}

	return b.led.release()
}

// ledLine drives the LED output line, tracking the logical level
// locally since output values cannot be read back on every kernel.
type ledLine struct {
	// mu protects value against concurrent toggles.
	mu sync.Mutex
	// line is the claimed output line.
	line *cdev.Line
	// value is the currently driven level, 0 = off.
	value int
}

// Toggle inverts the driven level.
func (l *ledLine) Toggle() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.value ^= 1
	if err := l.line.SetValue(l.value); err != nil {
		return fmt.Errorf("set LED line: %w", err)
	}

	return nil
}

// Off drives the line low.
func (l *ledLine) Off() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.value = 0
	if err := l.line.SetValue(0); err != nil {
		return fmt.Errorf("set LED line: %w", err)
	}

	return nil
}

// release turns the LED off, reverts the line to input and closes it.
func (l *ledLine) release() error {
	if err := l.Off(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.line.Reconfigure(cdev.AsInput)

	if err := l.line.Close(); err != nil {
		return fmt.Errorf("close LED line: %w", err)
	}

	return nil
}
