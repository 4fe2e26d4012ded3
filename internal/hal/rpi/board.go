//go:build linux

package rpi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/domain/blink"
	"github.com/oshokin/blink-button/internal/execmode"
	"github.com/oshokin/blink-button/internal/hal"
	"github.com/oshokin/blink-button/internal/logger"
)

// pollInterval is how often the edge-detect registers are sampled.
// The BCM peripheral latches edges in hardware, so polling only bounds
// delivery latency, not detection.
const pollInterval = 10 * time.Millisecond

// Board drives real pins through the Raspberry Pi's memory-mapped GPIO.
// Edge detection is latched by the peripheral and drained by a polling
// goroutine; debouncing is done in software since the BCM hardware has
// none.
type Board struct {
	// led drives the output pin.
	led *ledPin
	// startPin and stopPin are the button inputs.
	startPin, stopPin rpio.Pin
	// debounce is the software debounce period for button edges.
	debounce time.Duration

	// stop terminates the polling goroutine.
	stop context.CancelFunc
	// done is closed once the polling goroutine has exited.
	done chan struct{}
}

// Open maps the GPIO peripheral and configures the three pins.
// The LED starts off.
//
//nolint:ireturn // Symmetric with the non-Linux stub.
func Open(cfg *config.Config) (hal.Board, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("map GPIO memory: %w", err)
	}

	led := rpio.Pin(cfg.LEDLine)
	led.Output()
	led.Low()

	configureButton := func(offset int) rpio.Pin {
		pin := rpio.Pin(offset)
		pin.Input()
		pin.PullUp()
		pin.Detect(rpio.FallEdge)

		return pin
	}

	return &Board{
		led:      &ledPin{pin: led},
		startPin: configureButton(cfg.StartButtonLine),
		stopPin:  configureButton(cfg.StopButtonLine),
		debounce: cfg.DebouncePeriod,
	}, nil
}

// LED returns the output pin driver.
func (b *Board) LED() hal.LED {
	return b.led
}

// Watch starts the polling goroutine that drains latched edges and
// delivers debounced presses in interrupt mode.
func (b *Board) Watch(ctx context.Context, handler hal.ButtonHandler) error {
	pollCtx, cancel := context.WithCancel(execmode.NewContext(ctx, execmode.Interrupt))
	b.stop = cancel
	b.done = make(chan struct{})

	go b.poll(pollCtx, handler)

	return nil
}

// poll drains the hardware edge latches at pollInterval, suppressing
// edges that fall inside the debounce window of the previous press on
// the same pin.
func (b *Board) poll(ctx context.Context, handler hal.ButtonHandler) {
	defer close(b.done)

	var lastStart, lastStop time.Time

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if b.startPin.EdgeDetected() && now.Sub(lastStart) >= b.debounce {
				lastStart = now

				logger.Debugf(ctx, "Edge on pin %d (start button)", b.startPin)
				handler(ctx, blink.ButtonStart)
			}

			if b.stopPin.EdgeDetected() && now.Sub(lastStop) >= b.debounce {
				lastStop = now

				logger.Debugf(ctx, "Edge on pin %d (stop button)", b.stopPin)
				handler(ctx, blink.ButtonStop)
			}
		}
	}
}

// Close stops polling, disables edge detection, turns the LED off and
// unmaps the peripheral.
func (b *Board) Close() error {
	if b.stop != nil {
		b.stop()
		<-b.done
	}

	b.startPin.Detect(rpio.NoEdge)
	b.stopPin.Detect(rpio.NoEdge)

	offErr := b.led.Off()

	if err := rpio.Close(); err != nil {
		return fmt.Errorf("unmap GPIO memory: %w", err)
	}

	return offErr
}

// ledPin drives the LED output pin.
type ledPin struct {
	// mu serializes toggles against Off.
	mu sync.Mutex
	// pin is the configured output.
	pin rpio.Pin
}

// Toggle inverts the driven level.
func (l *ledPin) Toggle() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pin.Toggle()

	return nil
}

// Off drives the pin low.
func (l *ledPin) Off() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pin.Low()

	return nil
}
