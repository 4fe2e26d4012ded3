package blinker

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/hal"
	"github.com/oshokin/blink-button/internal/hal/chardev"
	"github.com/oshokin/blink-button/internal/hal/rpi"
	"github.com/oshokin/blink-button/internal/hal/sim"
	"github.com/oshokin/blink-button/internal/logger"
	"github.com/oshokin/blink-button/internal/timer"
)

// Options controls the blink-button process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file. Empty
	// means built-in defaults (simulator backend, 500 ms period).
	ConfigPath string
	// Backend overrides the backend selected by the configuration.
	Backend string
	// Input feeds presses to the simulator backend, one per line
	// (usually stdin). Ignored by hardware backends.
	Input io.Reader
}

// Run wires the board, timer and dispatch together, logs the startup
// banner and idles until the context is canceled. This is the Go analog
// of the tutorial's init-then-WFI main: all real work after setup
// happens on event-delivery goroutines.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "blink-button")

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Apply the backend override from the command line, if any.
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
		if err = config.Validate(cfg); err != nil {
			return err
		}
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	board, err := openBoard(cfg, opts.Input)
	if err != nil {
		return fmt.Errorf("open %s board: %w", cfg.Backend, err)
	}

	blinkTimer := timer.NewRepeating()
	control := newController(blinkTimer, board.LED(), cfg.BlinkPeriod, nil)
	dispatch := newDispatcher(control, nil)

	if err = board.Watch(ctx, dispatch.HandleButton); err != nil {
		_ = board.Close()

		return fmt.Errorf("watch buttons: %w", err)
	}

	logger.InfoKV(ctx, "Board ready",
		"backend", cfg.Backend,
		"blink_period", cfg.BlinkPeriod,
		"led_line", cfg.LEDLine,
		"start_button_line", cfg.StartButtonLine,
		"stop_button_line", cfg.StopButtonLine,
	)
	logger.Info(ctx, msgStarted)

	// Idle until signaled; button and timer events do all the work.
	<-ctx.Done()

	logger.Info(ctx, "Shutting down")

	// The run context is already canceled, so shut down on a fresh one.
	shutdownCtx := context.WithoutCancel(ctx)

	if err = blinkTimer.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("stop blink timer: %w", err)
	}

	if err = board.Close(); err != nil {
		return fmt.Errorf("close board: %w", err)
	}

	return nil
}

// loadConfig returns built-in defaults when no path is given, so the
// tutorial runs out of the box without a settings file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// openBoard constructs the configured HAL backend.
//
//nolint:ireturn // The backend is chosen at runtime.
func openBoard(cfg *config.Config, input io.Reader) (hal.Board, error) {
	switch cfg.Backend {
	case config.BackendSim:
		var opts []sim.Option
		if input != nil {
			opts = append(opts, sim.WithInput(input))
		}

		return sim.New(opts...), nil
	case config.BackendGPIOCdev:
		return chardev.Open(cfg)
	case config.BackendRPIO:
		return rpi.Open(cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
