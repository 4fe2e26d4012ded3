package blinker

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/hal/sim"
)

// TestLoadConfigDefaults verifies an empty path yields the built-in
// defaults so the tutorial runs without a settings file.
func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, config.BackendSim, cfg.Backend)
	require.Equal(t, config.DefaultBlinkPeriod, cfg.BlinkPeriod)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestOpenBoardSelection verifies backend dispatch and rejection of
// unknown names.
func TestOpenBoardSelection(t *testing.T) {
	t.Parallel()

	board, err := openBoard(config.Default(), nil)
	require.NoError(t, err)
	require.IsType(t, &sim.Board{}, board)

	cfg := config.Default()
	cfg.Backend = "uart"
	_, err = openBoard(cfg, nil)
	require.Error(t, err)
}

// TestRunWithSimBackend drives the whole wiring end to end: presses
// arrive over the input stream, the service idles until canceled and
// shuts down cleanly.
func TestRunWithSimBackend(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.BlinkPeriod = 10 * time.Millisecond

	path := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	require.NoError(t, config.Save(path, cfg))

	reader, writer := io.Pipe()
	t.Cleanup(func() {
		_ = writer.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())

	errs := make(chan error, 1)

	go func() {
		errs <- Run(ctx, &Options{
			ConfigPath: path,
			Input:      reader,
		})
	}()

	// Start blinking, let a few ticks pass, stop, then shut down.
	_, err := io.WriteString(writer, "1\n")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = io.WriteString(writer, "2\n")
	require.NoError(t, err)

	cancel()

	select {
	case err := <-errs:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

// TestRunRejectsUnknownBackendOverride verifies override validation
// fails fast before any hardware is touched.
func TestRunRejectsUnknownBackendOverride(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{Backend: "spi"})
	require.Error(t, err)
}
