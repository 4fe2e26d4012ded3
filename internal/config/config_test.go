package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, defaulting, and line-conflict detection.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty settings get full defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, BackendSim, cfg.Backend)
	require.Equal(t, DefaultBlinkPeriod, cfg.BlinkPeriod)
	require.Equal(t, DefaultDebouncePeriod, cfg.DebouncePeriod)
	require.Equal(t, DefaultChip, cfg.Chip)

	// Unknown backend.
	cfg = &Config{Backend: "i2c"}
	require.Error(t, Validate(cfg))

	// Buttons sharing a line.
	cfg = Default()
	cfg.StopButtonLine = cfg.StartButtonLine
	require.Error(t, Validate(cfg))

	// LED sharing a button line.
	cfg = Default()
	cfg.LEDLine = cfg.StopButtonLine
	require.Error(t, Validate(cfg))

	// Negative offsets.
	cfg = Default()
	cfg.LEDLine = -1
	require.Error(t, Validate(cfg))

	// Nil settings.
	require.Error(t, Validate(nil))
}

// TestDefault verifies the out-of-the-box settings match the tutorial values.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))
	require.Equal(t, BackendSim, cfg.Backend)
	require.Equal(t, 500*time.Millisecond, cfg.BlinkPeriod)
	require.Equal(t, 17, cfg.LEDLine)
	require.Equal(t, 13, cfg.StartButtonLine)
	require.Equal(t, 14, cfg.StopButtonLine)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := Default()
	cfg.Backend = BackendGPIOCdev
	cfg.BlinkPeriod = 250 * time.Millisecond

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Backend, loaded.Backend)
	require.Equal(t, cfg.BlinkPeriod, loaded.BlinkPeriod)
	require.Equal(t, cfg.LEDLine, loaded.LEDLine)
}

// TestLoadMissingFile verifies a clear error for absent settings files.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
