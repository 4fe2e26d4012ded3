package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds hardware mapping and timing parameters for the blink tutorial.
type Config struct {
	// Backend selects the GPIO implementation: "sim", "gpiocdev" or "rpio".
	Backend string `yaml:"backend"`
	// Chip is the GPIO character device name used by the gpiocdev backend.
	Chip string `yaml:"chip"`
	// LEDLine is the line offset of the LED output.
	LEDLine int `yaml:"led_line"`
	// StartButtonLine is the line offset of the start button input.
	StartButtonLine int `yaml:"start_button_line"`
	// StopButtonLine is the line offset of the stop button input.
	StopButtonLine int `yaml:"stop_button_line"`
	// BlinkPeriod is the interval between LED toggles while running.
	BlinkPeriod time.Duration `yaml:"blink_period"`
	// DebouncePeriod filters mechanical switch bounce on the button lines.
	DebouncePeriod time.Duration `yaml:"debounce_period"`
	// LogLevel is the minimum diagnostic level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Backend names accepted in the configuration.
const (
	// BackendSim runs without hardware: presses come from stdin or tests.
	BackendSim = "sim"
	// BackendGPIOCdev uses the Linux GPIO character device.
	BackendGPIOCdev = "gpiocdev"
	// BackendRPIO uses memory-mapped GPIO on the Raspberry Pi.
	BackendRPIO = "rpio"
)

const (
	// DefaultConfigFilename is the default filename for tutorial settings.
	DefaultConfigFilename = "blink-button-settings.yaml"

	// DefaultChip is the GPIO character device most boards expose first.
	DefaultChip = "gpiochip0"

	// Default line offsets follow the nRF52 DK mapping the tutorial was
	// written for: LED1 on P0.17, Button1 on P0.13, Button2 on P0.14.
	DefaultLEDLine         = 17
	DefaultStartButtonLine = 13
	DefaultStopButtonLine  = 14

	// DefaultBlinkPeriod is the tutorial's LED toggle interval.
	DefaultBlinkPeriod = 500 * time.Millisecond

	// DefaultDebouncePeriod filters switch bounce on button lines.
	DefaultDebouncePeriod = 50 * time.Millisecond

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errSameButtonLines is returned when both buttons map to one line.
	errSameButtonLines = errors.New("start and stop buttons must use distinct lines")
	// errLEDOnButtonLine is returned when the LED shares a button line.
	errLEDOnButtonLine = errors.New("LED line must differ from button lines")
)

// Default returns the tutorial's out-of-the-box settings: the simulator
// backend with the nRF52 DK pin mapping and a 500 ms blink period.
func Default() *Config {
	return &Config{
		Backend:         BackendSim,
		Chip:            DefaultChip,
		LEDLine:         DefaultLEDLine,
		StartButtonLine: DefaultStartButtonLine,
		StopButtonLine:  DefaultStopButtonLine,
		BlinkPeriod:     DefaultBlinkPeriod,
		DebouncePeriod:  DefaultDebouncePeriod,
		LogLevel:        "info",
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Default to the simulator so the tutorial runs without hardware.
	if cfg.Backend == "" {
		cfg.Backend = BackendSim
	}

	switch cfg.Backend {
	case BackendSim, BackendGPIOCdev, BackendRPIO:
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	if cfg.Chip == "" {
		cfg.Chip = DefaultChip
	}

	if cfg.LEDLine < 0 || cfg.StartButtonLine < 0 || cfg.StopButtonLine < 0 {
		return fmt.Errorf("line offsets must be non-negative: led=%d start=%d stop=%d",
			cfg.LEDLine, cfg.StartButtonLine, cfg.StopButtonLine)
	}

	if cfg.StartButtonLine == cfg.StopButtonLine {
		return errSameButtonLines
	}

	if cfg.LEDLine == cfg.StartButtonLine || cfg.LEDLine == cfg.StopButtonLine {
		return errLEDOnButtonLine
	}

	// Set default periods if not specified.
	if cfg.BlinkPeriod <= 0 {
		cfg.BlinkPeriod = DefaultBlinkPeriod
	}

	if cfg.DebouncePeriod <= 0 {
		cfg.DebouncePeriod = DefaultDebouncePeriod
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return nil
}
