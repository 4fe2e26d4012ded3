//go:build !linux

package rpi

import (
	"errors"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/hal"
)

// ErrUnsupported is returned on platforms without memory-mapped GPIO.
var ErrUnsupported = errors.New("rpio backend requires Linux")

// Open fails on non-Linux platforms; use the sim backend instead.
func Open(_ *config.Config) (hal.Board, error) {
	return nil, ErrUnsupported
}
