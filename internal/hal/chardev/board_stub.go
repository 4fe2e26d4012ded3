//go:build !linux

package chardev

import (
	"errors"

	"github.com/oshokin/blink-button/internal/config"
	"github.com/oshokin/blink-button/internal/hal"
)

// ErrUnsupported is returned on platforms without the GPIO character device.
var ErrUnsupported = errors.New("gpiocdev backend requires Linux")

// Open fails on non-Linux platforms; use the sim backend instead.
func Open(_ *config.Config) (hal.Board, error) {
	return nil, ErrUnsupported
}
