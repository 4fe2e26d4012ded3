// Package rpi implements the hal.Board contract on top of the
// Raspberry Pi's memory-mapped GPIO (github.com/stianeikeland/go-rpio).
//
// The BCM peripheral latches falling edges in hardware; a polling
// goroutine drains the latches, applies software debouncing and
// delivers presses in interrupt mode.
package rpi
