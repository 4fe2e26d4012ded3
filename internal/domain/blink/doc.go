// Package blink contains core domain types for the blink tutorial logic.
//
// It defines State (whether the blink timer is running) and Button (which
// physical input was pressed). Both are plain value types so the control
// logic stays unit-testable without hardware.
package blink
