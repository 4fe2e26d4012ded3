// Package blinker contains the tutorial's control logic: the button
// dispatcher that maps presses to start/stop commands and the blink
// controller that owns the running/stopped state and toggles the LED
// on every timer tick.
//
// Run wires the configured HAL backend, the repeating timer and the
// dispatcher together and idles until the context is canceled.
package blinker
