// Package sim implements the hal.Board contract without hardware.
//
// Presses are injected programmatically or parsed from an input stream,
// and the LED level is recorded so tests can assert on it. This is the
// default backend, letting the tutorial run on any desktop.
package sim
