// Package execmode tags contexts with the execution mode of an event
// delivery: interrupt-like (GPIO edge or timer goroutine) versus the
// normal thread/main path.
//
// On the original dev board this distinction comes from the interrupt
// controller; on a hosted OS it is a property of the delivery path, so
// each event source tags its context once and handlers query it with
// FromContext. Tests inject either mode without hardware.
package execmode
