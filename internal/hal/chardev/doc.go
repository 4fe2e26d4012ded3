// Package chardev implements the hal.Board contract on top of the
// Linux GPIO character device (github.com/warthog618/go-gpiocdev).
//
// Button lines are claimed with pull-up bias, falling-edge detection
// and kernel debouncing; edge events arrive on the device's event
// goroutine and are delivered in interrupt mode.
package chardev
