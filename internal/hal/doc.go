// Package hal defines the hardware abstraction the blink service runs
// against: an LED output and a debounced button event source.
//
// Backends live in subpackages: gpiocdev (Linux GPIO character device),
// rpio (Raspberry Pi memory-mapped GPIO) and sim (no hardware, used by
// tests and for running the tutorial on a desktop).
package hal
