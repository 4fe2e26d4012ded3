// Package config defines tutorial settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type selects the GPIO backend and holds the LED/button line
// mapping plus the blink and debounce periods.
package config
