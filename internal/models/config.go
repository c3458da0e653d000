// Package models contains the data structures used throughout monoff.
package models

import "time"

// AppName identifies monoff in dialog titles and as the window class name.
const AppName = "monoff"

// DefaultDelayMS is the delay applied when none is configured.
const DefaultDelayMS uint16 = 100

// DelayConfig holds the wait before the monitors are turned off.
type DelayConfig struct {
	Delay uint16 // milliseconds
}

// Duration returns the delay as a time.Duration.
func (c DelayConfig) Duration() time.Duration {
	return time.Duration(c.Delay) * time.Millisecond
}
