package models

import "fmt"

// PowerResult holds the result of a monitor power-off request.
type PowerResult struct {
	Requested bool // the OS accepted the notification
	Error     error
}

// OSError wraps a failure reported by the operating system.
type OSError struct {
	Op  string
	Err error
}

func (e *OSError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// ArgumentError indicates invalid command line input or delay configuration.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
