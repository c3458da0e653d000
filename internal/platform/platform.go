// Package platform isolates the operating system calls monoff depends on.
package platform

import (
	"errors"
	"runtime"

	"github.com/fgeck/monoff/internal/models"
)

// ErrUnsupported is returned on platforms without a windowing message
// subsystem and a console-attach primitive.
var ErrUnsupported = errors.New("monoff only runs on Windows")

// Platform is the set of OS capabilities monoff needs.
type Platform interface {
	// Supported reports whether the host provides the required primitives.
	Supported() bool

	// AttachConsole attaches to the console of the parent process. On
	// success the standard streams are bound to that console.
	AttachConsole() bool

	// PostPowerOff asks the display subsystem to power off all monitors.
	// It returns once the request is queued; it does not wait for it to
	// be handled.
	PostPowerOff() error

	// ShowMessage displays a modal message box and blocks until the user
	// dismisses it.
	ShowMessage(title, text string, severity models.Severity) error
}

// New returns the Platform for the current OS.
// See platform_windows.go and platform_other.go.
func New() Platform {
	return newPlatform()
}

// lockedThread runs fn with the calling goroutine pinned to its OS thread.
func lockedThread(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return fn()
}
