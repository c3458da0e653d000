// Package console provides the output channel for user-facing messages.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fgeck/monoff/internal/models"
	"github.com/fgeck/monoff/internal/platform"
	"github.com/rs/zerolog"
)

// Service defines the interface for reporting messages to the user.
type Service interface {
	Mode() models.Mode
	Report(message string, severity models.Severity)
}

// Impl implements the console Service interface.
type Impl struct {
	platform platform.Platform
	mode     models.Mode
	stdout   io.Writer
	stderr   io.Writer
	title    string
	logger   zerolog.Logger
}

// Resolve probes for a parent console and returns a Service bound to the
// resulting mode. The probe runs once; the mode never changes afterwards.
func Resolve(p platform.Platform, logger zerolog.Logger) *Impl {
	if p.AttachConsole() {
		// Read the streams only after attaching, the platform may rebind them.
		return NewWithWriters(logger, p, models.ModeTextual, os.Stdout, os.Stderr)
	}

	logger.Debug().Msg("no parent console, using message boxes")
	return NewWithWriters(logger, p, models.ModeGraphical, io.Discard, io.Discard)
}

// NewWithWriters creates a console service with a fixed mode and custom writers (for testing).
func NewWithWriters(logger zerolog.Logger, p platform.Platform, mode models.Mode, stdout, stderr io.Writer) *Impl {
	return &Impl{
		platform: p,
		mode:     mode,
		stdout:   stdout,
		stderr:   stderr,
		title:    models.AppName,
		logger:   logger,
	}
}

// Mode returns the resolved output mode.
func (s *Impl) Mode() models.Mode {
	return s.mode
}

// Report shows message to the user. Failures are logged and otherwise ignored.
func (s *Impl) Report(message string, severity models.Severity) {
	if s.mode == models.ModeGraphical {
		if err := s.platform.ShowMessage(s.title, message, severity); err != nil {
			s.logger.Debug().Err(err).Msg("failed to show message box")
		}
		return
	}

	w := s.stdout
	if severity == models.SeverityError {
		w = s.stderr
	}
	if _, err := fmt.Fprintln(w, message); err != nil {
		s.logger.Debug().Err(err).Str("severity", severity.String()).Msg("failed to write message")
	}
}
