// Package monitor turns off the attached monitors.
package monitor

import (
	"context"
	"errors"

	"github.com/fgeck/monoff/internal/models"
	"github.com/rs/zerolog"
)

// Service defines the interface for monitor power operations.
type Service interface {
	TurnOff(ctx context.Context) (*models.PowerResult, error)
}

// Poster delivers the power-off notification to the OS.
type Poster interface {
	PostPowerOff() error
}

// Impl implements the monitor Service interface.
type Impl struct {
	poster Poster
	logger zerolog.Logger
}

// New creates a new monitor service.
func New(logger zerolog.Logger, poster Poster) *Impl {
	return &Impl{
		poster: poster,
		logger: logger,
	}
}

// TurnOff requests that all monitors power off. The request is sent once and
// not verified: display power state belongs to the OS.
func (s *Impl) TurnOff(ctx context.Context) (*models.PowerResult, error) {
	result := &models.PowerResult{}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug().Msg("posting monitor power-off notification")

	if err := s.poster.PostPowerOff(); err != nil {
		var osErr *models.OSError
		if !errors.As(err, &osErr) {
			err = &models.OSError{Op: "post power-off notification", Err: err}
		}
		result.Error = err
		return result, nil //nolint:nilerr // error is stored in result struct by design
	}

	result.Requested = true
	s.logger.Debug().Msg("power-off notification accepted")

	return result, nil
}
