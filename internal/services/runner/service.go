// Package runner orchestrates the delayed monitor power-off.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/fgeck/monoff/internal/models"
	"github.com/fgeck/monoff/internal/services/monitor"
	"github.com/rs/zerolog"
)

// Service defines the interface for the power-off runner.
type Service interface {
	Run(ctx context.Context, cfg models.DelayConfig) error
}

// SleepFunc blocks for the given duration.
type SleepFunc func(d time.Duration)

// Impl implements the runner Service interface.
type Impl struct {
	monitorSvc monitor.Service
	sleep      SleepFunc
	logger     zerolog.Logger
}

// New creates a new runner service.
func New(logger zerolog.Logger, monitorSvc monitor.Service) *Impl {
	return &Impl{
		monitorSvc: monitorSvc,
		sleep:      time.Sleep,
		logger:     logger,
	}
}

// NewWithSleep creates a new runner service with a custom sleep function (for testing).
func NewWithSleep(logger zerolog.Logger, monitorSvc monitor.Service, sleep SleepFunc) *Impl {
	return &Impl{
		monitorSvc: monitorSvc,
		sleep:      sleep,
		logger:     logger,
	}
}

// Run waits for the configured delay and then turns off the monitors.
// The wait is not interruptible.
func (s *Impl) Run(ctx context.Context, cfg models.DelayConfig) error {
	delay := cfg.Duration()

	if delay > 0 {
		s.logger.Debug().Dur("delay", delay).Msg("waiting before turning off monitors")
		start := time.Now()
		s.sleep(delay)
		s.logger.Debug().Dur("waited", time.Since(start)).Msg("delay elapsed")
	}

	result, err := s.monitorSvc.TurnOff(ctx)
	if err != nil {
		return fmt.Errorf("turning off monitors: %w", err)
	}
	if result.Error != nil {
		return result.Error
	}

	s.logger.Debug().Bool("requested", result.Requested).Msg("monitor power-off requested")
	return nil
}
