package runner

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fgeck/monoff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMonitorService struct {
	turnOffFunc func(ctx context.Context) (*models.PowerResult, error)
	calledAt    []time.Time
}

func (m *mockMonitorService) TurnOff(ctx context.Context) (*models.PowerResult, error) {
	m.calledAt = append(m.calledAt, time.Now())
	if m.turnOffFunc != nil {
		return m.turnOffFunc(ctx)
	}
	return &models.PowerResult{Requested: true}, nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestRun_Success(t *testing.T) {
	monitorSvc := &mockMonitorService{}
	var slept []time.Duration
	svc := NewWithSleep(testLogger(), monitorSvc, func(d time.Duration) {
		slept = append(slept, d)
	})

	err := svc.Run(context.Background(), models.DelayConfig{Delay: 250})

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, slept)
	assert.Len(t, monitorSvc.calledAt, 1)
}

func TestRun_SleepsBeforeTurningOff(t *testing.T) {
	var order []string
	monitorSvc := &mockMonitorService{
		turnOffFunc: func(ctx context.Context) (*models.PowerResult, error) {
			order = append(order, "turn off")
			return &models.PowerResult{Requested: true}, nil
		},
	}
	svc := NewWithSleep(testLogger(), monitorSvc, func(time.Duration) {
		order = append(order, "sleep")
	})

	err := svc.Run(context.Background(), models.DelayConfig{Delay: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"sleep", "turn off"}, order)
}

func TestRun_RealDelayElapses(t *testing.T) {
	monitorSvc := &mockMonitorService{}
	svc := New(testLogger(), monitorSvc)

	delay := models.DelayConfig{Delay: 50}
	start := time.Now()
	err := svc.Run(context.Background(), delay)

	require.NoError(t, err)
	require.Len(t, monitorSvc.calledAt, 1)
	assert.GreaterOrEqual(t, monitorSvc.calledAt[0].Sub(start), delay.Duration())
}

func TestRun_ZeroDelaySkipsSleep(t *testing.T) {
	monitorSvc := &mockMonitorService{}
	sleepCalled := false
	svc := NewWithSleep(testLogger(), monitorSvc, func(time.Duration) {
		sleepCalled = true
	})

	err := svc.Run(context.Background(), models.DelayConfig{Delay: 0})

	require.NoError(t, err)
	assert.False(t, sleepCalled)
	assert.Len(t, monitorSvc.calledAt, 1)
}

func TestRun_PowerOffFailed(t *testing.T) {
	cause := errors.New("Access is denied.")
	monitorSvc := &mockMonitorService{
		turnOffFunc: func(ctx context.Context) (*models.PowerResult, error) {
			return &models.PowerResult{
				Error: &models.OSError{Op: "post power-off notification", Err: cause},
			}, nil
		},
	}
	svc := NewWithSleep(testLogger(), monitorSvc, func(time.Duration) {})

	err := svc.Run(context.Background(), models.DelayConfig{})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	var osErr *models.OSError
	assert.ErrorAs(t, err, &osErr)
	assert.Len(t, monitorSvc.calledAt, 1)
}

func TestRun_MonitorServiceError(t *testing.T) {
	monitorSvc := &mockMonitorService{
		turnOffFunc: func(ctx context.Context) (*models.PowerResult, error) {
			return nil, context.Canceled
		},
	}
	svc := NewWithSleep(testLogger(), monitorSvc, func(time.Duration) {})

	err := svc.Run(context.Background(), models.DelayConfig{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "turning off monitors")
}
