package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/DukeRupert/florian/internal/domain"
)

// Submitter delivers a validated submission somewhere. A non-nil error
// puts the form into StatusError.
type Submitter interface {
	Submit(ctx context.Context, s domain.ContactSubmission) error
}

// SubmitterFunc adapts an ordinary function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, s domain.ContactSubmission) error

// Submit calls fn(ctx, s).
func (fn SubmitterFunc) Submit(ctx context.Context, s domain.ContactSubmission) error {
	return fn(ctx, s)
}

// WithTimeout bounds every send made through s to d. A non-positive d
// returns s unchanged.
func WithTimeout(s Submitter, d time.Duration) Submitter {
	if d <= 0 {
		return s
	}
	return SubmitterFunc(func(ctx context.Context, sub domain.ContactSubmission) error {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return s.Submit(ctx, sub)
	})
}

// DefaultSimulatedDelay is how long the simulated send takes.
const DefaultSimulatedDelay = 2 * time.Second

// SimulatedSubmitter accepts every submission after a fixed delay without
// delivering it anywhere. It is the default when no delivery pipeline is
// configured.
type SimulatedSubmitter struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedSubmitter creates a SimulatedSubmitter. A non-positive delay
// uses DefaultSimulatedDelay.
func NewSimulatedSubmitter(delay time.Duration, logger *slog.Logger) *SimulatedSubmitter {
	if delay <= 0 {
		delay = DefaultSimulatedDelay
	}
	return &SimulatedSubmitter{delay: delay, logger: logger}
}

// Submit waits for the configured delay, or until ctx is done.
func (s *SimulatedSubmitter) Submit(ctx context.Context, sub domain.ContactSubmission) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.logger.Debug("simulated contact submission accepted",
			"project_type", sub.ProjectType,
			"delay", s.delay,
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var (
	_ Submitter = (*SimulatedSubmitter)(nil)
	_ Submitter = SubmitterFunc(nil)
)
