package worker

import (
	"context"
	"errors"
	"fmt"
)

// JobHandler executes one job type. Type must match the job_type column.
// Handle receives the raw JSON payload; returning a PermanentError fails the
// job without further attempts.
type JobHandler interface {
	Type() string
	Handle(ctx context.Context, payload []byte) error
}

// HandlerFunc adapts a function to JobHandler.
type HandlerFunc struct {
	JobType string
	Fn      func(ctx context.Context, payload []byte) error
}

func (h HandlerFunc) Type() string { return h.JobType }

func (h HandlerFunc) Handle(ctx context.Context, payload []byte) error {
	return h.Fn(ctx, payload)
}

// PermanentError marks a failure that another attempt cannot fix, such as a
// malformed payload or a deleted row.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// NewPermanentError wraps err so the worker does not retry the job.
func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// Permanentf is NewPermanentError(fmt.Errorf(format, args...)).
func Permanentf(format string, args ...any) error {
	return &PermanentError{Err: fmt.Errorf(format, args...)}
}

// IsPermanent reports whether err or anything it wraps is a PermanentError.
func IsPermanent(err error) bool {
	var permErr *PermanentError
	return errors.As(err, &permErr)
}
