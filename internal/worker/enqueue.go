package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DukeRupert/florian/internal/repository"
	"github.com/google/uuid"
)

// Job type constants - these must match the JobHandler.Type() values
const (
	JobTypeNotifyContact = "notify_contact"
)

// Priority constants for job scheduling
const (
	PriorityLow    = 0
	PriorityNormal = 10
	PriorityHigh   = 20
)

// NotifyContactPayload is the payload for contact notification jobs.
type NotifyContactPayload struct {
	SubmissionID uuid.UUID `json:"submission_id"`
}

// Enqueuer inserts jobs. *repository.Queries satisfies it, including a
// transaction-bound copy from WithTx.
type Enqueuer interface {
	EnqueueJob(ctx context.Context, arg repository.EnqueueJobParams) (repository.Job, error)
}

// EnqueueOption is a functional option for customizing job enqueue parameters.
type EnqueueOption func(*repository.EnqueueJobParams)

// WithPriority sets the job priority.
func WithPriority(priority int32) EnqueueOption {
	return func(p *repository.EnqueueJobParams) {
		p.Priority = priority
	}
}

// WithMaxAttempts sets the maximum number of attempts.
func WithMaxAttempts(attempts int32) EnqueueOption {
	return func(p *repository.EnqueueJobParams) {
		p.MaxAttempts = attempts
	}
}

// WithDelay schedules the job to run after a delay.
func WithDelay(delay time.Duration) EnqueueOption {
	return func(p *repository.EnqueueJobParams) {
		p.ScheduledAt = p.ScheduledAt.Add(delay)
	}
}

// EnqueueJob marshals payload and inserts a job of jobType.
func EnqueueJob(
	ctx context.Context,
	q Enqueuer,
	jobType string,
	payload any,
	opts ...EnqueueOption,
) (repository.Job, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return repository.Job{}, fmt.Errorf("marshal payload: %w", err)
	}

	params := repository.EnqueueJobParams{
		JobType:     jobType,
		Payload:     payloadJSON,
		Priority:    PriorityNormal,
		MaxAttempts: 5,
		ScheduledAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&params)
	}

	job, err := q.EnqueueJob(ctx, params)
	if err != nil {
		return repository.Job{}, fmt.Errorf("enqueue job: %w", err)
	}
	return job, nil
}

// EnqueueNotifyContact enqueues the emails for a stored contact submission.
func EnqueueNotifyContact(ctx context.Context, q Enqueuer, submissionID uuid.UUID, opts ...EnqueueOption) (repository.Job, error) {
	opts = append([]EnqueueOption{WithPriority(PriorityHigh)}, opts...)
	return EnqueueJob(ctx, q, JobTypeNotifyContact, NotifyContactPayload{SubmissionID: submissionID}, opts...)
}
