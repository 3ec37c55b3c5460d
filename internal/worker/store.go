package worker

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DukeRupert/florian/internal/repository"
	"github.com/google/uuid"
)

// Job statuses as stored in the jobs table.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Store is the worker's view of the jobs table.
type Store interface {
	// Dequeue claims the next runnable job and marks it running. Returns
	// sql.ErrNoRows when nothing is due.
	Dequeue(ctx context.Context) (repository.Job, error)

	Complete(ctx context.Context, id uuid.UUID) error

	// Fail records a failed attempt and returns the job's new status:
	// pending when it will be retried, failed when it will not.
	Fail(ctx context.Context, id uuid.UUID, msg string, permanent bool) (string, error)

	// RecoverStale resets jobs that have been running longer than
	// thresholdSeconds back to pending.
	RecoverStale(ctx context.Context, thresholdSeconds float64) (int64, error)
}

// SQLStore implements Store with the generated queries.
type SQLStore struct {
	db      *sql.DB
	queries *repository.Queries
}

// NewSQLStore creates a SQLStore.
func NewSQLStore(db *sql.DB, queries *repository.Queries) *SQLStore {
	return &SQLStore{db: db, queries: queries}
}

// Dequeue selects and claims a job in one transaction so two workers never
// take the same row.
func (s *SQLStore) Dequeue(ctx context.Context) (repository.Job, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.Job{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := s.queries.WithTx(tx)

	job, err := qtx.DequeueJob(ctx)
	if err != nil {
		return repository.Job{}, err
	}

	if err := qtx.UpdateJobStarted(ctx, job.ID); err != nil {
		return repository.Job{}, fmt.Errorf("mark job started: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return repository.Job{}, fmt.Errorf("commit dequeue: %w", err)
	}

	job.Attempts++
	job.Status = StatusRunning
	return job, nil
}

func (s *SQLStore) Complete(ctx context.Context, id uuid.UUID) error {
	return s.queries.UpdateJobCompleted(ctx, id)
}

func (s *SQLStore) Fail(ctx context.Context, id uuid.UUID, msg string, permanent bool) (string, error) {
	errMsg := sql.NullString{String: msg, Valid: true}
	if permanent {
		err := s.queries.UpdateJobFailedPermanently(ctx, repository.UpdateJobFailedPermanentlyParams{
			ID:           id,
			ErrorMessage: errMsg,
		})
		return StatusFailed, err
	}
	return s.queries.UpdateJobFailed(ctx, repository.UpdateJobFailedParams{
		ID:           id,
		ErrorMessage: errMsg,
	})
}

func (s *SQLStore) RecoverStale(ctx context.Context, thresholdSeconds float64) (int64, error) {
	return s.queries.RecoverStaleJobs(ctx, thresholdSeconds)
}

var _ Store = (*SQLStore)(nil)
