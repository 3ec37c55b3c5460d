// Package worker runs background jobs from the jobs table.
//
// Jobs are enqueued inside the caller's transaction (see EnqueueJob) and
// picked up by a pool of polling goroutines. A failed job is retried with
// exponential backoff until max_attempts, unless it fails with a
// PermanentError.
package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DukeRupert/florian/internal/metrics"
	"github.com/DukeRupert/florian/internal/repository"
)

// Worker manages background job processing with concurrent workers.
type Worker struct {
	store    Store
	handlers map[string]JobHandler
	config   Config
	logger   *slog.Logger

	wg     sync.WaitGroup
	stopCh chan struct{}
}

// New creates a new Worker with the given configuration.
// The worker must be started with Start() and stopped with Stop().
func New(store Store, config Config, logger *slog.Logger) (*Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Worker{
		store:    store,
		handlers: make(map[string]JobHandler),
		config:   config,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}, nil
}

// Register adds a job handler to the worker. Call this before Start().
func (w *Worker) Register(handler JobHandler) {
	jobType := handler.Type()
	if _, exists := w.handlers[jobType]; exists {
		w.logger.Warn("overwriting existing job handler", "job_type", jobType)
	}
	w.handlers[jobType] = handler
	w.logger.Debug("registered job handler", "job_type", jobType)
}

// Start recovers jobs orphaned by a previous crash and launches the
// configured number of polling goroutines.
func (w *Worker) Start(ctx context.Context) {
	if err := w.recoverStaleJobs(ctx); err != nil {
		w.logger.Error("failed to recover stale jobs", "error", err)
	}

	for i := 0; i < w.config.Concurrency; i++ {
		w.wg.Add(1)
		go w.runWorker(ctx, i+1)
	}

	w.logger.Info("worker started", "concurrency", w.config.Concurrency)
}

// Stop signals all workers to stop and waits up to ShutdownTimeout for
// running jobs to finish.
func (w *Worker) Stop() {
	w.logger.Info("stopping worker")
	close(w.stopCh)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("worker stopped gracefully")
	case <-time.After(w.config.ShutdownTimeout):
		w.logger.Warn("worker shutdown timeout exceeded, some jobs may still be running")
	}
}

func (w *Worker) recoverStaleJobs(ctx context.Context) error {
	count, err := w.store.RecoverStale(ctx, w.config.StaleJobThreshold.Seconds())
	if err != nil {
		return fmt.Errorf("recover stale jobs: %w", err)
	}

	if count > 0 {
		w.logger.Warn("recovered stale jobs", "count", count, "threshold", w.config.StaleJobThreshold)
	}
	return nil
}

func (w *Worker) runWorker(ctx context.Context, workerID int) {
	defer w.wg.Done()

	logger := w.logger.With("worker_id", workerID)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Drain everything that is due before waiting again.
			for {
				err := w.processNextJob(ctx, logger)
				if errors.Is(err, sql.ErrNoRows) {
					break
				}
				if err != nil {
					logger.Error("failed to process job", "error", err)
					break
				}
			}
		}
	}
}

// processNextJob dequeues and executes a single job. Returns sql.ErrNoRows
// if no jobs are available.
func (w *Worker) processNextJob(ctx context.Context, logger *slog.Logger) error {
	job, err := w.store.Dequeue(ctx)
	if err != nil {
		return err
	}

	logger = logger.With("job_id", job.ID, "job_type", job.JobType, "attempt", job.Attempts)
	logger.Info("processing job")

	metrics.JobStarted(job.JobType)
	start := time.Now()

	if err := w.executeJob(ctx, job); err != nil {
		w.markJobFailed(ctx, job, err, logger)
		return nil
	}

	metrics.JobCompleted(job.JobType, time.Since(start))
	logger.Info("job completed", "duration_ms", time.Since(start).Milliseconds())

	if err := w.store.Complete(ctx, job.ID); err != nil {
		return fmt.Errorf("mark job completed: %w", err)
	}
	return nil
}

// executeJob runs the job's handler under JobTimeout. A panicking handler
// fails the job permanently.
func (w *Worker) executeJob(ctx context.Context, job repository.Job) (err error) {
	handler, ok := w.handlers[job.JobType]
	if !ok {
		return NewPermanentError(fmt.Errorf("no handler registered for job type: %s", job.JobType))
	}

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = NewPermanentError(fmt.Errorf("job handler panicked: %v", r))
		}
	}()

	return handler.Handle(jobCtx, job.Payload)
}

func (w *Worker) markJobFailed(ctx context.Context, job repository.Job, jobErr error, logger *slog.Logger) {
	permanent := IsPermanent(jobErr)

	status, err := w.store.Fail(ctx, job.ID, jobErr.Error(), permanent)
	if err != nil {
		logger.Error("failed to record job failure", "error", err, "job_error", jobErr)
		metrics.JobFailed(job.JobType)
		return
	}

	if status == StatusPending {
		metrics.JobRetried(job.JobType)
		logger.Warn("job failed, will retry", "error", jobErr, "max_attempts", job.MaxAttempts)
		return
	}

	metrics.JobFailed(job.JobType)
	logger.Error("job failed permanently", "error", jobErr, "permanent", permanent)
}
