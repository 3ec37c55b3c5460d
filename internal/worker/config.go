package worker

import (
	"fmt"
	"time"
)

// Config holds the configuration for the background job worker.
type Config struct {
	// Concurrency is the number of polling goroutines.
	// Default: 2
	Concurrency int

	// PollInterval is how often each worker checks for new jobs when idle.
	// Default: 5 seconds
	PollInterval time.Duration

	// JobTimeout bounds a single attempt. Sending two emails should take
	// seconds; the limit catches a hung SMTP connection.
	// Default: 2 minutes
	JobTimeout time.Duration

	// ShutdownTimeout is how long Stop waits for running jobs.
	// Default: 30 seconds
	ShutdownTimeout time.Duration

	// StaleJobThreshold is how long a job may stay 'running' before Start
	// assumes its worker crashed and requeues it.
	// Default: 10 minutes
	StaleJobThreshold time.Duration
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Concurrency:       2,
		PollInterval:      5 * time.Second,
		JobTimeout:        2 * time.Minute,
		ShutdownTimeout:   30 * time.Second,
		StaleJobThreshold: 10 * time.Minute,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any values are invalid.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Concurrency > 100 {
		return fmt.Errorf("concurrency too high (max 100), got %d", c.Concurrency)
	}
	if c.PollInterval < 1*time.Second {
		return fmt.Errorf("poll interval must be at least 1 second, got %v", c.PollInterval)
	}
	if c.JobTimeout < 1*time.Second {
		return fmt.Errorf("job timeout must be at least 1 second, got %v", c.JobTimeout)
	}
	if c.ShutdownTimeout < 1*time.Second {
		return fmt.Errorf("shutdown timeout must be at least 1 second, got %v", c.ShutdownTimeout)
	}
	if c.StaleJobThreshold < 1*time.Minute {
		return fmt.Errorf("stale job threshold must be at least 1 minute, got %v", c.StaleJobThreshold)
	}
	return nil
}
