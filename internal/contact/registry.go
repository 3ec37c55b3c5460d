package contact

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Registry keeps one Form per visitor so form state survives between the
// page view, each submit, and the redirect that follows. Entries untouched
// for longer than the idle timeout are evicted by Sweep.
type Registry struct {
	submitter Submitter
	idle      time.Duration
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	forms map[string]*registryEntry
}

type registryEntry struct {
	form     *Form
	lastSeen time.Time
}

// NewRegistry creates a Registry whose forms send through submitter.
func NewRegistry(submitter Submitter, idle time.Duration, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		submitter: submitter,
		idle:      idle,
		logger:    logger,
		now:       time.Now,
		forms:     make(map[string]*registryEntry),
	}
}

// Get returns the form for key, creating an empty one on first use.
func (r *Registry) Get(key string) *Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.forms[key]
	if !ok {
		entry = &registryEntry{form: NewForm(r.submitter, r.logger)}
		r.forms[key] = entry
	}
	entry.lastSeen = r.now()
	return entry.form
}

// Peek returns the form for key without creating one or refreshing it.
func (r *Registry) Peek(key string) (*Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.forms[key]
	if !ok {
		return nil, false
	}
	return entry.form, true
}

// Len returns the number of live forms.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Sweep evicts forms idle for longer than the idle timeout and returns how
// many it removed. A form with a send in flight is never evicted.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idle)
	removed := 0
	for key, entry := range r.forms {
		if entry.lastSeen.After(cutoff) || entry.form.State().Submitting {
			continue
		}
		delete(r.forms, key)
		removed++
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("evicted idle contact forms", "count", n, "remaining", r.Len())
			}
		}
	}
}
