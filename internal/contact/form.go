// Package contact implements the contact form: per-field validation state
// and the submission lifecycle.
//
// A Form moves through idle -> submitting -> success|error. Validation
// failures are recorded as data on the form and never returned as errors.
// The only error Submit returns is ErrSubmitInFlight, when a second
// submission is attempted while the first is still running.
//
// Usage:
//
//	form := contact.NewForm(submitter, logger)
//	form.UpdateField(domain.FieldEmail, "jane@example.com")
//	if err := form.Submit(ctx); err != nil {
//	    // a submission is already in flight
//	}
//	state := form.State()
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/metrics"
)

// ErrSubmitInFlight is returned by Submit while another submission on the
// same form has not finished.
var ErrSubmitInFlight = errors.New("contact: submission already in flight")

// Form owns the values and UI state of one contact form instance.
// All methods are safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	state     State
	submitter Submitter
	logger    *slog.Logger
}

// NewForm creates an empty, idle form that sends through submitter.
func NewForm(submitter Submitter, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{
		state:     State{Status: StatusIdle},
		submitter: submitter,
		logger:    logger,
	}
}

// UpdateField overwrites a field value and marks the field touched.
//
// Any recorded error on the field is cleared without re-validating, so an
// invalid value shows no error until the next submit attempt. Editing a form
// that shows a success or error banner returns it to idle.
func (f *Form) UpdateField(field domain.ContactField, value string) {
	if !field.IsValid() {
		f.logger.Debug("ignoring unknown contact field", "field", field)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateLocked(field, value)
}

func (f *Form) updateLocked(field domain.ContactField, value string) {
	f.state.Values.Set(field, value)
	if f.state.Errors.Get(field) != "" {
		f.state.Errors.set(field, "")
	}
	f.state.Touched.set(field)

	if f.state.Status == StatusSuccess || f.state.Status == StatusError {
		f.state.Status = StatusIdle
	}
}

// ValidateForm validates every field, replaces the recorded errors with the
// result, and reports whether the form is valid.
func (f *Form) ValidateForm() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() bool {
	var errs FieldErrors
	for _, field := range domain.ContactFields {
		errs.set(field, domain.ValidateField(field, f.state.Values.Get(field)))
	}
	f.state.Errors = errs
	return errs.Empty()
}

// Submit validates the form and, when valid, hands the values to the
// submitter.
//
// An invalid form touches every field so all errors become visible, and
// leaves the status unchanged. A successful send clears the form and sets
// StatusSuccess. A failed send keeps the values and sets StatusError; a
// submitter that panics counts as a failed send.
//
// The context is passed to the submitter unchanged; Submit never cancels a
// send on its own.
func (f *Form) Submit(ctx context.Context) error {
	return f.submit(ctx, nil)
}

// SubmitValues applies every field of sub as UpdateField would and then
// submits. While a send is in flight it returns ErrSubmitInFlight and leaves
// the form untouched.
func (f *Form) SubmitValues(ctx context.Context, sub domain.ContactSubmission) error {
	return f.submit(ctx, &sub)
}

func (f *Form) submit(ctx context.Context, sub *domain.ContactSubmission) error {
	f.mu.Lock()
	if f.state.Submitting {
		label := projectTypeLabel(f.state.Values.ProjectType)
		f.mu.Unlock()
		metrics.ContactSubmitted(label, metrics.OutcomeConflict)
		return ErrSubmitInFlight
	}
	if sub != nil {
		for _, field := range domain.ContactFields {
			f.updateLocked(field, sub.Get(field))
		}
	}
	if !f.validateLocked() {
		f.state.Touched = allTouched()
		label := projectTypeLabel(f.state.Values.ProjectType)
		f.mu.Unlock()
		metrics.ContactSubmitted(label, metrics.OutcomeInvalid)
		return nil
	}
	f.state.Submitting = true
	values := f.state.Values
	f.mu.Unlock()

	f.finish(f.send(ctx, values))
	return nil
}

// send calls the submitter outside the lock.
func (f *Form) send(ctx context.Context, values domain.ContactSubmission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("contact: submitter panicked: %v", r)
		}
	}()
	return f.submitter.Submit(ctx, values)
}

// finish records the outcome of a send and leaves the in-flight state.
func (f *Form) finish(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Submitting = false
	label := projectTypeLabel(f.state.Values.ProjectType)

	if err != nil {
		metrics.ContactSubmitted(label, metrics.OutcomeFailed)
		f.state.Status = StatusError
		f.logger.Error("contact submission failed",
			"project_type", label,
			"error", err,
		)
		return
	}

	metrics.ContactSubmitted(label, metrics.OutcomeSuccess)
	f.state.Status = StatusSuccess
	f.state.Values = domain.ContactSubmission{}
	f.state.Touched = Touched{}
	f.state.Errors = FieldErrors{}
	f.logger.Info("contact submission sent")
}

// projectTypeLabel keeps the project_type metric label inside the enum:
// visitor input never becomes a label value.
func projectTypeLabel(p domain.ProjectType) string {
	switch {
	case p == "":
		return "none"
	case p.IsValid():
		return p.String()
	default:
		return "invalid"
	}
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}
