package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DukeRupert/florian/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingSubmitter records every submission and returns err.
type recordingSubmitter struct {
	mu    sync.Mutex
	got   []domain.ContactSubmission
	err   error
	state func() State // optional snapshot taken during Submit
	seen  []State
}

func (r *recordingSubmitter) Submit(_ context.Context, s domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, s)
	if r.state != nil {
		r.seen = append(r.seen, r.state())
	}
	return r.err
}

func fillValid(f *Form) {
	f.UpdateField(domain.FieldFirstName, "Jane")
	f.UpdateField(domain.FieldLastName, "Doe")
	f.UpdateField(domain.FieldEmail, "jane@example.com")
	f.UpdateField(domain.FieldCompany, "")
	f.UpdateField(domain.FieldProjectType, "development")
	f.UpdateField(domain.FieldMessage, "We need a new patient portal built.")
}

// =============================================================================
// Validation
// =============================================================================

func TestForm_ValidateForm_FreshFormFailsEveryRequiredField(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())

	assert.False(t, f.ValidateForm())

	state := f.State()
	assert.Equal(t, domain.MsgFirstNameTooShort, state.Errors.FirstName)
	assert.Equal(t, domain.MsgLastNameTooShort, state.Errors.LastName)
	assert.Equal(t, domain.MsgEmailInvalid, state.Errors.Email)
	assert.Equal(t, domain.MsgProjectTypeEmpty, state.Errors.ProjectType)
	assert.Equal(t, domain.MsgMessageTooShort, state.Errors.Message)
	assert.Empty(t, state.Errors.Company)
	assert.Len(t, state.Errors.Map(), 5)

	// Validation alone never touches fields
	assert.Equal(t, Touched{}, state.Touched)
}

func TestForm_ValidateForm_ReplacesErrors(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())
	require.False(t, f.ValidateForm())

	fillValid(f)
	f.UpdateField(domain.FieldEmail, "bad")

	assert.False(t, f.ValidateForm())
	assert.Equal(t, map[string]string{"email": domain.MsgEmailInvalid}, f.State().Errors.Map())

	f.UpdateField(domain.FieldEmail, "jane@example.com")
	assert.True(t, f.ValidateForm())
	assert.True(t, f.State().Errors.Empty())
}

func TestForm_UpdateField(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())

	f.UpdateField(domain.FieldFirstName, "J")

	state := f.State()
	assert.Equal(t, "J", state.Values.FirstName)
	assert.True(t, state.Touched.FirstName)
	assert.False(t, state.Touched.LastName)
	assert.Equal(t, StatusIdle, state.Status)
}

func TestForm_UpdateField_IgnoresUnknownField(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())

	f.UpdateField(domain.ContactField("phone"), "555")

	assert.Equal(t, State{Status: StatusIdle}, f.State())
}

// Scenario C: editing clears the field's error without re-validating.
func TestForm_UpdateField_OptimisticallyClearsError(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())
	fillValid(f)

	f.UpdateField(domain.FieldMessage, "x")
	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, domain.MsgMessageTooShort, f.State().Errors.Message)

	f.UpdateField(domain.FieldMessage, "")

	state := f.State()
	assert.Empty(t, state.Errors.Message, "error cleared on edit even though the value is still invalid")
	assert.Empty(t, state.VisibleError(domain.FieldMessage))
	assert.Equal(t, "", state.Values.Message)

	// The next attempt re-validates and brings the error back
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, domain.MsgMessageTooShort, f.State().Errors.Message)
}

func TestForm_UpdateField_LeavesOtherErrors(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())
	require.NoError(t, f.Submit(context.Background()))

	f.UpdateField(domain.FieldFirstName, "Jane")

	state := f.State()
	assert.Empty(t, state.Errors.FirstName)
	assert.Equal(t, domain.MsgLastNameTooShort, state.Errors.LastName)
}

func TestState_VisibleError(t *testing.T) {
	state := State{
		Errors:  FieldErrors{Email: domain.MsgEmailInvalid, Message: domain.MsgMessageTooShort},
		Touched: Touched{Email: true},
	}

	assert.Equal(t, domain.MsgEmailInvalid, state.VisibleError(domain.FieldEmail))
	assert.Empty(t, state.VisibleError(domain.FieldMessage), "untouched errors stay hidden")
}

// =============================================================================
// Submission
// =============================================================================

// Scenario A: a valid form is sent and cleared.
func TestForm_Submit_Success(t *testing.T) {
	sub := &recordingSubmitter{}
	f := NewForm(sub, testLogger())
	sub.state = f.State
	fillValid(f)

	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, sub.got, 1)
	assert.Equal(t, domain.ContactSubmission{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		ProjectType: domain.ProjectTypeDevelopment,
		Message:     "We need a new patient portal built.",
	}, sub.got[0])

	// Submitting was true while the send ran
	require.Len(t, sub.seen, 1)
	assert.True(t, sub.seen[0].Submitting)
	assert.Equal(t, "Sending...", sub.seen[0].SubmitLabel())

	state := f.State()
	assert.False(t, state.Submitting)
	assert.Equal(t, "Send Message", state.SubmitLabel())
	assert.Equal(t, StatusSuccess, state.Status)
	assert.True(t, state.Values.IsZero())
	assert.Equal(t, Touched{}, state.Touched)
	assert.True(t, state.Errors.Empty())
}

// Scenario B: one invalid field blocks the send and reveals every error.
func TestForm_Submit_InvalidEmail(t *testing.T) {
	sub := &recordingSubmitter{}
	f := NewForm(sub, testLogger())
	fillValid(f)
	f.UpdateField(domain.FieldEmail, "not-an-email")
	before := f.State().Values

	require.NoError(t, f.Submit(context.Background()))

	assert.Empty(t, sub.got, "submitter must not be called")

	state := f.State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.False(t, state.Submitting)
	assert.True(t, state.Touched.Email)
	assert.Equal(t, domain.MsgEmailInvalid, state.Errors.Email)
	assert.Equal(t, before, state.Values)
}

func TestForm_Submit_InvalidTouchesAllFields(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())

	require.NoError(t, f.Submit(context.Background()))

	state := f.State()
	assert.Equal(t, allTouched(), state.Touched)
	for _, field := range domain.ContactFields {
		if field.Required() {
			assert.NotEmpty(t, state.VisibleError(field), field)
		}
	}
}

func TestForm_Submit_InvalidLeavesStatusUnchanged(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("smtp down")}
	f := NewForm(sub, testLogger())
	fillValid(f)
	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, StatusError, f.State().Status)

	// Invalidate without going through UpdateField's reset to idle
	f.mu.Lock()
	f.state.Values.Email = "nope"
	f.mu.Unlock()

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StatusError, f.State().Status)
	assert.Len(t, sub.got, 1)
}

func TestForm_Submit_FailurePreservesValues(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("delivery failed")}
	f := NewForm(sub, testLogger())
	fillValid(f)
	before := f.State()

	require.NoError(t, f.Submit(context.Background()))

	state := f.State()
	assert.Equal(t, StatusError, state.Status)
	assert.False(t, state.Submitting)
	assert.Equal(t, before.Values, state.Values)
	assert.Equal(t, before.Touched, state.Touched)
}

func TestForm_Submit_NoRetryAfterFailure(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("delivery failed")}
	f := NewForm(sub, testLogger())
	fillValid(f)

	require.NoError(t, f.Submit(context.Background()))

	assert.Len(t, sub.got, 1)
	assert.Equal(t, StatusError, f.State().Status)
}

func TestForm_UpdateField_ReturnsToIdle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"after success", nil, StatusSuccess},
		{"after error", errors.New("boom"), StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(&recordingSubmitter{err: tt.err}, testLogger())
			fillValid(f)
			require.NoError(t, f.Submit(context.Background()))
			require.Equal(t, tt.want, f.State().Status)

			f.UpdateField(domain.FieldCompany, "Acme Health")

			assert.Equal(t, StatusIdle, f.State().Status)
		})
	}
}

func TestForm_Submit_RejectsReentry(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	calls := 0

	f := NewForm(SubmitterFunc(func(ctx context.Context, s domain.ContactSubmission) error {
		calls++
		close(started)
		<-release
		return nil
	}), testLogger())
	fillValid(f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-started

	assert.True(t, f.State().Submitting)
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, calls)
	assert.Equal(t, StatusSuccess, f.State().Status)
	assert.False(t, f.State().Submitting)
}

func TestForm_Submit_PanicBecomesFailure(t *testing.T) {
	f := NewForm(SubmitterFunc(func(ctx context.Context, s domain.ContactSubmission) error {
		panic("submitter exploded")
	}), testLogger())
	fillValid(f)

	assert.NotPanics(t, func() { assert.NoError(t, f.Submit(context.Background())) })

	state := f.State()
	assert.False(t, state.Submitting)
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Jane", state.Values.FirstName)

	// The form is usable again
	f.submitter = &recordingSubmitter{}
	assert.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StatusSuccess, f.State().Status)
}

func TestForm_SubmitValues(t *testing.T) {
	rec := &recordingSubmitter{}
	f := NewForm(rec, testLogger())

	sub := domain.ContactSubmission{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		ProjectType: domain.ProjectTypeCloud,
		Message:     "Moving our PACS archive to the cloud.",
	}
	require.NoError(t, f.SubmitValues(context.Background(), sub))

	require.Len(t, rec.got, 1)
	assert.Equal(t, sub, rec.got[0])
	assert.Equal(t, StatusSuccess, f.State().Status)
}

func TestForm_SubmitValues_InFlightLeavesFormUntouched(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	f := NewForm(SubmitterFunc(func(ctx context.Context, s domain.ContactSubmission) error {
		close(started)
		<-release
		return nil
	}), testLogger())
	fillValid(f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-started

	before := f.State()
	err := f.SubmitValues(context.Background(), domain.ContactSubmission{FirstName: "Mallory", Email: "x"})
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, before, f.State())

	close(release)
	require.NoError(t, <-done)
}

func TestForm_Submit_InvalidUTF8ProjectType(t *testing.T) {
	f := NewForm(&recordingSubmitter{}, testLogger())
	fillValid(f)
	f.UpdateField(domain.FieldProjectType, "\xff")

	assert.NotPanics(t, func() { assert.NoError(t, f.Submit(context.Background())) })
	assert.Equal(t, domain.MsgProjectTypeEmpty, f.State().Errors.ProjectType)
}

func TestProjectTypeLabel(t *testing.T) {
	assert.Equal(t, "none", projectTypeLabel(""))
	assert.Equal(t, "security", projectTypeLabel(domain.ProjectTypeSecurity))
	assert.Equal(t, "invalid", projectTypeLabel("gardening"))
	assert.Equal(t, "invalid", projectTypeLabel("\xff"))
}

func TestForm_Submit_PassesContextThrough(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	var got any
	f := NewForm(SubmitterFunc(func(ctx context.Context, s domain.ContactSubmission) error {
		got = ctx.Value(key{})
		return nil
	}), testLogger())
	fillValid(f)

	require.NoError(t, f.Submit(ctx))
	assert.Equal(t, "marker", got)
}

func TestForm_IndependentInstances(t *testing.T) {
	a := NewForm(&recordingSubmitter{}, testLogger())
	b := NewForm(&recordingSubmitter{}, testLogger())

	a.UpdateField(domain.FieldFirstName, "Jane")

	assert.Empty(t, b.State().Values.FirstName)
	assert.False(t, b.State().Touched.FirstName)
}

// =============================================================================
// SimulatedSubmitter
// =============================================================================

func TestSimulatedSubmitter(t *testing.T) {
	t.Run("succeeds after delay", func(t *testing.T) {
		s := NewSimulatedSubmitter(5*time.Millisecond, testLogger())
		start := time.Now()
		assert.NoError(t, s.Submit(context.Background(), domain.ContactSubmission{}))
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})

	t.Run("stops when context is done", func(t *testing.T) {
		s := NewSimulatedSubmitter(time.Minute, testLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, s.Submit(ctx, domain.ContactSubmission{}), context.Canceled)
	})

	t.Run("defaults delay", func(t *testing.T) {
		s := NewSimulatedSubmitter(0, testLogger())
		assert.Equal(t, DefaultSimulatedDelay, s.delay)
	})
}

func TestWithTimeout(t *testing.T) {
	slow := NewSimulatedSubmitter(time.Minute, testLogger())

	err := WithTimeout(slow, 5*time.Millisecond).Submit(context.Background(), domain.ContactSubmission{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	fast := NewSimulatedSubmitter(time.Millisecond, testLogger())
	assert.NoError(t, WithTimeout(fast, time.Second).Submit(context.Background(), domain.ContactSubmission{}))

	assert.Same(t, slow, WithTimeout(slow, 0))
}

func TestRequestMeta_Context(t *testing.T) {
	_, ok := RequestMetaFrom(context.Background())
	assert.False(t, ok)

	ctx := WithRequestMeta(context.Background(), RequestMeta{ClientIP: "203.0.113.7", UserAgent: "test"})
	meta, ok := RequestMetaFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "203.0.113.7", meta.ClientIP)
}
