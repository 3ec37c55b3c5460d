package contact

import "github.com/DukeRupert/florian/internal/domain"

// Status is the outcome of the most recent submission attempt.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FieldErrors holds one message per contact field. An empty string means
// the field has no recorded error.
type FieldErrors struct {
	FirstName   string
	LastName    string
	Email       string
	Company     string
	ProjectType string
	Message     string
}

// Get returns the recorded error for field.
func (e FieldErrors) Get(field domain.ContactField) string {
	switch field {
	case domain.FieldFirstName:
		return e.FirstName
	case domain.FieldLastName:
		return e.LastName
	case domain.FieldEmail:
		return e.Email
	case domain.FieldCompany:
		return e.Company
	case domain.FieldProjectType:
		return e.ProjectType
	case domain.FieldMessage:
		return e.Message
	}
	return ""
}

func (e *FieldErrors) set(field domain.ContactField, msg string) {
	switch field {
	case domain.FieldFirstName:
		e.FirstName = msg
	case domain.FieldLastName:
		e.LastName = msg
	case domain.FieldEmail:
		e.Email = msg
	case domain.FieldCompany:
		e.Company = msg
	case domain.FieldProjectType:
		e.ProjectType = msg
	case domain.FieldMessage:
		e.Message = msg
	}
}

// Empty reports whether no field has an error.
func (e FieldErrors) Empty() bool {
	return e == FieldErrors{}
}

// Map returns the non-empty errors keyed by field name, for JSON responses.
func (e FieldErrors) Map() map[string]string {
	m := make(map[string]string)
	for _, f := range domain.ContactFields {
		if msg := e.Get(f); msg != "" {
			m[f.String()] = msg
		}
	}
	return m
}

// Touched records which fields the visitor has edited, or which were forced
// visible by a failed submit attempt.
type Touched struct {
	FirstName   bool
	LastName    bool
	Email       bool
	Company     bool
	ProjectType bool
	Message     bool
}

// Get reports whether field has been touched.
func (t Touched) Get(field domain.ContactField) bool {
	switch field {
	case domain.FieldFirstName:
		return t.FirstName
	case domain.FieldLastName:
		return t.LastName
	case domain.FieldEmail:
		return t.Email
	case domain.FieldCompany:
		return t.Company
	case domain.FieldProjectType:
		return t.ProjectType
	case domain.FieldMessage:
		return t.Message
	}
	return false
}

func (t *Touched) set(field domain.ContactField) {
	switch field {
	case domain.FieldFirstName:
		t.FirstName = true
	case domain.FieldLastName:
		t.LastName = true
	case domain.FieldEmail:
		t.Email = true
	case domain.FieldCompany:
		t.Company = true
	case domain.FieldProjectType:
		t.ProjectType = true
	case domain.FieldMessage:
		t.Message = true
	}
}

func allTouched() Touched {
	return Touched{
		FirstName:   true,
		LastName:    true,
		Email:       true,
		Company:     true,
		ProjectType: true,
		Message:     true,
	}
}

// State is a point-in-time copy of a Form. It is safe to read without
// holding any lock.
type State struct {
	Values     domain.ContactSubmission
	Errors     FieldErrors
	Touched    Touched
	Status     Status
	Submitting bool
}

// VisibleError returns the field's error only once the field is touched.
func (s State) VisibleError(field domain.ContactField) string {
	if !s.Touched.Get(field) {
		return ""
	}
	return s.Errors.Get(field)
}

// SubmitLabel is the text of the submit control for this state.
func (s State) SubmitLabel() string {
	if s.Submitting {
		return "Sending..."
	}
	return "Send Message"
}
