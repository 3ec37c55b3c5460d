// Package domain contains core business types and interfaces.
//
// This file defines the contact form submission, its closed set of fields,
// and the project types a visitor can choose from.
package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// Contact Fields
// =============================================================================

// ContactField names one of the six inputs of the contact form. The value is
// the form/JSON name of the input.
type ContactField string

const (
	FieldFirstName   ContactField = "firstName"
	FieldLastName    ContactField = "lastName"
	FieldEmail       ContactField = "email"
	FieldCompany     ContactField = "company"
	FieldProjectType ContactField = "projectType"
	FieldMessage     ContactField = "message"
)

// ContactFields lists every field in the order the form renders them.
var ContactFields = []ContactField{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldCompany,
	FieldProjectType,
	FieldMessage,
}

// String returns the string representation of the field.
func (f ContactField) String() string {
	return string(f)
}

// IsValid returns true if the field is one of the known contact fields.
func (f ContactField) IsValid() bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldEmail,
		FieldCompany, FieldProjectType, FieldMessage:
		return true
	}
	return false
}

// Label returns the human-readable input label.
func (f ContactField) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldEmail:
		return "Email Address"
	case FieldCompany:
		return "Company Name"
	case FieldProjectType:
		return "Project Type"
	case FieldMessage:
		return "Message"
	}
	return string(f)
}

// Required reports whether the field has a validation rule. Company is the
// only optional field.
func (f ContactField) Required() bool {
	return f.IsValid() && f != FieldCompany
}

// ParseContactField converts a form/JSON input name into a ContactField.
func ParseContactField(name string) (ContactField, bool) {
	f := ContactField(name)
	if !f.IsValid() {
		return "", false
	}
	return f, true
}

// =============================================================================
// Project Types
// =============================================================================

// ProjectType is the kind of engagement a visitor is asking about.
// The empty value means nothing has been selected yet.
type ProjectType string

const (
	ProjectTypeConsulting  ProjectType = "consulting"
	ProjectTypeDevelopment ProjectType = "development"
	ProjectTypeCloud       ProjectType = "cloud"
	ProjectTypeAnalytics   ProjectType = "analytics"
	ProjectTypeIntegration ProjectType = "integration"
	ProjectTypeSecurity    ProjectType = "security"
	ProjectTypeOther       ProjectType = "other"
)

// ProjectTypes lists the selectable project types in display order.
var ProjectTypes = []ProjectType{
	ProjectTypeConsulting,
	ProjectTypeDevelopment,
	ProjectTypeCloud,
	ProjectTypeAnalytics,
	ProjectTypeIntegration,
	ProjectTypeSecurity,
	ProjectTypeOther,
}

// String returns the string representation of the project type.
func (p ProjectType) String() string {
	return string(p)
}

// IsValid returns true if the project type is a member of the closed set.
// The empty (unselected) value is not valid.
func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectTypeConsulting, ProjectTypeDevelopment, ProjectTypeCloud,
		ProjectTypeAnalytics, ProjectTypeIntegration, ProjectTypeSecurity,
		ProjectTypeOther:
		return true
	}
	return false
}

// Label returns the display label used in the project type select.
func (p ProjectType) Label() string {
	switch p {
	case ProjectTypeConsulting:
		return "IT Consulting"
	case ProjectTypeDevelopment:
		return "Software Development"
	case ProjectTypeCloud:
		return "Cloud Solutions"
	case ProjectTypeAnalytics:
		return "Data Analytics"
	case ProjectTypeIntegration:
		return "System Integration"
	case ProjectTypeSecurity:
		return "Cybersecurity"
	case ProjectTypeOther:
		return "Other"
	}
	return ""
}

// =============================================================================
// Contact Submission
// =============================================================================

// ContactSubmission is the flat record handed to a submitter when the form
// is valid. The JSON keys match the form input names.
//
// The validate tags only bound input sizes; the user-facing rules live in
// ValidateField.
type ContactSubmission struct {
	FirstName   string      `json:"firstName" validate:"max=100"`
	LastName    string      `json:"lastName" validate:"max=100"`
	Email       string      `json:"email" validate:"max=254"`
	Company     string      `json:"company" validate:"max=200"`
	ProjectType ProjectType `json:"projectType" validate:"max=32"`
	Message     string      `json:"message" validate:"max=5000"`
}

// Get returns the value of the given field.
func (s ContactSubmission) Get(field ContactField) string {
	switch field {
	case FieldFirstName:
		return s.FirstName
	case FieldLastName:
		return s.LastName
	case FieldEmail:
		return s.Email
	case FieldCompany:
		return s.Company
	case FieldProjectType:
		return string(s.ProjectType)
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Set overwrites the given field. Unknown fields are ignored.
func (s *ContactSubmission) Set(field ContactField, value string) {
	switch field {
	case FieldFirstName:
		s.FirstName = value
	case FieldLastName:
		s.LastName = value
	case FieldEmail:
		s.Email = value
	case FieldCompany:
		s.Company = value
	case FieldProjectType:
		s.ProjectType = ProjectType(value)
	case FieldMessage:
		s.Message = value
	}
}

// IsZero reports whether every field is empty.
func (s ContactSubmission) IsZero() bool {
	return s == ContactSubmission{}
}

// FullName joins the trimmed first and last names.
func (s ContactSubmission) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
}

// Normalized returns a copy with every value in Unicode NFC form, so that
// composed and decomposed input count and store the same way.
func (s ContactSubmission) Normalized() ContactSubmission {
	return ContactSubmission{
		FirstName:   norm.NFC.String(s.FirstName),
		LastName:    norm.NFC.String(s.LastName),
		Email:       norm.NFC.String(s.Email),
		Company:     norm.NFC.String(s.Company),
		ProjectType: ProjectType(norm.NFC.String(string(s.ProjectType))),
		Message:     norm.NFC.String(s.Message),
	}
}
