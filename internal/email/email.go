// Package email sends the contact form's transactional emails: the internal
// notification to a department inbox and the acknowledgement to the visitor.
//
// SMTPEmailService talks to any SMTP server (Mailpit in development, the
// mail provider's relay in production). LogEmailService only logs, for
// environments without SMTP.
package email

import (
	"context"
	"strings"
	"time"
)

// =============================================================================
// Interface Definition
// =============================================================================

// EmailService sends the contact emails. All methods honour ctx.
type EmailService interface {
	// SendContactNotification tells a department inbox about a new enquiry.
	// Replies go to the visitor.
	SendContactNotification(ctx context.Context, n ContactNotification) error

	// SendContactAcknowledgement confirms receipt to the visitor.
	SendContactAcknowledgement(ctx context.Context, a ContactAcknowledgement) error
}

// =============================================================================
// Email Data Types
// =============================================================================

// Email represents a single email message.
type Email struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// ContactNotification is the data for the internal notification email.
type ContactNotification struct {
	To           string // department inbox
	SubmissionID string
	Name         string
	Email        string
	Company      string
	ProjectType  string // display label
	Message      string
	SubmittedAt  time.Time
}

// ContactAcknowledgement is the data for the visitor's confirmation email.
type ContactAcknowledgement struct {
	To          string
	Name        string
	ProjectType string // display label
	Department  string // inbox that will answer
	Phone       string
}

// =============================================================================
// Configuration Types
// =============================================================================

// SMTPConfig holds SMTP server configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // empty for servers without auth
	Password string
	From     string
	FromName string
	Timeout  time.Duration // dial and session timeout when ctx has no deadline
}

const (
	// DefaultFromEmail is the default sender email for transactional emails.
	DefaultFromEmail = "noreply@florian-technologies.com"

	// DefaultFromName is the default sender display name.
	DefaultFromName = "Florian Technologies"

	defaultTimeout = 30 * time.Second
)

// MaskAddress hides most of the local part of an email address so logs can
// tell messages apart without recording who sent them: jane@example.com
// becomes j***@example.com.
func MaskAddress(addr string) string {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domain
}
