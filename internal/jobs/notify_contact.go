// Package jobs contains the background job handlers run by the worker.
package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/email"
	"github.com/DukeRupert/florian/internal/repository"
	"github.com/DukeRupert/florian/internal/worker"
)

// ContactStore is the slice of the repository the notify job needs.
type ContactStore interface {
	GetContactSubmission(ctx context.Context, id uuid.UUID) (repository.ContactSubmission, error)
	MarkContactNotified(ctx context.Context, id uuid.UUID) error
}

// NotifyContactHandler emails a stored contact submission to its department
// and sends the visitor an acknowledgement.
type NotifyContactHandler struct {
	store        ContactStore
	emailService email.EmailService
	site         *content.Site
	override     string
	logger       *slog.Logger
}

// NewNotifyContactHandler creates the handler. A non-empty override sends
// every notification to that inbox instead of the routed department, which
// keeps staging from mailing real teams.
func NewNotifyContactHandler(
	store ContactStore,
	emailService email.EmailService,
	site *content.Site,
	override string,
	logger *slog.Logger,
) *NotifyContactHandler {
	return &NotifyContactHandler{
		store:        store,
		emailService: emailService,
		site:         site,
		override:     override,
		logger:       logger,
	}
}

// Type returns the job type identifier.
func (h *NotifyContactHandler) Type() string {
	return worker.JobTypeNotifyContact
}

// Handle sends both emails and stamps the submission as notified. A
// submission that was already notified is skipped, so a retry after the
// final UPDATE failed does not mail twice.
func (h *NotifyContactHandler) Handle(ctx context.Context, payload []byte) error {
	var p worker.NotifyContactPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return worker.NewPermanentError(fmt.Errorf("invalid payload: %w", err))
	}
	if p.SubmissionID == uuid.Nil {
		return worker.Permanentf("payload missing submission_id")
	}

	sub, err := h.store.GetContactSubmission(ctx, p.SubmissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return worker.Permanentf("contact submission not found: %s", p.SubmissionID)
		}
		return fmt.Errorf("fetch contact submission: %w", err)
	}
	if sub.NotifiedAt.Valid {
		h.logger.Info("contact submission already notified", "submission_id", sub.ID)
		return nil
	}

	department := h.departmentFor(sub)
	label := domain.ProjectType(sub.ProjectType).Label()
	if label == "" {
		label = "General"
	}
	name := displayName(sub.FirstName, sub.LastName)

	err = h.emailService.SendContactNotification(ctx, email.ContactNotification{
		To:           department,
		SubmissionID: sub.ID.String(),
		Name:         name,
		Email:        sub.Email,
		Company:      sub.Company,
		ProjectType:  label,
		Message:      sub.Message,
		SubmittedAt:  sub.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	// The visitor's copy is best effort. Failing here would retry the job
	// and duplicate the internal notification.
	err = h.emailService.SendContactAcknowledgement(ctx, email.ContactAcknowledgement{
		To:          sub.Email,
		Name:        displayName(sub.FirstName, ""),
		ProjectType: label,
		Department:  department,
		Phone:       h.site.Contact.Emergency.Phone,
	})
	if err != nil {
		h.logger.Warn("failed to send contact acknowledgement",
			"submission_id", sub.ID,
			"to", email.MaskAddress(sub.Email),
			"error", err,
		)
	}

	if err := h.store.MarkContactNotified(ctx, sub.ID); err != nil {
		return fmt.Errorf("mark contact notified: %w", err)
	}

	h.logger.Info("contact submission notified",
		"submission_id", sub.ID,
		"department", department,
		"project_type", sub.ProjectType,
	)
	return nil
}

func (h *NotifyContactHandler) departmentFor(sub repository.ContactSubmission) string {
	if h.override != "" {
		return h.override
	}
	if sub.Department != "" {
		return sub.Department
	}
	return content.DepartmentFor(domain.ProjectType(sub.ProjectType))
}

// displayName joins the name parts. A name typed entirely in lower case is
// title-cased; anything else is kept as the visitor wrote it.
func displayName(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name != "" && name == strings.ToLower(name) {
		return cases.Title(language.English).String(name)
	}
	return name
}
