package email

import (
	"context"
	"log/slog"
)

// LogEmailService records emails in the log instead of sending them. It is
// used when no SMTP host is configured.
type LogEmailService struct {
	logger *slog.Logger
}

// NewLogEmailService creates a LogEmailService.
func NewLogEmailService(logger *slog.Logger) *LogEmailService {
	return &LogEmailService{logger: logger}
}

func (s *LogEmailService) SendContactNotification(ctx context.Context, n ContactNotification) error {
	s.logger.InfoContext(ctx, "email not sent (smtp disabled)",
		"kind", KindNotification,
		"to", n.To,
		"submission_id", n.SubmissionID,
		"project_type", n.ProjectType,
	)
	return nil
}

func (s *LogEmailService) SendContactAcknowledgement(ctx context.Context, a ContactAcknowledgement) error {
	s.logger.InfoContext(ctx, "email not sent (smtp disabled)",
		"kind", KindAcknowledgement,
		"to", MaskAddress(a.To),
		"department", a.Department,
	)
	return nil
}

var (
	_ EmailService = (*SMTPEmailService)(nil)
	_ EmailService = (*LogEmailService)(nil)
)
