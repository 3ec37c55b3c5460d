package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"

	"github.com/DukeRupert/florian/internal/metrics"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

// Email kinds, used for template names and metrics labels.
const (
	KindNotification    = "contact_notification"
	KindAcknowledgement = "contact_acknowledgement"
)

// ErrHeaderInjection is returned when a header value contains a line break.
var ErrHeaderInjection = errors.New("email: header contains line break")

// =============================================================================
// SMTP Email Service Implementation
// =============================================================================

// SMTPEmailService sends emails via SMTP.
//
// Mailpit in development needs no authentication. Production relays use
// username/password over STARTTLS when the server offers it.
type SMTPEmailService struct {
	config SMTPConfig
	html   *htmltemplate.Template
	text   *texttemplate.Template
	logger *slog.Logger
	now    func() time.Time
}

// NewSMTPEmailService creates a new SMTP-based email service with the
// embedded templates.
func NewSMTPEmailService(config SMTPConfig, logger *slog.Logger) (*SMTPEmailService, error) {
	if config.From == "" {
		config.From = DefaultFromEmail
	}
	if config.FromName == "" {
		config.FromName = DefaultFromName
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	html, err := htmltemplate.New("email").Funcs(htmltemplate.FuncMap(emailTemplateFuncs())).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html email templates: %w", err)
	}
	text, err := texttemplate.New("email").Funcs(emailTemplateFuncs()).
		ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text email templates: %w", err)
	}

	return &SMTPEmailService{
		config: config,
		html:   html,
		text:   text,
		logger: logger,
		now:    time.Now,
	}, nil
}

// =============================================================================
// EmailService Interface Implementation
// =============================================================================

// SendContactNotification sends the enquiry to the department inbox with
// Reply-To set to the visitor.
func (s *SMTPEmailService) SendContactNotification(ctx context.Context, n ContactNotification) error {
	email, err := s.compose(KindNotification, n)
	if err != nil {
		return err
	}
	email.To = n.To
	email.ReplyTo = n.Email
	email.Subject = fmt.Sprintf("New %s enquiry from %s", n.ProjectType, n.Name)

	err = s.send(ctx, email)
	metrics.EmailSent(KindNotification, err)
	return err
}

// SendContactAcknowledgement thanks the visitor. Replies go to the
// department that will handle the enquiry.
func (s *SMTPEmailService) SendContactAcknowledgement(ctx context.Context, a ContactAcknowledgement) error {
	email, err := s.compose(KindAcknowledgement, a)
	if err != nil {
		return err
	}
	email.To = a.To
	email.ReplyTo = a.Department
	email.Subject = "We received your message"

	err = s.send(ctx, email)
	metrics.EmailSent(KindAcknowledgement, err)
	return err
}

// =============================================================================
// Internal Methods
// =============================================================================

// compose renders both bodies of kind.
func (s *SMTPEmailService) compose(kind string, data any) (Email, error) {
	var html, text bytes.Buffer
	if err := s.html.ExecuteTemplate(&html, kind+".html", data); err != nil {
		return Email{}, fmt.Errorf("failed to render %s html template: %w", kind, err)
	}
	if err := s.text.ExecuteTemplate(&text, kind+".txt", data); err != nil {
		return Email{}, fmt.Errorf("failed to render %s text template: %w", kind, err)
	}
	return Email{HTMLBody: html.String(), TextBody: text.String()}, nil
}

// send delivers email over one SMTP session. The session is bounded by the
// context deadline, or by config.Timeout when ctx has none.
func (s *SMTPEmailService) send(ctx context.Context, email Email) error {
	msg, err := s.buildMessage(email)
	if err != nil {
		return err
	}

	if err := s.deliver(ctx, email.To, msg); err != nil {
		s.logger.Error("failed to send email",
			"to", MaskAddress(email.To),
			"subject", email.Subject,
			"error", err,
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent",
		"to", MaskAddress(email.To),
		"subject", email.Subject,
	)
	return nil
}

func (s *SMTPEmailService) deliver(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	deadline, _ := ctx.Deadline()
	_ = conn.SetDeadline(deadline)

	// Unblock the session if ctx is cancelled mid-conversation.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.config.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	// Credentials are optional (Mailpit needs none).
	if s.config.Username != "" && s.config.Password != "" {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(s.config.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}
	return c.Quit()
}

// buildMessage constructs the raw multipart/alternative message. Both
// parts are quoted-printable so long lines and non-ASCII names survive.
func (s *SMTPEmailService) buildMessage(email Email) ([]byte, error) {
	for _, v := range []string{email.To, email.ReplyTo, email.Subject} {
		if strings.ContainsAny(v, "\r\n") {
			return nil, ErrHeaderInjection
		}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	from := fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.config.FromName), s.config.From)
	headers := []struct{ k, v string }{
		{"From", from},
		{"To", email.To},
		{"Reply-To", email.ReplyTo},
		{"Subject", mime.QEncoding.Encode("utf-8", email.Subject)},
		{"Date", s.now().UTC().Format(time.RFC1123Z)},
		{"Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), senderDomain(s.config.From))},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + mw.Boundary()},
	}

	var head bytes.Buffer
	for _, h := range headers {
		if h.v == "" {
			continue
		}
		fmt.Fprintf(&head, "%s: %s\r\n", h.k, h.v)
	}
	head.WriteString("\r\n")

	for _, part := range []struct{ contentType, body string }{
		{"text/plain; charset=UTF-8", email.TextBody},
		{"text/html; charset=UTF-8", email.HTMLBody},
	} {
		pw, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, err
		}
		qw := quotedprintable.NewWriter(pw)
		if _, err := qw.Write([]byte(part.body)); err != nil {
			return nil, err
		}
		if err := qw.Close(); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return append(head.Bytes(), buf.Bytes()...), nil
}

func senderDomain(addr string) string {
	if _, d, ok := strings.Cut(addr, "@"); ok && d != "" {
		return d
	}
	return "localhost"
}

// emailTemplateFuncs returns template functions shared by both template sets.
func emailTemplateFuncs() map[string]any {
	return map[string]any{
		"currentYear": func() int {
			return time.Now().Year()
		},
	}
}
