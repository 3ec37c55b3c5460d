// Package service holds the site's backend operations: storing contact
// submissions for delivery and serving resized images.
package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
	"golang.org/x/crypto/blake2b"

	"github.com/DukeRupert/florian/internal/contact"
	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/email"
	"github.com/DukeRupert/florian/internal/repository"
	"github.com/DukeRupert/florian/internal/storage"
	"github.com/DukeRupert/florian/internal/worker"
)

// =============================================================================
// Store
// =============================================================================

// ContactQueries are the repository calls made while storing a submission.
type ContactQueries interface {
	CreateContactSubmission(ctx context.Context, arg repository.CreateContactSubmissionParams) (repository.ContactSubmission, error)
	SetContactArchiveKey(ctx context.Context, arg repository.SetContactArchiveKeyParams) error
	EnqueueJob(ctx context.Context, arg repository.EnqueueJobParams) (repository.Job, error)
}

// ContactStore adds transactions to ContactQueries.
type ContactStore interface {
	ContactQueries

	// InTx runs fn inside one transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(q ContactQueries) error) error
}

// SQLContactStore is the Postgres ContactStore.
type SQLContactStore struct {
	*repository.Queries
	db *sql.DB
}

// NewSQLContactStore creates a SQLContactStore.
func NewSQLContactStore(db *sql.DB, queries *repository.Queries) *SQLContactStore {
	return &SQLContactStore{Queries: queries, db: db}
}

func (s *SQLContactStore) InTx(ctx context.Context, fn func(q ContactQueries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// =============================================================================
// Service
// =============================================================================

// ContactService stores contact submissions and queues their notification
// emails. It implements contact.Submitter.
type ContactService struct {
	store     ContactStore
	storage   storage.Storage
	ipHashKey []byte
	logger    *slog.Logger
	now       func() time.Time
}

// NewContactService creates a ContactService. ipHashKey keys the blake2b
// hash of client IPs and may be at most 64 bytes.
func NewContactService(
	store ContactStore,
	archive storage.Storage,
	ipHashKey []byte,
	logger *slog.Logger,
) (*ContactService, error) {
	if len(ipHashKey) > blake2b.Size {
		return nil, fmt.Errorf("ip hash key must be at most %d bytes, got %d", blake2b.Size, len(ipHashKey))
	}
	return &ContactService{
		store:     store,
		storage:   archive,
		ipHashKey: ipHashKey,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// archiveRecord is the JSON document written to storage for each submission.
type archiveRecord struct {
	ID          uuid.UUID                `json:"id"`
	SubmittedAt time.Time                `json:"submitted_at"`
	Department  string                   `json:"department"`
	IPHash      string                   `json:"ip_hash,omitempty"`
	Submission  domain.ContactSubmission `json:"submission"`
	Request     *contact.RequestMeta     `json:"request,omitempty"`
}

// Submit stores sub and enqueues its notify_contact job in one transaction,
// then archives a JSON copy. Any failure before the commit is returned as
// domain.EUNAVAILABLE. Archive failures are only logged.
func (s *ContactService) Submit(ctx context.Context, sub domain.ContactSubmission) error {
	const op = "contact.submit"

	sub = sub.Normalized()
	id := uuid.New()
	department := content.DepartmentFor(sub.ProjectType)

	meta, hasMeta := contact.RequestMetaFrom(ctx)
	ipHash := ""
	if hasMeta && meta.ClientIP != "" {
		ipHash = s.hashIP(meta.ClientIP)
	}

	var metadata pqtype.NullRawMessage
	if hasMeta {
		raw, err := json.Marshal(meta)
		if err != nil {
			return domain.Internal(err, op, "failed to encode request metadata")
		}
		metadata = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	var stored repository.ContactSubmission
	err := s.store.InTx(ctx, func(q ContactQueries) error {
		var err error
		stored, err = q.CreateContactSubmission(ctx, repository.CreateContactSubmissionParams{
			ID:          id,
			FirstName:   sub.FirstName,
			LastName:    sub.LastName,
			Email:       sub.Email,
			Company:     sub.Company,
			ProjectType: string(sub.ProjectType),
			Message:     sub.Message,
			Department:  department,
			IpHash:      ipHash,
			Metadata:    metadata,
		})
		if err != nil {
			return fmt.Errorf("insert contact submission: %w", err)
		}
		if _, err := worker.EnqueueNotifyContact(ctx, q, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to store contact submission",
			"submission_id", id,
			"email", email.MaskAddress(sub.Email),
			"error", err,
		)
		return domain.Unavailable(err, op, "Your message could not be delivered right now.")
	}

	s.logger.Info("contact submission stored",
		"submission_id", id,
		"project_type", sub.ProjectType,
		"department", department,
		"email", email.MaskAddress(sub.Email),
	)

	submittedAt := stored.CreatedAt
	if submittedAt.IsZero() {
		submittedAt = s.now()
	}
	rec := archiveRecord{
		ID:          id,
		SubmittedAt: submittedAt.UTC(),
		Department:  department,
		IPHash:      ipHash,
		Submission:  sub,
	}
	if hasMeta {
		rec.Request = &meta
	}
	s.archive(ctx, rec)

	return nil
}

// archive writes rec to storage and records its key. Failures are logged;
// the submission is already safely stored.
func (s *ContactService) archive(ctx context.Context, rec archiveRecord) {
	if s.storage == nil {
		return
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode contact archive", "submission_id", rec.ID, "error", err)
		return
	}

	key := storage.ArchiveKey(rec.ID, rec.SubmittedAt)
	err = s.storage.Put(ctx, key, bytes.NewReader(data), storage.PutOptions{
		ContentType: "application/json",
	})
	if err != nil {
		s.logger.Error("failed to archive contact submission",
			"submission_id", rec.ID,
			"key", key,
			"error", err,
		)
		return
	}

	err = s.store.SetContactArchiveKey(ctx, repository.SetContactArchiveKeyParams{
		ID:         rec.ID,
		ArchiveKey: sql.NullString{String: key, Valid: true},
	})
	if err != nil {
		s.logger.Error("failed to record contact archive key",
			"submission_id", rec.ID,
			"key", key,
			"error", err,
		)
	}
}

// hashIP returns the hex keyed blake2b-256 digest of ip.
func (s *ContactService) hashIP(ip string) string {
	h, err := blake2b.New256(s.ipHashKey)
	if err != nil {
		// Key length is checked in NewContactService.
		panic(err)
	}
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil))
}

var (
	_ contact.Submitter = (*ContactService)(nil)
	_ ContactStore      = (*SQLContactStore)(nil)
)
