// Package storage stores the site's generated objects: contact submission
// archives and resized image variants.
//
// Two backends implement Storage:
//   - LocalStorage keeps objects under a directory, for development
//   - R2Storage keeps them in a Cloudflare R2 bucket through the S3 API
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Storage is a flat key/value object store. All methods honour ctx.
type Storage interface {
	// Put stores data at key. It fails with ErrKeyExists when the key is
	// taken, unless opts.Overwrite is set.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get opens the object at key. The caller must close the reader.
	// Returns ErrNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is stored at key.
	Exists(ctx context.Context, key string) (bool, error)
}

// =============================================================================
// Data Types
// =============================================================================

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType is detected from the key's extension when empty.
	ContentType string

	// MaxSize rejects objects larger than this many bytes with ErrTooLarge.
	// Zero means no limit.
	MaxSize int64

	// Overwrite replaces an existing object at the same key.
	Overwrite bool
}

// ObjectInfo contains metadata about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// =============================================================================
// Configuration
// =============================================================================

const (
	ProviderLocal = "local"
	ProviderR2    = "r2"
)

// Config selects and configures a backend.
type Config struct {
	Provider string
	Local    LocalConfig
	R2       R2Config
}

// LocalConfig holds configuration for local filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory, e.g. "./data/storage".
	BasePath string
}

// R2Config holds configuration for Cloudflare R2 storage.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// Region is required by the SDK but ignored by R2. Default: "auto".
	Region string

	// Endpoint overrides the account endpoint, for S3-compatible test servers.
	Endpoint string
}

// New creates the backend named by cfg.Provider.
func New(cfg Config, logger *slog.Logger) (Storage, error) {
	switch cfg.Provider {
	case ProviderLocal, "":
		return NewLocalStorage(cfg.Local, logger)
	case ProviderR2:
		return NewR2Storage(cfg.R2, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// =============================================================================
// Key Generation Helpers
// =============================================================================

// ArchiveKey is where a contact submission's JSON archive is stored.
// Format: contact/YYYY/MM/DD/{id}.json, dated in UTC.
func ArchiveKey(id uuid.UUID, at time.Time) string {
	return path.Join("contact", at.UTC().Format("2006/01/02"), id.String()+".json")
}

// VariantKey is where a resized site image is cached.
// Format: images/{width}/{name}
func VariantKey(width int, name string) string {
	return path.Join("images", strconv.Itoa(width), path.Base(name))
}
