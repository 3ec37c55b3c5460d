package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"time"

	"github.com/disintegration/imaging"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/metrics"
	"github.com/DukeRupert/florian/internal/storage"
)

// ErrImageNotFound is returned for names outside the image registry or
// missing from the source directory.
var ErrImageNotFound = errors.New("image not found")

// Variant is a resized image ready to serve.
type Variant struct {
	Data        []byte
	ContentType string
	ModTime     time.Time
}

// ImageService serves registered site images at the configured widths.
// Variants are generated on first request and cached in storage under
// storage.VariantKey.
type ImageService struct {
	source  fs.FS
	images  content.ImageSet
	storage storage.Storage
	resizer Resizer
	logger  *slog.Logger
}

// NewImageService creates an ImageService reading originals from source,
// which is rooted at the images directory.
func NewImageService(
	source fs.FS,
	images content.ImageSet,
	store storage.Storage,
	resizer Resizer,
	logger *slog.Logger,
) *ImageService {
	return &ImageService{
		source:  source,
		images:  images,
		storage: store,
		resizer: resizer,
		logger:  logger,
	}
}

// Variant returns name resized to width.
// Returns ErrImageNotFound for unknown names and domain.EINVALID for widths
// that are not configured.
func (s *ImageService) Variant(ctx context.Context, name string, width int) (*Variant, error) {
	const op = "image.variant"

	if !s.images.Has(name) {
		return nil, ErrImageNotFound
	}
	if !s.images.AllowsWidth(width) {
		return nil, domain.Invalid(op, "width "+strconv.Itoa(width)+" is not allowed")
	}

	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return nil, domain.Internal(err, op, "unsupported image format")
	}
	key := storage.VariantKey(width, name)
	contentType := storage.DetectContentType("", name)

	if v, ok := s.cached(ctx, key, contentType); ok {
		metrics.ImageVariants.WithLabelValues("hit").Inc()
		return v, nil
	}

	f, err := s.source.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		return nil, domain.Internal(err, op, "failed to open source image")
	}
	defer f.Close()

	data, err := s.resizer.Resize(f, width, format)
	if err != nil {
		metrics.ImageVariants.WithLabelValues("error").Inc()
		return nil, domain.Internal(err, op, "failed to resize image")
	}
	metrics.ImageVariants.WithLabelValues("miss").Inc()

	// A failed cache write only costs a resize on the next request.
	err = s.storage.Put(ctx, key, bytes.NewReader(data), storage.PutOptions{
		ContentType: contentType,
		Overwrite:   true,
	})
	if err != nil {
		s.logger.Warn("failed to cache image variant", "key", key, "error", err)
	}

	modTime := time.Now()
	if info, err := f.Stat(); err == nil {
		modTime = info.ModTime()
	}

	return &Variant{Data: data, ContentType: contentType, ModTime: modTime}, nil
}

func (s *ImageService) cached(ctx context.Context, key, contentType string) (*Variant, bool) {
	rc, info, err := s.storage.Get(ctx, key)
	if err != nil {
		if !storage.IsNotFound(err) {
			s.logger.Warn("failed to read cached image variant", "key", key, "error", err)
		}
		return nil, false
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		s.logger.Warn("failed to read cached image variant", "key", key, "error", err)
		return nil, false
	}
	if info.ContentType != "" {
		contentType = info.ContentType
	}
	return &Variant{Data: data, ContentType: contentType, ModTime: info.LastModified}, true
}
