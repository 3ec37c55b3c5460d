package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/florian/internal/content"
	"github.com/DukeRupert/florian/internal/domain"
	"github.com/DukeRupert/florian/internal/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 46, G: 125, B: 50, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

type countingResizer struct {
	Resizer
	calls int
	err   error
}

func (r *countingResizer) Resize(src io.Reader, width int, format imaging.Format) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.Resizer.Resize(src, width, format)
}

func newImageService(t *testing.T, store storage.Storage, resizer Resizer) *ImageService {
	t.Helper()
	source := fstest.MapFS{
		"it_services.png": {Data: pngBytes(t, 800, 400)},
		"get_in_touch.png": {Data: pngBytes(t, 300, 150)},
	}
	return NewImageService(source, content.Default().Images, store, resizer,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestImageService_ResizesAndCaches(t *testing.T) {
	store := newMemStorage()
	resizer := &countingResizer{Resizer: NewImagingResizer()}
	svc := newImageService(t, store, resizer)
	ctx := context.Background()

	v, err := svc.Variant(ctx, "it_services.png", 640)
	require.NoError(t, err)
	assert.Equal(t, "image/png", v.ContentType)
	w, h := decodeSize(t, v.Data)
	assert.Equal(t, 640, w)
	assert.Equal(t, 320, h, "aspect ratio is kept")

	assert.Contains(t, store.objects, storage.VariantKey(640, "it_services.png"))

	again, err := svc.Variant(ctx, "it_services.png", 640)
	require.NoError(t, err)
	assert.Equal(t, v.Data, again.Data)
	assert.Equal(t, 1, resizer.calls, "second request is served from storage")
}

func TestImageService_NeverUpscales(t *testing.T) {
	svc := newImageService(t, newMemStorage(), NewImagingResizer())

	v, err := svc.Variant(context.Background(), "get_in_touch.png", 1200)
	require.NoError(t, err)
	w, h := decodeSize(t, v.Data)
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)
}

func TestImageService_Errors(t *testing.T) {
	svc := newImageService(t, newMemStorage(), NewImagingResizer())
	ctx := context.Background()

	_, err := svc.Variant(ctx, "../../etc/passwd", 640)
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, err = svc.Variant(ctx, "unknown.png", 640)
	assert.ErrorIs(t, err, ErrImageNotFound)

	// Registered but absent from the source directory.
	_, err = svc.Variant(ctx, "domain_expertise.png", 640)
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, err = svc.Variant(ctx, "it_services.png", 500)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestImageService_CacheWriteFailureStillServes(t *testing.T) {
	store := newMemStorage()
	store.putErr = errors.New("read-only filesystem")
	svc := newImageService(t, store, NewImagingResizer())

	v, err := svc.Variant(context.Background(), "it_services.png", 384)
	require.NoError(t, err)
	w, _ := decodeSize(t, v.Data)
	assert.Equal(t, 384, w)
}

func TestImageService_ResizeFailure(t *testing.T) {
	svc := newImageService(t, newMemStorage(), &countingResizer{err: errors.New("corrupt")})

	_, err := svc.Variant(context.Background(), "it_services.png", 640)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
}
