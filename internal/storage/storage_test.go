package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(LocalConfig{BasePath: t.TempDir()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func TestLocalStorage_PutGet(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "contact/2025/01/02/a.json", strings.NewReader(`{"ok":true}`), PutOptions{}))

	rc, info, err := s.Get(ctx, "contact/2025/01/02/a.json")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, "application/json", info.ContentType)

	ok, err := s.Exists(ctx, "contact/2025/01/02/a.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalStorage_PutRespectsOverwrite(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k.txt", strings.NewReader("one"), PutOptions{}))

	err := s.Put(ctx, "k.txt", strings.NewReader("two"), PutOptions{})
	assert.True(t, IsKeyExists(err))

	require.NoError(t, s.Put(ctx, "k.txt", strings.NewReader("three"), PutOptions{Overwrite: true}))
	rc, _, err := s.Get(ctx, "k.txt")
	require.NoError(t, err)
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "three", string(body))
}

func TestLocalStorage_MaxSize(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	err := s.Put(ctx, "big.bin", strings.NewReader("0123456789"), PutOptions{MaxSize: 4})
	assert.ErrorIs(t, err, ErrTooLarge)

	ok, err := s.Exists(ctx, "big.bin")
	require.NoError(t, err)
	assert.False(t, ok, "oversized object must not be left behind")
}

func TestLocalStorage_NotFoundAndDelete(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	_, _, err := s.Get(ctx, "missing.png")
	assert.True(t, IsNotFound(err))

	require.NoError(t, s.Delete(ctx, "missing.png"))

	require.NoError(t, s.Put(ctx, "gone.png", strings.NewReader("x"), PutOptions{}))
	require.NoError(t, s.Delete(ctx, "gone.png"))
	ok, err := s.Exists(ctx, "gone.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/../../b"} {
		err := s.Put(ctx, key, strings.NewReader("x"), PutOptions{})
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestLocalStorage_CanceledContext(t *testing.T) {
	s := newLocal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Put(ctx, "a", strings.NewReader("x"), PutOptions{}), context.Canceled)
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b")
	at := time.Date(2025, 2, 3, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	assert.Equal(t, "contact/2025/02/04/6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b.json", ArchiveKey(id, at))
	assert.Equal(t, "images/640/it_services.png", VariantKey(640, "it_services.png"))
	assert.Equal(t, "images/640/passwd", VariantKey(640, "../../etc/passwd"))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "text/html", DetectContentType("text/html", "x.png"))
	assert.Equal(t, "image/png", DetectContentType("", "a/b.PNG"))
	assert.Equal(t, "application/json", DetectContentType("", "a.json"))
	assert.Equal(t, "application/octet-stream", DetectContentType("", "noext"))
	assert.True(t, IsImage("image/jpeg; q=1"))
	assert.False(t, IsImage("application/json"))
}

func TestWrapS3Error(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", ErrNotFound},
		{"NotFound", ErrNotFound},
		{"AccessDenied", ErrAccessDenied},
		{"PreconditionFailed", ErrKeyExists},
	}
	for _, tc := range tests {
		err := wrapS3Error(&smithy.GenericAPIError{Code: tc.code})
		assert.ErrorIs(t, err, tc.want, tc.code)
	}

	other := wrapS3Error(errors.New("connection reset"))
	assert.Contains(t, other.Error(), "R2 operation failed")
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "ftp"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
