package service

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/DukeRupert/florian/internal/storage"
)

// memStorage is an in-memory storage.Storage.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	putErr  error
	puts    int
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStorage) Put(_ context.Context, key string, data io.Reader, opts storage.PutOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	if _, ok := m.objects[key]; ok && !opts.Overwrite {
		return storage.ErrKeyExists
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.objects[key] = b
	m.types[key] = opts.ContentType
	return nil
}

func (m *memStorage) Get(_ context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[key]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), storage.ObjectInfo{
		Key:          key,
		Size:         int64(len(b)),
		ContentType:  m.types[key],
		LastModified: time.Unix(0, 0),
	}, nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memStorage) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

var _ storage.Storage = (*memStorage)(nil)
