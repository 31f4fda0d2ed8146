package storage

import (
	"context"
	"sync"
)

// MemoryStorage is an ObjectStorage for tests and local runs without a bucket.
type MemoryStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	publicURL string
}

func NewMemoryStorage(publicURL string) *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte), publicURL: publicURL}
}

func (m *MemoryStorage) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return m.publicURL + "/" + key, nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Object returns the stored bytes for key.
func (m *MemoryStorage) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}
