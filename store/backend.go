package store

import "context"

// Backend is the storage layer under the entity collections. Each named
// collection is a single JSON blob; Load returns (nil, nil) when the key has
// never been written.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// MemoryBackend keeps everything in a map. Used by tests and as a throwaway
// store when no persistence is configured.
type MemoryBackend struct {
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (m *MemoryBackend) Save(_ context.Context, key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
