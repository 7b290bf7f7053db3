// Package storage provides the keyed byte stores that back per-visitor
// favorites and recently visited items.
package storage

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// ErrNoStore is returned by providers that cannot resolve a store for a request.
var ErrNoStore = errors.New("no store available")

// Store is a keyed slot store. Get returns nil and no error when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Provider resolves the store of the visitor making a request. Providers may
// set cookies on w, so For must be called before the response is written.
type Provider interface {
	For(w http.ResponseWriter, r *http.Request) (Store, error)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}

type prefixed struct {
	store  Store
	prefix string
}

// Prefixed namespaces every key of store with prefix.
func Prefixed(store Store, prefix string) Store {
	return &prefixed{store: store, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.store.Set(ctx, p.prefix+key, value)
}
