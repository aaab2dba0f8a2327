package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mainra/showcase/internal/domain"
)

// ErrCacheMiss is returned by DocumentCache.Load when nothing is cached yet.
var ErrCacheMiss = errors.New("document not cached")

// DocumentCache is the writable working copy of the games document.
// Save always overwrites whatever was cached before.
type DocumentCache interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// Memory is an in-process DocumentCache. It is used when no Redis server is
// configured; its content does not survive a restart.
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{}
}

// Load decodes the cached document or returns ErrCacheMiss.
func (m *Memory) Load(_ context.Context) (*domain.Document, error) {
	m.mu.RLock()
	data := m.data
	m.mu.RUnlock()

	if data == nil {
		return nil, ErrCacheMiss
	}
	return domain.DecodeDocument(data)
}

// Save stores an encoded copy of doc, so later mutations of doc are not seen.
func (m *Memory) Save(_ context.Context, doc *domain.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}
