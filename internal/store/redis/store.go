package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/store"
)

// Store keeps the working copy of the games document as a single JSON value.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore creates a Redis-backed document cache under DocumentKey(name).
func NewStore(client *redis.Client, name string) *Store {
	return &Store{
		client: client,
		key:    DocumentKey(name),
	}
}

var _ store.DocumentCache = (*Store)(nil)

// Key returns the Redis key the document is stored under.
func (s *Store) Key() string {
	return s.key
}

// Load retrieves the cached document, or store.ErrCacheMiss.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached document: %w", err)
	}
	return domain.DecodeDocument(data)
}

// Save overwrites the cached document. The value never expires.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cached document: %w", err)
	}
	return nil
}

// Ping checks that the server answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
