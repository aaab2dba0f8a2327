package document

import (
	"context"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/store"
)

// CacheSource reads the working copy kept in the local cache.
type CacheSource struct {
	cache store.DocumentCache
}

// NewCacheSource wraps cache as a Source.
func NewCacheSource(cache store.DocumentCache) *CacheSource {
	return &CacheSource{cache: cache}
}

func (s *CacheSource) Name() string { return config.SourceCache }

func (s *CacheSource) Load(ctx context.Context) (*domain.Document, error) {
	return s.cache.Load(ctx)
}
