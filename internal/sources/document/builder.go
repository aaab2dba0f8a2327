package document

import (
	"fmt"
	"time"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/store"
)

// Locations are the concrete storage locations a chain can be built from.
type Locations struct {
	// Static is the published document: a file path or an http(s) URL.
	Static       string
	FetchTimeout time.Duration
	Cache        store.DocumentCache
}

// StaticSource returns the source for the published document location.
func StaticSource(loc Locations) Source {
	if config.IsRemoteLocation(loc.Static) {
		return NewHTTPSource(loc.Static, loc.FetchTimeout)
	}
	return NewFileSource(loc.Static)
}

// BuildChain creates a chain from an ordered list of source names
// (see config.SourceStatic, config.SourceCache, config.SourceSample).
func BuildChain(names []string, loc Locations, log logger.Logger) (*Chain, error) {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		switch name {
		case config.SourceStatic:
			sources = append(sources, StaticSource(loc))
		case config.SourceCache:
			if loc.Cache == nil {
				return nil, fmt.Errorf("source %q requires a cache", name)
			}
			sources = append(sources, NewCacheSource(loc.Cache))
		case config.SourceSample:
			sources = append(sources, NewSampleSource())
		default:
			return nil, fmt.Errorf("unknown document source %q", name)
		}
	}
	return NewChain(log, sources...), nil
}
