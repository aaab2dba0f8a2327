package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/store"
)

// SourceEmpty names the result of a chain in which every source failed.
const SourceEmpty = "empty"

// Failure records why one source in a chain could not be used.
type Failure struct {
	Source string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Source, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of a chain load.
type Result struct {
	Document *domain.Document
	Source   string // name of the source that produced Document
	Failures []Failure
	LoadedAt time.Time
}

// Failed reports whether the named source was tried and failed.
func (r Result) Failed(source string) bool {
	for _, f := range r.Failures {
		if f.Source == source {
			return true
		}
	}
	return false
}

// Chain tries its sources in order and keeps the first document it gets.
// When every source fails the result is the empty document.
type Chain struct {
	sources []Source
	logger  logger.Logger
	now     func() time.Time
}

// NewChain creates a loader over sources, tried in the given order.
func NewChain(log logger.Logger, sources ...Source) *Chain {
	return &Chain{
		sources: sources,
		logger:  log,
		now:     time.Now,
	}
}

// Sources returns the names of the chain's sources in order.
func (c *Chain) Sources() []string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return names
}

// Load walks the chain. It never returns an error: failures are logged,
// collected in the result and recovered by the next source.
func (c *Chain) Load(ctx context.Context) Result {
	res := Result{}
	for _, src := range c.sources {
		doc, err := src.Load(ctx)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Source: src.Name(), Err: err})
			if errors.Is(err, store.ErrCacheMiss) {
				c.logger.Debug("games document not cached",
					logger.String("source", src.Name()))
			} else {
				c.logger.Warn("failed to load games document",
					logger.String("source", src.Name()),
					logger.Error(err))
			}
			continue
		}
		res.Document = doc
		res.Source = src.Name()
		res.LoadedAt = c.now()
		c.logger.Info("loaded games document",
			logger.String("source", src.Name()),
			logger.Int("games", len(doc.Games)),
			logger.Bool("highlight", doc.Highlight.IsActive()))
		return res
	}

	c.logger.Warn("no games document source available, using empty document",
		logger.Strings("sources", c.Sources()))
	res.Document = domain.EmptyDocument()
	res.Source = SourceEmpty
	res.LoadedAt = c.now()
	return res
}
