package index

import (
	"sync"
	"time"

	"github.com/mainra/showcase/internal/domain"
)

// Snapshot holds the published games document served to visitors.
// Readers always see a complete document; the reloader replaces it whole.
type Snapshot struct {
	mu         sync.RWMutex
	doc        *domain.Document
	source     string    // chain source that produced doc
	lastReload time.Time // zero until the first Replace
}

// NewSnapshot creates a snapshot holding the empty document.
func NewSnapshot() *Snapshot {
	return &Snapshot{doc: domain.EmptyDocument()}
}

// Replace swaps in a new document
func (s *Snapshot) Replace(doc *domain.Document, source string, at time.Time) {
	if doc == nil {
		doc = domain.EmptyDocument()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc
	s.source = source
	s.lastReload = at
}

// Document returns a copy of the current document.
func (s *Snapshot) Document() *domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.doc.Clone()
}

// Source returns the name of the source the current document came from.
func (s *Snapshot) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.source
}

// Count returns the number of games in the current document
func (s *Snapshot) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.doc.Games)
}

// LastReload returns when the document was last replaced.
func (s *Snapshot) LastReload() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastReload
}

// Loaded reports whether a document has been loaded at least once.
func (s *Snapshot) Loaded() bool {
	return !s.LastReload().IsZero()
}
