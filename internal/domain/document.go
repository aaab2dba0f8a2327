package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ExportFileName is the name of the published document. Replacing the
// deployed file with an export is the only way to publish changes.
const ExportFileName = "games-data.json"

// ErrGameNotFound is returned when an operation names an unknown game.
var ErrGameNotFound = errors.New("game not found")

// Document is the persisted shape shared by the static file and the cache.
type Document struct {
	Games     []Game     `json:"games"`
	Highlight *Highlight `json:"highlight"`
}

// EmptyDocument returns a document with no games and no highlight.
func EmptyDocument() *Document {
	return &Document{Games: []Game{}}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return EmptyDocument()
	}
	out := &Document{Games: make([]Game, 0, len(d.Games))}
	for _, g := range d.Games {
		out.Games = append(out.Games, cloneGame(g))
	}
	if d.Highlight != nil {
		h := *d.Highlight
		out.Highlight = &h
	}
	return out
}

// DecodeDocument parses a document. Missing games decode to an empty list
// and a missing highlight to nil.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse games document: %w", err)
	}
	if doc.Games == nil {
		doc.Games = []Game{}
	}
	return &doc, nil
}

// Encode serializes d compactly, as stored in the cache.
func (d *Document) Encode() ([]byte, error) {
	data, err := json.Marshal(d.normalized())
	if err != nil {
		return nil, fmt.Errorf("failed to encode games document: %w", err)
	}
	return data, nil
}

// Export serializes d as indented JSON ready to replace the published file.
func (d *Document) Export() ([]byte, error) {
	data, err := json.MarshalIndent(d.normalized(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export games document: %w", err)
	}
	return append(data, '\n'), nil
}

func (d *Document) normalized() *Document {
	if d == nil {
		return EmptyDocument()
	}
	if d.Games == nil {
		out := *d
		out.Games = []Game{}
		return &out
	}
	return d
}
