package document

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/domain"
)

//go:embed sample.yaml
var sampleYAML []byte

// SampleSource serves the built-in sample content. It never fails unless
// the embedded file itself is broken.
type SampleSource struct {
	data []byte
}

// NewSampleSource returns a source for the embedded sample content.
func NewSampleSource() *SampleSource {
	return &SampleSource{data: sampleYAML}
}

func (s *SampleSource) Name() string { return config.SourceSample }

func (s *SampleSource) Load(_ context.Context) (*domain.Document, error) {
	var file sampleFile
	if err := yaml.Unmarshal(s.data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sample yaml: %w", err)
	}
	return mapSample(file), nil
}

// mapSample converts the YAML layout into a domain document.
func mapSample(file sampleFile) *domain.Document {
	doc := domain.EmptyDocument()
	for _, g := range file.Games {
		doc.Games = append(doc.Games, domain.Game{
			ID:          domain.GameID(g.ID),
			Title:       g.Title,
			Description: g.Description,
			Image:       g.Image,
			Screenshots: g.Screenshots,
			PlayLink:    g.PlayLink,
			Category:    g.Category,
			Status:      g.Status,
			ReleaseDate: g.ReleaseDate,
			Featured:    g.Featured,
			Platform:    g.Platform,
			Rating:      g.Rating,
		})
	}
	if h := file.Highlight; h != nil {
		doc.Highlight = &domain.Highlight{
			GameID:            domain.GameID(h.GameID),
			CustomTitle:       h.CustomTitle,
			CustomDescription: h.CustomDescription,
			YoutubeURL:        h.YoutubeURL,
			Stats: domain.Stats{
				Gameplay:   h.Stats["gameplay"],
				Characters: h.Stats["characters"],
				Worlds:     h.Stats["worlds"],
			},
			Active:      h.Active,
			LastUpdated: h.LastUpdated.UTC(),
		}
	}
	return doc
}
