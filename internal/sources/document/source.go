package document

import (
	"context"
	"fmt"
	"os"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/domain"
)

// Source produces a games document from one storage location.
type Source interface {
	Name() string
	Load(ctx context.Context) (*domain.Document, error)
}

// FileSource reads the published document from disk.
type FileSource struct {
	filePath string
}

// NewFileSource creates a source for the document at filePath.
func NewFileSource(filePath string) *FileSource {
	return &FileSource{
		filePath: filePath,
	}
}

func (s *FileSource) Name() string { return config.SourceStatic }

// Path returns the file the source reads.
func (s *FileSource) Path() string { return s.filePath }

// Load reads and parses the document file.
func (s *FileSource) Load(_ context.Context) (*domain.Document, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read games document: %w", err)
	}
	return domain.DecodeDocument(data)
}
