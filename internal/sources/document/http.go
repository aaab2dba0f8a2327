package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/utils"
)

// maxDocumentBytes bounds how much of a remote document is read.
const maxDocumentBytes = 8 << 20

// HTTPSource fetches the published document from a URL.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for the document served at url.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string { return config.SourceStatic }

// Load performs a single GET. Non-2xx responses count as failures.
func (s *HTTPSource) Load(ctx context.Context) (*domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games document: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch games document: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read games document: %w", err)
	}
	return domain.DecodeDocument(data)
}
