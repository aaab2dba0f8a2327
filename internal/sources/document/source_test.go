package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/store"
)

const validDocument = `{
  "games": [
    {"id": 1, "title": "Adventure Quest", "image": "aq.png", "playLink": "#", "featured": true},
    {"id": "2", "title": "Space Defender", "image": "sd.png", "playLink": "#"}
  ],
  "highlight": {"gameId": 2, "customTitle": "", "stats": {}, "active": true}
}`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games-data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test document: %v", err)
	}
	return path
}

func TestFileSourceLoad(t *testing.T) {
	src := NewFileSource(writeDocument(t, validDocument))

	doc, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Games) != 2 {
		t.Fatalf("Load() returned %d games, want 2", len(doc.Games))
	}
	if doc.Games[1].ID != 2 {
		t.Errorf("string id not normalized: got %v", doc.Games[1].ID)
	}
	if doc.Highlight == nil || doc.Highlight.GameID != 2 {
		t.Errorf("Load() highlight = %+v, want game 2", doc.Highlight)
	}
}

func TestFileSourceLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: "/nonexistent/path/games-data.json"},
		{name: "malformed json", path: writeDocument(t, `{"games": [`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFileSource(tt.path).Load(context.Background()); err == nil {
				t.Error("Load() should return an error")
			}
		})
	}
}

func TestHTTPSourceLoad(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games-data.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validDocument))
	}))
	defer ts.Close()

	doc, err := NewHTTPSource(ts.URL+"/games-data.json", time.Second).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Games) != 2 {
		t.Errorf("Load() returned %d games, want 2", len(doc.Games))
	}

	if _, err := NewHTTPSource(ts.URL+"/missing.json", time.Second).Load(context.Background()); err == nil {
		t.Error("Load() on a 404 should return an error")
	}
}

func TestSampleSourceLoad(t *testing.T) {
	doc, err := NewSampleSource().Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Games) != 3 {
		t.Fatalf("sample has %d games, want 3", len(doc.Games))
	}
	if doc.Games[1].Title != "Space Defender" {
		t.Errorf("second sample game = %q, want Space Defender", doc.Games[1].Title)
	}
	h := doc.Highlight
	if h == nil || !h.Active || h.GameID != 2 {
		t.Fatalf("sample highlight = %+v, want active highlight on game 2", h)
	}
	if h.Stats.Gameplay != "100+" || h.Stats.Worlds != "10+" {
		t.Errorf("sample stats = %+v", h.Stats)
	}
	if _, state := domain.ResolveDisplay(h, doc.Games); state != domain.HighlightShown {
		t.Errorf("sample highlight should resolve, got %v", state)
	}
}

func TestCacheSourceMiss(t *testing.T) {
	if _, err := NewCacheSource(store.NewMemory()).Load(context.Background()); err == nil {
		t.Error("Load() on empty cache should return an error")
	}
}

func TestSourceNamesMatchConfig(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{src: NewFileSource("games-data.json"), want: config.SourceStatic},
		{src: NewHTTPSource("https://cdn.example.com/games-data.json", time.Second), want: config.SourceStatic},
		{src: NewCacheSource(store.NewMemory()), want: config.SourceCache},
		{src: NewSampleSource(), want: config.SourceSample},
	}
	for _, tt := range tests {
		if got := tt.src.Name(); got != tt.want {
			t.Errorf("%T.Name() = %q, want %q", tt.src, got, tt.want)
		}
	}

	// A missing published file is what the admin is warned about.
	chain := NewChain(logger.New("error", false), NewFileSource(filepath.Join(t.TempDir(), "missing.json")))
	if res := chain.Load(context.Background()); !res.Failed(config.SourceStatic) {
		t.Errorf("Failed(%q) = false, failures %v", config.SourceStatic, res.Failures)
	}
}
