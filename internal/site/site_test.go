package site

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mainra/showcase/internal/domain"
)

func TestRendererPages(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	doc := &domain.Document{
		Games: []domain.Game{{
			ID:          1,
			Title:       "Space <Defender>",
			Description: "Shoot **everything**",
			Image:       "main.jpg",
			Featured:    true,
			PlayLink:    "https://play.example.com",
		}},
		Highlight: &domain.Highlight{GameID: 1, Active: true},
	}

	home := BuildHome(doc, keyTranslator{}, 0)
	home.LiveReload = true
	var buf bytes.Buffer
	if err := r.Render(&buf, PageHome, home); err != nil {
		t.Fatalf("render home: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<html lang="en">`,
		"Space &lt;Defender&gt;",
		"<strong>everything</strong>",
		`class="nav-link active">nav.home`,
		"/ws",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home page missing %q", want)
		}
	}

	buf.Reset()
	if err := r.Render(&buf, PageGames, BuildGames(doc, keyTranslator{})); err != nil {
		t.Fatalf("render games: %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, "carousel-slide active") {
		t.Error("games page missing active carousel slide")
	}
	if strings.Contains(out, "/ws") {
		t.Error("live reload script rendered while disabled")
	}
}

func TestRendererEmptyStates(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, PageGames, BuildGames(domain.EmptyDocument(), keyTranslator{})); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"empty-no_games", "empty-no_highlight", "games.empty.title"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRendererUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "admin", nil); err == nil {
		t.Error("expected error for unknown page")
	}
}

func TestStaticHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".games-grid") {
		t.Error("stylesheet content missing")
	}
}
