package handlers

import (
	"bytes"
	"net/http"

	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/site"
)

// Home renders the landing page with the featured games.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := site.BuildHome(d.Snapshot.Document(), printer(d, r), d.FeaturedLimit)
		v.LiveReload = d.LiveReload
		renderPage(w, d, site.PageHome, v)
	}
}

// Games renders the full listing and the highlight block.
func Games(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := site.BuildGames(d.Snapshot.Document(), printer(d, r))
		v.LiveReload = d.LiveReload
		renderPage(w, d, site.PageGames, v)
	}
}

// GamesData serves the published document as it was loaded.
func GamesData(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := d.Snapshot.Document().Export()
		if err != nil {
			d.Logger.Error("failed to encode published document", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := w.Write(data); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

// renderPage buffers the page so a template error never sends half a page.
func renderPage(w http.ResponseWriter, d deps.Deps, page string, data any) {
	var buf bytes.Buffer
	if err := d.Renderer.Render(&buf, page, data); err != nil {
		d.Logger.Error("failed to render page", logger.String("page", page), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}
