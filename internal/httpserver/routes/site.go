package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/httpserver/handlers"
	"github.com/mainra/showcase/internal/httpserver/mw"
	"github.com/mainra/showcase/internal/site"
)

func init() { Register(registerSite) }

func registerSite(r chi.Router, d deps.Deps) {
	r.With(mw.Language(d.Bundle)).Get("/", handlers.Home(d))
	r.With(mw.Language(d.Bundle)).Get("/games", handlers.Games(d))
	r.Get("/games-data.json", handlers.GamesData(d))
	r.Handle("/static/*", site.StaticHandler())
}
