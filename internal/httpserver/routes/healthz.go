package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/httpserver/handlers"
)

func init() { Register(registerHealthz) }

func registerHealthz(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}
