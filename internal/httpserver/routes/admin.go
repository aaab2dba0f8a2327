package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/httpserver/handlers"
	"github.com/mainra/showcase/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(
			mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
			mw.EnforceHost(d.AllowedHosts, d.Logger),
			middleware.NoCache,
			mw.Language(d.Bundle),
		)

		r.Get("/state", handlers.AdminState(d))
		r.Get("/export", handlers.AdminExport(d))

		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(mw.RateLimitConfig{
				Burst:             d.AdminRateBurst,
				RefillPerIPPerMin: d.AdminRatePerMin,
				MaxEntries:        1024,
				TrustProxy:        d.TrustProxy,
				Logger:            d.Logger,
			}))

			r.Post("/games", handlers.AdminSubmitGame(d))
			r.Post("/games/{id}/edit", handlers.AdminEditGame(d))
			r.Delete("/games/{id}", handlers.AdminDeleteGame(d))
			r.Post("/edit/cancel", handlers.AdminCancelEdit(d))

			r.Post("/highlight/select/{id}", handlers.AdminSelectHighlight(d))
			r.Post("/highlight/preview", handlers.AdminPreviewHighlight(d))
			r.Post("/highlight", handlers.AdminSaveHighlight(d))
			r.Delete("/highlight", handlers.AdminRemoveHighlight(d))
		})
	})
}
