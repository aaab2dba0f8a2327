package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/httpserver/mw"
	"github.com/mainra/showcase/internal/i18n"
	"github.com/mainra/showcase/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any, log logger.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug("failed to write response", logger.Error(err))
	}
}

// printer returns the request's printer, resolving it when the Language
// middleware did not run.
func printer(d deps.Deps, r *http.Request) *i18n.Printer {
	if p := mw.Printer(r.Context()); p != nil {
		return p
	}
	return d.Bundle.ForRequest(r)
}
