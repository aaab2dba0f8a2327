package handlers

import (
	"net/http"

	"github.com/mainra/showcase/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready  bool   `json:"ready"`
	Source string `json:"source,omitempty"`
}

// Readyz is ready once the published document has been loaded, even when
// it came from a fallback source.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		if !d.Snapshot.Loaded() {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false}, d.Logger)
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true, Source: d.Snapshot.Source()}, d.Logger)
	}
}
