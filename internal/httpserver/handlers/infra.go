package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/httpserver/deps"
)

const redisPingTimeout = 2 * time.Second

type componentStatus struct {
	OK          bool   `json:"ok"`
	GamesLoaded *int   `json:"games_loaded,omitempty"`
	Source      string `json:"source,omitempty"`
	LastReload  string `json:"last_reload,omitempty"`
	Unsaved     *bool  `json:"unsaved,omitempty"`
	Clients     *int   `json:"clients,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the published document, the admin working
// copy, the local cache and the live reload hub.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"document": documentStatus(d),
			"admin":    adminStatus(d),
			"cache":    cacheStatus(r.Context(), d),
		}
		if d.Hub != nil {
			n := d.Hub.Clients()
			components["live"] = componentStatus{OK: true, Clients: &n}
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		}, d.Logger)
	}
}

func documentStatus(d deps.Deps) componentStatus {
	count := d.Snapshot.Count()
	last := "never"
	if t := d.Snapshot.LastReload(); !t.IsZero() {
		last = t.Format(time.DateTime)
	}
	return componentStatus{
		OK:          d.Snapshot.Loaded(),
		GamesLoaded: &count,
		Source:      d.Snapshot.Source(),
		LastReload:  last,
	}
}

func adminStatus(d deps.Deps) componentStatus {
	s := d.Controller.State()
	count, unsaved := len(s.Games), s.Unsaved
	return componentStatus{
		OK:          true,
		GamesLoaded: &count,
		Source:      s.Source,
		Unsaved:     &unsaved,
	}
}

func cacheStatus(ctx context.Context, d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "memory",
			Impact: "admin-edits-lost-on-restart",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "redis",
			Impact: "admin-edits-not-mirrored",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true, Mode: "redis"}
}

// determineMode is "critical" without a published document, "degraded"
// when it came from a fallback or the cache is down, else "nominal".
func determineMode(components map[string]componentStatus) string {
	doc := components["document"]
	if !doc.OK {
		return "critical"
	}
	if cache := components["cache"]; !cache.OK {
		return "degraded"
	}
	if doc.Source != config.SourceStatic {
		return "degraded"
	}
	return "nominal"
}
