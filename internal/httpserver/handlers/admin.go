package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mainra/showcase/internal/admin"
	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/httpserver/deps"
	"github.com/mainra/showcase/internal/logger"
)

// maxBodyBytes caps admin request bodies.
const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

type adminResponse struct {
	Notifications []admin.Notification `json:"notifications"`
	View          admin.View           `json:"view"`
	Error         string               `json:"error,omitempty"`
}

// AdminState returns the current admin view.
func AdminState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dispatch(w, r, d, admin.Snapshot{})
	}
}

// AdminSubmitGame adds a game, or updates the one being edited.
func AdminSubmitGame(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.GamePatch
		if err := decodeBody(w, r, &patch); err != nil {
			badRequest(w, r, d, err)
			return
		}
		dispatch(w, r, d, admin.SubmitGame{Patch: patch})
	}
}

// AdminEditGame puts a game into the edit form.
func AdminEditGame(d deps.Deps) http.HandlerFunc {
	return withGameID(d, func(id domain.GameID) admin.Command {
		return admin.EditGame{ID: id}
	})
}

// AdminCancelEdit leaves edit mode.
func AdminCancelEdit(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dispatch(w, r, d, admin.CancelEdit{})
	}
}

// AdminDeleteGame deletes a game when the request carries confirm=true.
func AdminDeleteGame(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := domain.ParseGameID(chi.URLParam(r, "id"))
		if err != nil {
			badRequest(w, r, d, err)
			return
		}
		confirmed, err := confirmParam(r)
		if err != nil {
			badRequest(w, r, d, err)
			return
		}
		dispatch(w, r, d, admin.DeleteGame{ID: id, Confirmed: confirmed})
	}
}

// AdminSelectHighlight targets a game in the highlight editor.
func AdminSelectHighlight(d deps.Deps) http.HandlerFunc {
	return withGameID(d, func(id domain.GameID) admin.Command {
		return admin.SelectHighlight{ID: id}
	})
}

// AdminPreviewHighlight updates the unsaved highlight form.
func AdminPreviewHighlight(d deps.Deps) http.HandlerFunc {
	return withHighlightFields(d, func(f domain.HighlightFields) admin.Command {
		return admin.PreviewHighlight{Fields: f}
	})
}

// AdminSaveHighlight saves the highlight for the selected game.
func AdminSaveHighlight(d deps.Deps) http.HandlerFunc {
	return withHighlightFields(d, func(f domain.HighlightFields) admin.Command {
		return admin.SaveHighlight{Fields: f}
	})
}

// AdminRemoveHighlight clears the highlight when the request carries
// confirm=true.
func AdminRemoveHighlight(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirmed, err := confirmParam(r)
		if err != nil {
			badRequest(w, r, d, err)
			return
		}
		dispatch(w, r, d, admin.RemoveHighlight{Confirmed: confirmed})
	}
}

// AdminExport downloads the working document as games-data.json and marks
// it saved.
func AdminExport(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := d.Controller.Dispatch(r.Context(), admin.Export{})
		if out.Err != nil {
			d.Logger.Error("export failed", logger.Error(out.Err))
			respond(w, r, d, out, out.Err)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", domain.ExportFileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(out.Export)))
		if _, err := w.Write(out.Export); err != nil {
			d.Logger.Debug("failed to write export", logger.Error(err))
		}
	}
}

func withGameID(d deps.Deps, cmd func(domain.GameID) admin.Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := domain.ParseGameID(chi.URLParam(r, "id"))
		if err != nil {
			badRequest(w, r, d, err)
			return
		}
		dispatch(w, r, d, cmd(id))
	}
}

func withHighlightFields(d deps.Deps, cmd func(domain.HighlightFields) admin.Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f domain.HighlightFields
		if err := decodeBody(w, r, &f); err != nil {
			badRequest(w, r, d, err)
			return
		}
		dispatch(w, r, d, cmd(f))
	}
}

func dispatch(w http.ResponseWriter, r *http.Request, d deps.Deps, cmd admin.Command) {
	out := d.Controller.Dispatch(r.Context(), cmd)
	respond(w, r, d, out, out.Err)
}

// badRequest answers 400 with the unchanged admin view.
func badRequest(w http.ResponseWriter, r *http.Request, d deps.Deps, err error) {
	out := d.Controller.Dispatch(r.Context(), admin.Snapshot{})
	respond(w, r, d, out, fmt.Errorf("%w: %v", errBadRequest, err))
}

func respond(w http.ResponseWriter, r *http.Request, d deps.Deps, out admin.Outcome, err error) {
	p := printer(d, r)
	resp := adminResponse{
		Notifications: out.Localized(p),
		View:          out.View(p),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, statusFor(err), resp, d.Logger)
}

// statusFor maps command errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, admin.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, admin.ErrNoHighlightTarget), errors.Is(err, admin.ErrNoActiveHighlight):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// confirmParam reads the confirm query parameter; absent means false.
func confirmParam(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("confirm")
	if raw == "" {
		return false, nil
	}
	ok, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid confirm value %q", raw)
	}
	return ok, nil
}
