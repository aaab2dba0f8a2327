package admin

import (
	"errors"
	"time"

	"github.com/mainra/showcase/internal/domain"
)

var (
	// ErrNoHighlightTarget is returned when saving a highlight before a game was selected.
	ErrNoHighlightTarget = errors.New("no game selected for highlight")
	// ErrNoActiveHighlight is returned when removing a highlight that does not exist.
	ErrNoActiveHighlight = errors.New("no active highlight")
)

// EditorState is the step of the highlight workflow.
type EditorState int

const (
	EditorUnselected EditorState = iota
	EditorSelected
	EditorSaved
)

func (s EditorState) String() string {
	switch s {
	case EditorSelected:
		return "selected"
	case EditorSaved:
		return "saved"
	default:
		return "unselected"
	}
}

// HighlightEditor tracks which game the highlight form targets and the
// values typed so far. Nothing here is persisted until Save.
//
//	Unselected -> Selected(id) -> Saved
//	any        -> Selected(other id)  (form values are discarded)
//	Saved      -> Unselected          (on removal)
type HighlightEditor struct {
	state  EditorState
	target domain.GameID
	form   domain.HighlightFields
}

// Select targets id. The form is filled from current when it already
// highlights id, and cleared otherwise.
func (e *HighlightEditor) Select(id domain.GameID, current *domain.Highlight) {
	e.state = EditorSelected
	e.target = id
	if current != nil && current.GameID == id {
		e.form = current.Fields()
	} else {
		e.form = domain.HighlightFields{}
	}
}

// Edit replaces the form values without saving them.
func (e *HighlightEditor) Edit(fields domain.HighlightFields) error {
	if e.state == EditorUnselected {
		return ErrNoHighlightTarget
	}
	e.form = fields
	return nil
}

// Save builds the highlight for the selected game from fields.
func (e *HighlightEditor) Save(fields domain.HighlightFields, now time.Time) (*domain.Highlight, error) {
	if e.state == EditorUnselected {
		return nil, ErrNoHighlightTarget
	}
	h := domain.NewHighlight(e.target, fields, now)
	e.state = EditorSaved
	e.form = h.Fields()
	return h, nil
}

// Reset returns to Unselected.
func (e *HighlightEditor) Reset() {
	*e = HighlightEditor{}
}

// Target returns the selected game, if any.
func (e *HighlightEditor) Target() (domain.GameID, bool) {
	return e.target, e.state != EditorUnselected
}

// State returns the current step.
func (e *HighlightEditor) State() EditorState { return e.state }

// Form returns the current form values.
func (e *HighlightEditor) Form() domain.HighlightFields { return e.form }
