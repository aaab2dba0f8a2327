package admin

import "github.com/mainra/showcase/internal/domain"

// Command is one admin action. Commands are applied by Controller.Dispatch.
type Command interface {
	command()
}

// SubmitGame adds a new game, or merges Patch into the game being edited.
type SubmitGame struct {
	Patch domain.GamePatch
}

// EditGame starts editing an existing game.
type EditGame struct {
	ID domain.GameID
}

// CancelEdit leaves edit mode; the next submit adds a game.
type CancelEdit struct{}

// DeleteGame removes a game. It does nothing until Confirmed.
type DeleteGame struct {
	ID        domain.GameID
	Confirmed bool
}

// SelectHighlight targets a game in the highlight editor.
type SelectHighlight struct {
	ID domain.GameID
}

// PreviewHighlight updates the highlight form without saving it.
type PreviewHighlight struct {
	Fields domain.HighlightFields
}

// SaveHighlight makes the selected game the active highlight.
type SaveHighlight struct {
	Fields domain.HighlightFields
}

// RemoveHighlight clears the highlight. It does nothing until Confirmed.
type RemoveHighlight struct {
	Confirmed bool
}

// Export serializes the working document for download.
type Export struct{}

// Snapshot reads the current state without changing it.
type Snapshot struct{}

func (SubmitGame) command()       {}
func (EditGame) command()         {}
func (CancelEdit) command()       {}
func (DeleteGame) command()       {}
func (SelectHighlight) command()  {}
func (PreviewHighlight) command() {}
func (SaveHighlight) command()    {}
func (RemoveHighlight) command()  {}
func (Export) command()           {}
func (Snapshot) command()         {}
