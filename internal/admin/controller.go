// Package admin implements the admin panel's application state: the
// working copy of the games document, the game edit form, the highlight
// editor and the unsaved-changes flag.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mainra/showcase/internal/config"
	"github.com/mainra/showcase/internal/domain"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/sources/document"
	"github.com/mainra/showcase/internal/store"
)

// ErrConfirmationRequired is returned by destructive commands sent without
// confirmation. Nothing is changed.
var ErrConfirmationRequired = errors.New("confirmation required")

// Loader produces the document the controller starts from.
type Loader interface {
	Load(ctx context.Context) document.Result
}

// Outcome is the result of one dispatched command.
type Outcome struct {
	State         State
	Notifications []Notification
	// Export holds the file content for an Export command.
	Export []byte
	Err    error
}

// State is a read-only copy of the controller state after a command.
type State struct {
	Games     []domain.Game
	Highlight *domain.Highlight
	EditID    *domain.GameID
	Editor    EditorSnapshot
	Unsaved   bool
	Source    string
	LoadedAt  time.Time
}

// EditorSnapshot is a copy of the highlight editor.
type EditorSnapshot struct {
	State  EditorState
	Target domain.GameID
	Form   domain.HighlightFields
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDGenerator replaces the notification id generator.
func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// Controller owns the admin state. All changes go through Dispatch, which
// serializes them.
type Controller struct {
	mu sync.Mutex

	catalog   *domain.Catalog
	highlight *domain.Highlight
	editID    *domain.GameID
	editor    HighlightEditor
	unsaved   bool
	source    string
	loadedAt  time.Time

	// notes collects the notifications of the command being dispatched;
	// pending holds load notifications until the next dispatch.
	notes   []Notification
	pending []Notification

	cache  store.DocumentCache
	logger logger.Logger
	now    func() time.Time
	newID  func() string
}

// NewController creates a controller with an empty document. Call Load to
// fill it.
func NewController(cache store.DocumentCache, log logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		catalog: domain.NewCatalog(nil),
		source:  document.SourceEmpty,
		cache:   cache,
		logger:  log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the working copy with the loader's document and resets
// every in-progress edit. A failure of the published document is reported
// to the admin with the next dispatched command.
func (c *Controller) Load(ctx context.Context, loader Loader) document.Result {
	res := loader.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalog = domain.NewCatalog(res.Document.Games)
	c.highlight = nil
	if res.Document.Highlight != nil {
		h := *res.Document.Highlight
		c.highlight = &h
	}
	c.editID = nil
	c.editor.Reset()
	c.unsaved = false
	c.source = res.Source
	c.loadedAt = res.LoadedAt

	if res.Failed(config.SourceStatic) {
		c.pending = append(c.pending, c.notification(LevelDanger, msgLoadFailed))
	}

	c.logger.Info("admin document loaded",
		logger.String("source", res.Source),
		logger.Int("games", c.catalog.Len()),
		logger.Bool("highlight", c.highlight.IsActive()))
	return res
}

// Dispatch applies cmd and returns the resulting state.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes = c.pending
	c.pending = nil

	var (
		out Outcome
		err error
	)
	switch cmd := cmd.(type) {
	case SubmitGame:
		err = c.submitGame(ctx, cmd)
	case EditGame:
		err = c.editGame(cmd)
	case CancelEdit:
		c.editID = nil
	case DeleteGame:
		err = c.deleteGame(ctx, cmd)
	case SelectHighlight:
		err = c.selectHighlight(cmd)
	case PreviewHighlight:
		err = c.editor.Edit(cmd.Fields)
	case SaveHighlight:
		err = c.saveHighlight(ctx, cmd)
	case RemoveHighlight:
		err = c.removeHighlight(ctx, cmd)
	case Export:
		out.Export, err = c.export()
	case Snapshot:
	default:
		err = fmt.Errorf("unknown admin command %T", cmd)
	}

	if err != nil {
		c.logger.Debug("admin command rejected",
			logger.String("command", fmt.Sprintf("%T", cmd)),
			logger.Error(err))
	}

	out.Err = err
	out.Notifications = c.notes
	out.State = c.state()
	c.notes = nil
	return out
}

// State returns the current state. Unlike a Snapshot command it leaves
// queued notifications for the admin.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

func (c *Controller) submitGame(ctx context.Context, cmd SubmitGame) error {
	if c.editID == nil {
		g := c.catalog.Add(cmd.Patch.Fields(), c.now())
		c.persistLocal(ctx)
		c.notify(LevelSuccess, msgGameAdded)
		c.logger.Info("game added", logger.Int64("id", int64(g.ID)), logger.String("title", g.Title))
		return nil
	}

	id := *c.editID
	c.editID = nil
	if !c.catalog.Update(id, cmd.Patch) {
		c.notify(LevelWarning, msgGameNotFound)
		return fmt.Errorf("update game %s: %w", id, domain.ErrGameNotFound)
	}
	c.persistLocal(ctx)
	c.notify(LevelSuccess, msgGameUpdated)
	c.logger.Info("game updated", logger.Int64("id", int64(id)))
	return nil
}

func (c *Controller) editGame(cmd EditGame) error {
	if _, ok := c.catalog.Find(cmd.ID); !ok {
		c.notify(LevelWarning, msgGameNotFound)
		return fmt.Errorf("edit game %s: %w", cmd.ID, domain.ErrGameNotFound)
	}
	id := cmd.ID
	c.editID = &id
	return nil
}

func (c *Controller) deleteGame(ctx context.Context, cmd DeleteGame) error {
	if _, ok := c.catalog.Find(cmd.ID); !ok {
		c.notify(LevelWarning, msgGameNotFound)
		return fmt.Errorf("delete game %s: %w", cmd.ID, domain.ErrGameNotFound)
	}
	if !cmd.Confirmed {
		c.notify(LevelWarning, msgConfirmRequired)
		return ErrConfirmationRequired
	}

	removed := c.catalog.Delete(cmd.ID)
	if c.editID != nil && *c.editID == cmd.ID {
		c.editID = nil
	}
	if target, ok := c.editor.Target(); ok && target == cmd.ID {
		c.editor.Reset()
	}
	c.persistLocal(ctx)
	c.notify(LevelSuccess, msgGameDeleted)
	c.logger.Info("game deleted", logger.Int64("id", int64(cmd.ID)), logger.Int("removed", removed))
	return nil
}

func (c *Controller) selectHighlight(cmd SelectHighlight) error {
	if _, ok := c.catalog.Find(cmd.ID); !ok {
		c.notify(LevelWarning, msgGameNotFound)
		return fmt.Errorf("select highlight %s: %w", cmd.ID, domain.ErrGameNotFound)
	}
	c.editor.Select(cmd.ID, c.highlight)
	return nil
}

func (c *Controller) saveHighlight(ctx context.Context, cmd SaveHighlight) error {
	target, ok := c.editor.Target()
	if !ok {
		c.notify(LevelDanger, msgSelectGameFirst)
		return ErrNoHighlightTarget
	}
	game, ok := c.catalog.Find(target)
	if !ok {
		c.editor.Reset()
		c.notify(LevelWarning, msgGameNotFound)
		return fmt.Errorf("save highlight %s: %w", target, domain.ErrGameNotFound)
	}

	h, err := c.editor.Save(cmd.Fields, c.now())
	if err != nil {
		c.notify(LevelDanger, msgSelectGameFirst)
		return err
	}
	c.highlight = h
	c.persistLocal(ctx)
	c.notify(LevelSuccess, msgHighlightSaved, game.Title)
	c.logger.Info("highlight saved", logger.Int64("game_id", int64(target)))
	return nil
}

func (c *Controller) removeHighlight(ctx context.Context, cmd RemoveHighlight) error {
	if !c.highlight.IsActive() {
		c.notify(LevelWarning, msgNoHighlight)
		return ErrNoActiveHighlight
	}
	if !cmd.Confirmed {
		c.notify(LevelWarning, msgConfirmRequired)
		return ErrConfirmationRequired
	}

	c.highlight = nil
	c.editor.Reset()
	c.persistLocal(ctx)
	c.notify(LevelSuccess, msgHighlightRemoved)
	c.logger.Info("highlight removed")
	return nil
}

func (c *Controller) export() ([]byte, error) {
	data, err := c.document().Export()
	if err != nil {
		return nil, err
	}
	c.unsaved = false
	c.notify(LevelSuccess, msgExported)
	c.logger.Info("games document exported", logger.Int("bytes", len(data)))
	return data, nil
}

// persistLocal mirrors the working copy into the cache. A failed write
// keeps the in-memory state and warns the admin.
func (c *Controller) persistLocal(ctx context.Context) {
	c.unsaved = true
	if err := c.cache.Save(ctx, c.document()); err != nil {
		c.logger.Warn("failed to cache games document", logger.Error(err))
		c.notify(LevelWarning, msgCacheFailed)
	}
}

func (c *Controller) document() *domain.Document {
	doc := &domain.Document{Games: c.catalog.Games()}
	if c.highlight != nil {
		h := *c.highlight
		doc.Highlight = &h
	}
	return doc
}

func (c *Controller) state() State {
	s := State{
		Games:    c.catalog.Games(),
		Unsaved:  c.unsaved,
		Source:   c.source,
		LoadedAt: c.loadedAt,
		Editor: EditorSnapshot{
			State:  c.editor.State(),
			Form:   c.editor.Form(),
			Target: c.editor.target,
		},
	}
	if c.highlight != nil {
		h := *c.highlight
		s.Highlight = &h
	}
	if c.editID != nil {
		id := *c.editID
		s.EditID = &id
	}
	return s
}

func (c *Controller) notify(level Level, key string, args ...any) {
	c.notes = append(c.notes, c.notification(level, key, args...))
}

func (c *Controller) notification(level Level, key string, args ...any) Notification {
	return Notification{
		ID:             c.newID(),
		Level:          level,
		Key:            key,
		DismissAfterMs: DismissAfter.Milliseconds(),
		args:           args,
	}
}
