package admin

import "time"

// Level is the severity of a notification, also used as its CSS modifier.
type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
	LevelWarning Level = "warning"
)

// DismissAfter is how long a notification stays on screen.
const DismissAfter = 5 * time.Second

// Translator formats a catalog message in the caller's language.
type Translator interface {
	T(key string, args ...any) string
}

// Notification is a transient message shown to the admin.
type Notification struct {
	ID             string `json:"id"`
	Level          Level  `json:"level"`
	Key            string `json:"key"`
	Message        string `json:"message,omitempty"`
	DismissAfterMs int64  `json:"dismissAfterMs"`

	args []any
}

// Localize returns n with Message filled in.
func (n Notification) Localize(t Translator) Notification {
	n.Message = t.T(n.Key, n.args...)
	return n
}

// Message keys of the notifications the controller emits.
const (
	msgLoadFailed       = "notify.load_failed"
	msgGameAdded        = "notify.game_added"
	msgGameUpdated      = "notify.game_updated"
	msgGameDeleted      = "notify.game_deleted"
	msgGameNotFound     = "notify.game_not_found"
	msgSelectGameFirst  = "notify.select_game_first"
	msgHighlightSaved   = "notify.highlight_saved"
	msgHighlightRemoved = "notify.highlight_removed"
	msgNoHighlight      = "notify.no_highlight"
	msgExported         = "notify.exported"
	msgCacheFailed      = "notify.cache_failed"
	msgConfirmRequired  = "notify.confirm_required"
)
