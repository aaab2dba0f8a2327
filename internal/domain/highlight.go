package domain

import (
	"strings"
	"time"
)

// Stat display defaults used when a highlight leaves a counter empty.
const (
	DefaultGameplayStat   = "50+"
	DefaultCharactersStat = "25+"
	DefaultWorldsStat     = "5+"

	// DefaultRating is shown in the highlight stats when the game has none.
	DefaultRating = "4.5"
)

// Stats are the three counters shown next to the highlighted game.
type Stats struct {
	Gameplay   string `json:"gameplay,omitempty"`
	Characters string `json:"characters,omitempty"`
	Worlds     string `json:"worlds,omitempty"`
}

// DefaultStats returns the counters shown when nothing was entered.
func DefaultStats() Stats {
	return Stats{
		Gameplay:   DefaultGameplayStat,
		Characters: DefaultCharactersStat,
		Worlds:     DefaultWorldsStat,
	}
}

// WithDefaults fills every empty counter with its default.
func (s Stats) WithDefaults() Stats {
	d := DefaultStats()
	if v := strings.TrimSpace(s.Gameplay); v != "" {
		d.Gameplay = v
	}
	if v := strings.TrimSpace(s.Characters); v != "" {
		d.Characters = v
	}
	if v := strings.TrimSpace(s.Worlds); v != "" {
		d.Worlds = v
	}
	return d
}

// Highlight points at one catalog entry and overrides how it is presented.
//
// GameID is a weak reference: the game may have been deleted since the
// highlight was saved. Use ResolveDisplay rather than looking it up directly.
type Highlight struct {
	GameID            GameID    `json:"gameId"`
	CustomTitle       string    `json:"customTitle"`
	CustomDescription string    `json:"customDescription"`
	YoutubeURL        string    `json:"youtubeUrl"`
	Stats             Stats     `json:"stats"`
	Active            bool      `json:"active"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// IsActive reports whether h should be shown at all.
func (h *Highlight) IsActive() bool {
	return h != nil && h.Active
}

// HighlightFields are the values an admin enters for a highlight.
type HighlightFields struct {
	CustomTitle       string `json:"customTitle"`
	CustomDescription string `json:"customDescription"`
	YoutubeURL        string `json:"youtubeUrl"`
	Stats             Stats  `json:"stats"`
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f HighlightFields) Trimmed() HighlightFields {
	return HighlightFields{
		CustomTitle:       strings.TrimSpace(f.CustomTitle),
		CustomDescription: strings.TrimSpace(f.CustomDescription),
		YoutubeURL:        strings.TrimSpace(f.YoutubeURL),
		Stats: Stats{
			Gameplay:   strings.TrimSpace(f.Stats.Gameplay),
			Characters: strings.TrimSpace(f.Stats.Characters),
			Worlds:     strings.TrimSpace(f.Stats.Worlds),
		},
	}
}

// NewHighlight builds an active highlight for gameID with defaulted stats.
func NewHighlight(gameID GameID, fields HighlightFields, now time.Time) *Highlight {
	fields = fields.Trimmed()
	return &Highlight{
		GameID:            gameID,
		CustomTitle:       fields.CustomTitle,
		CustomDescription: fields.CustomDescription,
		YoutubeURL:        fields.YoutubeURL,
		Stats:             fields.Stats.WithDefaults(),
		Active:            true,
		LastUpdated:       now.UTC(),
	}
}

// Fields returns the editable values of h, as an edit form would show them.
func (h *Highlight) Fields() HighlightFields {
	if h == nil {
		return HighlightFields{}
	}
	return HighlightFields{
		CustomTitle:       h.CustomTitle,
		CustomDescription: h.CustomDescription,
		YoutubeURL:        h.YoutubeURL,
		Stats:             h.Stats,
	}
}

// DisplayState tells renderers which highlight block to show.
type DisplayState int

const (
	// HighlightNone means there is no highlight or it is inactive.
	HighlightNone DisplayState = iota
	// HighlightNotFound means the highlighted game is no longer in the catalog.
	HighlightNotFound
	// HighlightShown means Display holds a resolved highlight.
	HighlightShown
)

func (s DisplayState) String() string {
	switch s {
	case HighlightNotFound:
		return "not_found"
	case HighlightShown:
		return "shown"
	default:
		return "none"
	}
}

// Display is the effective content of a resolved highlight.
type Display struct {
	Game        Game
	Title       string
	Description string
	Stats       Stats
	Rating      string
	Image       string
	Screenshots []string
	PlayLink    string
	TrailerURL  string
	EmbedURL    string
}

// HasPlayLink reports whether the highlighted game can be played.
func (d Display) HasPlayLink() bool {
	return d.PlayLink != "" && d.PlayLink != NoPlayLink
}

// ResolveDisplay combines h with its game from games. Custom overrides win
// over the game's own fields when they are non-empty.
func ResolveDisplay(h *Highlight, games []Game) (Display, DisplayState) {
	if !h.IsActive() {
		return Display{}, HighlightNone
	}
	var (
		game  Game
		found bool
	)
	for _, g := range games {
		if g.ID == h.GameID {
			game, found = cloneGame(g), true
			break
		}
	}
	if !found {
		return Display{}, HighlightNotFound
	}
	return resolveFields(game, h.Fields()), HighlightShown
}

// PreviewDisplay resolves unsaved form values against game.
func PreviewDisplay(game Game, fields HighlightFields) Display {
	return resolveFields(cloneGame(game), fields.Trimmed())
}

func resolveFields(game Game, fields HighlightFields) Display {
	d := Display{
		Game:        game,
		Title:       firstNonEmpty(fields.CustomTitle, game.Title),
		Description: firstNonEmpty(fields.CustomDescription, game.Description),
		Stats:       fields.Stats.WithDefaults(),
		Rating:      firstNonEmpty(game.Rating, DefaultRating),
		Image:       game.Image,
		Screenshots: game.Screenshots,
		PlayLink:    game.PlayLink,
		TrailerURL:  fields.YoutubeURL,
	}
	if embed, ok := ParseVideoURL(fields.YoutubeURL); ok {
		d.EmbedURL = embed
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
