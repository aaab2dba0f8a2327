package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NoPlayLink is the sentinel playLink value meaning "no link yet".
const NoPlayLink = "#"

// GameID identifies a game in the catalog.
//
// The published document has historically carried ids both as JSON numbers
// and as numeric strings. Both are normalized to an integer here so that the
// rest of the code can use exact equality.
type GameID int64

// UnmarshalJSON accepts 42 as well as "42".
func (id *GameID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid game id %q: %w", string(data), err)
	}
	*id = GameID(n)
	return nil
}

// String returns the decimal form of the id.
func (id GameID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseGameID parses a decimal id coming from a URL or a form.
func ParseGameID(s string) (GameID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q: %w", s, err)
	}
	return GameID(n), nil
}

// Game is a single showcase entry.
type Game struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is assigned once when the game is added.
	ID GameID `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	Title       string `json:"title"`
	Description string `json:"description"`

	// Image is the main cover image URL.
	Image string `json:"image"`

	// Screenshots feed the highlight carousel. Renders fall back to Image.
	Screenshots []string `json:"screenshots,omitempty"`

	// PlayLink is a URL or NoPlayLink.
	PlayLink string `json:"playLink"`

	// ─────────────────────────────
	// Display metadata
	// ─────────────────────────────

	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Rating      string `json:"rating,omitempty"`

	// Featured games are eligible for the landing page.
	Featured bool `json:"featured"`
}

// HasPlayLink reports whether the game links somewhere playable.
func (g Game) HasPlayLink() bool {
	return g.PlayLink != "" && g.PlayLink != NoPlayLink
}

// ScreenshotCount is the number of images the game shows, at least one.
func (g Game) ScreenshotCount() int {
	if len(g.Screenshots) == 0 {
		return 1
	}
	return len(g.Screenshots)
}

// StatusClass normalizes Status for use as a CSS modifier.
// Example: "In Development" -> "indevelopment"
func (g Game) StatusClass() string {
	return strings.ReplaceAll(strings.ToLower(g.Status), " ", "")
}

// GameFields are the editable fields of a game, as submitted by the admin form.
type GameFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Screenshots []string `json:"screenshots,omitempty"`
	PlayLink    string   `json:"playLink"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	ReleaseDate string   `json:"releaseDate"`
	Platform    string   `json:"platform"`
	Rating      string   `json:"rating"`
	Featured    bool     `json:"featured"`
}

// Patch turns a full form submission into a patch that overwrites every field.
func (f GameFields) Patch() GamePatch {
	f = f.normalized()
	return GamePatch{
		Title:       &f.Title,
		Description: &f.Description,
		Image:       &f.Image,
		Screenshots: &f.Screenshots,
		PlayLink:    &f.PlayLink,
		Category:    &f.Category,
		Status:      &f.Status,
		ReleaseDate: &f.ReleaseDate,
		Platform:    &f.Platform,
		Rating:      &f.Rating,
		Featured:    &f.Featured,
	}
}

func (f GameFields) normalized() GameFields {
	if strings.TrimSpace(f.PlayLink) == "" {
		f.PlayLink = NoPlayLink
	}
	return f
}

// GamePatch is a shallow partial update. Nil fields are left untouched.
type GamePatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Screenshots *[]string `json:"screenshots,omitempty"`
	PlayLink    *string   `json:"playLink,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Status      *string   `json:"status,omitempty"`
	ReleaseDate *string   `json:"releaseDate,omitempty"`
	Platform    *string   `json:"platform,omitempty"`
	Rating      *string   `json:"rating,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// Fields returns the values set in p, zero where unset, as a new game
// would receive them.
func (p GamePatch) Fields() GameFields {
	var g Game
	p.apply(&g)
	return GameFields{
		Title:       g.Title,
		Description: g.Description,
		Image:       g.Image,
		Screenshots: g.Screenshots,
		PlayLink:    g.PlayLink,
		Category:    g.Category,
		Status:      g.Status,
		ReleaseDate: g.ReleaseDate,
		Platform:    g.Platform,
		Rating:      g.Rating,
		Featured:    g.Featured,
	}
}

func (p GamePatch) apply(g *Game) {
	if p.PlayLink != nil && strings.TrimSpace(*p.PlayLink) == "" {
		link := NoPlayLink
		p.PlayLink = &link
	}
	setString(&g.Title, p.Title)
	setString(&g.Description, p.Description)
	setString(&g.Image, p.Image)
	setString(&g.PlayLink, p.PlayLink)
	setString(&g.Category, p.Category)
	setString(&g.Status, p.Status)
	setString(&g.ReleaseDate, p.ReleaseDate)
	setString(&g.Platform, p.Platform)
	setString(&g.Rating, p.Rating)
	if p.Screenshots != nil {
		g.Screenshots = append([]string(nil), (*p.Screenshots)...)
	}
	if p.Featured != nil {
		g.Featured = *p.Featured
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
