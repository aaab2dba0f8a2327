// Package site builds and renders the public showcase pages.
package site

import (
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/mainra/showcase/internal/domain"
)

// PlaceholderImage replaces images that fail to load.
const PlaceholderImage = "https://placehold.co/600x400/333/fff?text=No+Image"

// DefaultFeaturedLimit is the number of featured games on the landing page.
const DefaultFeaturedLimit = 3

// Translator formats display strings in the visitor's language.
type Translator interface {
	T(key string, args ...any) string
	Lang() string
}

// EmptyKind identifies which empty state a page shows.
type EmptyKind string

const (
	EmptyNoFeatured        EmptyKind = "no_featured"
	EmptyNoGames           EmptyKind = "no_games"
	EmptyNoHighlight       EmptyKind = "no_highlight"
	EmptyHighlightNotFound EmptyKind = "highlight_not_found"
)

// EmptyState is a placeholder block shown instead of content.
type EmptyState struct {
	Kind  EmptyKind
	Icon  string
	Title string
	Body  string
}

// Page carries what the layout needs.
type Page struct {
	Lang       string
	SiteTitle  string
	Active     string
	Nav        Nav
	LiveReload bool
}

// Nav holds the navigation labels.
type Nav struct {
	Home  string
	Games string
	Menu  string
}

// GameItem is one game card.
type GameItem struct {
	ID           string
	Title        string
	Description  template.HTML
	Image        string
	Placeholder  string
	Platform     string
	Rating       string
	Stars        string
	PlayLink     string
	PlayLabel    string
	ComingSoon   string
	DetailsLabel string
}

// HomeView is the landing page.
type HomeView struct {
	Page
	Heading string
	Games   []GameItem
	Empty   *EmptyState
}

// GamesView is the listing page with the highlight block.
type GamesView struct {
	Page
	Heading          string
	Games            []GameItem
	Empty            *EmptyState
	HighlightHeading string
	Highlight        *HighlightBlock
	HighlightEmpty   *EmptyState
}

// HighlightBlock is a resolved highlight ready to render.
type HighlightBlock struct {
	Title        string
	Description  template.HTML
	Tagline      string
	Stats        []Stat
	PlayLink     string
	PlayLabel    string
	TrailerURL   string
	TrailerLabel string
	Slides       []Slide
}

// Stat is one labelled counter.
type Stat struct {
	Value string
	Label string
}

// Slide is one carousel image.
type Slide struct {
	Src      string
	Alt      string
	Fallback string
	Active   bool
}

func newPage(t Translator, active string) Page {
	return Page{
		Lang:      t.Lang(),
		SiteTitle: t.T("site.title"),
		Active:    active,
		Nav: Nav{
			Home:  t.T("nav.home"),
			Games: t.T("nav.games"),
			Menu:  t.T("nav.menu"),
		},
	}
}

// BuildHome renders the landing page model: the first limit featured games,
// or the "no featured games" state. limit <= 0 uses DefaultFeaturedLimit.
func BuildHome(doc *domain.Document, t Translator, limit int) HomeView {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	v := HomeView{
		Page:    newPage(t, PageHome),
		Heading: t.T("home.heading"),
	}
	featured := domain.FeaturedGames(doc.Games, limit)
	if len(featured) == 0 {
		v.Empty = &EmptyState{Kind: EmptyNoFeatured, Icon: "gamepad", Body: t.T("home.empty")}
		return v
	}
	for _, g := range featured {
		item := gameItem(g, t)
		item.PlayLabel = t.T("action.play_now")
		v.Games = append(v.Games, item)
	}
	return v
}

// BuildGames renders the listing page model: every game and the
// highlight, each with its own empty state.
func BuildGames(doc *domain.Document, t Translator) GamesView {
	v := GamesView{
		Page:             newPage(t, PageGames),
		Heading:          t.T("games.heading"),
		HighlightHeading: t.T("highlight.heading"),
	}

	if len(doc.Games) == 0 {
		v.Empty = &EmptyState{
			Kind:  EmptyNoGames,
			Icon:  "gamepad",
			Title: t.T("games.empty.title"),
			Body:  t.T("games.empty.body"),
		}
	}
	for _, g := range doc.Games {
		v.Games = append(v.Games, gameItem(g, t))
	}

	d, state := domain.ResolveDisplay(doc.Highlight, doc.Games)
	switch state {
	case domain.HighlightNone:
		v.HighlightEmpty = &EmptyState{
			Kind:  EmptyNoHighlight,
			Icon:  "crown",
			Title: t.T("highlight.none.title"),
			Body:  t.T("highlight.none.body"),
		}
	case domain.HighlightNotFound:
		v.HighlightEmpty = &EmptyState{
			Kind:  EmptyHighlightNotFound,
			Icon:  "exclamation-triangle",
			Title: t.T("highlight.not_found.title"),
			Body:  t.T("highlight.not_found.body"),
		}
	case domain.HighlightShown:
		v.Highlight = highlightBlock(d, t)
	}
	return v
}

func gameItem(g domain.Game, t Translator) GameItem {
	item := GameItem{
		ID:           g.ID.String(),
		Title:        g.Title,
		Description:  renderDescription(g.Description),
		Image:        g.Image,
		Placeholder:  PlaceholderImage,
		Platform:     g.Platform,
		Rating:       g.Rating,
		Stars:        stars(g.Rating),
		PlayLabel:    t.T("action.play"),
		ComingSoon:   t.T("action.coming_soon"),
		DetailsLabel: t.T("action.details"),
	}
	if item.Platform == "" {
		item.Platform = t.T("platform.multi")
	}
	if g.HasPlayLink() {
		item.PlayLink = g.PlayLink
	}
	return item
}

func highlightBlock(d domain.Display, t Translator) *HighlightBlock {
	b := &HighlightBlock{
		Title:       d.Title,
		Description: renderDescription(d.Description),
		Tagline:     t.T("highlight.tagline", d.Title),
		Stats: []Stat{
			{Value: d.Stats.Gameplay, Label: t.T("stat.gameplay")},
			{Value: d.Stats.Characters, Label: t.T("stat.characters")},
			{Value: d.Stats.Worlds, Label: t.T("stat.worlds")},
			{Value: d.Rating, Label: t.T("stat.rating")},
		},
	}

	if d.HasPlayLink() {
		b.PlayLink = d.PlayLink
		b.PlayLabel = t.T("action.play_now")
	} else {
		b.PlayLabel = t.T("action.coming_soon")
	}
	if d.TrailerURL != "" {
		b.TrailerURL = d.TrailerURL
		b.TrailerLabel = t.T("action.watch_trailer")
	} else {
		b.TrailerLabel = t.T("action.game_details")
	}

	if len(d.Screenshots) == 0 {
		b.Slides = []Slide{{Src: d.Image, Alt: d.Title, Fallback: PlaceholderImage, Active: true}}
		return b
	}
	for i, src := range d.Screenshots {
		b.Slides = append(b.Slides, Slide{
			Src:      src,
			Alt:      t.T("highlight.screenshot_alt", d.Title, i+1),
			Fallback: d.Image,
			Active:   i == 0,
		})
	}
	return b
}

// stars renders a rating such as "4.8" as one star per whole point.
func stars(rating string) string {
	r, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
	if err != nil || math.IsNaN(r) || r < 1 {
		return ""
	}
	return strings.Repeat("★", int(math.Min(math.Floor(r), 5)))
}
