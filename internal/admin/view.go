package admin

import "github.com/mainra/showcase/internal/domain"

const (
	selectorDescriptionLimit = 80
	previewDescriptionLimit  = 100
)

// View is everything the admin panel shows, localized.
type View struct {
	Games         []GameCard       `json:"games"`
	GamesEmpty    string           `json:"gamesEmpty,omitempty"`
	Form          GameForm         `json:"form"`
	Highlight     HighlightView    `json:"highlight"`
	Selector      []SelectorOption `json:"selector"`
	SelectorEmpty string           `json:"selectorEmpty,omitempty"`
	Editor        EditorView       `json:"editor"`
	Export        ExportButton     `json:"export"`
	Prompts       Prompts          `json:"prompts"`
	Source        string           `json:"source"`
}

// GameCard is one entry of the admin game list.
type GameCard struct {
	ID          domain.GameID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Status      string        `json:"status"`
	StatusClass string        `json:"statusClass"`
	Platform    string        `json:"platform"`
	Screenshots string        `json:"screenshots"`
	PlayLink    string        `json:"playLink,omitempty"`
	Badges      []string      `json:"badges,omitempty"`
	Editing     bool          `json:"editing"`
}

// GameForm is the add/edit form.
type GameForm struct {
	Mode    string             `json:"mode"` // "add" or "edit"
	Heading string             `json:"heading"`
	EditID  *domain.GameID     `json:"editId,omitempty"`
	Values  *domain.GameFields `json:"values,omitempty"`
}

// HighlightView is the current highlight block.
type HighlightView struct {
	State   string `json:"state"` // none, not_found or shown
	Title   string `json:"title"`
	Body    string `json:"body"`
	GameID  string `json:"gameId,omitempty"`
	Image   string `json:"image,omitempty"`
	Embed   string `json:"embedUrl,omitempty"`
	NoVideo string `json:"noVideo,omitempty"`
	Stats   []Stat `json:"stats,omitempty"`
}

// Stat is one labelled counter.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SelectorOption is one game in the highlight selector.
type SelectorOption struct {
	ID          domain.GameID `json:"id"`
	Title       string        `json:"title"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	Selected    bool          `json:"selected"`
}

// EditorView is the highlight edit form and its live preview.
type EditorView struct {
	State        string                 `json:"state"`
	Enabled      bool                   `json:"enabled"`
	TargetID     *domain.GameID         `json:"targetId,omitempty"`
	Fields       domain.HighlightFields `json:"fields"`
	Preview      *Preview               `json:"preview,omitempty"`
	PreviewEmpty string                 `json:"previewEmpty,omitempty"`
}

// Preview is the resolved highlight for unsaved form values.
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HasVideo    bool   `json:"hasVideo"`
	Stats       []Stat `json:"stats"`
}

// ExportButton reflects the unsaved-changes flag.
type ExportButton struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// Prompts are the confirmation questions for destructive commands.
type Prompts struct {
	DeleteGame      string `json:"deleteGame"`
	RemoveHighlight string `json:"removeHighlight"`
}

// View renders the outcome's state for t's language.
func (o Outcome) View(t Translator) View {
	return BuildView(o.State, t)
}

// Localized returns the outcome's notifications with their messages.
func (o Outcome) Localized(t Translator) []Notification {
	out := make([]Notification, 0, len(o.Notifications))
	for _, n := range o.Notifications {
		out = append(out, n.Localize(t))
	}
	return out
}

// BuildView renders s.
func BuildView(s State, t Translator) View {
	v := View{
		Games:    gameCards(s, t),
		Form:     gameForm(s, t),
		Selector: selector(s),
		Editor:   editorView(s, t),
		Export:   exportButton(s.Unsaved, t),
		Prompts: Prompts{
			DeleteGame:      t.T("admin.confirm.delete_game"),
			RemoveHighlight: t.T("admin.confirm.remove_highlight"),
		},
		Source: s.Source,
	}
	v.Highlight = highlightView(s, t)
	if len(s.Games) == 0 {
		v.GamesEmpty = t.T("admin.games.empty")
		v.SelectorEmpty = t.T("admin.selector.empty")
	}
	return v
}

func gameCards(s State, t Translator) []GameCard {
	cards := make([]GameCard, 0, len(s.Games))
	for _, g := range s.Games {
		card := GameCard{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Image:       g.Image,
			Status:      g.Status,
			StatusClass: g.StatusClass(),
			Platform:    g.Platform,
			Screenshots: t.T("admin.screenshots", g.ScreenshotCount()),
			Editing:     s.EditID != nil && *s.EditID == g.ID,
		}
		if card.Platform == "" {
			card.Platform = t.T("platform.na")
		}
		if g.HasPlayLink() {
			card.PlayLink = g.PlayLink
		}
		if g.Featured {
			card.Badges = append(card.Badges, t.T("admin.badge.featured"))
		}
		if s.Highlight.IsActive() && s.Highlight.GameID == g.ID {
			card.Badges = append(card.Badges, t.T("admin.badge.highlight"))
		}
		cards = append(cards, card)
	}
	return cards
}

func gameForm(s State, t Translator) GameForm {
	if s.EditID == nil {
		return GameForm{Mode: "add", Heading: t.T("admin.form.add")}
	}
	f := GameForm{Mode: "edit", Heading: t.T("admin.form.edit"), EditID: s.EditID}
	for _, g := range s.Games {
		if g.ID == *s.EditID {
			f.Values = &domain.GameFields{
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
			break
		}
	}
	return f
}

func highlightView(s State, t Translator) HighlightView {
	d, state := domain.ResolveDisplay(s.Highlight, s.Games)
	v := HighlightView{State: state.String()}
	switch state {
	case domain.HighlightNone:
		v.Title = t.T("admin.highlight.none.title")
		v.Body = t.T("admin.highlight.none.body")
	case domain.HighlightNotFound:
		v.Title = t.T("admin.highlight.not_found.title")
		v.Body = t.T("admin.highlight.not_found.body")
	case domain.HighlightShown:
		v.Title = d.Title
		v.Body = d.Description
		v.GameID = d.Game.ID.String()
		v.Image = d.Image
		v.Embed = d.EmbedURL
		if d.EmbedURL == "" {
			v.NoVideo = t.T("admin.highlight.no_video")
		}
		v.Stats = stats(d.Stats, t)
	}
	return v
}

func selector(s State) []SelectorOption {
	target, selected := s.Editor.Target, s.Editor.State != EditorUnselected
	opts := make([]SelectorOption, 0, len(s.Games))
	for _, g := range s.Games {
		opts = append(opts, SelectorOption{
			ID:          g.ID,
			Title:       g.Title,
			Image:       g.Image,
			Description: truncate(g.Description, selectorDescriptionLimit),
			Selected:    selected && g.ID == target,
		})
	}
	return opts
}

func editorView(s State, t Translator) EditorView {
	v := EditorView{
		State:  s.Editor.State.String(),
		Fields: s.Editor.Form,
	}
	if s.Editor.State == EditorUnselected {
		v.PreviewEmpty = t.T("admin.preview.empty")
		return v
	}
	target := s.Editor.Target
	v.TargetID = &target
	v.Enabled = true

	for _, g := range s.Games {
		if g.ID != target {
			continue
		}
		d := domain.PreviewDisplay(g, s.Editor.Form)
		v.Preview = &Preview{
			Title:       d.Title,
			Description: truncate(d.Description, previewDescriptionLimit),
			HasVideo:    d.TrailerURL != "",
			Stats:       stats(d.Stats, t),
		}
		return v
	}
	v.PreviewEmpty = t.T("admin.preview.empty")
	return v
}

func stats(s domain.Stats, t Translator) []Stat {
	return []Stat{
		{Value: s.Gameplay, Label: t.T("stat.gameplay")},
		{Value: s.Characters, Label: t.T("stat.characters")},
		{Value: s.Worlds, Label: t.T("stat.worlds")},
	}
}

func exportButton(unsaved bool, t Translator) ExportButton {
	if unsaved {
		return ExportButton{Enabled: true, Label: t.T("admin.export.label_dirty")}
	}
	return ExportButton{Enabled: false, Label: t.T("admin.export.label")}
}

// truncate cuts s to limit characters and appends "..." when it was longer.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
