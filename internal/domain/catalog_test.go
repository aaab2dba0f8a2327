package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestCatalogAddThenFind(t *testing.T) {
	c := NewCatalog(nil)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	added := c.Add(GameFields{Title: "Adventure Quest", Image: "a.png", Featured: true}, now)

	if added.ID != GameID(now.UnixMilli()) {
		t.Errorf("Add() id = %v, want %v", added.ID, now.UnixMilli())
	}
	if added.PlayLink != NoPlayLink {
		t.Errorf("Add() playLink = %q, want %q", added.PlayLink, NoPlayLink)
	}

	got, ok := c.Find(added.ID)
	if !ok {
		t.Fatal("Find() after Add() returned not found")
	}
	if !reflect.DeepEqual(got, added) {
		t.Errorf("Find() = %+v, want %+v", got, added)
	}
}

func TestCatalogIDsStayUnique(t *testing.T) {
	c := NewCatalog(nil)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	// Same clock reading for every add, as with a burst of submissions.
	for i := 0; i < 5; i++ {
		c.Add(GameFields{Title: "Game"}, now)
	}
	c.Delete(GameID(now.UnixMilli()) + 2)
	c.Add(GameFields{Title: "Late"}, now)

	seen := make(map[GameID]bool)
	for _, g := range c.Games() {
		if seen[g.ID] {
			t.Fatalf("duplicate id %v in catalog", g.ID)
		}
		seen[g.ID] = true
	}
	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
}

func TestCatalogDeleteScenario(t *testing.T) {
	c := NewCatalog([]Game{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
	})

	if removed := c.Delete(1); removed != 1 {
		t.Errorf("Delete() removed %d, want 1", removed)
	}

	want := []Game{{ID: 2, Title: "B"}}
	if got := c.Games(); !reflect.DeepEqual(got, want) {
		t.Errorf("Games() = %+v, want %+v", got, want)
	}
	if _, ok := c.Find(1); ok {
		t.Error("Find() after Delete() should return not found")
	}
}

func TestCatalogDeleteRemovesEveryMatch(t *testing.T) {
	c := NewCatalog([]Game{
		{ID: 7, Title: "first"},
		{ID: 8, Title: "keep"},
		{ID: 7, Title: "second"},
	})

	if removed := c.Delete(7); removed != 2 {
		t.Errorf("Delete() removed %d, want 2", removed)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCatalogDeleteUnknownID(t *testing.T) {
	c := NewCatalog([]Game{{ID: 1, Title: "A"}})
	if removed := c.Delete(99); removed != 0 {
		t.Errorf("Delete() removed %d, want 0", removed)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCatalogUpdatePreservesOtherFields(t *testing.T) {
	original := Game{
		ID:          3,
		Title:       "Mystic Worlds",
		Description: "An RPG",
		Image:       "mw.png",
		Screenshots: []string{"1.png", "2.png"},
		PlayLink:    NoPlayLink,
		Status:      "In Development",
		Platform:    "PC",
		Featured:    true,
	}
	c := NewCatalog([]Game{original})

	title := "Mystic Worlds II"
	featured := false
	if ok := c.Update(3, GamePatch{Title: &title, Featured: &featured}); !ok {
		t.Fatal("Update() returned false for existing id")
	}

	got, _ := c.Find(3)
	want := original
	want.Title = title
	want.Featured = false
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Update() result = %+v, want %+v", got, want)
	}
}

func TestCatalogUpdateUnknownIDIsNoop(t *testing.T) {
	c := NewCatalog([]Game{{ID: 1, Title: "A"}})
	title := "changed"
	if ok := c.Update(2, GamePatch{Title: &title}); ok {
		t.Error("Update() on unknown id should return false")
	}
	got, _ := c.Find(1)
	if got.Title != "A" {
		t.Errorf("Update() on unknown id changed another game: %+v", got)
	}
}

func TestCatalogUpdateEmptyPlayLink(t *testing.T) {
	c := NewCatalog([]Game{{ID: 1, Title: "A", PlayLink: "https://play.example.com/a"}})
	empty := "  "
	c.Update(1, GamePatch{PlayLink: &empty})

	got, _ := c.Find(1)
	if got.PlayLink != NoPlayLink {
		t.Errorf("PlayLink = %q, want %q", got.PlayLink, NoPlayLink)
	}
}

func TestGamePatchFields(t *testing.T) {
	title := "Space Defender"
	featured := true
	f := GamePatch{Title: &title, Featured: &featured}.Fields()

	want := GameFields{Title: title, Featured: true}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("Fields() = %+v, want %+v", f, want)
	}

	c := NewCatalog(nil)
	g := c.Add(f, time.UnixMilli(1000))
	if g.PlayLink != NoPlayLink {
		t.Errorf("added game PlayLink = %q, want %q", g.PlayLink, NoPlayLink)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := NewCatalog([]Game{{ID: 1, Screenshots: []string{"a"}}})

	g, _ := c.Find(1)
	g.Screenshots[0] = "mutated"

	again, _ := c.Find(1)
	if again.Screenshots[0] != "a" {
		t.Error("Find() should return an independent copy")
	}
}

func TestFeaturedGames(t *testing.T) {
	games := []Game{
		{ID: 1, Featured: true},
		{ID: 2},
		{ID: 3, Featured: true},
		{ID: 4, Featured: true},
		{ID: 5, Featured: true},
	}

	tests := []struct {
		name  string
		limit int
		want  []GameID
	}{
		{name: "limited to three", limit: 3, want: []GameID{1, 3, 4}},
		{name: "no limit", limit: 0, want: []GameID{1, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeaturedGames(games, tt.limit)
			ids := make([]GameID, 0, len(got))
			for _, g := range got {
				ids = append(ids, g.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("FeaturedGames() ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestGameDisplayHelpers(t *testing.T) {
	g := Game{Status: "In Development"}
	if got := g.StatusClass(); got != "indevelopment" {
		t.Errorf("StatusClass() = %q, want %q", got, "indevelopment")
	}
	if got := g.ScreenshotCount(); got != 1 {
		t.Errorf("ScreenshotCount() = %d, want 1", got)
	}
	if g.HasPlayLink() {
		t.Error("HasPlayLink() with empty link should be false")
	}
	g.PlayLink = NoPlayLink
	if g.HasPlayLink() {
		t.Error("HasPlayLink() with # should be false")
	}
	g.PlayLink = "https://play.example.com"
	if !g.HasPlayLink() {
		t.Error("HasPlayLink() with URL should be true")
	}
}
