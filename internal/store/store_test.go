package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mainra/showcase/internal/domain"
)

func TestMemoryLoadMiss(t *testing.T) {
	m := NewMemory()
	if _, err := m.Load(context.Background()); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Load() on empty cache error = %v, want ErrCacheMiss", err)
	}
}

func TestMemorySaveOverwrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first := &domain.Document{Games: []domain.Game{{ID: 1, Title: "A"}}}
	if err := m.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second := &domain.Document{Games: []domain.Game{{ID: 2, Title: "B"}}, Highlight: &domain.Highlight{GameID: 2, Active: true}}
	if err := m.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the saved value must not leak into the cache.
	second.Games[0].Title = "changed"

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Games) != 1 || got.Games[0].ID != 2 || got.Games[0].Title != "B" {
		t.Errorf("Load() games = %+v, want only game 2 titled B", got.Games)
	}
	if got.Highlight == nil || got.Highlight.GameID != 2 {
		t.Errorf("Load() highlight = %+v, want game 2", got.Highlight)
	}
}
