package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestGameIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    GameID
		wantErr bool
	}{
		{name: "number", input: `1700000000000`, want: 1700000000000},
		{name: "numeric string", input: `"3"`, want: 3},
		{name: "null", input: `null`, want: 0},
		{name: "garbage string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id GameID
			err := json.Unmarshal([]byte(tt.input), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("Unmarshal() = %v, want %v", id, tt.want)
			}
		})
	}
}

func TestDecodeDocumentDefaults(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if doc.Games == nil || len(doc.Games) != 0 {
		t.Errorf("Games = %v, want empty non-nil list", doc.Games)
	}
	if doc.Highlight != nil {
		t.Errorf("Highlight = %+v, want nil", doc.Highlight)
	}
}

func TestDecodeDocumentMalformed(t *testing.T) {
	if _, err := DecodeDocument([]byte(`{"games": [`)); err == nil {
		t.Error("DecodeDocument() with malformed JSON should return error")
	}
}

func TestDecodeDocumentLenientFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, doc *Document)
	}{
		{
			name:  "numeric rating",
			input: `{"games":[{"id":1,"title":"A","rating":4.8}]}`,
			check: func(t *testing.T, doc *Document) {
				if got := doc.Games[0].Rating; got != "4.8" {
					t.Errorf("Rating = %q, want 4.8", got)
				}
				if doc.Games[0].Title != "A" || doc.Games[0].ID != 1 {
					t.Errorf("other fields lost: %+v", doc.Games[0])
				}
			},
		},
		{
			name:  "string rating",
			input: `{"games":[{"id":"2","rating":"4.5"}]}`,
			check: func(t *testing.T, doc *Document) {
				if got := doc.Games[0].Rating; got != "4.5" {
					t.Errorf("Rating = %q, want 4.5", got)
				}
			},
		},
		{
			name:  "boolean rating",
			input: `{"games":[{"id":3,"rating":true}]}`,
			check: func(t *testing.T, doc *Document) {
				if got := doc.Games[0].Rating; got != "" {
					t.Errorf("Rating = %q, want empty", got)
				}
			},
		},
		{
			name:  "numeric stats",
			input: `{"highlight":{"gameId":1,"active":true,"stats":{"gameplay":100,"characters":"30+","worlds":null}}}`,
			check: func(t *testing.T, doc *Document) {
				want := Stats{Gameplay: "100", Characters: "30+"}
				if doc.Highlight == nil || doc.Highlight.Stats != want {
					t.Fatalf("Stats = %+v, want %+v", doc.Highlight, want)
				}
				if got := doc.Highlight.Stats.WithDefaults().Worlds; got != DefaultWorldsStat {
					t.Errorf("Worlds = %q, want default", got)
				}
			},
		},
		{
			name:  "empty lastUpdated",
			input: `{"highlight":{"gameId":1,"active":true,"customTitle":"X","lastUpdated":""}}`,
			check: func(t *testing.T, doc *Document) {
				h := doc.Highlight
				if h == nil || !h.LastUpdated.IsZero() || h.CustomTitle != "X" || !h.Active {
					t.Errorf("highlight = %+v", h)
				}
			},
		},
		{
			name:  "valid lastUpdated",
			input: `{"highlight":{"gameId":1,"lastUpdated":"2024-05-01T10:00:00Z"}}`,
			check: func(t *testing.T, doc *Document) {
				want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
				if !doc.Highlight.LastUpdated.Equal(want) {
					t.Errorf("LastUpdated = %v, want %v", doc.Highlight.LastUpdated, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeDocument() error = %v", err)
			}
			tt.check(t, doc)
		})
	}
}

func TestExportThenDecodeRoundTrip(t *testing.T) {
	doc := &Document{
		Games: []Game{
			{
				ID:          1,
				Title:       "Adventure Quest",
				Description: "A 2D adventure",
				Image:       "aq.png",
				Screenshots: []string{"aq1.png"},
				PlayLink:    NoPlayLink,
				Category:    "Adventure",
				Status:      "Released",
				ReleaseDate: "2024-01-15",
				Platform:    "PC, Mobile",
				Rating:      "4.8",
				Featured:    true,
			},
			{ID: 2, Title: "Space Defender", PlayLink: "https://play.example.com"},
		},
		Highlight: &Highlight{
			GameID:      2,
			YoutubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Stats:       DefaultStats(),
			Active:      true,
			LastUpdated: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	data, err := doc.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(string(data), "\n  \"games\": [") {
		t.Errorf("Export() should be indented with two spaces, got:\n%s", data)
	}

	back, err := DecodeDocument(data)
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if !reflect.DeepEqual(back, doc) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", back, doc)
	}
}

func TestEncodeNilGamesAsEmptyArray(t *testing.T) {
	data, err := (&Document{}).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != `{"games":[],"highlight":null}` {
		t.Errorf("Encode() = %s", data)
	}
}

func TestDocumentClone(t *testing.T) {
	doc := &Document{
		Games:     []Game{{ID: 1, Screenshots: []string{"a"}}},
		Highlight: &Highlight{GameID: 1, Active: true},
	}
	c := doc.Clone()
	c.Games[0].Screenshots[0] = "b"
	c.Highlight.Active = false

	if doc.Games[0].Screenshots[0] != "a" || !doc.Highlight.Active {
		t.Error("Clone() should not share state with the original")
	}
}
