package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// flexString decodes a JSON string or number into its text. Hand-edited
// documents write ratings and counters either way.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Booleans, objects and arrays carry no usable text.
		*s = ""
		return nil
	}
	*s = flexString(n.String())
	return nil
}

// flexTime decodes an RFC 3339 timestamp. Empty or unparsable values are
// the zero time.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var v time.Time
	if err := v.UnmarshalJSON(data); err != nil {
		v = time.Time{}
	}
	*t = flexTime(v)
	return nil
}

// UnmarshalJSON accepts a numeric rating.
func (g *Game) UnmarshalJSON(data []byte) error {
	type plain Game
	aux := struct {
		*plain
		Rating flexString `json:"rating"`
	}{plain: (*plain)(g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	g.Rating = string(aux.Rating)
	return nil
}

// UnmarshalJSON accepts numeric counters.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var aux struct {
		Gameplay   flexString `json:"gameplay"`
		Characters flexString `json:"characters"`
		Worlds     flexString `json:"worlds"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Stats{
		Gameplay:   string(aux.Gameplay),
		Characters: string(aux.Characters),
		Worlds:     string(aux.Worlds),
	}
	return nil
}

// UnmarshalJSON treats an empty or malformed lastUpdated as never updated.
func (h *Highlight) UnmarshalJSON(data []byte) error {
	type plain Highlight
	aux := struct {
		*plain
		LastUpdated flexTime `json:"lastUpdated"`
	}{plain: (*plain)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	h.LastUpdated = time.Time(aux.LastUpdated)
	return nil
}
