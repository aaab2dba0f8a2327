package domain

import "time"

// Catalog is the ordered list of games. Insertion order is display order.
//
// Catalog is not safe for concurrent use; callers serialize access.
type Catalog struct {
	games []Game
}

// NewCatalog builds a catalog from an existing list, keeping its order.
func NewCatalog(games []Game) *Catalog {
	c := &Catalog{games: make([]Game, 0, len(games))}
	for _, g := range games {
		c.games = append(c.games, cloneGame(g))
	}
	return c
}

// Add assigns a fresh id derived from now and appends the game.
func (c *Catalog) Add(fields GameFields, now time.Time) Game {
	fields = fields.normalized()
	g := Game{ID: c.nextID(now)}
	fields.Patch().apply(&g)
	c.games = append(c.games, g)
	return cloneGame(g)
}

// nextID uses the current time in milliseconds, bumped past the largest
// existing id when that value is already taken.
func (c *Catalog) nextID(now time.Time) GameID {
	id := GameID(now.UnixMilli())
	if _, taken := c.index(id); !taken {
		return id
	}
	var highest GameID
	for _, g := range c.games {
		if g.ID > highest {
			highest = g.ID
		}
	}
	return highest + 1
}

// Update merges patch into the first game with id. It returns false and
// changes nothing when no such game exists.
func (c *Catalog) Update(id GameID, patch GamePatch) bool {
	i, ok := c.index(id)
	if !ok {
		return false
	}
	patch.apply(&c.games[i])
	return true
}

// Delete removes every game with id and returns how many were removed.
func (c *Catalog) Delete(id GameID) int {
	kept := c.games[:0]
	removed := 0
	for _, g := range c.games {
		if g.ID == id {
			removed++
			continue
		}
		kept = append(kept, g)
	}
	// Zero the tail so removed games are not retained by the backing array.
	for i := len(kept); i < len(c.games); i++ {
		c.games[i] = Game{}
	}
	c.games = kept
	return removed
}

// Find returns a copy of the first game with id.
func (c *Catalog) Find(id GameID) (Game, bool) {
	i, ok := c.index(id)
	if !ok {
		return Game{}, false
	}
	return cloneGame(c.games[i]), true
}

// Games returns a copy of the list in display order.
func (c *Catalog) Games() []Game {
	out := make([]Game, 0, len(c.games))
	for _, g := range c.games {
		out = append(out, cloneGame(g))
	}
	return out
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	return len(c.games)
}

// Featured returns the first limit featured games. limit <= 0 means no limit.
func (c *Catalog) Featured(limit int) []Game {
	return FeaturedGames(c.games, limit)
}

// FeaturedGames filters games down to the featured ones, in order.
func FeaturedGames(games []Game, limit int) []Game {
	out := make([]Game, 0)
	for _, g := range games {
		if !g.Featured {
			continue
		}
		out = append(out, cloneGame(g))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (c *Catalog) index(id GameID) (int, bool) {
	for i := range c.games {
		if c.games[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func cloneGame(g Game) Game {
	if g.Screenshots != nil {
		g.Screenshots = append([]string(nil), g.Screenshots...)
	}
	return g
}
