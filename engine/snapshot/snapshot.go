// Package snapshot captures a read-only, JSON-serializable view of the grid
// and survivor state for display and debugging. It cannot be loaded back
// into a running game.
package snapshot

import (
	"encoding/json"

	"github.com/nathoo/deadgrid/engine/rng"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// Snapshot is a copy of everything a display layer may show.
type Snapshot struct {
	Seed        int64          `json:"seed"`
	Draws       int64          `json:"draws"`
	Turn        int            `json:"turn"`
	Player      types.Point    `json:"player"`
	Stats       Stats          `json:"stats"`
	Inventory   []string       `json:"inventory"`
	Zombies     []types.Zombie `json:"zombies"`
	Log         []string       `json:"log"`
	ReachedGoal bool           `json:"reached_goal"`
	Over        bool           `json:"over"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Rooms       []types.Rect   `json:"rooms"`
	Terrain     []string       `json:"terrain"` // one string per row, see world.Glyph
}

// Stats are the survivor's numeric stats.
type Stats struct {
	Health  int `json:"health"`
	Hunger  int `json:"hunger"`
	Thirst  int `json:"thirst"`
	Fatigue int `json:"fatigue"`
	Ammo    int `json:"ammo"`
}

// Capture copies g and s. Later mutations of either do not show through.
func Capture(g *world.Grid, s *state.State, seed int64) *Snapshot {
	snap := &Snapshot{
		Seed:   seed,
		Turn:   s.TurnCount,
		Player: s.Player,
		Stats: Stats{
			Health:  s.Health,
			Hunger:  s.Hunger,
			Thirst:  s.Thirst,
			Fatigue: s.Fatigue,
			Ammo:    s.Ammo,
		},
		Inventory:   append([]string{}, s.Inventory...),
		Zombies:     append([]types.Zombie{}, s.Zombies...),
		Log:         s.Log.Lines(),
		ReachedGoal: s.ReachedGoal,
		Over:        s.Over,
		Width:       g.Width,
		Height:      g.Height,
		Rooms:       append([]types.Rect{}, g.Rooms...),
		Terrain:     make([]string, g.Height),
	}
	for y := 0; y < g.Height; y++ {
		row := make([]rune, g.Width)
		for x := range row {
			row[x] = world.Glyph(g.Tile(x, y))
		}
		snap.Terrain[y] = string(row)
	}
	return snap
}

// Marshal serializes the snapshot as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Stamp records the seed and draw count of src when it reports them.
func (s *Snapshot) Stamp(src rng.Source) *Snapshot {
	if t, ok := src.(interface {
		Seed() int64
		Position() int64
	}); ok {
		s.Seed = t.Seed()
		s.Draws = t.Position()
	}
	return s
}

// MapLines returns the terrain with zombies drawn as 'Z' and the survivor
// as '@'.
func (s *Snapshot) MapLines() []string {
	rows := make([][]rune, len(s.Terrain))
	for y, line := range s.Terrain {
		rows[y] = []rune(line)
	}
	put := func(x, y int, r rune) {
		if y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
			rows[y][x] = r
		}
	}
	for _, z := range s.Zombies {
		put(z.X, z.Y, 'Z')
	}
	put(s.Player.X, s.Player.Y, '@')

	out := make([]string, len(rows))
	for y, r := range rows {
		out[y] = string(r)
	}
	return out
}
