// Package state manages the mutable survivor state: clamped stats, the
// ordered inventory, the zombie collection and the bounded message log.
package state

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// MaxStat is the ceiling for health, hunger, thirst and fatigue.
const MaxStat = 100

// Stat names one of the clamped survival stats.
type Stat int

const (
	StatHealth Stat = iota
	StatHunger
	StatThirst
	StatFatigue
)

// State is the complete mutable game state.
type State struct {
	Player  types.Point
	Health  int
	Hunger  int
	Thirst  int
	Fatigue int
	Ammo    int

	Inventory []string
	Zombies   []types.Zombie
	Log       *MessageLog

	TurnCount   int
	ReachedGoal bool
	Over        bool

	// Set while the stat sits below the hint threshold, so the hint is
	// logged once per crossing.
	HungerHinted bool
	ThirstHinted bool
}

// New creates the survivor on grid g: stats and kit from cfg, player at the
// first room's center, and one zombie per generation marker.
func New(g *world.Grid, cfg *types.Config) *State {
	sv := cfg.Survivor
	s := &State{
		Health:    clamp(sv.Health),
		Hunger:    clamp(sv.Hunger),
		Thirst:    clamp(sv.Thirst),
		Fatigue:   clamp(sv.Fatigue),
		Inventory: append([]string{}, sv.Inventory...),
		Log:       NewMessageLog(sv.LogCapacity),
	}
	if sv.Ammo > 0 {
		s.Ammo = sv.Ammo
	}
	if sv.Intro != "" {
		s.Logf("%s", sv.Intro)
	}

	s.Player = PlacePlayer(g, types.Point{X: sv.FallbackX, Y: sv.FallbackY})
	if len(g.Rooms) == 0 {
		s.Logf("The map came up empty. You are stranded at (%d,%d).", s.Player.X, s.Player.Y)
	}

	for _, p := range g.TakeMarkers() {
		if p == s.Player || s.ZombieAt(p.X, p.Y) >= 0 {
			continue
		}
		s.Zombies = append(s.Zombies, types.Zombie{X: p.X, Y: p.Y, HP: cfg.Horde.HP})
	}
	return s
}

// PlacePlayer returns the first room's center, a walkable neighbour of it,
// or fallback when the grid has no rooms or no walkable spot there.
func PlacePlayer(g *world.Grid, fallback types.Point) types.Point {
	if len(g.Rooms) == 0 {
		return fallback
	}
	c := world.Center(g.Rooms[0])
	if g.Walkable(c.X, c.Y) {
		return c
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.Walkable(c.X+dx, c.Y+dy) {
				return types.Point{X: c.X + dx, Y: c.Y + dy}
			}
		}
	}
	return fallback
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

func (s *State) stat(st Stat) *int {
	switch st {
	case StatHealth:
		return &s.Health
	case StatHunger:
		return &s.Hunger
	case StatThirst:
		return &s.Thirst
	default:
		return &s.Fatigue
	}
}

// Value returns the current value of a stat.
func (s *State) Value(st Stat) int {
	return *s.stat(st)
}

// Adjust adds delta to a stat, saturating at 0 and MaxStat, and returns the
// new value.
func (s *State) Adjust(st Stat, delta int) int {
	p := s.stat(st)
	*p = clamp(*p + delta)
	return *p
}

// Pay deducts an action cost.
func (s *State) Pay(c types.Cost) {
	s.Adjust(StatFatigue, -c.Fatigue)
	s.Adjust(StatHunger, -c.Hunger)
	s.Adjust(StatThirst, -c.Thirst)
}

// AddAmmo adds n rounds. Ammo never drops below zero.
func (s *State) AddAmmo(n int) {
	s.Ammo += n
	if s.Ammo < 0 {
		s.Ammo = 0
	}
}

// Logf formats and appends a narrative line.
func (s *State) Logf(format string, args ...any) {
	s.Log.Push(fmt.Sprintf(format, args...))
}

// HasItem returns true if the inventory holds the named item.
func (s *State) HasItem(name string) bool {
	return s.ItemIndex(name) >= 0
}

// ItemIndex returns the position of the first matching item, or -1.
func (s *State) ItemIndex(name string) int {
	for i, it := range s.Inventory {
		if it == name {
			return i
		}
	}
	return -1
}

// AddItem appends an item in discovery order.
func (s *State) AddItem(name string) {
	s.Inventory = append(s.Inventory, name)
}

// RemoveItemAt removes and returns the item at i.
func (s *State) RemoveItemAt(i int) string {
	it := s.Inventory[i]
	s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
	return it
}

// ZombieAt returns the index of the zombie at (x, y), or -1.
func (s *State) ZombieAt(x, y int) int {
	for i, z := range s.Zombies {
		if z.X == x && z.Y == y {
			return i
		}
	}
	return -1
}

// RemoveZombie drops the zombie at index i, keeping collection order.
func (s *State) RemoveZombie(i int) {
	s.Zombies = append(s.Zombies[:i], s.Zombies[i+1:]...)
}

// Occupied returns the set of cells currently held by zombies.
func (s *State) Occupied() mapset.Set[types.Point] {
	set := mapset.New[types.Point]()
	for _, z := range s.Zombies {
		set.Put(types.Point{X: z.X, Y: z.Y})
	}
	return set
}
