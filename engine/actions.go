package engine

import (
	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// moveOrInteract steps the player toward (dx, dy). A zombie on the target
// turns the move into an attack; otherwise the target tile decides.
// Returns false when the move was refused.
func (e *Engine) moveOrInteract(res *types.Result, dx, dy int) bool {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		e.say(res, "You hesitate.")
		return false
	}

	s := e.State
	tx, ty := s.Player.X+dx, s.Player.Y+dy

	if i := s.ZombieAt(tx, ty); i >= 0 {
		e.attack(res, i)
		return true
	}

	tile, ok := e.Grid.At(tx, ty)
	if !ok || tile == types.TileWall {
		e.say(res, "Bump! Barricade or back off.")
		emit(res, events.Bump, map[string]any{"x": tx, "y": ty})
		return false
	}

	switch {
	case world.Lootable(tile):
		e.rollLoot(res, tile)
		e.Grid.Set(tx, ty, types.TileFloor)
	case tile == types.TileBuilding:
		e.say(res, "A gutted building. Somewhere to rest (r).")
	case tile == types.TileGoal:
		if !s.ReachedGoal {
			s.ReachedGoal = true
			e.say(res, "You reach the evac point. The radio hisses: 'Hold on, we're coming.'")
			emit(res, events.Goal, nil)
		}
	}

	s.Player = types.Point{X: tx, Y: ty}
	s.Adjust(state.StatFatigue, -e.Config.Survivor.MoveFatigue)
	emit(res, events.Move, map[string]any{"x": tx, "y": ty})
	return true
}

// nearBuilding reports whether a Building tile lies in the player's
// 8-neighbourhood or under the player.
func (e *Engine) nearBuilding() bool {
	p := e.State.Player
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if t, ok := e.Grid.At(p.X+dx, p.Y+dy); ok && t == types.TileBuilding {
				return true
			}
		}
	}
	return false
}

// rest trades hunger and thirst for fatigue and health next to a building.
func (e *Engine) rest(res *types.Result) bool {
	s := e.State
	sv := e.Config.Survivor

	if !e.nearBuilding() {
		e.say(res, "Nowhere safe to rest. Find a building.")
		return false
	}
	if s.Hunger < sv.RestMinimum || s.Thirst < sv.RestMinimum {
		e.say(res, "Too hungry or thirsty to rest.")
		return false
	}

	s.Adjust(state.StatFatigue, sv.RestFatigue)
	s.Adjust(state.StatHealth, sv.RestHealth)
	s.Adjust(state.StatHunger, -sv.RestCost)
	s.Adjust(state.StatThirst, -sv.RestCost)
	e.say(res, "You rest behind a barricade. (+%d fatigue, +%d health)", sv.RestFatigue, sv.RestHealth)
	emit(res, events.Rest, nil)
	return true
}

// retreat throws a spare item at an orthogonally adjacent zombie, removes
// it, and tries to step away from where it stood.
func (e *Engine) retreat(res *types.Result) bool {
	s := e.State
	cb := e.Config.Combat

	zi := -1
	for i, z := range s.Zombies {
		if manhattan(z.X, z.Y, s.Player.X, s.Player.Y) == 1 {
			zi = i
			break
		}
	}
	if zi < 0 {
		e.say(res, "No zombie close enough to distract.")
		return false
	}
	if len(s.Inventory) <= 1 {
		e.say(res, "Nothing to spare as a distraction.")
		return false
	}

	thrown := s.RemoveItemAt(sacrificeIndex(s.Inventory, cb.Melee.Name, cb.Ranged.Name))
	z := s.Zombies[zi]
	s.RemoveZombie(zi)
	e.say(res, "You hurl the %s. The zombie lurches after it and is gone.", thrown)

	ax, ay := sign(s.Player.X-z.X), sign(s.Player.Y-z.Y)
	moved := false
	for _, step := range escapeSteps(ax, ay) {
		nx, ny := s.Player.X+step.X, s.Player.Y+step.Y
		if e.Grid.Walkable(nx, ny) && s.ZombieAt(nx, ny) < 0 {
			s.Player = types.Point{X: nx, Y: ny}
			moved = true
			break
		}
	}
	if moved {
		e.say(res, "You slip away.")
	} else {
		e.say(res, "No room to slip away; you hold your ground.")
	}

	s.Pay(cb.RetreatCost)
	emit(res, events.Retreat, map[string]any{"item": thrown, "moved": moved})
	return true
}

// sacrificeIndex picks the most recently found item that is neither the
// melee nor the ranged weapon, else the last item.
func sacrificeIndex(inv []string, melee, ranged string) int {
	for i := len(inv) - 1; i >= 0; i-- {
		if inv[i] != melee && inv[i] != ranged {
			return i
		}
	}
	return len(inv) - 1
}

// escapeSteps lists retreat offsets for the away direction (ax, ay):
// diagonals away first, then the straight axis steps.
func escapeSteps(ax, ay int) []types.Point {
	switch {
	case ax != 0 && ay != 0:
		return []types.Point{{X: ax, Y: ay}, {X: ax}, {Y: ay}}
	case ax != 0:
		return []types.Point{{X: ax, Y: -1}, {X: ax, Y: 1}, {X: ax}}
	case ay != 0:
		return []types.Point{{X: -1, Y: ay}, {X: 1, Y: ay}, {Y: ay}}
	}
	return nil
}

func manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
