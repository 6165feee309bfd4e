package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/types"
)

// spawnZombie may add one zombie on a free floor cell near the player.
func (e *Engine) spawnZombie(res *types.Result) {
	s := e.State
	h := e.Config.Horde

	if len(s.Zombies) >= h.Cap {
		return
	}
	if !e.RNG.Chance(h.SpawnChance) {
		return
	}

	occupied := s.Occupied()
	for i := 0; i < h.SpawnAttempts; i++ {
		x := s.Player.X + e.RNG.Range(-h.SpawnRadius, h.SpawnRadius)
		y := s.Player.Y + e.RNG.Range(-h.SpawnRadius, h.SpawnRadius)
		p := types.Point{X: x, Y: y}

		if t, ok := e.Grid.At(x, y); !ok || t != types.TileFloor {
			continue
		}
		if occupied.Has(p) || p == s.Player {
			continue
		}

		s.Zombies = append(s.Zombies, types.Zombie{X: x, Y: y, HP: h.HP})
		e.say(res, "A groan rises nearby. Another one shambles out of the dark.")
		emit(res, events.Spawn, map[string]any{"x": x, "y": y})
		return
	}
}

// moveZombies lets every zombie bite or step. Blocking uses the positions
// held at the start of the step plus cells already claimed this step, so no
// zombie reacts to another's move and no two end on the same cell.
func (e *Engine) moveZombies(res *types.Result) {
	s := e.State
	h := e.Config.Horde
	snapshot := s.Occupied()
	claimed := mapset.New[types.Point]()
	p := s.Player

	for i := range s.Zombies {
		z := &s.Zombies[i]
		dx, dy := p.X-z.X, p.Y-z.Y
		dist := abs(dx) + abs(dy)

		switch {
		case dist == 1:
			s.Adjust(state.StatHealth, -h.Bite)
			e.say(res, "A zombie bites you! (-%d health)", h.Bite)
			emit(res, events.Bite, map[string]any{"x": z.X, "y": z.Y, "amount": h.Bite})

		case dist >= 2 && dist <= h.Awareness:
			for _, step := range []types.Point{{X: sign(dx)}, {Y: sign(dy)}} {
				if step == (types.Point{}) {
					continue
				}
				n := types.Point{X: z.X + step.X, Y: z.Y + step.Y}
				if !e.Grid.Walkable(n.X, n.Y) || snapshot.Has(n) || claimed.Has(n) {
					continue
				}
				z.X, z.Y = n.X, n.Y
				claimed.Put(n)
				break
			}
		}
	}
}
