// Package engine provides the Step() orchestrator that resolves one player
// action and then advances the world: zombie spawns, zombie moves and bites,
// passive decay and the terminal check.
package engine

import (
	"fmt"
	"log"

	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/engine/fov"
	"github.com/nathoo/deadgrid/engine/rng"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// Engine holds the tunables, the grid and the mutable state.
type Engine struct {
	Config *types.Config
	Grid   *world.Grid
	State  *state.State
	RNG    rng.Source
}

// New generates a world from cfg and places the survivor in it.
func New(cfg *types.Config, r rng.Source) *Engine {
	g := world.GenerateDef(cfg.World, r)
	return NewWithGrid(cfg, g, r)
}

// NewWithGrid wraps an existing grid.
func NewWithGrid(cfg *types.Config, g *world.Grid, r rng.Source) *Engine {
	return &Engine{
		Config: cfg,
		Grid:   g,
		State:  state.New(g, cfg),
		RNG:    r,
	}
}

// Shades returns the visibility bands around the player for this turn.
func (e *Engine) Shades() map[types.Point]types.Shade {
	p := e.State.Player
	return fov.ComputeShades(e.Grid, p.X, p.Y, e.Config.Survivor.Sight)
}

// Step resolves one player action and returns the result.
func (e *Engine) Step(action types.Action) types.Result {
	var res types.Result

	// 0. Game over blocks all gameplay actions.
	if e.State.Over {
		res.Output = append(res.Output, "Game over. Quit to leave.")
		res.GameOver = true
		return res
	}

	// 0a. Quit is the shell's business; nothing mutates.
	if action.Kind == types.ActionQuit {
		res.Quit = true
		return res
	}

	// 1. Player action. A refused action leaves the world untouched.
	switch action.Kind {
	case types.ActionMove:
		res.Taken = e.moveOrInteract(&res, action.DX, action.DY)
	case types.ActionRest:
		res.Taken = e.rest(&res)
	case types.ActionRetreat:
		res.Taken = e.retreat(&res)
	default:
		e.say(&res, "You hesitate.")
	}
	if !res.Taken {
		return res
	}

	// 2. Zombie spawn roll.
	e.spawnZombie(&res)

	// 3. Zombie movement and bites.
	e.moveZombies(&res)

	// 4. Passive decay.
	e.decay(&res)

	e.State.TurnCount++

	// 5. Terminal check.
	if e.State.Health <= 0 {
		e.State.Over = true
		res.GameOver = true
		e.say(&res, "You collapse. The dead close in. You lasted %d turns.", e.State.TurnCount)
		emit(&res, events.GameOver, map[string]any{"turn": e.State.TurnCount})
		log.Printf("[engine] run over after %d turns", e.State.TurnCount)
	}

	return res
}

// decay drains hunger, thirst and fatigue by one each; every stat sitting
// at zero afterwards costs one health.
func (e *Engine) decay(res *types.Result) {
	s := e.State
	damage := 0
	for _, st := range []state.Stat{state.StatHunger, state.StatThirst, state.StatFatigue} {
		if s.Value(st) > 0 {
			s.Adjust(st, -1)
		}
		if s.Value(st) <= 0 {
			s.Adjust(state.StatHealth, -1)
			damage++
		}
	}
	if damage > 0 {
		e.say(res, "Starving, parched or spent, your body gives ground (-%d health).", damage)
		emit(res, events.DecayDamage, map[string]any{"amount": damage})
	}

	below := e.Config.Survivor.HintBelow
	if s.Hunger < below && !s.HungerHinted {
		s.HungerHinted = true
		e.say(res, "Hunger gnaws. Scavenge soon!")
	} else if s.Hunger >= below {
		s.HungerHinted = false
	}
	if s.Thirst < below && !s.ThirstHinted {
		s.ThirstHinted = true
		e.say(res, "Your throat is dust. Find water.")
	} else if s.Thirst >= below {
		s.ThirstHinted = false
	}
}

// say appends a narrative line to both the message log and the result.
func (e *Engine) say(res *types.Result, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	e.State.Log.Push(line)
	res.Output = append(res.Output, line)
}

func emit(res *types.Result, typ string, data map[string]any) {
	res.Events = append(res.Events, types.Event{Type: typ, Data: data})
}
