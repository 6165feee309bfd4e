// Package events names the events a turn can emit and implements
// single-pass handler dispatch for shells that react to them.
// Handlers observe events; they never feed back into the turn.
package events

import "github.com/nathoo/deadgrid/types"

// Event types emitted by Engine.Step.
const (
	Move         = "move"
	Bump         = "bump"
	Loot         = "loot"
	Attack       = "attack"
	ZombieKilled = "zombie_killed"
	Bite         = "bite"
	Spawn        = "spawn"
	Rest         = "rest"
	Retreat      = "retreat"
	Goal         = "goal"
	DecayDamage  = "decay_damage"
	GameOver     = "game_over"
)

// Handler reacts to one event.
type Handler func(types.Event)

// Bus maps event types to handlers. The zero value is ready to use.
type Bus struct {
	handlers map[string][]Handler
	all      []Handler
}

// On registers h for events of type typ, in registration order.
func (b *Bus) On(typ string, h Handler) {
	if b.handlers == nil {
		b.handlers = make(map[string][]Handler)
	}
	b.handlers[typ] = append(b.handlers[typ], h)
}

// OnAny registers h for every event. It runs after type-specific handlers.
func (b *Bus) OnAny(h Handler) {
	b.all = append(b.all, h)
}

// Dispatch runs matching handlers against the emitted events. Single pass:
// events are visited in order and each handler runs at most once per event.
// Returns how many handler calls were made.
func (b *Bus) Dispatch(evs []types.Event) int {
	calls := 0
	for _, ev := range evs {
		for _, h := range b.handlers[ev.Type] {
			h(ev)
			calls++
		}
		for _, h := range b.all {
			h(ev)
			calls++
		}
	}
	return calls
}
