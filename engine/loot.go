package engine

import (
	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// rollLoot draws one outcome from the tile's loot table and applies it.
func (e *Engine) rollLoot(res *types.Result, tile types.Tile) {
	table := e.Config.Loot[tile]
	name := world.TileName(tile)
	if len(table) == 0 {
		e.say(res, "You search the %s. Nothing.", name)
		return
	}

	weights := make([]int, len(table))
	for i, entry := range table {
		weights[i] = entry.Weight
	}
	entry := table[e.RNG.WeightedSelect(weights)]
	e.applyLoot(res, entry)

	if entry.Text != "" {
		e.say(res, "%s", entry.Text)
	} else {
		e.say(res, "You search the %s.", name)
	}
	emit(res, events.Loot, map[string]any{"tile": name, "item": entry.Item, "ammo": entry.Ammo})
}

// applyLoot adds an outcome's stat, ammo and item gains. A ranged weapon
// already carried is not duplicated.
func (e *Engine) applyLoot(res *types.Result, entry types.LootEntry) {
	s := e.State
	s.Adjust(state.StatHealth, entry.Health)
	s.Adjust(state.StatHunger, entry.Hunger)
	s.Adjust(state.StatThirst, entry.Thirst)
	s.AddAmmo(entry.Ammo)

	if entry.Item == "" {
		return
	}
	if entry.Item == e.Config.Combat.Ranged.Name && s.HasItem(entry.Item) {
		e.say(res, "You already carry a %s; you keep only the rounds.", entry.Item)
		return
	}
	s.AddItem(entry.Item)
}
