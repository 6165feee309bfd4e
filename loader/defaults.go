package loader

import (
	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// Default map size in cells.
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Defaults returns the baseline tunables. Each call returns a fresh copy.
func Defaults() *types.Config {
	return &types.Config{
		World: world.DefaultDef(DefaultWidth, DefaultHeight),
		Survivor: types.SurvivorDef{
			Health:      100,
			Hunger:      100,
			Thirst:      100,
			Fatigue:     100,
			Ammo:        0,
			Inventory:   []string{"rusty knife"},
			Intro:       "Radio crackles: 'Help, the horde's at the mall!'",
			Sight:       12,
			LogCapacity: 10,
			FallbackX:   1,
			FallbackY:   1,
			MoveFatigue: 1,
			RestMinimum: 10,
			RestFatigue: 50,
			RestHealth:  10,
			RestCost:    10,
			HintBelow:   25,
		},
		Combat: types.CombatDef{
			Melee:          types.WeaponDef{Name: "rusty knife", HitChance: 0.5, MinDamage: 1, MaxDamage: 3},
			Ranged:         types.WeaponDef{Name: "pistol", HitChance: 0.95, MinDamage: 10, MaxDamage: 15, AmmoCost: 1},
			FatiguePenalty: 0.2,
			MissDamage:     1,
			AttackCost:     types.Cost{Fatigue: 5, Hunger: 1, Thirst: 1},
			RetreatCost:    types.Cost{Fatigue: 5, Hunger: 1, Thirst: 1},
		},
		Horde: types.HordeDef{
			Cap:           25,
			SpawnChance:   0.1,
			SpawnRadius:   8,
			SpawnAttempts: 10,
			Awareness:     12,
			HP:            10,
			Bite:          1,
		},
		Loot: defaultLoot(),
	}
}

func defaultLoot() map[types.Tile][]types.LootEntry {
	return map[types.Tile][]types.LootEntry{
		types.TileFoliage: {
			{Weight: 40, Hunger: 10, Text: "You find berries in the brush. (+10 hunger)"},
			{Weight: 15, Item: "herbs", Text: "You pick a bundle of herbs."},
			{Weight: 30, Text: "You rustle through the bushes. Nothing."},
			{Weight: 15, Health: -2, Text: "Thorns! You scratch yourself. (-2 health)"},
		},
		types.TileCar: {
			{Weight: 30, Thirst: 15, Text: "A bottle of water under the seat. (+15 thirst)"},
			{Weight: 20, Ammo: 3, Text: "A few loose rounds in the glovebox. (+3 ammo)"},
			{Weight: 20, Item: "bandage", Text: "A first-aid kit with a bandage."},
			{Weight: 30, Text: "The car has been picked clean."},
		},
		types.TileResource: {
			{Weight: 30, Hunger: 20, Text: "Canned food! (+20 hunger)"},
			{Weight: 30, Thirst: 20, Text: "A sealed jug of water. (+20 thirst)"},
			{Weight: 20, Item: "bandage", Text: "You find a bandage."},
			{Weight: 20, Ammo: 5, Text: "A box of ammunition. (+5 ammo)"},
		},
		types.TileWeapon: {
			{Weight: 50, Item: "pistol", Ammo: 6, Text: "A pistol with a loaded clip! (+6 ammo)"},
			{Weight: 50, Ammo: 4, Text: "Spent casings and a few live rounds. (+4 ammo)"},
		},
	}
}
