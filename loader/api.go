package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the tunables constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// World { width = 80, height = 50, ... }
	L.SetGlobal("World", L.NewFunction(func(L *lua.LState) int {
		coll.world = L.CheckTable(1)
		return 0
	}))

	// Features { foliage = 45, car = 15, ... }
	L.SetGlobal("Features", L.NewFunction(func(L *lua.LState) int {
		coll.features = L.CheckTable(1)
		return 0
	}))

	// Survivor { health = 100, inventory = { "rusty knife" }, ... }
	L.SetGlobal("Survivor", L.NewFunction(func(L *lua.LState) int {
		coll.survivor = L.CheckTable(1)
		return 0
	}))

	// Combat { fatigue_penalty = 0.2, attack_cost = { fatigue = 5 }, ... }
	L.SetGlobal("Combat", L.NewFunction(func(L *lua.LState) int {
		coll.combat = L.CheckTable(1)
		return 0
	}))

	// Horde { cap = 25, spawn_chance = 0.1, ... }
	L.SetGlobal("Horde", L.NewFunction(func(L *lua.LState) int {
		coll.horde = L.CheckTable(1)
		return 0
	}))

	// Weapon "melee" { ... } and Weapon "ranged" { ... }, curried.
	L.SetGlobal("Weapon", L.NewFunction(func(L *lua.LState) int {
		slot := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.weapons = append(coll.weapons, rawWeapon{slot: slot, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Loot "car" { { weight = 30, thirst = 15, text = "..." }, ... }, curried.
	// A later table for the same tile replaces the earlier one.
	L.SetGlobal("Loot", L.NewFunction(func(L *lua.LState) int {
		tile := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.loot = append(coll.loot, rawLoot{tile: tile, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))
}
