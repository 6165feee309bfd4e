package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// compile overlays the collected Lua tables onto cfg. Only keys present in
// a table change the corresponding field.
func compile(coll *collector, cfg *types.Config) error {
	if t := coll.world; t != nil {
		compileWorld(t, &cfg.World)
	}
	if t := coll.features; t != nil {
		weights, err := compileFeatures(t)
		if err != nil {
			return err
		}
		cfg.World.FeatureWeights = weights
	}
	if t := coll.survivor; t != nil {
		compileSurvivor(t, &cfg.Survivor)
	}
	if t := coll.combat; t != nil {
		compileCombat(t, &cfg.Combat)
	}
	for _, w := range coll.weapons {
		switch w.slot {
		case "melee":
			compileWeapon(w.table, &cfg.Combat.Melee)
		case "ranged":
			compileWeapon(w.table, &cfg.Combat.Ranged)
		default:
			return fmt.Errorf("weapon slot %q: want \"melee\" or \"ranged\"", w.slot)
		}
	}
	if t := coll.horde; t != nil {
		compileHorde(t, &cfg.Horde)
	}
	for _, l := range coll.loot {
		tile, ok := world.ParseTile(l.tile)
		if !ok {
			return fmt.Errorf("loot table: unknown tile %q", l.tile)
		}
		cfg.Loot[tile] = compileLoot(l.table)
	}
	return nil
}

func compileWorld(t *lua.LTable, w *types.WorldDef) {
	setInt(t, "width", &w.Width)
	setInt(t, "height", &w.Height)
	setInt(t, "max_rooms", &w.MaxRooms)
	setInt(t, "min_margin", &w.MinMargin)
	setInt(t, "max_margin", &w.MaxMargin)
	setInt(t, "split_min", &w.SplitMin)
	setInt(t, "split_axis_min", &w.SplitAxisMin)
	setInt(t, "split_inset", &w.SplitInset)
	setInt(t, "child_min", &w.ChildMin)
	setFloat(t, "feature_chance", &w.FeatureChance)
	setFloat(t, "marker_chance", &w.MarkerChance)
}

// compileFeatures replaces the whole feature weight table.
func compileFeatures(t *lua.LTable) (map[types.Tile]int, error) {
	weights := make(map[types.Tile]int)
	var err error
	t.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		tile, ok := world.ParseTile(k.String())
		if !ok {
			err = fmt.Errorf("features: unknown tile %q", k.String())
			return
		}
		n, ok := v.(lua.LNumber)
		if !ok {
			err = fmt.Errorf("features: weight for %q is %s, want number", k.String(), v.Type())
			return
		}
		weights[tile] = int(n)
	})
	return weights, err
}

func compileSurvivor(t *lua.LTable, s *types.SurvivorDef) {
	setInt(t, "health", &s.Health)
	setInt(t, "hunger", &s.Hunger)
	setInt(t, "thirst", &s.Thirst)
	setInt(t, "fatigue", &s.Fatigue)
	setInt(t, "ammo", &s.Ammo)
	if inv := getTable(t, "inventory"); inv != nil {
		s.Inventory = getStringSlice(inv)
	}
	setString(t, "intro", &s.Intro)
	setInt(t, "sight", &s.Sight)
	setInt(t, "log_capacity", &s.LogCapacity)
	setInt(t, "fallback_x", &s.FallbackX)
	setInt(t, "fallback_y", &s.FallbackY)
	setInt(t, "move_fatigue", &s.MoveFatigue)
	setInt(t, "rest_minimum", &s.RestMinimum)
	setInt(t, "rest_fatigue", &s.RestFatigue)
	setInt(t, "rest_health", &s.RestHealth)
	setInt(t, "rest_cost", &s.RestCost)
	setInt(t, "hint_below", &s.HintBelow)
}

func compileCombat(t *lua.LTable, c *types.CombatDef) {
	setFloat(t, "fatigue_penalty", &c.FatiguePenalty)
	setInt(t, "miss_damage", &c.MissDamage)
	if ct := getTable(t, "attack_cost"); ct != nil {
		compileCost(ct, &c.AttackCost)
	}
	if ct := getTable(t, "retreat_cost"); ct != nil {
		compileCost(ct, &c.RetreatCost)
	}
}

func compileCost(t *lua.LTable, c *types.Cost) {
	setInt(t, "fatigue", &c.Fatigue)
	setInt(t, "hunger", &c.Hunger)
	setInt(t, "thirst", &c.Thirst)
}

func compileWeapon(t *lua.LTable, w *types.WeaponDef) {
	setString(t, "name", &w.Name)
	setFloat(t, "hit_chance", &w.HitChance)
	setInt(t, "min_damage", &w.MinDamage)
	setInt(t, "max_damage", &w.MaxDamage)
	setInt(t, "ammo_cost", &w.AmmoCost)
}

func compileHorde(t *lua.LTable, h *types.HordeDef) {
	setInt(t, "cap", &h.Cap)
	setFloat(t, "spawn_chance", &h.SpawnChance)
	setInt(t, "spawn_radius", &h.SpawnRadius)
	setInt(t, "spawn_attempts", &h.SpawnAttempts)
	setInt(t, "awareness", &h.Awareness)
	setInt(t, "hp", &h.HP)
	setInt(t, "bite", &h.Bite)
}

// compileLoot reads the array part of t as loot entries. Non-table
// elements are skipped.
func compileLoot(t *lua.LTable) []types.LootEntry {
	var entries []types.LootEntry
	for i := 1; i <= t.Len(); i++ {
		et, ok := t.RawGetInt(i).(*lua.LTable)
		if !ok {
			continue
		}
		entries = append(entries, types.LootEntry{
			Weight: getInt(et, "weight"),
			Text:   getString(et, "text"),
			Health: getInt(et, "health"),
			Hunger: getInt(et, "hunger"),
			Thirst: getInt(et, "thirst"),
			Ammo:   getInt(et, "ammo"),
			Item:   getString(et, "item"),
		})
	}
	return entries
}

// --- Helpers ---

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStringSlice returns the string elements of a Lua array.
func getStringSlice(tbl *lua.LTable) []string {
	out := []string{}
	for i := 1; i <= tbl.Len(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

func setInt(tbl *lua.LTable, key string, dst *int) {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		*dst = int(n)
	}
}

func setFloat(tbl *lua.LTable, key string, dst *float64) {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		*dst = float64(n)
	}
}

func setString(tbl *lua.LTable, key string, dst *string) {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		*dst = string(s)
	}
}
