package loader

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks cfg for tunables the engine cannot run with. It returns a
// *ValidationError listing every problem, or nil. Warnings alone are logged.
func Validate(cfg *types.Config) error {
	ve := &ValidationError{}

	validateWorld(ve, cfg.World)
	validateSurvivor(ve, cfg.Survivor)
	validateCombat(ve, cfg.Combat)
	validateHorde(ve, cfg.Horde)
	validateLoot(ve, cfg.Loot)

	for _, w := range ve.Warnings {
		log.Printf("[loader] warning: %s", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateWorld(ve *ValidationError, w types.WorldDef) {
	if w.Width <= 0 || w.Height <= 0 {
		ve.errorf("World size %dx%d must be positive", w.Width, w.Height)
	} else if w.Width < 20 || w.Height < 20 {
		ve.warnf("World size %dx%d is small and may produce no rooms", w.Width, w.Height)
	}
	if w.MaxRooms <= 0 {
		ve.errorf("World.max_rooms must be positive, got %d", w.MaxRooms)
	}
	if w.MinMargin < 0 || w.MaxMargin < w.MinMargin {
		ve.errorf("World margins [%d,%d] are not a valid range", w.MinMargin, w.MaxMargin)
	}
	if w.SplitMin <= 0 || w.SplitAxisMin <= 0 || w.SplitInset < 0 || w.ChildMin <= 0 {
		ve.errorf("World split thresholds must be positive")
	}
	checkChance(ve, "World.feature_chance", w.FeatureChance)
	checkChance(ve, "World.marker_chance", w.MarkerChance)

	total := 0
	for tile, weight := range w.FeatureWeights {
		if !world.Lootable(tile) && tile != types.TileBuilding {
			ve.errorf("Features: %s cannot be scattered", world.TileName(tile))
		}
		if weight < 0 {
			ve.errorf("Features: weight for %s is negative", world.TileName(tile))
		}
		total += weight
	}
	if w.FeatureChance > 0 && total <= 0 {
		ve.errorf("Features: feature_chance is %.2f but no feature has a positive weight", w.FeatureChance)
	}
}

func validateSurvivor(ve *ValidationError, s types.SurvivorDef) {
	if s.Health <= 0 {
		ve.errorf("Survivor.health must be positive, got %d", s.Health)
	}
	if s.Ammo < 0 {
		ve.errorf("Survivor.ammo must not be negative, got %d", s.Ammo)
	}
	if s.Sight < 0 {
		ve.errorf("Survivor.sight must not be negative, got %d", s.Sight)
	}
	if s.LogCapacity <= 0 {
		ve.errorf("Survivor.log_capacity must be positive, got %d", s.LogCapacity)
	}
	if s.FallbackX < 0 || s.FallbackY < 0 {
		ve.errorf("Survivor fallback (%d,%d) must not be negative", s.FallbackX, s.FallbackY)
	}
	if len(s.Inventory) == 0 {
		ve.warnf("Survivor starts with an empty inventory")
	}
}

func validateCombat(ve *ValidationError, c types.CombatDef) {
	checkWeapon(ve, "melee", c.Melee)
	checkWeapon(ve, "ranged", c.Ranged)
	if c.Ranged.Name != "" && c.Ranged.Name == c.Melee.Name {
		ve.errorf("Weapon names must differ, both are %q", c.Melee.Name)
	}
	checkChance(ve, "Combat.fatigue_penalty", c.FatiguePenalty)
	if c.MissDamage < 0 {
		ve.errorf("Combat.miss_damage must not be negative, got %d", c.MissDamage)
	}
}

func checkWeapon(ve *ValidationError, slot string, w types.WeaponDef) {
	if w.Name == "" {
		ve.errorf("Weapon %q: name is required", slot)
	}
	checkChance(ve, fmt.Sprintf("Weapon %q hit_chance", slot), w.HitChance)
	if w.MinDamage < 0 || w.MinDamage > w.MaxDamage {
		ve.errorf("Weapon %q: damage range [%d,%d] is not valid", slot, w.MinDamage, w.MaxDamage)
	}
	if w.AmmoCost < 0 {
		ve.errorf("Weapon %q: ammo_cost must not be negative", slot)
	}
}

func validateHorde(ve *ValidationError, h types.HordeDef) {
	if h.Cap < 0 {
		ve.errorf("Horde.cap must not be negative, got %d", h.Cap)
	}
	checkChance(ve, "Horde.spawn_chance", h.SpawnChance)
	if h.SpawnRadius < 0 || h.SpawnAttempts < 0 || h.Awareness < 0 {
		ve.errorf("Horde radii and attempts must not be negative")
	}
	if h.HP <= 0 {
		ve.errorf("Horde.hp must be positive, got %d", h.HP)
	}
	if h.Bite < 0 {
		ve.errorf("Horde.bite must not be negative, got %d", h.Bite)
	}
}

func validateLoot(ve *ValidationError, loot map[types.Tile][]types.LootEntry) {
	tiles := make([]types.Tile, 0, len(loot))
	for tile := range loot {
		tiles = append(tiles, tile)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	for _, tile := range tiles {
		name := world.TileName(tile)
		entries := loot[tile]
		if !world.Lootable(tile) {
			ve.warnf("Loot table for %s is never rolled", name)
		}
		if len(entries) == 0 {
			ve.errorf("Loot %q: table is empty", name)
		}
		for i, e := range entries {
			if e.Weight <= 0 {
				ve.errorf("Loot %q entry %d: weight must be positive, got %d", name, i+1, e.Weight)
			}
		}
	}
}

func checkChance(ve *ValidationError, field string, p float64) {
	if p < 0 || p > 1 {
		ve.errorf("%s must be within [0,1], got %g", field, p)
	}
}
