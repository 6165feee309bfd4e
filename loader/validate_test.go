package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/deadgrid/types"
)

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Config)
		want   string
	}{
		{"zero width", func(c *types.Config) { c.World.Width = 0 }, "must be positive"},
		{"no rooms", func(c *types.Config) { c.World.MaxRooms = 0 }, "max_rooms"},
		{"inverted margins", func(c *types.Config) { c.World.MinMargin = 5; c.World.MaxMargin = 2 }, "margins"},
		{"feature chance", func(c *types.Config) { c.World.FeatureChance = -0.1 }, "feature_chance"},
		{"marker chance", func(c *types.Config) { c.World.MarkerChance = 2 }, "marker_chance"},
		{"wall feature", func(c *types.Config) { c.World.FeatureWeights[types.TileWall] = 5 }, "cannot be scattered"},
		{"no feature weight", func(c *types.Config) { c.World.FeatureWeights = map[types.Tile]int{} }, "no feature has a positive weight"},
		{"dead survivor", func(c *types.Config) { c.Survivor.Health = 0 }, "Survivor.health"},
		{"negative ammo", func(c *types.Config) { c.Survivor.Ammo = -1 }, "Survivor.ammo"},
		{"zero log", func(c *types.Config) { c.Survivor.LogCapacity = 0 }, "log_capacity"},
		{"damage range", func(c *types.Config) { c.Combat.Ranged.MinDamage = 20 }, "damage range"},
		{"hit chance", func(c *types.Config) { c.Combat.Melee.HitChance = 1.2 }, "hit_chance"},
		{"unnamed weapon", func(c *types.Config) { c.Combat.Melee.Name = "" }, "name is required"},
		{"same weapon", func(c *types.Config) { c.Combat.Ranged.Name = c.Combat.Melee.Name }, "must differ"},
		{"zombie hp", func(c *types.Config) { c.Horde.HP = 0 }, "Horde.hp"},
		{"spawn chance", func(c *types.Config) { c.Horde.SpawnChance = 1.5 }, "spawn_chance"},
		{"empty loot", func(c *types.Config) { c.Loot[types.TileCar] = nil }, "table is empty"},
		{"zero weight", func(c *types.Config) { c.Loot[types.TileCar][0].Weight = 0 }, "weight must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidate_WarningsOnly(t *testing.T) {
	cfg := Defaults()
	cfg.World.Width, cfg.World.Height = 10, 10
	cfg.Survivor.Inventory = nil
	cfg.Loot[types.TileBuilding] = []types.LootEntry{{Weight: 1}}

	if err := Validate(cfg); err != nil {
		t.Fatalf("warnings should not fail validation: %v", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []string{"a", "b"}}
	msg := ve.Error()
	if !strings.HasPrefix(msg, "validation failed with 2 error(s)") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "\n  b") {
		t.Errorf("Error() = %q, want one error per line", msg)
	}
}

func assertContains(t *testing.T, list []string, substr string) {
	t.Helper()
	for _, s := range list {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected an entry containing %q, got: %v", substr, list)
}
