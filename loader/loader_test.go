package loader

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/nathoo/deadgrid/types"
)

// TestMain keeps run diagnostics off the test output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestDefaults_Valid(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("Defaults() failed validation: %v", err)
	}
}

func TestDefaults_FreshCopy(t *testing.T) {
	a := Defaults()
	a.Survivor.Inventory[0] = "spoon"
	a.Loot[types.TileCar] = nil
	a.World.FeatureWeights[types.TileWeapon] = 99

	b := Defaults()
	if b.Survivor.Inventory[0] != "rusty knife" {
		t.Errorf("inventory shared between calls: %v", b.Survivor.Inventory)
	}
	if len(b.Loot[types.TileCar]) == 0 {
		t.Error("loot table shared between calls")
	}
	if b.World.FeatureWeights[types.TileWeapon] == 99 {
		t.Error("feature weights shared between calls")
	}
}

func TestDefaults_Values(t *testing.T) {
	cfg := Defaults()

	if cfg.Survivor.Health != 100 || cfg.Survivor.Ammo != 0 {
		t.Errorf("survivor = %+v", cfg.Survivor)
	}
	if cfg.Survivor.LogCapacity != 10 || cfg.Survivor.Sight != 12 {
		t.Errorf("log capacity %d, sight %d", cfg.Survivor.LogCapacity, cfg.Survivor.Sight)
	}
	if cfg.Combat.Ranged.HitChance != 0.95 || cfg.Combat.Melee.HitChance != 0.5 {
		t.Errorf("hit chances = %v / %v", cfg.Combat.Ranged.HitChance, cfg.Combat.Melee.HitChance)
	}
	if cfg.Horde.Cap != 25 || cfg.Horde.SpawnRadius != 8 || cfg.Horde.Awareness != 12 {
		t.Errorf("horde = %+v", cfg.Horde)
	}
	for _, tile := range []types.Tile{types.TileFoliage, types.TileCar, types.TileResource, types.TileWeapon} {
		if len(cfg.Loot[tile]) == 0 {
			t.Errorf("no default loot for tile %d", tile)
		}
	}
}

func TestLoad_Lua(t *testing.T) {
	cfg, err := Load("testdata/tuned.lua")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.World.Width != 40 || cfg.World.Height != 30 || cfg.World.MaxRooms != 8 {
		t.Errorf("world = %dx%d, %d rooms", cfg.World.Width, cfg.World.Height, cfg.World.MaxRooms)
	}
	if cfg.World.MarkerChance != 1 {
		t.Errorf("MarkerChance = %v, want 1", cfg.World.MarkerChance)
	}
	// Untouched keys keep their defaults.
	if cfg.World.SplitMin != 12 || cfg.World.FeatureChance != 0.08 {
		t.Errorf("SplitMin = %d, FeatureChance = %v", cfg.World.SplitMin, cfg.World.FeatureChance)
	}

	if len(cfg.World.FeatureWeights) != 2 || cfg.World.FeatureWeights[types.TileFoliage] != 10 {
		t.Errorf("FeatureWeights = %v", cfg.World.FeatureWeights)
	}

	if cfg.Survivor.Ammo != 3 || cfg.Survivor.Intro != "Static. Then nothing." {
		t.Errorf("survivor = %+v", cfg.Survivor)
	}
	if got := strings.Join(cfg.Survivor.Inventory, ","); got != "rusty knife,flare" {
		t.Errorf("inventory = %q", got)
	}
	if cfg.Survivor.Health != 100 {
		t.Errorf("Health = %d, want default 100", cfg.Survivor.Health)
	}

	r := cfg.Combat.Ranged
	if r.Name != "shotgun" || r.MinDamage != 8 || r.MaxDamage != 12 || r.HitChance != 0.95 {
		t.Errorf("ranged = %+v", r)
	}
	if cfg.Combat.AttackCost != (types.Cost{Fatigue: 4, Hunger: 1, Thirst: 1}) {
		t.Errorf("AttackCost = %+v", cfg.Combat.AttackCost)
	}

	if cfg.Horde.Cap != 10 || cfg.Horde.SpawnChance != 0.25 || cfg.Horde.HP != 10 {
		t.Errorf("horde = %+v", cfg.Horde)
	}

	car := cfg.Loot[types.TileCar]
	if len(car) != 2 || car[0].Thirst != 5 || car[1].Ammo != 2 || car[1].Weight != 3 {
		t.Errorf("car loot = %+v", car)
	}
	if len(cfg.Loot[types.TileFoliage]) != 4 {
		t.Errorf("foliage loot replaced unexpectedly: %+v", cfg.Loot[types.TileFoliage])
	}
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load("testdata/tuned.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.World.Width != 60 || cfg.World.Height != 40 || cfg.World.FeatureChance != 0.1 {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.World.MaxRooms != 20 {
		t.Errorf("MaxRooms = %d, want default 20", cfg.World.MaxRooms)
	}
	if cfg.Survivor.Hunger != 80 || cfg.Survivor.Thirst != 100 {
		t.Errorf("hunger %d, thirst %d", cfg.Survivor.Hunger, cfg.Survivor.Thirst)
	}
	if got := strings.Join(cfg.Survivor.Inventory, ","); got != "rusty knife,bandage" {
		t.Errorf("inventory = %q", got)
	}
	if cfg.Horde.Awareness != 6 || cfg.Horde.Cap != 25 {
		t.Errorf("horde = %+v", cfg.Horde)
	}
	if len(cfg.World.FeatureWeights) != 2 || cfg.World.FeatureWeights[types.TileCar] != 3 {
		t.Errorf("FeatureWeights = %v", cfg.World.FeatureWeights)
	}
	weapon := cfg.Loot[types.TileWeapon]
	if len(weapon) != 1 || weapon[0].Item != "pistol" || weapon[0].Ammo != 2 {
		t.Errorf("weapon loot = %+v", weapon)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"testdata/tunables.toml", "unsupported extension"},
		{"testdata/missing.lua", "executing"},
		{"testdata/missing.yaml", "reading"},
		{"testdata/sandbox.lua", "executing"},
		{"testdata/randomseed.lua", "executing"},
		{"testdata/bad_tile.lua", "unknown tile"},
		{"testdata/bad_slot.lua", "weapon slot"},
		{"testdata/broken.yaml", "parsing YAML"},
		{"testdata/invalid.yaml", "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad_ValidationErrorUnwraps(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError in chain, got %T: %v", err, err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("errors = %v, want 2", ve.Errors)
	}
}

func TestParseYAML_Empty(t *testing.T) {
	cfg, err := parseYAML(nil)
	if err != nil {
		t.Fatalf("parseYAML: %v", err)
	}
	if cfg.World.Width != DefaultWidth || cfg.Survivor.Intro == "" {
		t.Errorf("empty document should yield defaults, got %+v", cfg.World)
	}
}

func TestLoad_ShippedConfigs(t *testing.T) {
	for _, path := range []string{"../configs/deadgrid.lua", "../configs/hardcore.yaml"} {
		t.Run(path, func(t *testing.T) {
			if _, err := Load(path); err != nil {
				t.Fatalf("Load(%s): %v", path, err)
			}
		})
	}
}
