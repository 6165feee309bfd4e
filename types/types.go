// Package types defines the shared data structures for the deadgrid engine.
// This package contains only type definitions: no logic, no methods.
package types

// Point is a cell coordinate on the grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is the static terrain/feature classification of one grid cell.
type Tile int

const (
	TileWall Tile = iota
	TileFloor
	TileZombieMarker // generation-time only; consumed into a zombie at state creation
	TileFoliage
	TileCar
	TileResource
	TileBuilding
	TileGoal
	TileWeapon
)

// Shade is a visibility band. Ordered: Dark < Dim < Lit < Bright.
type Shade int

const (
	ShadeDark Shade = iota
	ShadeDim
	ShadeLit
	ShadeBright
)

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Zombie is a live hostile entity.
type Zombie struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	HP int `json:"hp"`
}

// ActionKind identifies what the player does this turn.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove            // move or interact toward (DX, DY)
	ActionRest
	ActionRetreat
	ActionQuit
)

// Action is one discrete player action.
type Action struct {
	Kind   ActionKind
	DX, DY int // ActionMove only
}

// Event is emitted while a turn resolves.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single turn.
type Result struct {
	Events   []Event
	Output   []string
	Taken    bool // false when the action was refused and the world did not advance
	GameOver bool
	Quit     bool
}

// WorldDef holds the World Generator tunables.
type WorldDef struct {
	Width          int          `yaml:"width"`
	Height         int          `yaml:"height"`
	MaxRooms       int          `yaml:"max_rooms"`
	MinMargin      int          `yaml:"min_margin"`
	MaxMargin      int          `yaml:"max_margin"`
	SplitMin       int          `yaml:"split_min"`      // both extents must reach this to split
	SplitAxisMin   int          `yaml:"split_axis_min"` // chosen axis must exceed this
	SplitInset     int          `yaml:"split_inset"`    // split coordinate keeps this far from each end
	ChildMin       int          `yaml:"child_min"`      // halves below this extent are discarded
	FeatureChance  float64      `yaml:"feature_chance"`
	FeatureWeights map[Tile]int `yaml:"-"`
	MarkerChance   float64      `yaml:"marker_chance"`
}

// WeaponDef describes one weapon profile.
type WeaponDef struct {
	Name      string  `yaml:"name"`
	HitChance float64 `yaml:"hit_chance"`
	MinDamage int     `yaml:"min_damage"`
	MaxDamage int     `yaml:"max_damage"`
	AmmoCost  int     `yaml:"ammo_cost"`
}

// Cost is a stat price paid by an action.
type Cost struct {
	Fatigue int `yaml:"fatigue"`
	Hunger  int `yaml:"hunger"`
	Thirst  int `yaml:"thirst"`
}

// CombatDef holds player combat tunables.
type CombatDef struct {
	Melee          WeaponDef `yaml:"melee"`
	Ranged         WeaponDef `yaml:"ranged"`
	FatiguePenalty float64   `yaml:"fatigue_penalty"` // max hit-chance loss at 0 fatigue
	MissDamage     int       `yaml:"miss_damage"`
	AttackCost     Cost      `yaml:"attack_cost"`
	RetreatCost    Cost      `yaml:"retreat_cost"`
}

// SurvivorDef holds the player's starting kit and survival tunables.
type SurvivorDef struct {
	Health      int      `yaml:"health"`
	Hunger      int      `yaml:"hunger"`
	Thirst      int      `yaml:"thirst"`
	Fatigue     int      `yaml:"fatigue"`
	Ammo        int      `yaml:"ammo"`
	Inventory   []string `yaml:"inventory"`
	Intro       string   `yaml:"intro"`
	Sight       int      `yaml:"sight"`
	LogCapacity int      `yaml:"log_capacity"`
	FallbackX   int      `yaml:"fallback_x"`
	FallbackY   int      `yaml:"fallback_y"`
	MoveFatigue int      `yaml:"move_fatigue"`
	RestMinimum int      `yaml:"rest_minimum"` // hunger and thirst needed to rest
	RestFatigue int      `yaml:"rest_fatigue"`
	RestHealth  int      `yaml:"rest_health"`
	RestCost    int      `yaml:"rest_cost"` // hunger and thirst spent resting
	HintBelow   int      `yaml:"hint_below"`
}

// HordeDef holds zombie spawn and behaviour tunables.
type HordeDef struct {
	Cap           int     `yaml:"cap"`
	SpawnChance   float64 `yaml:"spawn_chance"`
	SpawnRadius   int     `yaml:"spawn_radius"`
	SpawnAttempts int     `yaml:"spawn_attempts"`
	Awareness     int     `yaml:"awareness"`
	HP            int     `yaml:"hp"`
	Bite          int     `yaml:"bite"`
}

// LootEntry is one outcome of a tile's loot table.
type LootEntry struct {
	Weight int    `yaml:"weight"`
	Text   string `yaml:"text"`
	Health int    `yaml:"health"`
	Hunger int    `yaml:"hunger"`
	Thirst int    `yaml:"thirst"`
	Ammo   int    `yaml:"ammo"`
	Item   string `yaml:"item"`
}

// Config is the complete set of game tunables.
type Config struct {
	World    WorldDef             `yaml:"world"`
	Survivor SurvivorDef          `yaml:"survivor"`
	Combat   CombatDef            `yaml:"combat"`
	Horde    HordeDef             `yaml:"horde"`
	Loot     map[Tile][]LootEntry `yaml:"-"`
}
