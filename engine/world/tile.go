package world

import "github.com/nathoo/deadgrid/types"

var tileNames = map[types.Tile]string{
	types.TileWall:         "wall",
	types.TileFloor:        "floor",
	types.TileZombieMarker: "zombie_marker",
	types.TileFoliage:      "foliage",
	types.TileCar:          "car",
	types.TileResource:     "resource",
	types.TileBuilding:     "building",
	types.TileGoal:         "goal",
	types.TileWeapon:       "weapon",
}

var tileGlyphs = map[types.Tile]rune{
	types.TileWall:         '#',
	types.TileFloor:        '.',
	types.TileZombieMarker: 'z',
	types.TileFoliage:      '"',
	types.TileCar:          'c',
	types.TileResource:     '$',
	types.TileBuilding:     'B',
	types.TileGoal:         '>',
	types.TileWeapon:       '!',
}

// TileName returns the lowercase name of t, or "unknown".
func TileName(t types.Tile) string {
	if n, ok := tileNames[t]; ok {
		return n
	}
	return "unknown"
}

// Glyph returns the plain ASCII character for t, or '?'.
func Glyph(t types.Tile) rune {
	if g, ok := tileGlyphs[t]; ok {
		return g
	}
	return '?'
}

// ParseTile maps a tile name back to its Tile.
func ParseTile(name string) (types.Tile, bool) {
	for t, n := range tileNames {
		if n == name {
			return t, true
		}
	}
	return types.TileWall, false
}

// Lootable reports whether stepping onto t rolls a loot table and consumes
// the tile.
func Lootable(t types.Tile) bool {
	switch t {
	case types.TileFoliage, types.TileCar, types.TileResource, types.TileWeapon:
		return true
	}
	return false
}
