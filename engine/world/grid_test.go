package world

import (
	"testing"

	"github.com/nathoo/deadgrid/types"
)

func TestGrid_BoundsChecks(t *testing.T) {
	g := NewGrid(5, 4)

	tests := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{4, 3, true},
		{5, 0, false},
		{0, 4, false},
		{-1, 2, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.in {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.in)
		}
		if _, ok := g.At(tt.x, tt.y); ok != tt.in {
			t.Errorf("At(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.in)
		}
		if got := g.Set(tt.x, tt.y, types.TileFloor); got != tt.in {
			t.Errorf("Set(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.in)
		}
	}
	if g.Tile(-3, -3) != types.TileWall {
		t.Error("out-of-bounds Tile should read as wall")
	}
	if g.Walkable(9, 9) {
		t.Error("out-of-bounds cell reported walkable")
	}
}

func TestNewGrid_AllWall(t *testing.T) {
	g := NewGrid(6, 3)
	if g.Count(types.TileWall) != 18 {
		t.Errorf("wall count = %d, want 18", g.Count(types.TileWall))
	}
	if n := NewGrid(-2, 4); n.Width != 0 || len(n.Tiles) != 0 {
		t.Errorf("negative size grid = %+v", n)
	}
}

func TestTakeMarkers(t *testing.T) {
	g := NewGrid(6, 6)
	g.Set(4, 1, types.TileZombieMarker)
	g.Set(2, 3, types.TileZombieMarker)

	got := g.TakeMarkers()

	want := []types.Point{{X: 4, Y: 1}, {X: 2, Y: 3}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("TakeMarkers = %v, want %v", got, want)
	}
	if g.Count(types.TileZombieMarker) != 0 || g.Tile(2, 3) != types.TileFloor {
		t.Error("markers not converted to floor")
	}
	if len(g.TakeMarkers()) != 0 {
		t.Error("markers taken twice")
	}
}

func TestRectHelpers(t *testing.T) {
	a := types.Rect{X1: 2, Y1: 2, X2: 6, Y2: 5}

	if c := Center(a); c != (types.Point{X: 4, Y: 3}) {
		t.Errorf("Center = %v", c)
	}
	if !Contains(a, 6, 5) || Contains(a, 7, 5) {
		t.Error("Contains should use inclusive bounds")
	}
	if !Intersects(a, types.Rect{X1: 6, Y1: 5, X2: 9, Y2: 9}) {
		t.Error("touching corners should intersect")
	}
	if Intersects(a, types.Rect{X1: 7, Y1: 1, X2: 9, Y2: 9}) {
		t.Error("disjoint rects reported intersecting")
	}
	if Valid(types.Rect{X1: 3, Y1: 1, X2: 3, Y2: 4}) {
		t.Error("zero-width rect reported valid")
	}
}

func TestTileNames(t *testing.T) {
	for tile, name := range tileNames {
		got, ok := ParseTile(name)
		if !ok || got != tile {
			t.Errorf("ParseTile(%q) = %v, %v", name, got, ok)
		}
		if Glyph(tile) == '?' {
			t.Errorf("no glyph for %s", name)
		}
	}
	if _, ok := ParseTile("lava"); ok {
		t.Error("unknown tile parsed")
	}
	if TileName(types.Tile(99)) != "unknown" {
		t.Error("unknown tile should be named unknown")
	}
}

func TestLootable(t *testing.T) {
	for _, tile := range []types.Tile{types.TileFoliage, types.TileCar, types.TileResource, types.TileWeapon} {
		if !Lootable(tile) {
			t.Errorf("%s should be lootable", TileName(tile))
		}
	}
	for _, tile := range []types.Tile{types.TileWall, types.TileFloor, types.TileBuilding, types.TileGoal} {
		if Lootable(tile) {
			t.Errorf("%s should not be lootable", TileName(tile))
		}
	}
}
