// Package world builds and owns the static tile grid: BSP room layout,
// corridor carving, feature scatter and the goal room.
package world

import "github.com/nathoo/deadgrid/types"

// Grid is a width × height row-major array of tiles plus the rooms carved
// into it, in creation order.
type Grid struct {
	Width  int
	Height int
	Tiles  []types.Tile
	Rooms  []types.Rect
}

// NewGrid returns an all-wall grid. Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([]types.Tile, width*height)
	for i := range tiles {
		tiles[i] = types.TileWall
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) names a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// interior reports whether (x, y) lies inside the one-cell border.
func (g *Grid) interior(x, y int) bool {
	return x >= 1 && x < g.Width-1 && y >= 1 && y < g.Height-1
}

// At returns the tile at (x, y) and whether the coordinate is in bounds.
func (g *Grid) At(x, y int) (types.Tile, bool) {
	if !g.InBounds(x, y) {
		return types.TileWall, false
	}
	return g.Tiles[y*g.Width+x], true
}

// Tile returns the tile at (x, y). Out-of-bounds cells read as Wall.
func (g *Grid) Tile(x, y int) types.Tile {
	t, _ := g.At(x, y)
	return t
}

// Set overwrites the tile at (x, y). Returns false if out of bounds.
func (g *Grid) Set(x, y int, t types.Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Tiles[y*g.Width+x] = t
	return true
}

// Walkable reports whether (x, y) is in bounds and not a wall.
func (g *Grid) Walkable(x, y int) bool {
	t, ok := g.At(x, y)
	return ok && t != types.TileWall
}

// Count returns how many cells hold tile t.
func (g *Grid) Count(t types.Tile) int {
	n := 0
	for _, c := range g.Tiles {
		if c == t {
			n++
		}
	}
	return n
}

// TakeMarkers converts every ZombieMarker to Floor and returns the marker
// positions in row-major order.
func (g *Grid) TakeMarkers() []types.Point {
	var pts []types.Point
	for i, t := range g.Tiles {
		if t == types.TileZombieMarker {
			g.Tiles[i] = types.TileFloor
			pts = append(pts, types.Point{X: i % g.Width, Y: i / g.Width})
		}
	}
	return pts
}
