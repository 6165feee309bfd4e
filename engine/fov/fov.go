// Package fov computes the radius-limited shade bands drawn around the
// player. It is a distance-banded approximation, not ray-cast line of sight:
// a wall cell is always Dark, and anything behind it is shaded by its own
// distance alone.
package fov

import (
	"math"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// Band thresholds as fractions of the radius.
const (
	dimBeyond = 0.7
	litBeyond = 0.3
)

// ComputeShades classifies every in-bounds cell within radius of (ox, oy).
// Cells outside the radius or the grid are absent from the result.
func ComputeShades(g *world.Grid, ox, oy, radius int) map[types.Point]types.Shade {
	shades := make(map[types.Point]types.Shade)
	if radius < 0 {
		return shades
	}
	r := float64(radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			tx, ty := ox+dx, oy+dy
			tile, ok := g.At(tx, ty)
			if !ok {
				continue
			}
			shades[types.Point{X: tx, Y: ty}] = Classify(tile, math.Sqrt(float64(dx*dx+dy*dy)), r)
		}
	}
	return shades
}

// Classify returns the shade for a tile at distance d from an origin with
// the given radius.
func Classify(tile types.Tile, d, radius float64) types.Shade {
	switch {
	case tile == types.TileWall:
		return types.ShadeDark
	case d > radius*dimBeyond:
		return types.ShadeDim
	case d > radius*litBeyond:
		return types.ShadeLit
	default:
		return types.ShadeBright
	}
}
