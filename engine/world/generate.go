package world

import (
	"sort"

	"github.com/nathoo/deadgrid/engine/rng"
	"github.com/nathoo/deadgrid/types"
)

// DefaultDef returns the stock generator tunables for the given size.
func DefaultDef(width, height int) types.WorldDef {
	return types.WorldDef{
		Width:         width,
		Height:        height,
		MaxRooms:      20,
		MinMargin:     1,
		MaxMargin:     4,
		SplitMin:      12,
		SplitAxisMin:  8,
		SplitInset:    4,
		ChildMin:      6,
		FeatureChance: 0.08,
		FeatureWeights: map[types.Tile]int{
			types.TileFoliage:  45,
			types.TileResource: 20,
			types.TileCar:      15,
			types.TileBuilding: 12,
			types.TileWeapon:   8,
		},
		MarkerChance: 0.5,
	}
}

// Generate builds a grid of the given size with the stock tunables.
func Generate(width, height int, r rng.Source) *Grid {
	return GenerateDef(DefaultDef(width, height), r)
}

// GenerateDef builds a grid from def. Rooms come from a pick-any BSP work
// queue, are joined in creation order by L-shaped tunnels, then features are
// scattered outside the start room and the last room becomes the goal.
func GenerateDef(def types.WorldDef, r rng.Source) *Grid {
	g := NewGrid(def.Width, def.Height)
	g.partition(def, r)
	g.connect(def, r)
	g.scatter(def, r)
	g.placeGoal()
	return g
}

// partition runs the BSP work queue until it drains or the room cap is hit.
func (g *Grid) partition(def types.WorldDef, r rng.Source) {
	seed := types.Rect{X1: 1, Y1: 1, X2: g.Width - 2, Y2: g.Height - 2}
	if !Valid(seed) {
		return
	}
	queue := []types.Rect{seed}

	for len(queue) > 0 && len(g.Rooms) < def.MaxRooms {
		// Pick any, not FIFO or LIFO.
		i := r.Intn(len(queue))
		current := queue[i]
		queue[i] = queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		room := shrink(current, def, r)
		if !overlapsAny(room, g.Rooms) {
			g.Rooms = append(g.Rooms, room)
			g.carveRoom(room)
		}

		w, h := extents(current)
		if w >= def.SplitMin && h >= def.SplitMin {
			queue = append(queue, split(current, def, r)...)
		}
	}
}

// shrink pulls each edge inward by an independent margin. A collapsed
// result falls back to the rectangle itself.
func shrink(rect types.Rect, def types.WorldDef, r rng.Source) types.Rect {
	room := rect
	room.X1 += r.Range(def.MinMargin, def.MaxMargin)
	room.Y1 += r.Range(def.MinMargin, def.MaxMargin)
	room.X2 -= r.Range(def.MinMargin, def.MaxMargin)
	room.Y2 -= r.Range(def.MinMargin, def.MaxMargin)
	if !Valid(room) {
		return rect
	}
	return room
}

func overlapsAny(room types.Rect, rooms []types.Rect) bool {
	for _, other := range rooms {
		if Intersects(room, other) {
			return true
		}
	}
	return false
}

// split cuts rect in two along a coin-flipped axis and returns the halves
// large enough to keep.
func split(rect types.Rect, def types.WorldDef, r rng.Source) []types.Rect {
	horizontal := r.Chance(0.5)

	lo, hi := rect.X1, rect.X2
	if horizontal {
		lo, hi = rect.Y1, rect.Y2
	}
	if hi-lo <= def.SplitAxisMin {
		return nil
	}
	first, last := lo+def.SplitInset, hi-def.SplitInset-1
	if last < first {
		return nil
	}
	at := r.Range(first, last)

	a, b := rect, rect
	if horizontal {
		a.Y2, b.Y1 = at, at
	} else {
		a.X2, b.X1 = at, at
	}

	var out []types.Rect
	for _, child := range []types.Rect{a, b} {
		w, h := extents(child)
		if w >= def.ChildMin && h >= def.ChildMin {
			out = append(out, child)
		}
	}
	return out
}

func (g *Grid) carveRoom(room types.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			if g.interior(x, y) {
				g.Set(x, y, types.TileFloor)
			}
		}
	}
}

// connect joins consecutive rooms with L-shaped tunnels. The first tunnel
// may keep a zombie marker at the carved cell nearest its midpoint.
func (g *Grid) connect(def types.WorldDef, r rng.Source) {
	for i := 1; i < len(g.Rooms); i++ {
		a, b := Center(g.Rooms[i-1]), Center(g.Rooms[i])

		var carved []types.Point
		if r.Chance(0.5) {
			carved = append(carved, g.hTunnel(a.X, b.X, a.Y)...)
			carved = append(carved, g.vTunnel(a.Y, b.Y, b.X)...)
		} else {
			carved = append(carved, g.vTunnel(a.Y, b.Y, a.X)...)
			carved = append(carved, g.hTunnel(a.X, b.X, b.Y)...)
		}

		if i == 1 && r.Chance(def.MarkerChance) {
			if p, ok := nearestTo(carved, a, b); ok {
				g.Set(p.X, p.Y, types.TileZombieMarker)
			}
		}
	}
}

// hTunnel carves wall cells along row y and returns the cells it changed.
func (g *Grid) hTunnel(x1, x2, y int) []types.Point {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	var carved []types.Point
	for x := x1; x <= x2; x++ {
		if g.interior(x, y) && g.Tile(x, y) == types.TileWall {
			g.Set(x, y, types.TileFloor)
			carved = append(carved, types.Point{X: x, Y: y})
		}
	}
	return carved
}

// vTunnel carves wall cells along column x and returns the cells it changed.
func (g *Grid) vTunnel(y1, y2, x int) []types.Point {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	var carved []types.Point
	for y := y1; y <= y2; y++ {
		if g.interior(x, y) && g.Tile(x, y) == types.TileWall {
			g.Set(x, y, types.TileFloor)
			carved = append(carved, types.Point{X: x, Y: y})
		}
	}
	return carved
}

// nearestTo returns the point of pts closest to the midpoint of a and b.
// Ties keep the earliest point.
func nearestTo(pts []types.Point, a, b types.Point) (types.Point, bool) {
	if len(pts) == 0 {
		return types.Point{}, false
	}
	mx, my := float64(a.X+b.X)/2, float64(a.Y+b.Y)/2
	best, bestD := pts[0], -1.0
	for _, p := range pts {
		dx, dy := float64(p.X)-mx, float64(p.Y)-my
		d := dx*dx + dy*dy
		if bestD < 0 || d < bestD {
			best, bestD = p, d
		}
	}
	return best, true
}

// scatter rolls every floor cell outside the start room for a feature.
func (g *Grid) scatter(def types.WorldDef, r rng.Source) {
	tiles, weights := featureTable(def.FeatureWeights)
	if len(tiles) == 0 {
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tile(x, y) != types.TileFloor {
				continue
			}
			if len(g.Rooms) > 0 && Contains(g.Rooms[0], x, y) {
				continue
			}
			if r.Chance(def.FeatureChance) {
				g.Set(x, y, tiles[r.WeightedSelect(weights)])
			}
		}
	}
}

// featureTable flattens the weight map in tile order so draws are stable
// for a given seed.
func featureTable(w map[types.Tile]int) ([]types.Tile, []int) {
	tiles := make([]types.Tile, 0, len(w))
	for t, n := range w {
		if n > 0 {
			tiles = append(tiles, t)
		}
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	weights := make([]int, len(tiles))
	for i, t := range tiles {
		weights[i] = w[t]
	}
	return tiles, weights
}

// placeGoal retags the last room as the goal. A lone room stays the spawn.
func (g *Grid) placeGoal() {
	if len(g.Rooms) < 2 {
		return
	}
	last := g.Rooms[len(g.Rooms)-1]
	for y := last.Y1; y <= last.Y2; y++ {
		for x := last.X1; x <= last.X2; x++ {
			if g.interior(x, y) {
				g.Set(x, y, types.TileGoal)
			}
		}
	}
}
