package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// cellKey selects a glyph by terrain and visibility band.
type cellKey struct {
	tile  types.Tile
	shade types.Shade
}

// tilePalette gives each tile a character and one colour per shade,
// indexed Dark, Dim, Lit, Bright.
var tilePalette = map[types.Tile]struct {
	ch     string
	colors [4]string
}{
	types.TileWall:     {"#", [4]string{"236", "239", "243", "247"}},
	types.TileFloor:    {".", [4]string{"234", "238", "242", "246"}},
	types.TileFoliage:  {"\"", [4]string{"22", "28", "34", "40"}},
	types.TileCar:      {"c", [4]string{"52", "88", "124", "160"}},
	types.TileResource: {"$", [4]string{"58", "100", "142", "184"}},
	types.TileBuilding: {"B", [4]string{"17", "19", "26", "33"}},
	types.TileGoal:     {">", [4]string{"53", "91", "129", "165"}},
	types.TileWeapon:   {"!", [4]string{"94", "130", "166", "208"}},
}

// glyphs is the (Tile, Shade) lookup table the map panel draws from.
var glyphs = buildGlyphs()

func buildGlyphs() map[cellKey]string {
	out := make(map[cellKey]string, len(tilePalette)*4)
	for tile, p := range tilePalette {
		for shade := types.ShadeDark; shade <= types.ShadeBright; shade++ {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.colors[shade]))
			if shade == types.ShadeBright {
				style = style.Bold(true)
			}
			out[cellKey{tile, shade}] = style.Render(p.ch)
		}
	}
	return out
}

var (
	glyphUnknown = " "
	glyphPlayer  = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true).Render("@")
	glyphZombie  = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true).Render("Z")
)

// cellGlyph returns the rendered glyph for a tile seen at a shade. A cell
// with no shade has never been seen this turn and renders blank.
func cellGlyph(tile types.Tile, shade types.Shade, seen bool) string {
	if !seen {
		return glyphUnknown
	}
	if g, ok := glyphs[cellKey{tile, shade}]; ok {
		return g
	}
	return string(world.Glyph(tile))
}

// mapView is the slice of the grid shown in the map panel.
type mapView struct {
	grid    *world.Grid
	shades  map[types.Point]types.Shade
	player  types.Point
	zombies map[types.Point]bool
}

// camera returns the top-left cell of a w×h window centred on the player
// and clamped to the grid.
func camera(center types.Point, w, h, gridW, gridH int) types.Point {
	clampAxis := func(c, size, total int) int {
		o := c - size/2
		if o > total-size {
			o = total - size
		}
		if o < 0 {
			o = 0
		}
		return o
	}
	return types.Point{X: clampAxis(center.X, w, gridW), Y: clampAxis(center.Y, h, gridH)}
}

// render draws a w×h window of the map. Zombies show only where the
// survivor can see them.
func (v mapView) render(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	origin := camera(v.player, w, h, v.grid.Width, v.grid.Height)

	lines := make([]string, 0, h)
	for y := origin.Y; y < origin.Y+h && y < v.grid.Height; y++ {
		var b strings.Builder
		for x := origin.X; x < origin.X+w && x < v.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			shade, seen := v.shades[p]
			switch {
			case p == v.player:
				b.WriteString(glyphPlayer)
			case v.zombies[p] && seen && shade > types.ShadeDark:
				b.WriteString(glyphZombie)
			default:
				b.WriteString(cellGlyph(v.grid.Tile(x, y), shade, seen))
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
