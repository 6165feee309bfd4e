package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// miniSize is the side of the square window the mini-map shows.
const miniSize = 10

var glyphMiniPlayer = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Reverse(true).Render("@")

// renderMiniMap draws the raw terrain in a miniSize square around the
// player. It ignores line of sight and shows no zombies. Cells off the
// grid read as wall.
func renderMiniMap(g *world.Grid, player types.Point) string {
	rows := make([]string, miniSize)
	for my := 0; my < miniSize; my++ {
		var b strings.Builder
		for mx := 0; mx < miniSize; mx++ {
			x, y := player.X+mx-miniSize/2, player.Y+my-miniSize/2
			if x == player.X && y == player.Y {
				b.WriteString(glyphMiniPlayer)
				continue
			}
			b.WriteString(cellGlyph(g.Tile(x, y), types.ShadeDim, true))
		}
		rows[my] = b.String()
	}
	return strings.Join(rows, "\n")
}
