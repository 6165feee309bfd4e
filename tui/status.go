package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// seed, turn, position and the number of zombies on the map.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := fmt.Sprintf(" Seed %d | (%d,%d)", m.seed, s.Player.X, s.Player.Y)
	if s.ReachedGoal {
		left += " | Evac reached"
	}
	if m.tracing {
		left += " | trace"
	}
	right := fmt.Sprintf("Zombies: %d | T:%d ", len(s.Zombies), s.TurnCount)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
