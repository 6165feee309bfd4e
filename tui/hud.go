package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nathoo/deadgrid/engine/state"
)

const barWidth = 20

// statBar renders a labelled gauge for a 0..MaxStat value.
func statBar(label string, value int) string {
	if value < 0 {
		value = 0
	}
	if value > state.MaxStat {
		value = state.MaxStat
	}
	filled := value * barWidth / state.MaxStat

	color := lipgloss.Color("40")
	switch {
	case value <= 25:
		color = lipgloss.Color("196")
	case value <= 50:
		color = lipgloss.Color("220")
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%-8s %s %3d", label, bar, value)
}

// renderStats returns the four survival gauges plus the ammo count.
func renderStats(s *state.State) string {
	lines := []string{
		statBar("Health", s.Health),
		statBar("Hunger", s.Hunger),
		statBar("Thirst", s.Thirst),
		statBar("Fatigue", s.Fatigue),
		fmt.Sprintf("%-8s %d", "Ammo", s.Ammo),
	}
	return strings.Join(lines, "\n")
}

// renderInventory draws the carried items as a table. Items matching a
// configured weapon name are highlighted.
func renderInventory(items []string, weapons map[string]bool) string {
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), it})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"-", "(empty-handed)"})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Item").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if row >= 0 && row < len(items) && weapons[items[row]] {
				return styleTableWeapon
			}
			return styleTableCell
		})
	return t.Render()
}

// renderLog styles each message log line by its kind and wraps it to width.
func renderLog(lines []string, width int) string {
	styled := make([]string, 0, len(lines))
	for _, line := range lines {
		styled = append(styled, renderLineKind(wordWrap(line, width), classifyLine(line)))
	}
	return strings.Join(styled, "\n")
}

// padLines appends blank lines until body is at least n lines tall.
func padLines(body string, n int) string {
	if missing := n - lipgloss.Height(body); missing > 0 {
		body += strings.Repeat("\n", missing)
	}
	return body
}

// panel wraps body in a bordered box with a title line.
func panel(style lipgloss.Style, title, body string) string {
	return style.Render(stylePanelTitle.Render(title) + "\n" + body)
}
