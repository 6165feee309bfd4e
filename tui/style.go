package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	stylePanelHurt = stylePanel.
			BorderForeground(lipgloss.Color("196"))

	stylePanelTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleGain = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	styleRadio = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleGameOver = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("88")).
			Bold(true).
			Padding(0, 1)

	styleTableHeader = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Bold(true).
				Padding(0, 1)

	styleTableCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	styleTableWeapon = styleTableCell.
				Foreground(lipgloss.Color("208"))
)

// lineKind identifies the type of a log line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindDanger
	kindGain
	kindHint
	kindRadio
	kindTrace
)

// classifyLine determines what kind of log line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.Contains(line, "(-"),
		strings.HasPrefix(line, "A zombie bites"),
		strings.HasPrefix(line, "You collapse"),
		strings.HasPrefix(line, "Bump!"):
		return kindDanger
	case strings.Contains(line, "(+"),
		strings.HasPrefix(line, "Your ") && strings.Contains(line, "drops the zombie"):
		return kindGain
	case strings.HasPrefix(line, "Hunger gnaws"),
		strings.HasPrefix(line, "Your throat"),
		strings.HasPrefix(line, "Nowhere safe"),
		strings.HasPrefix(line, "Too hungry"),
		strings.HasPrefix(line, "No zombie close"),
		strings.HasPrefix(line, "Nothing to spare"):
		return kindHint
	case containsQuotedSpeech(line):
		return kindRadio
	default:
		return kindNarrative
	}
}

// containsQuotedSpeech checks if a line carries a radio or spoken message
// in single quotes.
func containsQuotedSpeech(line string) bool {
	inQuote := false
	quoteLen := 0
	for _, r := range line {
		if r == '\'' {
			if inQuote && quoteLen > 5 {
				return true
			}
			inQuote = !inQuote
			quoteLen = 0
		} else if inQuote {
			quoteLen++
		}
	}
	return false
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindDanger:
		return styleDanger.Render(line)
	case kindGain:
		return styleGain.Render(line)
	case kindHint:
		return styleHint.Render(line)
	case kindRadio:
		return styleRadio.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}
