package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/deadgrid/engine"
	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/types"
)

const (
	sidebarWidth = 38
	maxTrace     = 6
	maxLogRows   = 10

	// Below this height the log panel shrinks to the newest line.
	compactHeight = 30
)

// alerts collects what event handlers observed during the last turn. The
// Model holds it by pointer so handlers registered once keep writing to
// the copy Bubble Tea passes around.
type alerts struct {
	hurt    bool
	goal    bool
	over    bool
	tracing bool
	trace   []string
}

// Model is the Bubble Tea model for the deadgrid TUI.
type Model struct {
	engine *engine.Engine
	seed   int64

	keys keyMap
	help help.Model
	bus  *events.Bus
	fx   *alerts

	weapons map[string]bool

	width    int
	height   int
	ready    bool
	tracing  bool
	quitting bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, seed int64) Model {
	fx := &alerts{}
	bus := &events.Bus{}
	bus.On(events.Bite, func(types.Event) { fx.hurt = true })
	bus.On(events.Goal, func(types.Event) { fx.goal = true })
	bus.On(events.GameOver, func(types.Event) { fx.over = true })
	bus.OnAny(func(ev types.Event) {
		if !fx.tracing {
			return
		}
		fx.trace = append(fx.trace, formatEvent(ev))
		if len(fx.trace) > maxTrace {
			fx.trace = fx.trace[len(fx.trace)-maxTrace:]
		}
	})

	cb := eng.Config.Combat
	return Model{
		engine:  eng,
		seed:    seed,
		keys:    defaultKeyMap(),
		help:    help.New(),
		bus:     bus,
		fx:      fx,
		weapons: map[string]bool{cb.Melee.Name: true, cb.Ranged.Name: true},
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, seed int64) error {
	m := New(eng, seed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model. The intro is already in the message log.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Trace):
			m.tracing = !m.tracing
			m.fx.tracing = m.tracing
			if !m.tracing {
				m.fx.trace = nil
			}
			return m, nil
		}

		action, ok := m.keys.actionFor(msg)
		if !ok {
			return m, nil
		}
		return m.step(action)
	}
	return m, nil
}

// step resolves one action and lets the event handlers update the alerts.
func (m Model) step(action types.Action) (tea.Model, tea.Cmd) {
	m.fx.hurt = false
	res := m.engine.Step(action)
	m.bus.Dispatch(res.Events)
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// formatEvent renders one event as a trace line.
func formatEvent(ev types.Event) string {
	if len(ev.Data) == 0 {
		return "[trace] " + ev.Type
	}
	return fmt.Sprintf("[trace] %s %v", ev.Type, ev.Data)
}

// View renders the map and sidebar over the log, status bar and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	s := m.engine.State

	logLines := s.Log.Lines()
	logRows := s.Log.Cap()
	if logRows > maxLogRows {
		logRows = maxLogRows
	}
	if m.height < compactHeight {
		logLines, logRows = []string{s.Log.Last()}, 1
	}
	if len(logLines) > logRows {
		logLines = logLines[len(logLines)-logRows:]
	}
	if m.tracing {
		logLines = append(logLines, m.fx.trace...)
		logRows += len(m.fx.trace)
	}
	logWidth := m.width - 4
	if logWidth < 10 {
		logWidth = 10
	}
	logBody := padLines(renderLog(logLines, logWidth), logRows)
	logPanel := panel(stylePanel.Width(m.width-2), "Log", logBody)

	helpView := m.help.View(m.keys)
	reserved := lipgloss.Height(logPanel) + lipgloss.Height(helpView) + 1

	mapW := m.width - sidebarWidth - 4
	mapH := m.height - reserved - 3
	if mapW < 1 {
		mapW = 1
	}
	if mapH < 1 {
		mapH = 1
	}

	zombies := make(map[types.Point]bool, len(s.Zombies))
	for _, z := range s.Zombies {
		zombies[types.Point{X: z.X, Y: z.Y}] = true
	}
	view := mapView{
		grid:    m.engine.Grid,
		shades:  m.engine.Shades(),
		player:  s.Player,
		zombies: zombies,
	}
	mapStyle := stylePanel
	if m.fx.hurt {
		mapStyle = stylePanelHurt
	}
	mapPanel := panel(mapStyle, m.mapTitle(), view.render(mapW, mapH))

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		panel(stylePanel.Width(sidebarWidth-2), "Mini-Map", renderMiniMap(m.engine.Grid, s.Player)),
		panel(stylePanel.Width(sidebarWidth-2), "Survivor", renderStats(s)),
		panel(stylePanel.Width(sidebarWidth-2), "Pack", renderInventory(s.Inventory, m.weapons)),
	)

	top := lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, sidebar)
	return strings.Join([]string{top, logPanel, m.renderStatusBar(), helpView}, "\n")
}

func (m Model) mapTitle() string {
	switch {
	case m.fx.over:
		return styleGameOver.Render(fmt.Sprintf("DEAD after %d turns. Press q.", m.engine.State.TurnCount))
	case m.fx.hurt:
		return styleDanger.Render("Bitten!")
	case m.fx.goal:
		return styleGain.Render("Evac point reached")
	default:
		return "The Mall District"
	}
}
