package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/deadgrid/types"
)

// keyMap holds every binding the game screen reacts to.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Rest      key.Binding
	Retreat   key.Binding
	Trace     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "north")),
		Down:      key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "south")),
		Left:      key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "west")),
		Right:     key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "east")),
		UpLeft:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "north-west")),
		UpRight:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "north-east")),
		DownLeft:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "south-west")),
		DownRight: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "south-east")),
		Rest:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rest")),
		Retreat:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "retreat")),
		Trace:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "trace")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Rest, k.Retreat, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Rest, k.Retreat},
		{k.Trace, k.Help, k.Quit},
	}
}

// moveBinding pairs a binding with its grid step.
type moveBinding struct {
	binding *key.Binding
	dx, dy  int
}

func (k *keyMap) moves() []moveBinding {
	return []moveBinding{
		{&k.Up, 0, -1},
		{&k.Down, 0, 1},
		{&k.Left, -1, 0},
		{&k.Right, 1, 0},
		{&k.UpLeft, -1, -1},
		{&k.UpRight, 1, -1},
		{&k.DownLeft, -1, 1},
		{&k.DownRight, 1, 1},
	}
}

// actionFor maps a key press to a game action. ok is false for keys that
// are not game actions.
func (k *keyMap) actionFor(msg tea.KeyMsg) (types.Action, bool) {
	for _, mb := range k.moves() {
		if key.Matches(msg, *mb.binding) {
			return types.Action{Kind: types.ActionMove, DX: mb.dx, DY: mb.dy}, true
		}
	}
	switch {
	case key.Matches(msg, k.Rest):
		return types.Action{Kind: types.ActionRest}, true
	case key.Matches(msg, k.Retreat):
		return types.Action{Kind: types.ActionRetreat}, true
	case key.Matches(msg, k.Quit):
		return types.Action{Kind: types.ActionQuit}, true
	}
	return types.Action{}, false
}
