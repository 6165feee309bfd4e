// Package parser converts typed commands into Actions.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/deadgrid/types"
)

// Direction is a unit step on the grid. North is -Y.
type Direction struct {
	DX, DY int
}

var directions = map[string]Direction{
	"n":         {0, -1},
	"s":         {0, 1},
	"e":         {1, 0},
	"w":         {-1, 0},
	"ne":        {1, -1},
	"nw":        {-1, -1},
	"se":        {1, 1},
	"sw":        {-1, 1},
	"north":     {0, -1},
	"south":     {0, 1},
	"east":      {1, 0},
	"west":      {-1, 0},
	"northeast": {1, -1},
	"northwest": {-1, -1},
	"southeast": {1, 1},
	"southwest": {-1, 1},
	"up":        {0, -1},
	"down":      {0, 1},
	"left":      {-1, 0},
	"right":     {1, 0},
}

var verbAliases = map[string]string{
	// Movement
	"go":     "go",
	"walk":   "go",
	"run":    "go",
	"move":   "go",
	"head":   "go",
	"step":   "go",
	"search": "go",

	// Attacking is bumping into a zombie.
	"attack": "go",
	"hit":    "go",
	"fight":  "go",
	"strike": "go",
	"shoot":  "go",
	"stab":   "go",

	// Rest
	"rest":  "rest",
	"r":     "rest",
	"sleep": "rest",
	"nap":   "rest",
	"camp":  "rest",
	"z":     "rest",

	// Retreat
	"retreat":  "retreat",
	"t":        "retreat",
	"distract": "retreat",
	"throw":    "retreat",
	"flee":     "retreat",
	"escape":   "retreat",

	// Quit
	"quit": "quit",
	"q":    "quit",
	"exit": "quit",
}

var fillers = map[string]bool{
	"the": true, "a": true, "an": true,
	"to": true, "towards": true, "toward": true, "at": true,
	"zombie": true, "it": true,
}

// Parse converts a raw command string into an Action. Anything it does not
// recognise yields ActionNone.
func Parse(input string) types.Action {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return types.Action{}
	}

	// Direction shortcut: bare "n", "south", etc.
	if len(words) == 1 {
		if d, ok := directions[words[0]]; ok {
			return move(d)
		}
	}

	verb, ok := verbAliases[words[0]]
	if !ok {
		return types.Action{}
	}
	rest := stripFillers(words[1:])

	switch verb {
	case "go":
		if len(rest) != 1 {
			return types.Action{}
		}
		if d, ok := directions[rest[0]]; ok {
			return move(d)
		}
		return types.Action{}
	case "rest":
		return types.Action{Kind: types.ActionRest}
	case "retreat":
		return types.Action{Kind: types.ActionRetreat}
	case "quit":
		return types.Action{Kind: types.ActionQuit}
	}
	return types.Action{}
}

func move(d Direction) types.Action {
	return types.Action{Kind: types.ActionMove, DX: d.DX, DY: d.DY}
}

// stripFillers removes articles and other words that carry no meaning.
func stripFillers(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !fillers[w] {
			result = append(result, w)
		}
	}
	return result
}
