// Package cli provides the plain line-oriented shell for deadgrid: pipes,
// dumb terminals and script playback.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/deadgrid/engine"
	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/engine/parser"
	"github.com/nathoo/deadgrid/engine/snapshot"
	"github.com/nathoo/deadgrid/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Seed      int64
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, seed int64) *CLI {
	return &CLI{
		Engine: eng,
		Seed:   seed,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the message log so far, then loops:
// prompt → input → dispatch → output.
func (c *CLI) Run() {
	bus := c.eventBus()

	for _, line := range c.Engine.State.Log.Lines() {
		c.printLine(line)
	}
	c.printStatus()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		}

		action := parser.Parse(input)
		switch action.Kind {
		case types.ActionNone:
			c.printLine("I don't understand that. Type /help for commands.")
			continue
		case types.ActionQuit:
			c.printSystem("Goodbye.")
			return
		}
		c.lastCmd = input

		result := c.Engine.Step(action)
		c.printResult(result)
		bus.Dispatch(result.Events)
		if result.Taken {
			c.printStatus()
		}
	}
}

// eventBus wires trace output and the game-over notice.
func (c *CLI) eventBus() *events.Bus {
	bus := &events.Bus{}
	bus.On(events.GameOver, func(types.Event) {
		c.printSystem("Game over. /state or /map to look back, /quit to leave.")
	})
	bus.OnAny(func(ev types.Event) {
		if !c.Trace {
			return
		}
		if len(ev.Data) == 0 {
			c.printLine("[trace] " + ev.Type)
			return
		}
		c.printLine(fmt.Sprintf("[trace] %s %v", ev.Type, ev.Data))
	})
	return bus
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/map":
		c.cmdMap()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit         Exit game",
		"  /help         Show this help",
		"  /state        Dump the current state as JSON",
		"  /map          Print the whole map",
		"  /trace        Toggle event trace output",
		"",
		"Game commands:",
		"  n s e w ne nw se sw   Move, search or attack in that direction",
		"  go <dir>              Same as above (also walk, attack, shoot)",
		"  rest (r, z)           Rest inside a building",
		"  retreat (t, throw)    Throw an item to shake off a zombie",
		"  quit (q)              Leave the game",
		"  again (g)             Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) capture() *snapshot.Snapshot {
	return snapshot.Capture(c.Engine.Grid, c.Engine.State, c.Seed).Stamp(c.Engine.RNG)
}

func (c *CLI) cmdState() {
	data, err := c.capture().Marshal()
	if err != nil {
		c.printSystem(fmt.Sprintf("State dump failed: %v", err))
		return
	}
	c.printLine(string(data))
}

func (c *CLI) cmdMap() {
	for _, line := range c.capture().MapLines() {
		c.printLine(line)
	}
}

func (c *CLI) printStatus() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("HP %d | Hunger %d | Thirst %d | Fatigue %d | Ammo %d | T:%d",
		s.Health, s.Hunger, s.Thirst, s.Fatigue, s.Ammo, s.TurnCount))
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
