// Deadgrid is a turn-based zombie survival game on a generated city grid.
// Usage: deadgrid [--version] [--plain] [--script <file>] [--trace] [--seed <n>]
//
//	[--config <file>] [--log <file>] [--dump]
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/deadgrid/cli"
	"github.com/nathoo/deadgrid/engine"
	"github.com/nathoo/deadgrid/engine/rng"
	"github.com/nathoo/deadgrid/engine/snapshot"
	"github.com/nathoo/deadgrid/loader"
	"github.com/nathoo/deadgrid/tui"
	"github.com/nathoo/deadgrid/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: deadgrid [--version] [--plain] [--script <file>] [--trace] [--seed <n>] [--config <file>] [--log <file>] [--dump]"

func main() {
	plain := false
	trace := false
	dump := false
	seed := time.Now().UnixNano()
	var scriptFile, configFile string
	logFile := os.Getenv("DEADGRID_LOG")

	args := os.Args[1:]
	value := func(i *int, flag string) string {
		if *i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", flag)
			os.Exit(1)
		}
		*i++
		return args[*i]
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("deadgrid %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--dump":
			dump = true
		case "--script":
			scriptFile = value(&i, "--script")
		case "--config":
			configFile = value(&i, "--config")
		case "--log":
			logFile = value(&i, "--log")
		case "--seed":
			raw := value(&i, "--seed")
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: --seed %q is not an integer\n", raw)
				os.Exit(1)
			}
			seed = n
		case "-h", "--help":
			fmt.Println(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument %q\n%s\n", args[i], usage)
			os.Exit(1)
		}
	}

	// Diagnostics go to the log file when one is named, nowhere otherwise.
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "deadgrid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := loader.Defaults()
	if configFile != "" {
		var err error
		cfg, err = loader.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	eng := engine.New(cfg, rng.NewRNG(seed))
	log.Printf("[main] seed %d: %dx%d grid, %d rooms, %d goal tiles, %d zombies",
		seed, eng.Grid.Width, eng.Grid.Height, len(eng.Grid.Rooms),
		eng.Grid.Count(types.TileGoal), len(eng.State.Zombies))

	if dump {
		if err := dumpState(eng, seed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		runPlain(eng, cfg, seed, f, trace, true)
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		runPlain(eng, cfg, seed, os.Stdin, trace, false)
		return
	}

	if err := tui.Run(eng, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlain(eng *engine.Engine, cfg *types.Config, seed int64, in io.Reader, trace, echo bool) {
	fmt.Printf("deadgrid %s | seed %d | %dx%d\n\n", version, seed, cfg.World.Width, cfg.World.Height)
	c := cli.New(eng, seed)
	c.In = in
	c.Trace = trace
	c.EchoInput = echo
	c.Run()
}

func dumpState(eng *engine.Engine, seed int64) error {
	data, err := snapshot.Capture(eng.Grid, eng.State, seed).Stamp(eng.RNG).Marshal()
	if err != nil {
		return fmt.Errorf("dumping state: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
