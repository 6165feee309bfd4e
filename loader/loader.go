// Package loader builds the game tunables from built-in defaults, optionally
// overlaid by a Lua or YAML file.
package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/deadgrid/types"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	world    *lua.LTable
	features *lua.LTable
	survivor *lua.LTable
	combat   *lua.LTable
	horde    *lua.LTable
	weapons  []rawWeapon
	loot     []rawLoot
}

type rawWeapon struct {
	slot  string
	table *lua.LTable
}

type rawLoot struct {
	tile  string
	table *lua.LTable
}

// Load reads a tunables file, overlays it onto Defaults and validates the
// result. The format is picked by extension: .lua, .yaml or .yml.
func Load(path string) (*types.Config, error) {
	var (
		cfg *types.Config
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".lua":
		cfg, err = loadLua(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[loader] loaded %s (%dx%d, %d loot tables)",
		path, cfg.World.Width, cfg.World.Height, len(cfg.Loot))
	return cfg, nil
}

// loadLua executes one Lua file in a sandboxed VM and compiles what it
// declared. The VM is discarded afterwards.
func loadLua(path string) (*types.Config, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", path, err)
	}

	cfg := Defaults()
	if err := compile(coll, cfg); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", path, err)
	}
	return cfg, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach the filesystem or bypass metatables.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// The game seed is the only source of randomness.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
	}
}
