package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

// yamlFile is the on-disk YAML layout. Sections decode onto the defaults,
// so absent keys keep their default values. Features and loot tables are
// keyed by tile name and replace the defaults they name.
type yamlFile struct {
	types.Config `yaml:",inline"`

	Features map[string]int               `yaml:"features"`
	Loot     map[string][]types.LootEntry `yaml:"loot"`
}

func loadYAML(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseYAML(data)
}

// parseYAML overlays a YAML document onto Defaults.
func parseYAML(data []byte) (*types.Config, error) {
	file := yamlFile{Config: *Defaults()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg := file.Config
	if file.Features != nil {
		weights := make(map[types.Tile]int, len(file.Features))
		for name, w := range file.Features {
			tile, ok := world.ParseTile(name)
			if !ok {
				return nil, fmt.Errorf("features: unknown tile %q", name)
			}
			weights[tile] = w
		}
		cfg.World.FeatureWeights = weights
	}
	for name, entries := range file.Loot {
		tile, ok := world.ParseTile(name)
		if !ok {
			return nil, fmt.Errorf("loot table: unknown tile %q", name)
		}
		cfg.Loot[tile] = entries
	}
	return &cfg, nil
}
