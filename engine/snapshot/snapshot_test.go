package snapshot

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nathoo/deadgrid/engine/rng"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/engine/world"
	"github.com/nathoo/deadgrid/types"
)

func testWorld() (*world.Grid, *state.State) {
	g := world.NewGrid(6, 4)
	for x := 1; x <= 4; x++ {
		g.Set(x, 1, types.TileFloor)
		g.Set(x, 2, types.TileFloor)
	}
	g.Set(4, 2, types.TileCar)
	g.Rooms = []types.Rect{{X1: 1, Y1: 1, X2: 4, Y2: 2}}

	s := &state.State{
		Player:    types.Point{X: 2, Y: 1},
		Health:    80,
		Hunger:    70,
		Thirst:    60,
		Fatigue:   50,
		Ammo:      4,
		Inventory: []string{"rusty knife", "bandage"},
		Zombies:   []types.Zombie{{X: 3, Y: 2, HP: 7}},
		Log:       state.NewMessageLog(3),
		TurnCount: 12,
	}
	s.Logf("first")
	s.Logf("second")
	return g, s
}

func TestCapture(t *testing.T) {
	g, s := testWorld()
	snap := Capture(g, s, 99)

	if snap.Seed != 99 || snap.Turn != 12 {
		t.Errorf("seed %d turn %d", snap.Seed, snap.Turn)
	}
	if snap.Stats != (Stats{Health: 80, Hunger: 70, Thirst: 60, Fatigue: 50, Ammo: 4}) {
		t.Errorf("stats = %+v", snap.Stats)
	}
	if strings.Join(snap.Log, ",") != "first,second" {
		t.Errorf("log = %v", snap.Log)
	}
	want := []string{"######", "#....#", "#...c#", "######"}
	for y, row := range want {
		if snap.Terrain[y] != row {
			t.Errorf("terrain[%d] = %q, want %q", y, snap.Terrain[y], row)
		}
	}
}

func TestCapture_IsACopy(t *testing.T) {
	g, s := testWorld()
	snap := Capture(g, s, 1)

	s.Inventory[0] = "spoon"
	s.Zombies[0].HP = 1
	g.Rooms[0].X1 = 3
	g.Set(1, 1, types.TileGoal)

	if snap.Inventory[0] != "rusty knife" {
		t.Error("inventory aliased")
	}
	if snap.Zombies[0].HP != 7 {
		t.Error("zombies aliased")
	}
	if snap.Rooms[0].X1 != 1 {
		t.Error("rooms aliased")
	}
	if snap.Terrain[1][1] != '.' {
		t.Error("terrain aliased")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	g, s := testWorld()
	data, err := Capture(g, s, 5).Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"seed", "player", "stats", "inventory", "zombies", "terrain"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if snap.Player != (types.Point{X: 2, Y: 1}) || len(snap.Zombies) != 1 || snap.Zombies[0].HP != 7 {
		t.Errorf("decoded = %+v", snap)
	}
}

func TestStamp(t *testing.T) {
	g, s := testWorld()
	r := rng.NewRNG(42)
	r.Intn(10)
	r.Chance(0.5)
	r.Range(1, 6)

	snap := Capture(g, s, 0).Stamp(r)
	if snap.Seed != 42 || snap.Draws != 3 {
		t.Errorf("stamped seed %d draws %d, want 42 and 3", snap.Seed, snap.Draws)
	}

	// A source without a stream position leaves the captured seed alone.
	snap = Capture(g, s, 9).Stamp(&rng.Script{Ints: []int{1}})
	if snap.Seed != 9 || snap.Draws != 0 {
		t.Errorf("script stamp = seed %d draws %d, want 9 and 0", snap.Seed, snap.Draws)
	}
}

func TestMapLines(t *testing.T) {
	g, s := testWorld()
	s.Zombies = append(s.Zombies, types.Zombie{X: 40, Y: 40, HP: 3})
	lines := Capture(g, s, 0).MapLines()

	want := []string{"######", "#.@..#", "#..Zc#", "######"}
	for y, row := range want {
		if lines[y] != row {
			t.Errorf("line %d = %q, want %q", y, lines[y], row)
		}
	}
}
