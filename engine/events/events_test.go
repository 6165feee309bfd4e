package events

import (
	"testing"

	"github.com/nathoo/deadgrid/types"
)

func TestDispatch_MatchesEventType(t *testing.T) {
	var b Bus
	var bites, kills int
	b.On(Bite, func(types.Event) { bites++ })
	b.On(ZombieKilled, func(types.Event) { kills++ })

	calls := b.Dispatch([]types.Event{
		{Type: Bite, Data: map[string]any{"amount": 1}},
		{Type: Move},
		{Type: Bite, Data: map[string]any{"amount": 1}},
	})

	if bites != 2 || kills != 0 {
		t.Errorf("bites %d kills %d, want 2 and 0", bites, kills)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestDispatch_HandlerOrder(t *testing.T) {
	var b Bus
	var order []string
	b.OnAny(func(ev types.Event) { order = append(order, "any:"+ev.Type) })
	b.On(Loot, func(types.Event) { order = append(order, "first") })
	b.On(Loot, func(types.Event) { order = append(order, "second") })

	b.Dispatch([]types.Event{{Type: Loot}, {Type: Move}})

	want := []string{"first", "second", "any:loot", "any:move"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestDispatch_NoHandlers(t *testing.T) {
	var b Bus
	if n := b.Dispatch([]types.Event{{Type: Spawn}}); n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
	if n := b.Dispatch(nil); n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
}

func TestDispatch_DataPassedThrough(t *testing.T) {
	var b Bus
	var got any
	b.On(Retreat, func(ev types.Event) { got = ev.Data["item"] })

	b.Dispatch([]types.Event{{Type: Retreat, Data: map[string]any{"item": "bandage"}}})

	if got != "bandage" {
		t.Errorf("item = %v, want bandage", got)
	}
}
