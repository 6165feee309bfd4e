package rng

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 20; i++ {
		a := rng1.Range(1, 6)
		b := rng2.Range(1, 6)
		if a != b {
			t.Fatalf("roll %d: got %d and %d from same seed", i, a, b)
		}
		if rng1.Chance(0.5) != rng2.Chance(0.5) {
			t.Fatalf("flip %d differs from same seed", i)
		}
	}
}

func TestRNG_Range_Bounds(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		r := rng.Range(10, 15)
		if r < 10 || r > 15 {
			t.Fatalf("roll out of range [10,15]: got %d", r)
		}
	}
}

func TestRNG_Range_Degenerate(t *testing.T) {
	rng := NewRNG(1)

	if r := rng.Range(4, 4); r != 4 {
		t.Errorf("Range(4,4) = %d, want 4", r)
	}
	if r := rng.Range(7, 3); r != 7 {
		t.Errorf("Range(7,3) = %d, want 7", r)
	}
}

func TestRNG_Intn_NonPositive(t *testing.T) {
	rng := NewRNG(1)
	if v := rng.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, want 0", v)
	}
}

func TestRNG_Chance_Extremes(t *testing.T) {
	rng := NewRNG(7)

	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestRNG_WeightedSelect_Distribution(t *testing.T) {
	rng := NewRNG(12345)
	weights := []int{70, 20, 10}
	counts := [3]int{}

	const trials = 10000
	for i := 0; i < trials; i++ {
		idx := rng.WeightedSelect(weights)
		if idx < 0 || idx > 2 {
			t.Fatalf("index out of range: %d", idx)
		}
		counts[idx]++
	}

	// With 10k trials, expect roughly 70%/20%/10% ± some margin.
	if counts[0] < 6000 || counts[0] > 8000 {
		t.Errorf("expected ~7000 for weight 70, got %d", counts[0])
	}
	if counts[1] < 1000 || counts[1] > 3000 {
		t.Errorf("expected ~2000 for weight 20, got %d", counts[1])
	}
	if counts[2] < 200 || counts[2] > 1800 {
		t.Errorf("expected ~1000 for weight 10, got %d", counts[2])
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	rng := NewRNG(42)

	if rng.Position() != 0 {
		t.Fatalf("expected position 0, got %d", rng.Position())
	}

	rng.Range(1, 6)
	rng.Chance(0.5)
	rng.WeightedSelect([]int{50, 50})
	rng.Intn(3)
	if rng.Position() != 4 {
		t.Fatalf("expected position 4, got %d", rng.Position())
	}
	if rng.Seed() != 42 {
		t.Errorf("expected seed 42, got %d", rng.Seed())
	}
}

func TestScript_Replays(t *testing.T) {
	s := &Script{Ints: []int{15, 2, 9}, Flips: []bool{true, false}}

	if v := s.Range(10, 15); v != 15 {
		t.Errorf("Range = %d, want 15", v)
	}
	if v := s.WeightedSelect([]int{1, 1, 1}); v != 2 {
		t.Errorf("WeightedSelect = %d, want 2", v)
	}
	if v := s.Intn(4); v != 3 {
		t.Errorf("Intn clamps 9 into [0,4): got %d, want 3", v)
	}
	if !s.Chance(0.1) {
		t.Error("first flip should be true")
	}
	if s.Chance(0.9) {
		t.Error("second flip should be false")
	}
	// Exhausted.
	if s.Chance(1) {
		t.Error("exhausted script should return false")
	}
	if v := s.Range(3, 8); v != 3 {
		t.Errorf("exhausted Range = %d, want 3", v)
	}
}
