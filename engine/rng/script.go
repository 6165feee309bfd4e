package rng

// Script is a Source that replays queued outcomes, for tests that need to
// force specific rolls. Ints feeds Intn, Range and WeightedSelect; Flips feeds
// Chance. An exhausted queue yields the lowest legal value and false.
type Script struct {
	Ints  []int
	Flips []bool
}

// Intn pops the next queued int, clamped to [0, n).
func (s *Script) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return clamp(s.next(0), 0, n-1)
}

// Range pops the next queued int, clamped to [lo, hi].
func (s *Script) Range(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return clamp(s.next(lo), lo, hi)
}

// Chance pops the next queued flip.
func (s *Script) Chance(p float64) bool {
	if len(s.Flips) == 0 {
		return false
	}
	f := s.Flips[0]
	s.Flips = s.Flips[1:]
	return f
}

// WeightedSelect pops the next queued int as an index into weights.
func (s *Script) WeightedSelect(weights []int) int {
	if len(weights) == 0 {
		return 0
	}
	return clamp(s.next(0), 0, len(weights)-1)
}

func (s *Script) next(def int) int {
	if len(s.Ints) == 0 {
		return def
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
