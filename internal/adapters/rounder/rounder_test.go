package rounder

import (
	"math"
	"testing"
)

func TestRoundDown(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected uint64
	}{
		{name: "Zero", value: 0, expected: 0},
		{name: "Below first hundred", value: 57, expected: 0},
		{name: "Just under a hundred", value: 99, expected: 0},
		{name: "Exact hundred", value: 100, expected: 100},
		{name: "Just over a hundred", value: 101, expected: 100},
		{name: "Mid range", value: 1999, expected: 1900},
		{name: "Large multiple", value: 123400, expected: 123400},
		{name: "Maximum value", value: math.MaxUint64, expected: math.MaxUint64 - math.MaxUint64%100},
	}

	factory := NewRounderFactory()
	rounders := map[string]RounderType{
		"iterative":   IterativeRounderType,
		"closed form": ClosedFormRounderType,
	}

	for rName, rType := range rounders {
		r := factory.CreateRounder(rType)
		for _, tc := range tests {
			t.Run(rName+"/"+tc.name, func(t *testing.T) {
				got := r.RoundDown(tc.value)
				if got != tc.expected {
					t.Errorf("expected %d, got %d", tc.expected, got)
				}
			})
		}
	}
}

// TestRoundDownEquivalence sweeps both strategies across value ranges and
// checks they never disagree, including around the top of the uint64 range.
func TestRoundDownEquivalence(t *testing.T) {
	iterative := NewIterativeRounder()
	closed := NewClosedFormRounder()

	check := func(v uint64) {
		a := iterative.RoundDown(v)
		b := closed.RoundDown(v)
		if a != b {
			t.Fatalf("strategies disagree at %d: iterative=%d closed=%d", v, a, b)
		}
	}

	for v := uint64(0); v < 1000; v++ {
		check(v)
	}
	for v := uint64(math.MaxUint64 - 300); v < math.MaxUint64; v++ {
		check(v)
	}
	check(math.MaxUint64)
}

// TestRoundDownIdempotent verifies that rounding an already rounded value
// is a no-op.
func TestRoundDownIdempotent(t *testing.T) {
	r := NewClosedFormRounder()
	for v := uint64(0); v < 100000; v += 37 {
		once := r.RoundDown(v)
		twice := r.RoundDown(once)
		if once != twice {
			t.Fatalf("round down not idempotent at %d: %d then %d", v, once, twice)
		}
	}
}
