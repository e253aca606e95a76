package rounder

import (
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
)

// IterativeRounder implements the floor-to-hundred stage by stepping the
// value down one at a time. The loop runs at most 99 times regardless of
// the magnitude of v, so the work is bounded, not proportional to v.
type IterativeRounder struct{}

// NewIterativeRounder creates a new iterative rounder.
func NewIterativeRounder() ports.Rounder {
	return &IterativeRounder{}
}

// RoundDown returns the nearest multiple of 100 at or below v.
func (r *IterativeRounder) RoundDown(v uint64) uint64 {
	for v%100 != 0 {
		v--
	}
	return v
}
