package rounder

import (
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
)

// ClosedFormRounder implements the floor-to-hundred stage with truncating
// integer division. It is observably identical to the iterative rounder
// for every uint64 value.
type ClosedFormRounder struct{}

// NewClosedFormRounder creates a new closed-form rounder.
func NewClosedFormRounder() ports.Rounder {
	return &ClosedFormRounder{}
}

// RoundDown returns the nearest multiple of 100 at or below v.
func (r *ClosedFormRounder) RoundDown(v uint64) uint64 {
	return v / 100 * 100
}

// RounderFactory creates the appropriate rounder based on the caller's
// preference between the stepwise and closed-form strategies.
type RounderFactory struct{}

// NewRounderFactory creates a new rounder factory.
func NewRounderFactory() *RounderFactory {
	return &RounderFactory{}
}

// Type of rounder to create
type RounderType int

const (
	// IterativeRounderType steps the value down until it hits a multiple of 100
	IterativeRounderType RounderType = iota
	// ClosedFormRounderType uses truncating division
	ClosedFormRounderType
)

// CreateRounder creates a rounder of the specified type
func (f *RounderFactory) CreateRounder(rounderType RounderType) ports.Rounder {
	switch rounderType {
	case ClosedFormRounderType:
		return NewClosedFormRounder()
	default:
		return NewIterativeRounder()
	}
}
