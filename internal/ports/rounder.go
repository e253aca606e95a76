package ports

// Rounder defines the interface for the floor-to-hundred stage of the
// pipeline. RoundDown returns the nearest multiple of 100 that is less
// than or equal to v.
type Rounder interface {
	RoundDown(v uint64) uint64
}
