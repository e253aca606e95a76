package domain

// Result holds the outcome of one scaled normalization. It exists only
// for the duration of a single call; nothing is shared across calls.
type Result struct {
	Name string
	// Input is the value the pipeline was invoked with.
	Input uint64
	// Intermediate is the integer after the floor-to-hundred stage,
	// before the final scaling.
	Intermediate uint64
	// Output is the intermediate value scaled by tau, in double precision.
	Output float64
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
