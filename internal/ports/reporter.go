package ports

// Reporter defines the interface for emitting the human-readable result
// lines that accompany every normalization.
type Reporter interface {
	// Report writes the final-value line for output. When withIntermediate
	// is set, the pre-scaling integer line is written immediately before
	// it, with no other write interleaved between the two.
	Report(intermediate uint64, output float64, withIntermediate bool) error
}
