package ports

import (
	"context"

	"github.com/baditaflorin/go_scaled_normalizer/internal/core/domain"
)

// NormalizeCalculator defines the interface for running the scaled
// normalization pipeline over a single input.
type NormalizeCalculator interface {
	Normalize(ctx context.Context, x uint64) domain.Result
}
