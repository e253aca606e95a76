package pipeline

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_scaled_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
)

// Pi is fixed at this literal precision. The final scaling must stay bit
// identical across rebuilds, so math.Pi is deliberately not used.
const (
	Pi  = 3.141592653589
	Tau = 2 * Pi
)

// Config holds configuration for the normalization calculator.
type Config struct {
	// Diagnostics enables the extra intermediate-value report line.
	Diagnostics bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Diagnostics: false,
	}
}

// Calculator implements the four-stage scaled normalization pipeline.
// All integer arithmetic is uint64 and wraps modulo 2^64 on overflow;
// the wraparound is part of the contract, not an error.
type Calculator struct {
	config   Config
	logger   ports.Logger
	rounder  ports.Rounder
	reporter ports.Reporter
}

// NewCalculator creates a new normalization calculator.
func NewCalculator(config Config, logger ports.Logger, rounder ports.Rounder, reporter ports.Reporter) (*Calculator, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if rounder == nil {
		return nil, errors.New("rounder must not be nil")
	}
	if reporter == nil {
		return nil, errors.New("reporter must not be nil")
	}

	return &Calculator{
		config:   config,
		logger:   logger,
		rounder:  rounder,
		reporter: reporter,
	}, nil
}

// Normalize runs the pipeline over x and returns the result. The function
// is total: every uint64 input produces a value, and the return value
// depends on nothing but x.
func (c *Calculator) Normalize(ctx context.Context, x uint64) domain.Result {
	c.logger.Debug("Starting scaled normalization", "input", x)

	details := make(map[string]interface{})

	// Check for context cancellation.
	select {
	case <-ctx.Done():
		c.logger.Error("Normalization cancelled", "error", ctx.Err())
		details["error"] = "normalization cancelled"
		return domain.Result{
			Name:    "scaled_normalization",
			Input:   x,
			Details: details,
		}
	default:
		// continue
	}

	// Round up to even. The addition wraps at the top of the range:
	// the maximum odd value becomes 0.
	v := x
	if x%2 != 0 {
		v = x + 1
	}
	details["rounded_even"] = v

	// Scale by 3/2. The halving is exact because v is even; the
	// multiply wraps modulo 2^64.
	v = v / 2
	v = v * 3
	details["scaled"] = v

	// Floor to the nearest lower multiple of 100.
	v = c.rounder.RoundDown(v)
	details["intermediate"] = v

	c.logger.Debug("Pipeline stages computed",
		"input", x,
		"intermediate", v,
	)

	output := float64(v) * Tau

	if err := c.reporter.Report(v, output, c.config.Diagnostics); err != nil {
		c.logger.Warn("Failed to report normalization result", "error", err)
	}

	c.logger.Debug("Computed scaled normalization",
		"input", x,
		"output", output,
	)

	return domain.Result{
		Name:         "scaled_normalization",
		Input:        x,
		Intermediate: v,
		Output:       output,
		Details:      details,
	}
}
