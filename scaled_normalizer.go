// scaled_normalizer.go
// Package scalednormalizer runs a fixed four-stage integer pipeline over an
// unsigned input and scales the result into a float: the input is rounded
// up to even, scaled by 3/2, floored to the nearest lower multiple of 100,
// and finally multiplied by tau. All integer arithmetic is 64-bit unsigned
// and wraps modulo 2^64 on overflow; the wraparound is part of the
// contract, not an error. The pipeline has no parameters beyond its single
// input, and every call reports the final value on the output stream.
//
// This version uses the functional options pattern to allow configuration
// of the logger, the output stream, and the diagnostic report line.
package scalednormalizer

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Pi is fixed at this literal precision. The final scaling must stay bit
// identical across rebuilds, so math.Pi is deliberately not used.
const (
	Pi  = 3.141592653589
	Tau = 2 * Pi
)

// Result holds the outcome of one scaled normalization.
type Result struct {
	// Name of the transformation.
	Name string
	// Input is the value the pipeline was invoked with.
	Input uint64
	// Intermediate is the integer after the floor-to-hundred stage.
	Intermediate uint64
	// Output is the intermediate value scaled by tau, in double precision.
	Output float64
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// Config holds configuration options for the scaled normalizer.
type Config struct {
	// Diagnostics enables the extra intermediate-value report line.
	Diagnostics bool
	// Output receives the report lines; defaults to stdout.
	Output io.Writer
	// Logger for tracing computation steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the normalizer.
type Option func(*Config)

// WithDiagnostics enables the intermediate-value report line.
func WithDiagnostics(enable bool) Option {
	return func(cfg *Config) {
		cfg.Diagnostics = enable
	}
}

// WithOutput sets a custom writer for the report lines.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.Output = w
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// ScaledNormalizer runs the pipeline with configurable reporting.
type ScaledNormalizer struct {
	config Config
}

// New creates a new ScaledNormalizer with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) *ScaledNormalizer {
	cfg := Config{
		Output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// If no logger is set, create a default logger.
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			panic(err)
		}
		cfg.Logger = logger
	}
	return &ScaledNormalizer{config: cfg}
}

// Normalize runs the pipeline over x and returns the result. The function
// is total over uint64: there are no rejected inputs and no error paths.
func (sn *ScaledNormalizer) Normalize(x uint64) Result {
	sn.config.Logger.Debug("Starting scaled normalization", "input", x)

	details := make(map[string]interface{})

	// Round up to even. The addition wraps at the top of the range: the
	// maximum odd value becomes 0.
	v := x
	if x%2 != 0 {
		v = x + 1
	}
	details["rounded_even"] = v

	// Scale by 3/2. The halving is exact because v is even; the multiply
	// wraps modulo 2^64.
	v = v / 2
	v = v * 3
	details["scaled"] = v

	// Floor to the nearest lower multiple of 100. At most 99 steps.
	for v%100 != 0 {
		v--
	}
	details["intermediate"] = v

	output := float64(v) * Tau

	if sn.config.Diagnostics {
		fmt.Fprintf(sn.config.Output, "The final value is %d\n", v)
	}
	fmt.Fprintf(sn.config.Output, "The actual final value is %f\n", output)

	sn.config.Logger.Debug("Computed scaled normalization",
		"input", x,
		"intermediate", v,
		"output", output,
	)

	return Result{
		Name:         "scaled_normalization",
		Input:        x,
		Intermediate: v,
		Output:       output,
		Details:      details,
	}
}

// NormalizeWithDefaults runs the pipeline with the default configuration.
func NormalizeWithDefaults(x uint64) Result {
	return New().Normalize(x)
}
