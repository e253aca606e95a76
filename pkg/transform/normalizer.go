package transform

import (
	"context"
	"io"

	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/reporter"
	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/rounder"
	"github.com/baditaflorin/go_scaled_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_scaled_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
	"github.com/baditaflorin/go_scaled_normalizer/internal/warmup"
	"github.com/baditaflorin/l"
)

// Normalizer provides methods to run the scaled normalization pipeline.
type Normalizer struct {
	calculator ports.NormalizeCalculator
	logger     ports.Logger
	rounder    ports.Rounder
	config     pipeline.Config
	warmed     bool
}

// NormalizerOption defines a functional option for configuring Normalizer.
type NormalizerOption func(*normalizerConfig)

type normalizerConfig struct {
	Diagnostics  bool
	Logger       ports.Logger
	Rounder      ports.Rounder
	Output       io.Writer
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithDiagnostics enables the extra intermediate-value report line.
func WithDiagnostics(enable bool) NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.Diagnostics = enable
	}
}

// WithLogger sets a custom logger for the normalizer.
func WithLogger(l l.Logger) NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithRounder sets a custom rounder for the floor-to-hundred stage.
func WithRounder(r ports.Rounder) NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.Rounder = r
	}
}

// WithIterativeRounder selects the stepwise floor-to-hundred strategy.
func WithIterativeRounder() NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.Rounder = rounder.NewRounderFactory().CreateRounder(rounder.IterativeRounderType)
	}
}

// WithClosedFormRounder selects the division-based floor-to-hundred strategy.
func WithClosedFormRounder() NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.Rounder = rounder.NewRounderFactory().CreateRounder(rounder.ClosedFormRounderType)
	}
}

// WithOutput directs the report lines to a custom writer instead of stdout.
func WithOutput(w io.Writer) NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.Output = w
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.Config) NormalizerOption {
	return func(cfg *normalizerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Normalizer instance.
func New(opts ...NormalizerOption) (*Normalizer, error) {
	config := &normalizerConfig{
		Diagnostics:  pipeline.DefaultConfig().Diagnostics,
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up rounder if not provided
	if config.Rounder == nil {
		config.Rounder = rounder.NewIterativeRounder()
	}

	// Set up reporter
	var rep ports.Reporter
	if config.Output != nil {
		rep = reporter.NewWriterReporter(config.Output)
	} else {
		rep = reporter.NewStdoutReporter()
	}

	// Create core calculator
	coreConfig := pipeline.Config{
		Diagnostics: config.Diagnostics,
	}
	calculator, err := pipeline.NewCalculator(coreConfig, config.Logger, config.Rounder, rep)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		calculator: calculator,
		logger:     config.Logger,
		rounder:    config.Rounder,
		config:     coreConfig,
		warmed:     false,
	}

	// Perform warm-up if configured
	if config.WarmUp {
		n.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return n, nil
}

// Normalize runs the pipeline over x and returns the result.
func (n *Normalizer) Normalize(ctx context.Context, x uint64) domain.Result {
	return n.calculator.Normalize(ctx, x)
}

// WarmUp performs system warm-up to optimize performance. The warm runs go
// through a shadow calculator whose report lines are discarded, so the
// output stream only ever carries real invocations.
func (n *Normalizer) WarmUp(ctx context.Context, config warmup.Config) {
	if n.warmed {
		n.logger.Debug("System already warmed up, skipping")
		return
	}

	shadow, err := pipeline.NewCalculator(n.config, n.logger, n.rounder, reporter.NewWriterReporter(io.Discard))
	if err != nil {
		n.logger.Error("Failed to create warmup calculator", "error", err)
		return
	}

	warmupMgr := warmup.NewManager(n.logger, config)
	warmupMgr.RegisterCalculator(shadow)
	warmupMgr.RegisterRounder(n.rounder)

	warmupMgr.WarmUp(ctx)
	n.warmed = true
}
