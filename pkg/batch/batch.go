package batch

import (
	"context"
	"io"

	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/rounder"
	internalbatch "github.com/baditaflorin/go_scaled_normalizer/internal/batch"
	"github.com/baditaflorin/go_scaled_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
	"github.com/baditaflorin/l"
)

// BatchNormalizer normalizes many inputs from a line-oriented stream.
type BatchNormalizer struct {
	processor ports.BatchProcessor
	logger    ports.Logger
}

// BatchOption defines a functional option for configuring BatchNormalizer.
type BatchOption func(*batchConfig)

type batchConfig struct {
	Diagnostics bool
	Logger      ports.Logger
	Rounder     ports.Rounder
}

// WithBatchDiagnostics enables the intermediate-value report line for
// every processed value.
func WithBatchDiagnostics(enable bool) BatchOption {
	return func(cfg *batchConfig) {
		cfg.Diagnostics = enable
	}
}

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(l l.Logger) BatchOption {
	return func(cfg *batchConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithBatchRounder sets a custom rounder for the floor-to-hundred stage.
func WithBatchRounder(r ports.Rounder) BatchOption {
	return func(cfg *batchConfig) {
		cfg.Rounder = r
	}
}

// New creates a new BatchNormalizer instance.
func New(opts ...BatchOption) (*BatchNormalizer, error) {
	config := &batchConfig{}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Rounder == nil {
		config.Rounder = rounder.NewClosedFormRounder()
	}

	processor, err := internalbatch.NewProcessor(
		pipeline.Config{Diagnostics: config.Diagnostics},
		config.Logger,
		config.Rounder,
	)
	if err != nil {
		return nil, err
	}

	return &BatchNormalizer{
		processor: processor,
		logger:    config.Logger,
	}, nil
}

// Process reads unsigned integers from r, one per line, and writes the
// report lines to w. It returns the number of values normalized.
func (b *BatchNormalizer) Process(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	return b.processor.Process(ctx, r, w)
}
