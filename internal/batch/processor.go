package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/reporter"
	"github.com/baditaflorin/go_scaled_normalizer/internal/core/pipeline"
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
)

// Processor normalizes a stream of inputs, one unsigned decimal integer
// per line. Each value runs through the same pipeline as a single call,
// with the report lines directed at the writer supplied per Process call.
type Processor struct {
	config  pipeline.Config
	logger  ports.Logger
	rounder ports.Rounder
}

// NewProcessor creates a new batch processor.
func NewProcessor(config pipeline.Config, logger ports.Logger, rounder ports.Rounder) (*Processor, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if rounder == nil {
		return nil, errors.New("rounder must not be nil")
	}

	return &Processor{
		config:  config,
		logger:  logger,
		rounder: rounder,
	}, nil
}

// Process reads r until EOF, normalizing each line and writing the report
// lines to w. Blank lines are skipped. It returns the number of values
// normalized; a malformed line stops processing with an error naming the
// line.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	calc, err := pipeline.NewCalculator(p.config, p.logger, p.rounder, reporter.NewWriterReporter(w))
	if err != nil {
		return 0, err
	}

	p.logger.Debug("Starting batch normalization")

	processed := 0
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++

		select {
		case <-ctx.Done():
			p.logger.Error("Batch normalization cancelled",
				"line", lineNo,
				"processed", processed,
			)
			return processed, ctx.Err()
		default:
			// continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		x, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			p.logger.Error("Malformed batch input line",
				"line", lineNo,
				"input", line,
				"error", err,
			)
			return processed, fmt.Errorf("line %d: %w", lineNo, err)
		}

		calc.Normalize(ctx, x)
		processed++
	}

	if err := scanner.Err(); err != nil {
		p.logger.Error("Batch input read failed", "error", err)
		return processed, err
	}

	p.logger.Info("Batch normalization completed", "processed", processed)
	return processed, nil
}
