package pipeline

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/reporter"
	"github.com/baditaflorin/go_scaled_normalizer/internal/adapters/rounder"
	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
)

// testLogger discards all messages; the pipeline's log output is not under
// test here.
type testLogger struct{}

func (testLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}
func (testLogger) Close() error                                   { return nil }

func newTestCalculator(t *testing.T, config Config, r ports.Rounder, out *bytes.Buffer) *Calculator {
	t.Helper()
	calc, err := NewCalculator(config, testLogger{}, r, reporter.NewWriterReporter(out))
	if err != nil {
		t.Fatalf("failed to create calculator: %v", err)
	}
	return calc
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		input        uint64
		intermediate uint64
		output       float64
	}{
		{
			name: "Zero stays zero",
			// 0 is even, scales to 0, already a multiple of 100.
			input:        0,
			intermediate: 0,
			output:       0,
		},
		{
			name: "Canonical input",
			// 37 -> 38 -> 57 -> 0.
			input:        37,
			intermediate: 0,
			output:       0,
		},
		{
			name: "Lands on first hundred",
			// 67 -> 68 -> 102 -> 100.
			input:        67,
			intermediate: 100,
			output:       100 * Tau,
		},
		{
			name: "Top of first-hundred band",
			// 99 -> 100 -> 150 -> 100.
			input:        99,
			intermediate: 100,
			output:       100 * Tau,
		},
		{
			name: "Even input unchanged by stage one",
			// 200 -> 200 -> 300 -> 300.
			input:        200,
			intermediate: 300,
			output:       300 * Tau,
		},
		{
			name: "Maximum odd value wraps to zero",
			// The round-up addition wraps modulo 2^64. Documented
			// behavior, preserved rather than guarded.
			input:        math.MaxUint64,
			intermediate: 0,
			output:       0,
		},
		{
			name: "Maximum even value",
			// (2^64-2)/2 = 2^63-1; the multiply by 3 wraps modulo 2^64
			// to 2^63-3, which then floors to a multiple of 100.
			input:        math.MaxUint64 - 1,
			intermediate: (1<<63 - 3) - (1<<63-3)%100,
			output:       float64(uint64(1<<63-3)-(1<<63-3)%100) * Tau,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			calc := newTestCalculator(t, DefaultConfig(), rounder.NewIterativeRounder(), &out)

			result := calc.Normalize(context.Background(), tc.input)
			if result.Intermediate != tc.intermediate {
				t.Errorf("expected intermediate %d, got %d", tc.intermediate, result.Intermediate)
			}
			if result.Output != tc.output {
				t.Errorf("expected output %v, got %v", tc.output, result.Output)
			}
		})
	}
}

func TestNormalizeReportsOutput(t *testing.T) {
	var out bytes.Buffer
	calc := newTestCalculator(t, DefaultConfig(), rounder.NewIterativeRounder(), &out)

	calc.Normalize(context.Background(), 37)
	if got := out.String(); got != "The actual final value is 0.000000\n" {
		t.Errorf("unexpected report: %q", got)
	}
}

func TestNormalizeDiagnostics(t *testing.T) {
	var out bytes.Buffer
	config := Config{Diagnostics: true}
	calc := newTestCalculator(t, config, rounder.NewClosedFormRounder(), &out)

	calc.Normalize(context.Background(), 67)
	expected := "The final value is 100\nThe actual final value is 628.318531\n"
	if got := out.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

// TestNormalizeIsPure checks that repeated calls with the same input
// return identical outputs; the report line is an independent side channel.
func TestNormalizeIsPure(t *testing.T) {
	var out bytes.Buffer
	calc := newTestCalculator(t, DefaultConfig(), rounder.NewClosedFormRounder(), &out)

	ctx := context.Background()
	for _, x := range []uint64{0, 1, 37, 67, 1000, math.MaxUint64} {
		first := calc.Normalize(ctx, x)
		second := calc.Normalize(ctx, x)
		if first.Output != second.Output || first.Intermediate != second.Intermediate {
			t.Errorf("normalize(%d) not stable: %+v then %+v", x, first, second)
		}
	}
}

// TestIntermediateIsMultipleOfHundred sweeps inputs and checks the
// post-floor integer invariant.
func TestIntermediateIsMultipleOfHundred(t *testing.T) {
	var out bytes.Buffer
	calc := newTestCalculator(t, DefaultConfig(), rounder.NewIterativeRounder(), &out)

	ctx := context.Background()
	for x := uint64(0); x < 5000; x += 7 {
		result := calc.Normalize(ctx, x)
		if result.Intermediate%100 != 0 {
			t.Fatalf("normalize(%d): intermediate %d not a multiple of 100", x, result.Intermediate)
		}
		ceilEven := x + x%2
		if result.Intermediate > ceilEven/2*3 {
			t.Fatalf("normalize(%d): intermediate %d exceeds scaled value", x, result.Intermediate)
		}
	}
}

func TestNormalizeCancelledContext(t *testing.T) {
	var out bytes.Buffer
	calc := newTestCalculator(t, DefaultConfig(), rounder.NewIterativeRounder(), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := calc.Normalize(ctx, 37)
	if result.Details["error"] != "normalization cancelled" {
		t.Errorf("expected cancellation detail, got %v", result.Details)
	}
	if out.Len() != 0 {
		t.Errorf("cancelled call should not report, got %q", out.String())
	}
}

func TestNewCalculatorValidation(t *testing.T) {
	var out bytes.Buffer
	rep := reporter.NewWriterReporter(&out)
	r := rounder.NewIterativeRounder()

	if _, err := NewCalculator(DefaultConfig(), nil, r, rep); err == nil {
		t.Error("expected error for nil logger")
	}
	if _, err := NewCalculator(DefaultConfig(), testLogger{}, nil, rep); err == nil {
		t.Error("expected error for nil rounder")
	}
	if _, err := NewCalculator(DefaultConfig(), testLogger{}, r, nil); err == nil {
		t.Error("expected error for nil reporter")
	}
}
