// scaled_normalizer_test.go
package scalednormalizer

import (
	"bytes"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	// Test cases walking the pipeline across its edge cases.
	tests := []struct {
		name         string
		input        uint64
		intermediate uint64
		output       float64
	}{
		{
			name:  "Zero input",
			input: 0,
			// 0 is even, scales to 0, already a multiple of 100.
			intermediate: 0,
			output:       0,
		},
		{
			name:  "Canonical input",
			input: 37,
			// 37 -> 38 -> 57 -> floors to 0.
			intermediate: 0,
			output:       0,
		},
		{
			name:  "Lands on one hundred",
			input: 67,
			// 67 -> 68 -> 102 -> 100.
			intermediate: 100,
			output:       100 * Tau,
		},
		{
			name:  "Even input",
			input: 1000,
			// 1000 -> 1500 -> 1500.
			intermediate: 1500,
			output:       1500 * Tau,
		},
		{
			name:  "Maximum odd value wraps to zero",
			input: math.MaxUint64,
			// The round-up addition wraps modulo 2^64 to 0.
			intermediate: 0,
			output:       0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			sn := New(WithOutput(&out))
			result := sn.Normalize(tc.input)
			if result.Intermediate != tc.intermediate {
				t.Errorf("expected intermediate %d, got %d, details: %v", tc.intermediate, result.Intermediate, result.Details)
			}
			if result.Output != tc.output {
				t.Errorf("expected output %v, got %v, details: %v", tc.output, result.Output, result.Details)
			}
		})
	}
}

func TestNormalizeReportLines(t *testing.T) {
	var out bytes.Buffer
	sn := New(WithOutput(&out))
	sn.Normalize(37)
	if got := out.String(); got != "The actual final value is 0.000000\n" {
		t.Errorf("unexpected report: %q", got)
	}

	out.Reset()
	diag := New(WithOutput(&out), WithDiagnostics(true))
	diag.Normalize(67)
	expected := "The final value is 100\nThe actual final value is 628.318531\n"
	if got := out.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestFixedConstants(t *testing.T) {
	if Tau != 2*3.141592653589 {
		t.Errorf("unexpected tau: %v", Tau)
	}
	if Pi == math.Pi {
		t.Error("pi must use the fixed literal, not the library constant")
	}
}
