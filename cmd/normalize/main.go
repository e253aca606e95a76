package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/baditaflorin/go_scaled_normalizer/pkg/transform"
)

// diagnostics is fixed at build time:
//
//	go build -ldflags "-X main.diagnostics=true" ./cmd/normalize
var diagnostics string

func main() {
	var opts []transform.NormalizerOption
	if on, _ := strconv.ParseBool(diagnostics); on {
		opts = append(opts, transform.WithDiagnostics(true))
	}

	n, err := transform.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating normalizer: %v\n", err)
		os.Exit(1)
	}

	result := n.Normalize(context.Background(), 37)
	fmt.Printf("The value is %f\n", result.Output)
}
