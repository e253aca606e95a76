package ports

import (
	"context"
	"io"
)

// BatchProcessor defines the interface for normalizing a stream of inputs,
// one unsigned integer per line, writing the report lines to the writer.
type BatchProcessor interface {
	// Process consumes the reader until EOF and returns the number of
	// values normalized.
	Process(ctx context.Context, r io.Reader, w io.Writer) (int, error)
}
