package reporter

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/baditaflorin/go_scaled_normalizer/internal/ports"
	"github.com/valyala/bytebufferpool"
)

// WriterReporter emits the report lines to an io.Writer. Both lines of a
// diagnostic report are assembled in a pooled buffer and flushed in a
// single Write, which keeps them adjacent even when callers share the
// destination stream.
type WriterReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterReporter creates a reporter writing to w.
func NewWriterReporter(w io.Writer) ports.Reporter {
	return &WriterReporter{w: w}
}

// NewStdoutReporter creates a reporter writing to standard output.
func NewStdoutReporter() ports.Reporter {
	return NewWriterReporter(os.Stdout)
}

// Report writes the final-value line, preceded by the intermediate-value
// line when withIntermediate is set. The output value is rendered in fixed
// notation with six fractional digits.
func (r *WriterReporter) Report(intermediate uint64, output float64, withIntermediate bool) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if withIntermediate {
		fmt.Fprintf(buf, "The final value is %d\n", intermediate)
	}
	fmt.Fprintf(buf, "The actual final value is %f\n", output)

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.w.Write(buf.B)
	return err
}
