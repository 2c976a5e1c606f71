package pajek

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TraceWriter emits the per-chain trace file format spec.md §6 specifies:
// header row `t param1 param2 ... AcceptanceRate`, then one line per outer
// step. It buffers internally; callers must call Flush when done.
type TraceWriter struct {
	w           *bufio.Writer
	wroteHeader bool
	paramNames  []string
}

// NewTraceWriter wraps w for a chain whose parameter vector has the given
// names, in the same order the model's effects are bound.
func NewTraceWriter(w io.Writer, paramNames []string) *TraceWriter {
	return &TraceWriter{w: bufio.NewWriter(w), paramNames: paramNames}
}

// WriteHeader emits the column header row. Idempotent: a second call is a
// no-op.
func (tw *TraceWriter) WriteHeader() error {
	if tw.wroteHeader {
		return nil
	}
	cols := append([]string{"t"}, tw.paramNames...)
	cols = append(cols, "AcceptanceRate")
	if _, err := fmt.Fprintln(tw.w, strings.Join(cols, "\t")); err != nil {
		return err
	}
	tw.wroteHeader = true

	return nil
}

// WriteRow emits one outer step's record: step index, the parameter
// vector (θ or accumulated Σ Δz, depending on which trace this is), and
// the acceptance rate observed over that step's inner sweep.
func (tw *TraceWriter) WriteRow(t int, values []float64, acceptanceRate float64) error {
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	if len(values) != len(tw.paramNames) {
		return fmt.Errorf("pajek: trace row has %d values, want %d", len(values), len(tw.paramNames))
	}

	fields := make([]string, 0, len(values)+2)
	fields = append(fields, strconv.Itoa(t))
	for _, v := range values {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}
	fields = append(fields, strconv.FormatFloat(acceptanceRate, 'g', -1, 64))

	_, err := fmt.Fprintln(tw.w, strings.Join(fields, "\t"))

	return err
}

// Flush writes any buffered output to the underlying writer.
func (tw *TraceWriter) Flush() error {
	return tw.w.Flush()
}
