package table

import (
	"time"

	"github.com/JordanRO2/RO2-Table-Converter/ctformat"
	"github.com/JordanRO2/RO2-Table-Converter/internal/options"
	"github.com/JordanRO2/RO2-Table-Converter/internal/pool"
)

// Writer encodes a Table into CT bytes. Construct one with NewWriter
// and reuse it across multiple Write calls; it holds no per-call
// state.
type Writer struct {
	timestamp        string
	hasTimestamp     bool
	sourceModTime    time.Time
	hasSourceModTime bool
}

// NewWriter creates a Writer configured by opts.
func NewWriter(opts ...Option) (*Writer, error) {
	w := &Writer{}
	if err := options.Apply[*Writer](w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Write renders t as CT bytes: header, schema, row section, and CRC
// trailer, in that order.
//
// The header timestamp is resolved in priority order: WithTimestamp,
// then t.Timestamp if non-empty, then WithSourceModTime, then the
// current wall clock.
func (w *Writer) Write(t Table) ([]byte, error) {
	ts := w.resolveTimestamp(t.Timestamp)

	hdr, err := ctformat.WriteHeader(ts)
	if err != nil {
		return nil, err
	}

	out := pool.GetRowBuffer()
	defer pool.PutRowBuffer(out)

	if _, err := out.Write(hdr); err != nil {
		return nil, err
	}

	if err := ctformat.WriteSchema(out, t.Schema); err != nil {
		return nil, err
	}

	if err := ctformat.WriteRows(out, t.Schema, t.Rows); err != nil {
		return nil, err
	}

	// out is pooled and reset on return, so the caller gets a private copy.
	result := make([]byte, out.Len())
	copy(result, out.Bytes())

	return result, nil
}

func (w *Writer) resolveTimestamp(tableTimestamp string) string {
	if w.hasTimestamp {
		return w.timestamp
	}

	if tableTimestamp != "" {
		return tableTimestamp
	}

	if w.hasSourceModTime {
		return w.sourceModTime.Format(ctformat.TimestampLayout)
	}

	return time.Now().Format(ctformat.TimestampLayout)
}

// Write is a convenience wrapper equivalent to NewWriter(opts...) then
// Write(t), for callers that don't need to reuse a Writer.
func Write(t Table, opts ...Option) ([]byte, error) {
	w, err := NewWriter(opts...)
	if err != nil {
		return nil, err
	}

	return w.Write(t)
}
