package table

import (
	"time"

	"github.com/JordanRO2/RO2-Table-Converter/internal/options"
)

// Option configures a Writer. See WithTimestamp and WithSourceModTime.
type Option = options.Option[*Writer]

// WithTimestamp fixes the header timestamp a Writer embeds, taking
// precedence over the Table's own Timestamp field and over
// WithSourceModTime.
func WithTimestamp(ts string) Option {
	return options.NoError[*Writer](func(w *Writer) {
		w.timestamp = ts
		w.hasTimestamp = true
	})
}

// WithSourceModTime supplies the fallback wall clock — typically a
// source file's last-modified time — used when neither WithTimestamp
// nor the Table being written carries a timestamp.
func WithSourceModTime(t time.Time) Option {
	return options.NoError[*Writer](func(w *Writer) {
		w.sourceModTime = t
		w.hasSourceModTime = true
	})
}
