// Package table ties the celltype/cell/ctformat layers into the full
// CT byte-exact round trip: Table is the in-memory representation,
// Reader and Writer convert it to and from CT bytes.
package table

import (
	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/JordanRO2/RO2-Table-Converter/ctformat"
	"github.com/JordanRO2/RO2-Table-Converter/internal/pool"
	"github.com/cespare/xxhash/v2"
)

// Table is a fully decoded CT asset: its schema, its rows, and the
// creation timestamp embedded in its header. A Table is immutable from
// the codec's standpoint — Read produces one, Write consumes one, and
// nothing in this package mutates one in place.
type Table struct {
	Schema    ctformat.Schema
	Rows      [][]cell.Cell
	Timestamp string
}

// ContentHash returns an xxHash64 fingerprint of the table's encoded
// row section (row count, row payload and CRC trailer), for callers that want a fast full-content comparison beyond
// the 16-bit CRC trailer (which is sized for wire-level corruption
// detection, not collision resistance).
func (t Table) ContentHash() (uint64, error) {
	buf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(buf)

	if err := ctformat.WriteRows(buf, t.Schema, t.Rows); err != nil {
		return 0, err
	}

	return xxhash.Sum64(buf.Bytes()), nil
}
