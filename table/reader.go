package table

import (
	"fmt"

	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/JordanRO2/RO2-Table-Converter/ctformat"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
)

// Reader decodes a single CT byte string into a Table. Each Read call
// decodes the wrapped bytes from the start with a fresh Cursor.
type Reader struct {
	data []byte
}

// NewReader wraps data for decoding. It performs no parsing until
// Read is called.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Read parses the header, schema, and row section in turn, and
// verifies the row trailer. Hard failures (bad magic, truncated
// header/payload, unknown type code at decode time) abort with a
// zero Table and an error, alongside any warnings collected before
// the failure. Integrity conditions that are treated
// as non-fatal — header timestamp fallback, schema count mismatch, CRC
// mismatch — are instead collected into the returned warning slice,
// and decoding continues.
func (r *Reader) Read() (Table, []Warning, error) {
	hdr, usedFallback, err := ctformat.ParseHeader(r.data)
	if err != nil {
		return Table{}, nil, fmt.Errorf("table: parse header: %w", err)
	}

	var warnings []Warning
	if usedFallback {
		warnings = append(warnings, Warning{
			Kind: WarningTimestampFallback,
			Err:  fmt.Errorf("header timestamp region undecodable, substituted %q", hdr.Timestamp),
		})
	}

	cur := cell.NewCursor(r.data[ctformat.HeaderSize:])

	schema, mismatch, err := ctformat.ParseSchema(cur)
	if err != nil {
		return Table{}, warnings, fmt.Errorf("table: parse schema: %w", err)
	}

	if mismatch {
		warnings = append(warnings, Warning{
			Kind: WarningSchemaMismatch,
			Err:  fmt.Errorf("%w: %d column names, %d types", errs.ErrSchemaMismatch, len(schema.Names), len(schema.Types)),
		})
	}

	rows, crc, err := ctformat.ParseRows(cur, schema)
	if err != nil {
		return Table{}, warnings, fmt.Errorf("table: parse rows: %w", err)
	}

	if !crc.OK {
		warnings = append(warnings, Warning{
			Kind: WarningCrcMismatch,
			Err:  &errs.CrcMismatchError{Expected: crc.Expected, Got: crc.Got},
		})
	}

	return Table{Schema: schema, Rows: rows, Timestamp: hdr.Timestamp}, warnings, nil
}

// Read is a convenience wrapper around NewReader(data).Read(), for
// callers that don't need to hold onto the Reader.
func Read(data []byte) (Table, []Warning, error) {
	return NewReader(data).Read()
}
