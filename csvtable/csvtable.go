// Package csvtable is a thin collaborator between the string-matrix
// contract (matrix.Project/Lift) and a delimited text file: row 0 is
// the header, row 1 is type tag names, rows 2… are data — the same
// two-header-plus-rows shape encoding/csv's Reader/Writer already read
// and write one row at a time.
//
// Delimiter tokenization itself is deliberately minimal here; this
// package is only the pass-through adapter, built entirely on the
// standard library's encoding/csv since no third-party CSV package is
// pulled in anywhere else in this module.
package csvtable

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DefaultDelimiter is used when callers don't need a non-comma field
// separator.
const DefaultDelimiter = ','

// ReadMatrix parses r as delimiter-separated rows and returns them
// unmodified as a string matrix: names, type names, then data rows.
func ReadMatrix(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvtable: read: %w", err)
	}

	return rows, nil
}

// WriteMatrix writes m to w as delimiter-separated rows, in the same
// names/types/data order it was given in.
func WriteMatrix(w io.Writer, delimiter rune, m [][]string) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := writer.WriteAll(m); err != nil {
		return fmt.Errorf("csvtable: write: %w", err)
	}

	writer.Flush()

	return writer.Error()
}
