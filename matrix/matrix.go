// Package matrix converts between a table.Table and the plain
// two-header-plus-rows string matrix that spreadsheet and CSV layers
// consume: row 0 holds column names, row 1 holds type-tag names, and
// every row after that holds one table row rendered to strings.
package matrix

import (
	"fmt"

	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/JordanRO2/RO2-Table-Converter/celltype"
	"github.com/JordanRO2/RO2-Table-Converter/ctformat"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
	"github.com/JordanRO2/RO2-Table-Converter/table"
)

// Project renders t as a string matrix: names, then type-tag names,
// then one rendered row per table row.
func Project(t table.Table) [][]string {
	cols := t.Schema.Columns()

	names := make([]string, len(cols))
	types := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		types[i] = c.Type.String()
	}

	out := make([][]string, 0, 2+len(t.Rows))
	out = append(out, names, types)

	for _, row := range t.Rows {
		rendered := make([]string, len(row))
		for i, v := range row {
			rendered[i] = cell.Render(v)
		}
		out = append(out, rendered)
	}

	return out
}

// Lift parses a string matrix back into a Table, taking the schema
// from rows 0/1 verbatim and parsing every later row cell-by-cell
// against its column's type. timestamp is carried through opaquely
// onto the resulting Table (empty if the caller has none to supply);
// table.Writer falls back to the source mod time or current wall
// clock when it is empty.
func Lift(m [][]string, timestamp string) (table.Table, error) {
	if len(m) < 2 {
		return table.Table{}, fmt.Errorf("matrix: need a name row and a type row, got %d rows", len(m))
	}

	names, typeNames := m[0], m[1]
	if len(names) != len(typeNames) {
		return table.Table{}, fmt.Errorf("%w: %d column names, %d type names", errs.ErrSchemaMismatch, len(names), len(typeNames))
	}

	columns := make([]ctformat.Column, len(names))
	for i, typeName := range typeNames {
		tag, err := celltype.ParseName(typeName)
		if err != nil {
			return table.Table{}, fmt.Errorf("matrix: column %d (%q): %w", i, names[i], err)
		}
		columns[i] = ctformat.Column{Name: names[i], Type: tag}
	}

	schema := ctformat.NewSchema(columns)
	dataRows := m[2:]

	rows := make([][]cell.Cell, len(dataRows))
	for r, raw := range dataRows {
		if len(raw) != len(columns) {
			return table.Table{}, fmt.Errorf("%w: row %d has %d cells, schema has %d columns", errs.ErrRowLength, r, len(raw), len(columns))
		}

		row := make([]cell.Cell, len(columns))
		for c, s := range raw {
			v, err := cell.Parse(columns[c].Type, s)
			if err != nil {
				return table.Table{}, &errs.CellParseError{Row: r, Col: c, Type: columns[c].Type.String(), Raw: s, Err: err}
			}
			row[c] = v
		}
		rows[r] = row
	}

	return table.Table{Schema: schema, Rows: rows, Timestamp: timestamp}, nil
}

// SwapHeaderRows exchanges rows 0 and 1 of m, translating between this
// package's [names; types; …] row order and the XLSX layer's inverted
// [types; names; …] order. The operation is its own inverse. Matrices
// with fewer than two rows are returned unchanged.
func SwapHeaderRows(m [][]string) [][]string {
	if len(m) < 2 {
		return m
	}

	out := make([][]string, len(m))
	copy(out, m)
	out[0], out[1] = m[1], m[0]

	return out
}
