package ctformat

import (
	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/JordanRO2/RO2-Table-Converter/celltype"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
	"github.com/JordanRO2/RO2-Table-Converter/internal/pool"
)

// Column pairs a column name with its declared type, the external view
// of one Schema entry.
type Column struct {
	Name string
	Type celltype.TypeTag
}

// Schema is the CT schema section: an ordered column-name list and an
// ordered type-code list, kept separate (rather than zipped into
// []Column) because a column/type count mismatch on read must be
// tolerated — using the type count for subsequent row decoding —
// rather than truncated or rejected.
type Schema struct {
	Names []string
	Types []celltype.TypeTag
}

// NewSchema builds a Schema from name/type pairs where the two counts
// are known to agree, the normal case when constructing a Table to
// write.
func NewSchema(columns []Column) Schema {
	s := Schema{
		Names: make([]string, len(columns)),
		Types: make([]celltype.TypeTag, len(columns)),
	}
	for i, c := range columns {
		s.Names[i] = c.Name
		s.Types[i] = c.Type
	}

	return s
}

// ColumnCount returns the number of columns used for row decoding,
// i.e. the type count, which is taken as authoritative over the name
// count when the two disagree.
func (s Schema) ColumnCount() int {
	return len(s.Types)
}

// Name returns the column name at index i, or "" if the name list is
// shorter than the type list (a SchemaMismatch condition).
func (s Schema) Name(i int) string {
	if i < len(s.Names) {
		return s.Names[i]
	}

	return ""
}

// Columns zips Names and Types into a []Column slice of length
// ColumnCount(), the convenient external view.
func (s Schema) Columns() []Column {
	cols := make([]Column, s.ColumnCount())
	for i := range cols {
		cols[i] = Column{Name: s.Name(i), Type: s.Types[i]}
	}

	return cols
}

// ParseSchema reads the column-count, column-name, type-count and
// type-code fields from c, in CT wire order. mismatch reports whether
// the column count and type count disagreed — a read-time warning, not
// an error.
func ParseSchema(c *cell.Cursor) (schema Schema, mismatch bool, err error) {
	colCountCell, err := cell.DecodeCell(c, celltype.Dword)
	if err != nil {
		return Schema{}, false, err
	}

	names := make([]string, colCountCell.U64)
	for i := range names {
		nameCell, err := cell.DecodeCell(c, celltype.String)
		if err != nil {
			return Schema{}, false, err
		}
		names[i] = nameCell.Str
	}

	typeCountCell, err := cell.DecodeCell(c, celltype.Dword)
	if err != nil {
		return Schema{}, false, err
	}

	types := make([]celltype.TypeTag, typeCountCell.U64)
	for i := range types {
		typeCell, err := cell.DecodeCell(c, celltype.Dword)
		if err != nil {
			return Schema{}, false, err
		}
		types[i] = celltype.TypeTag(typeCell.U64)
	}

	mismatch = uint64(len(names)) != typeCountCell.U64

	return Schema{Names: names, Types: types}, mismatch, nil
}

// WriteSchema appends the schema section to buf. Unlike ParseSchema, a
// column/type count mismatch is a hard failure here: writing an
// inconsistent schema is never tolerated. Writing a column
// whose type is outside the closed set also fails, structurally,
// rather than silently emitting a stringly-typed placeholder.
func WriteSchema(buf *pool.ByteBuffer, s Schema) error {
	if len(s.Names) != len(s.Types) {
		return errs.ErrSchemaMismatch
	}

	if err := cell.EncodeCell(buf, cell.NewDword(uint32(len(s.Names)))); err != nil {
		return err
	}

	for _, name := range s.Names {
		if err := cell.EncodeCell(buf, cell.NewString(name)); err != nil {
			return err
		}
	}

	if err := cell.EncodeCell(buf, cell.NewDword(uint32(len(s.Types)))); err != nil {
		return err
	}

	for _, t := range s.Types {
		if !t.Known() {
			return &errs.UnknownTypeError{Code: uint32(t)}
		}

		if err := cell.EncodeCell(buf, cell.NewDword(uint32(t))); err != nil {
			return err
		}
	}

	return nil
}
