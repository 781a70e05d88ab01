package ctformat_test

import (
	"testing"

	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/JordanRO2/RO2-Table-Converter/celltype"
	"github.com/JordanRO2/RO2-Table-Converter/ctformat"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
	"github.com/JordanRO2/RO2-Table-Converter/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestWriteSchemaThenParseSchemaRoundTrip(t *testing.T) {
	schema := ctformat.NewSchema([]ctformat.Column{
		{Name: "id", Type: celltype.Dword},
		{Name: "name", Type: celltype.String},
		{Name: "flags", Type: celltype.Bool},
	})

	buf := pool.NewByteBuffer(64)
	require.NoError(t, ctformat.WriteSchema(buf, schema))

	got, mismatch, err := ctformat.ParseSchema(cell.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	require.False(t, mismatch)
	require.Equal(t, schema.Columns(), got.Columns())
}

func TestParseSchemaReportsCountMismatch(t *testing.T) {
	buf := pool.NewByteBuffer(64)

	// two column names, but three declared types
	require.NoError(t, cell.EncodeCell(buf, cell.NewDword(2)))
	require.NoError(t, cell.EncodeCell(buf, cell.NewString("id")))
	require.NoError(t, cell.EncodeCell(buf, cell.NewString("name")))
	require.NoError(t, cell.EncodeCell(buf, cell.NewDword(3)))
	require.NoError(t, cell.EncodeCell(buf, cell.NewDword(uint32(celltype.Dword))))
	require.NoError(t, cell.EncodeCell(buf, cell.NewDword(uint32(celltype.String))))
	require.NoError(t, cell.EncodeCell(buf, cell.NewDword(uint32(celltype.Bool))))

	schema, mismatch, err := ctformat.ParseSchema(cell.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, mismatch)
	require.Equal(t, 3, schema.ColumnCount())
	require.Equal(t, "id", schema.Name(0))
	require.Equal(t, "name", schema.Name(1))
	require.Equal(t, "", schema.Name(2))
}

func TestWriteSchemaRejectsCountMismatch(t *testing.T) {
	schema := ctformat.Schema{
		Names: []string{"id"},
		Types: []celltype.TypeTag{celltype.Dword, celltype.Bool},
	}

	buf := pool.NewByteBuffer(64)
	err := ctformat.WriteSchema(buf, schema)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestWriteSchemaRejectsUnknownType(t *testing.T) {
	schema := ctformat.Schema{
		Names: []string{"mystery"},
		Types: []celltype.TypeTag{99},
	}

	buf := pool.NewByteBuffer(64)
	err := ctformat.WriteSchema(buf, schema)

	var unknown *errs.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, uint32(99), unknown.Code)
}
