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

func idNameSchema() ctformat.Schema {
	return ctformat.NewSchema([]ctformat.Column{
		{Name: "id", Type: celltype.Dword},
		{Name: "name", Type: celltype.String},
	})
}

func TestWriteRowsThenParseRowsRoundTrip(t *testing.T) {
	schema := idNameSchema()
	rows := [][]cell.Cell{
		{cell.NewDword(7), cell.NewString("hi")},
		{cell.NewDword(8), cell.NewString("there")},
	}

	buf := pool.NewByteBuffer(128)
	require.NoError(t, ctformat.WriteRows(buf, schema, rows))

	got, crc, err := ctformat.ParseRows(cell.NewCursor(buf.Bytes()), schema)
	require.NoError(t, err)
	require.True(t, crc.OK)
	require.Equal(t, rows, got)
}

// TestRowPayloadExactByteLayoutWithCrc covers a single (id=7, name="hi")
// row: it must encode to the exact payload bytes
// 07 00 00 00 02 00 00 00 68 00 69 00, and the trailer must be the
// CRC-16/XMODEM of exactly those bytes.
func TestRowPayloadExactByteLayoutWithCrc(t *testing.T) {
	schema := idNameSchema()
	rows := [][]cell.Cell{
		{cell.NewDword(7), cell.NewString("hi")},
	}

	buf := pool.NewByteBuffer(64)
	require.NoError(t, ctformat.WriteRows(buf, schema, rows))

	wantPayload := []byte{0x07, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x68, 0x00, 0x69, 0x00}

	// row count (4 bytes) + payload + trailer (2 bytes)
	require.Equal(t, wantPayload, buf.Bytes()[4:4+len(wantPayload)])

	wantCRC := ctformat.CRC16XModem(wantPayload)
	trailer := buf.Bytes()[4+len(wantPayload):]
	require.Equal(t, byte(wantCRC), trailer[0])
	require.Equal(t, byte(wantCRC>>8), trailer[1])
}

func TestParseRowsDetectsCRCMismatch(t *testing.T) {
	schema := idNameSchema()
	rows := [][]cell.Cell{{cell.NewDword(1), cell.NewString("x")}}

	buf := pool.NewByteBuffer(64)
	require.NoError(t, ctformat.WriteRows(buf, schema, rows))

	corrupted := append([]byte(nil), buf.Bytes()...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, crc, err := ctformat.ParseRows(cell.NewCursor(corrupted), schema)
	require.NoError(t, err)
	require.False(t, crc.OK)
	require.NotEqual(t, crc.Expected, crc.Got)
}

func TestWriteRowsRejectsWrongRowLength(t *testing.T) {
	schema := idNameSchema()
	rows := [][]cell.Cell{{cell.NewDword(1)}}

	buf := pool.NewByteBuffer(64)
	err := ctformat.WriteRows(buf, schema, rows)
	require.ErrorIs(t, err, errs.ErrRowLength)
}

func TestWriteRowsRejectsCellTypeMismatch(t *testing.T) {
	schema := idNameSchema()
	rows := [][]cell.Cell{{cell.NewDword(1), cell.NewBool(true)}}

	buf := pool.NewByteBuffer(64)
	err := ctformat.WriteRows(buf, schema, rows)
	require.ErrorIs(t, err, errs.ErrCellTypeMismatch)
}

func TestParseRowsZeroRows(t *testing.T) {
	schema := idNameSchema()

	buf := pool.NewByteBuffer(64)
	require.NoError(t, ctformat.WriteRows(buf, schema, nil))

	got, crc, err := ctformat.ParseRows(cell.NewCursor(buf.Bytes()), schema)
	require.NoError(t, err)
	require.True(t, crc.OK)
	require.Empty(t, got)
}
