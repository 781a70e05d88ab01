package ctformat

import (
	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/JordanRO2/RO2-Table-Converter/celltype"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
	"github.com/JordanRO2/RO2-Table-Converter/internal/pool"
)

// trailerSize is the byte width of the CRC-16/XMODEM trailer.
const trailerSize = 2

// CrcResult reports the outcome of verifying a row section's trailer
// against the CRC computed over its payload.
type CrcResult struct {
	OK             bool
	Expected, Got uint16
}

// ParseRows reads the row-count field, that many rows of
// schema.ColumnCount() cells each, and the CRC-16/XMODEM trailer, in
// that order.
//
// The returned CrcResult reports whether the trailer agrees with the
// CRC computed over the row payload (the row bytes only, excluding the
// row-count field and the trailer itself). A CRC disagreement is never
// a hard error — callers surface it as a table.Warning carrying both
// values.
func ParseRows(c *cell.Cursor, schema Schema) (rows [][]cell.Cell, crc CrcResult, err error) {
	rowCountCell, err := cell.DecodeCell(c, celltype.Dword)
	if err != nil {
		return nil, CrcResult{}, err
	}

	payloadStart := c.Pos()
	columnCount := schema.ColumnCount()

	rows = make([][]cell.Cell, rowCountCell.U64)
	for r := range rows {
		row := make([]cell.Cell, columnCount)
		for col, t := range schema.Types {
			v, err := cell.DecodeCell(c, t)
			if err != nil {
				return nil, CrcResult{}, err
			}
			row[col] = v
		}
		rows[r] = row
	}

	payloadEnd := c.Pos()

	trailerCell, err := cell.DecodeCell(c, celltype.Word)
	if err != nil {
		return nil, CrcResult{}, err
	}

	expected := uint16(trailerCell.U64)
	got := CRC16XModem(c.Slice(payloadStart, payloadEnd))

	return rows, CrcResult{OK: expected == got, Expected: expected, Got: got}, nil
}

// WriteRows appends the row-count field, the row payload, and the
// CRC-16/XMODEM trailer to buf, in that order. Every row must have
// exactly schema.ColumnCount() cells, each matching its column's
// declared type; any disagreement is a structural error, never a
// warning, since the caller controls the Table being written.
func WriteRows(buf *pool.ByteBuffer, schema Schema, rows [][]cell.Cell) error {
	columnCount := schema.ColumnCount()

	if err := cell.EncodeCell(buf, cell.NewDword(uint32(len(rows)))); err != nil {
		return err
	}

	payload := pool.GetRowBuffer()
	defer pool.PutRowBuffer(payload)

	for _, row := range rows {
		if len(row) != columnCount {
			return errs.ErrRowLength
		}

		for col, v := range row {
			if v.Tag != schema.Types[col] {
				return errs.ErrCellTypeMismatch
			}

			if err := cell.EncodeCell(payload, v); err != nil {
				return err
			}
		}
	}

	_, _ = buf.Write(payload.Bytes())

	crc := CRC16XModem(payload.Bytes())

	return cell.EncodeCell(buf, cell.NewWord(crc))
}
