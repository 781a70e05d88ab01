package cell

import (
	"math"

	"github.com/JordanRO2/RO2-Table-Converter/celltype"
	"github.com/JordanRO2/RO2-Table-Converter/endian"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
	"github.com/JordanRO2/RO2-Table-Converter/internal/pool"
)

// Cursor reads fixed- and variable-width values off a byte slice in
// sequence, tracking position. It never re-slices past the end of the
// underlying buffer.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data for sequential decoding starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of bytes remaining to be read.
func (c *Cursor) Len() int { return len(c.data) - c.pos }

// Slice returns the raw bytes between two previously observed Pos()
// offsets, for callers that need to checksum or re-verify a span of
// the underlying buffer after decoding it (e.g. the CT row-payload
// CRC trailer).
func (c *Cursor) Slice(start, end int) []byte { return c.data[start:end] }

func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, errs.ErrTruncatedPayload
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// DecodeCell reads one cell of the given TypeTag from the cursor.
//
// Unknown type codes (outside the closed set of ten) cannot be decoded,
// since their wire width is undefined; this returns an
// *errs.UnknownTypeError.
func DecodeCell(c *Cursor, tag celltype.TypeTag) (Cell, error) {
	switch tag {
	case celltype.Byte:
		b, err := c.take(1)
		if err != nil {
			return Cell{}, err
		}

		return NewByte(b[0]), nil

	case celltype.Short:
		b, err := c.take(2)
		if err != nil {
			return Cell{}, err
		}

		return NewShort(int16(endian.LE.Uint16(b))), nil

	case celltype.Word:
		b, err := c.take(2)
		if err != nil {
			return Cell{}, err
		}

		return NewWord(endian.LE.Uint16(b)), nil

	case celltype.Int:
		b, err := c.take(4)
		if err != nil {
			return Cell{}, err
		}

		return NewInt(int32(endian.LE.Uint32(b))), nil

	case celltype.Dword:
		b, err := c.take(4)
		if err != nil {
			return Cell{}, err
		}

		return NewDword(endian.LE.Uint32(b)), nil

	case celltype.DwordHex:
		b, err := c.take(4)
		if err != nil {
			return Cell{}, err
		}

		return NewDwordHex(endian.LE.Uint32(b)), nil

	case celltype.Float:
		b, err := c.take(4)
		if err != nil {
			return Cell{}, err
		}

		return NewFloat(math.Float32frombits(endian.LE.Uint32(b))), nil

	case celltype.Int64:
		b, err := c.take(8)
		if err != nil {
			return Cell{}, err
		}

		return NewInt64(endian.LE.Uint64(b)), nil

	case celltype.Bool:
		b, err := c.take(1)
		if err != nil {
			return Cell{}, err
		}

		return NewBool(b[0] != 0), nil

	case celltype.String:
		return decodeString(c)

	default:
		return Cell{}, &errs.UnknownTypeError{Code: uint32(tag)}
	}
}

// decodeString reads a u32 LE character count followed by that many
// UTF-16LE code units. A zero count consumes no further bytes and
// decodes to the empty string; trailing zero code units within the
// declared length are preserved, not stripped.
func decodeString(c *Cursor) (Cell, error) {
	lenBytes, err := c.take(4)
	if err != nil {
		return Cell{}, err
	}

	charCount := endian.LE.Uint32(lenBytes)
	if charCount == 0 {
		return NewString(""), nil
	}

	raw, err := c.take(2 * int(charCount))
	if err != nil {
		return Cell{}, err
	}

	s, err := endian.DecodeUTF16LE(raw)
	if err != nil {
		return Cell{}, err
	}

	return NewString(s), nil
}

// EncodeCell appends the wire representation of c to buf. c.Tag must be
// one of the ten closed-set types; anything else returns
// *errs.UnknownTypeError, since an unknown type code is structurally
// incapable of being written back out.
func EncodeCell(buf *pool.ByteBuffer, c Cell) error {
	switch c.Tag {
	case celltype.Byte, celltype.Bool:
		var v uint8
		if c.Tag == celltype.Bool {
			if c.Bool {
				v = 1
			}
		} else {
			v = uint8(c.U64)
		}
		buf.Grow(1)
		_, _ = buf.Write([]byte{v})

		return nil

	case celltype.Short:
		var b [2]byte
		endian.LE.PutUint16(b[:], uint16(int16(c.I64)))
		_, _ = buf.Write(b[:])

		return nil

	case celltype.Word:
		var b [2]byte
		endian.LE.PutUint16(b[:], uint16(c.U64))
		_, _ = buf.Write(b[:])

		return nil

	case celltype.Int:
		var b [4]byte
		endian.LE.PutUint32(b[:], uint32(int32(c.I64)))
		_, _ = buf.Write(b[:])

		return nil

	case celltype.Dword, celltype.DwordHex:
		var b [4]byte
		endian.LE.PutUint32(b[:], uint32(c.U64))
		_, _ = buf.Write(b[:])

		return nil

	case celltype.Float:
		var b [4]byte
		endian.LE.PutUint32(b[:], math.Float32bits(c.F32))
		_, _ = buf.Write(b[:])

		return nil

	case celltype.Int64:
		var b [8]byte
		endian.LE.PutUint64(b[:], c.U64)
		_, _ = buf.Write(b[:])

		return nil

	case celltype.String:
		return encodeString(buf, c.Str)

	default:
		return &errs.UnknownTypeError{Code: uint32(c.Tag)}
	}
}

func encodeString(buf *pool.ByteBuffer, s string) error {
	units := endian.EncodeUTF16LE(s)
	charCount := len(units) / 2

	var lenBytes [4]byte
	endian.LE.PutUint32(lenBytes[:], uint32(charCount))

	buf.Grow(4 + len(units))
	_, _ = buf.Write(lenBytes[:])
	if charCount > 0 {
		_, _ = buf.Write(units)
	}

	return nil
}
