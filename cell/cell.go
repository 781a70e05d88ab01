// Package cell implements the CT primitive codec: encoding and decoding
// of a single typed value to and from its wire representation, and
// parsing/rendering a value to and from the string-matrix external view.
package cell

import "github.com/JordanRO2/RO2-Table-Converter/celltype"

// Cell is a tagged union over the ten CT primitive domains. Exactly one
// of I64, U64, F32, Bool, Str is meaningful, selected by Tag.
//
//   - Short, Int           -> I64 (signed)
//   - Byte, Word, Dword,
//     DwordHex, Int64      -> U64 (unsigned)
//   - Float                -> F32
//   - Bool                 -> Bool
//   - String               -> Str
type Cell struct {
	Tag  celltype.TypeTag
	I64  int64
	U64  uint64
	F32  float32
	Bool bool
	Str  string
}

// NewByte creates a BYTE cell from an unsigned 8-bit value.
func NewByte(v uint8) Cell { return Cell{Tag: celltype.Byte, U64: uint64(v)} }

// NewShort creates a SHORT cell from a signed 16-bit value.
func NewShort(v int16) Cell { return Cell{Tag: celltype.Short, I64: int64(v)} }

// NewWord creates a WORD cell from an unsigned 16-bit value.
func NewWord(v uint16) Cell { return Cell{Tag: celltype.Word, U64: uint64(v)} }

// NewInt creates an INT cell from a signed 32-bit value.
func NewInt(v int32) Cell { return Cell{Tag: celltype.Int, I64: int64(v)} }

// NewDword creates a DWORD cell from an unsigned 32-bit value.
func NewDword(v uint32) Cell { return Cell{Tag: celltype.Dword, U64: uint64(v)} }

// NewDwordHex creates a DWORD_HEX cell. Its wire form is identical to
// DWORD; only the string projection differs.
func NewDwordHex(v uint32) Cell { return Cell{Tag: celltype.DwordHex, U64: uint64(v)} }

// NewString creates a STRING cell.
func NewString(v string) Cell { return Cell{Tag: celltype.String, Str: v} }

// NewFloat creates a FLOAT cell from an IEEE-754 binary32 value.
func NewFloat(v float32) Cell { return Cell{Tag: celltype.Float, F32: v} }

// NewInt64 creates an INT64 cell. Despite the name, its wire form is
// unsigned 64-bit.
func NewInt64(v uint64) Cell { return Cell{Tag: celltype.Int64, U64: v} }

// NewBool creates a BOOL cell.
func NewBool(v bool) Cell { return Cell{Tag: celltype.Bool, Bool: v} }
