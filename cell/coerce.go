package cell

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JordanRO2/RO2-Table-Converter/celltype"
)

// falseyBoolStrings are the trimmed, case-insensitive string forms that
// encode to BOOL false; everything else non-empty encodes to true.
var falseyBoolStrings = map[string]struct{}{
	"0":     {},
	"false": {},
	"":      {},
	"no":    {},
}

// Parse converts a string-matrix cell value into a Cell of the given
// TypeTag.
//
// An empty raw string maps to the type's zero value (0, 0.0, false, or
// ""). Any other parse failure is reported as an
// *errs-style error by the caller, which wraps it into a
// *errs.CellParseError with row/column context; Parse itself returns
// the plain underlying error.
func Parse(tag celltype.TypeTag, raw string) (Cell, error) {
	if raw == "" {
		return zeroValue(tag), nil
	}

	switch tag {
	case celltype.Byte:
		v, err := parseUnsigned(raw, 8)
		if err != nil {
			return Cell{}, err
		}

		return NewByte(uint8(v)), nil

	case celltype.Short:
		v, err := parseSigned(raw, 16)
		if err != nil {
			return Cell{}, err
		}

		return NewShort(int16(v)), nil

	case celltype.Word:
		v, err := parseUnsigned(raw, 16)
		if err != nil {
			return Cell{}, err
		}

		return NewWord(uint16(v)), nil

	case celltype.Int:
		v, err := parseSigned(raw, 32)
		if err != nil {
			return Cell{}, err
		}

		return NewInt(int32(v)), nil

	case celltype.Dword:
		v, err := parseUnsigned(raw, 32)
		if err != nil {
			return Cell{}, err
		}

		return NewDword(uint32(v)), nil

	case celltype.DwordHex:
		v, err := parseHexOrDecimal(raw)
		if err != nil {
			return Cell{}, err
		}

		return NewDwordHex(v), nil

	case celltype.Int64:
		v, err := parseUnsigned(raw, 64)
		if err != nil {
			return Cell{}, err
		}

		return NewInt64(v), nil

	case celltype.Float:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return Cell{}, err
		}

		return NewFloat(float32(f)), nil

	case celltype.Bool:
		return NewBool(!isFalseyBool(raw)), nil

	case celltype.String:
		return NewString(raw), nil

	default:
		return Cell{}, fmt.Errorf("cell: cannot parse value for %s", tag)
	}
}

// zeroValue returns the zero-value Cell for tag, used when lifting an
// empty string-matrix cell.
func zeroValue(tag celltype.TypeTag) Cell {
	switch tag {
	case celltype.Byte:
		return NewByte(0)
	case celltype.Short:
		return NewShort(0)
	case celltype.Word:
		return NewWord(0)
	case celltype.Int:
		return NewInt(0)
	case celltype.Dword:
		return NewDword(0)
	case celltype.DwordHex:
		return NewDwordHex(0)
	case celltype.Int64:
		return NewInt64(0)
	case celltype.Float:
		return NewFloat(0)
	case celltype.Bool:
		return NewBool(false)
	default:
		return NewString("")
	}
}

func isFalseyBool(raw string) bool {
	_, falsey := falseyBoolStrings[strings.ToLower(strings.TrimSpace(raw))]
	return falsey
}

// parseSigned accepts a decimal integer, or a decimal integer with a
// ".0"-style fractional part truncated toward zero, and range-checks it
// against bitSize.
func parseSigned(raw string, bitSize int) (int64, error) {
	if strings.ContainsAny(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("cell: %q is not a valid integer: %w", raw, err)
		}

		v := int64(math.Trunc(f))
		if !fitsSigned(v, bitSize) {
			return 0, fmt.Errorf("cell: %d overflows signed %d-bit range", v, bitSize)
		}

		return v, nil
	}

	v, err := strconv.ParseInt(raw, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("cell: %q is not a valid signed %d-bit integer: %w", raw, bitSize, err)
	}

	return v, nil
}

// parseUnsigned mirrors parseSigned for unsigned domains. A leading '-'
// is rejected by strconv.ParseUint, which is how WORD rejects "-1".
func parseUnsigned(raw string, bitSize int) (uint64, error) {
	if strings.ContainsAny(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("cell: %q is not a valid integer: %w", raw, err)
		}
		if f < 0 {
			return 0, fmt.Errorf("cell: %q is negative, not valid for an unsigned %d-bit integer", raw, bitSize)
		}

		v := uint64(math.Trunc(f))
		if !fitsUnsigned(v, bitSize) {
			return 0, fmt.Errorf("cell: %d overflows unsigned %d-bit range", v, bitSize)
		}

		return v, nil
	}

	v, err := strconv.ParseUint(raw, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("cell: %q is not a valid unsigned %d-bit integer: %w", raw, bitSize, err)
	}

	return v, nil
}

// parseHexOrDecimal implements DWORD_HEX's parsing rule: any input
// containing 'x' or 'X' is hexadecimal (an optional "0x"/"0X" prefix is
// stripped first); otherwise the input is decimal.
func parseHexOrDecimal(raw string) (uint32, error) {
	if strings.ContainsAny(raw, "xX") {
		digits := raw
		if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
			digits = digits[2:]
		}

		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("cell: %q is not a valid hex DWORD_HEX value: %w", raw, err)
		}

		return uint32(v), nil
	}

	v, err := parseUnsigned(raw, 32)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}

func fitsSigned(v int64, bitSize int) bool {
	min := -(int64(1) << (bitSize - 1))
	max := int64(1)<<(bitSize-1) - 1

	return v >= min && v <= max
}

func fitsUnsigned(v uint64, bitSize int) bool {
	if bitSize >= 64 {
		return true
	}

	return v <= uint64(1)<<bitSize-1
}

// Render converts a Cell into its string-matrix representation, the
// inverse of Parse for well-formed cells.
func Render(c Cell) string {
	switch c.Tag {
	case celltype.Byte, celltype.Word, celltype.Dword:
		return strconv.FormatUint(c.U64, 10)

	case celltype.DwordHex:
		return fmt.Sprintf("0x%X", uint32(c.U64))

	case celltype.Int64:
		return strconv.FormatUint(c.U64, 10)

	case celltype.Short:
		return strconv.FormatInt(c.I64, 10)

	case celltype.Int:
		return strconv.FormatInt(c.I64, 10)

	case celltype.Float:
		return strconv.FormatFloat(float64(c.F32), 'g', -1, 32)

	case celltype.Bool:
		if c.Bool {
			return "1"
		}

		return "0"

	case celltype.String:
		return c.Str

	default:
		return ""
	}
}
