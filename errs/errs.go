// Package errs defines the CT codec error taxonomy.
//
// Each failure mode of the CT codec taxonomy is a distinct sentinel or
// structured error type, so callers can switch on the kind of failure
// with errors.Is/errors.As. Some input-shape errors outside that
// taxonomy, such as a matrix with fewer than two rows in matrix.Lift or
// an unrecognized type name in celltype.ParseName, are plain formatted
// errors.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when a CT header does not start with the
	// expected "RO2SEC!" magic.
	ErrBadMagic = errors.New("ctformat: bad magic")

	// ErrTruncatedHeader is returned when fewer than the fixed header
	// size is available to read.
	ErrTruncatedHeader = errors.New("ctformat: truncated header")

	// ErrTruncatedPayload is returned when a primitive decode runs past
	// the end of the available bytes.
	ErrTruncatedPayload = errors.New("cell: truncated payload")

	// ErrSchemaMismatch is returned at write time when the column count
	// and type count disagree. At read time this is a warning, not an
	// error — see table.WarningSchemaMismatch.
	ErrSchemaMismatch = errors.New("ctformat: schema column/type count mismatch")

	// ErrEncoding names the condition of a string that cannot be
	// represented in UTF-16LE. No encoder in this module returns it:
	// endian.EncodeUTF16LE replaces invalid UTF-8 with U+FFFD.
	ErrEncoding = errors.New("cell: string is not representable in UTF-16LE")

	// ErrRowLength is returned when a row's cell count does not match
	// the schema's column count.
	ErrRowLength = errors.New("ctformat: row length does not match schema")

	// ErrCellTypeMismatch is returned when a cell's concrete type does
	// not match its column's declared TypeTag.
	ErrCellTypeMismatch = errors.New("cell: value type does not match column type")

	// ErrTimestampTooLong is returned when writing a header whose
	// timestamp string does not fit in the 64-byte header budget.
	ErrTimestampTooLong = errors.New("ctformat: timestamp does not fit in header")

	// ErrVDKBadMagic is returned when a VDK archive does not start with
	// a recognized "VDISK1.0"/"VDISK1.1" magic.
	ErrVDKBadMagic = errors.New("vdk: bad magic")

	// ErrVDKPackUnsupported is returned by vdk.Pack: archive creation
	// was never implemented in the format this module mirrors.
	ErrVDKPackUnsupported = errors.New("vdk: packing is not implemented")
)

// UnknownTypeError reports a schema type code outside the closed set of
// ten CT primitives. Reading an unknown code is tolerated (the column
// surfaces as celltype.TypeTag.String() == "UNKNOWN_TYPE_<n>"); writing
// one, or decoding a cell of that type, is not.
type UnknownTypeError struct {
	Code uint32
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("ctformat: unknown type code %d has no wire encoding", e.Code)
}

// CellParseError reports a failure to parse a string-matrix cell back
// into its native CT representation during Lift.
type CellParseError struct {
	Row, Col int
	Type     string
	Raw      string
	Err      error
}

func (e *CellParseError) Error() string {
	return fmt.Sprintf("matrix: row %d col %d: cannot parse %q as %s: %v", e.Row, e.Col, e.Raw, e.Type, e.Err)
}

func (e *CellParseError) Unwrap() error {
	return e.Err
}

// CrcMismatchError reports a CT trailer that disagrees with the CRC
// computed over the decoded row payload. This is surfaced as a
// non-fatal table.Warning, never returned as a hard error from Read —
// the type exists so the warning can carry both values.
type CrcMismatchError struct {
	Expected, Got uint16
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("ctformat: CRC mismatch: expected 0x%04X, got 0x%04X", e.Expected, e.Got)
}
