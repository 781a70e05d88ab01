// Package celltype defines the closed set of CT column types.
//
// Each TypeTag corresponds to a 32-bit wire code stored in the CT schema
// section and to a fixed or variable-width encoding of a single cell.
package celltype

import "fmt"

// TypeTag identifies the wire representation of a single CT column.
type TypeTag uint32

// The ten CT primitive types and their 32-bit wire codes. Codes 0, 1, 10
// and anything above 12 are not part of the closed set; reading one of
// those from a schema keeps the raw code as the TypeTag (rendered
// "UNKNOWN_TYPE_<n>") instead of failing. Decoding a cell of such a
// type, or writing the type, fails.
const (
	Byte     TypeTag = 2
	Short    TypeTag = 3
	Word     TypeTag = 4
	Int      TypeTag = 5
	Dword    TypeTag = 6
	DwordHex TypeTag = 7
	String   TypeTag = 8
	Float    TypeTag = 9
	Int64    TypeTag = 11
	Bool     TypeTag = 12
)

// names maps wire codes to their canonical string form, used both for
// the Go String() method and for the type-name row of the string matrix.
var names = map[TypeTag]string{
	Byte:     "BYTE",
	Short:    "SHORT",
	Word:     "WORD",
	Int:      "INT",
	Dword:    "DWORD",
	DwordHex: "DWORD_HEX",
	String:   "STRING",
	Float:    "FLOAT",
	Int64:    "INT64",
	Bool:     "BOOL",
}

var fromName = func() map[string]TypeTag {
	m := make(map[string]TypeTag, len(names))
	for tag, name := range names {
		m[name] = tag
	}

	return m
}()

// String renders the TypeTag as its CT type name, e.g. "INT" or
// "DWORD_HEX". Codes outside the closed set render as "UNKNOWN_TYPE_<n>"
// rather than failing — writing such a tag is what fails, per spec.
func (t TypeTag) String() string {
	if name, ok := names[t]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
}

// Known reports whether t is one of the ten closed-set types.
func (t TypeTag) Known() bool {
	_, ok := names[t]
	return ok
}

// FixedSize returns the wire size in bytes for fixed-width types, and
// (0, false) for String, whose size depends on its content.
func (t TypeTag) FixedSize() (int, bool) {
	switch t {
	case Byte, Bool:
		return 1, true
	case Short, Word:
		return 2, true
	case Int, Dword, DwordHex, Float:
		return 4, true
	case Int64:
		return 8, true
	default:
		return 0, false
	}
}

// ParseName maps a CT type name, such as "DWORD_HEX", back to its
// TypeTag. It also accepts the "UNKNOWN_TYPE_<n>" form produced by
// String(), returning the raw code as the TypeTag.
func ParseName(name string) (TypeTag, error) {
	if tag, ok := fromName[name]; ok {
		return tag, nil
	}

	var n uint32
	if _, err := fmt.Sscanf(name, "UNKNOWN_TYPE_%d", &n); err == nil {
		return TypeTag(n), nil
	}

	return 0, fmt.Errorf("celltype: unrecognized type name %q", name)
}
