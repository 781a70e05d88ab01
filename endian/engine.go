// Package endian provides the byte-order engine and UTF-16LE string
// codec used throughout the CT binary format.
//
// CT fixes little-endian byte order for every multi-byte field; unlike
// a format that negotiates endianness per blob, there is exactly one
// EndianEngine in play here.
// The interface is kept anyway, rather than calling binary.LittleEndian
// directly everywhere, so call sites read the same whether the engine
// is swapped out in a test or reused from a pool.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from the standard
// library into a single interface, satisfied directly by
// binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LE is the single EndianEngine CT uses for every multi-byte field.
var LE EndianEngine = binary.LittleEndian

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return LE
}
