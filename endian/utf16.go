package endian

import (
	"fmt"
	"unicode/utf16"
)

// EncodeUTF16LE encodes s as raw UTF-16LE code units with no length
// prefix and no terminator. Surrogate pairs are emitted for code points
// outside the basic multilingual plane.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		LE.PutUint16(b[2*i:2*i+2], u)
	}

	return b
}

// DecodeUTF16LE decodes raw UTF-16LE bytes (no length prefix) into a
// Go string. len(b) must be even. Unpaired surrogates are replaced with
// the Unicode replacement character, matching utf16.Decode's behavior.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("endian: odd UTF-16LE byte length %d", len(b))
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = LE.Uint16(b[2*i : 2*i+2])
	}

	return string(utf16.Decode(units)), nil
}
