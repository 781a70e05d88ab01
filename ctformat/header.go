package ctformat

import (
	"time"

	"github.com/JordanRO2/RO2-Table-Converter/endian"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
)

// Header holds the fixed 64-byte CT header's one meaningful field: the
// embedded creation timestamp, carried opaquely as a string.
type Header struct {
	Timestamp string
}

// ParseHeader parses the 64-byte CT header from the start of data.
//
// It returns ErrTruncatedHeader if fewer than HeaderSize bytes are
// available, and ErrBadMagic if the first 14 bytes don't match the
// UTF-16LE encoding of Magic. usedFallback reports whether the
// timestamp region could not be decoded and the hard-coded fallback
// was substituted — callers surface this as a table.Warning, not an
// error.
func ParseHeader(data []byte) (hdr Header, usedFallback bool, err error) {
	if len(data) < HeaderSize {
		return Header{}, false, errs.ErrTruncatedHeader
	}

	magicBytes := endian.EncodeUTF16LE(Magic)
	for i := range magicBytes {
		if data[i] != magicBytes[i] {
			return Header{}, false, errs.ErrBadMagic
		}
	}

	ts, usedFallback := readTimestamp(data[16:HeaderSize])

	return Header{Timestamp: ts}, usedFallback, nil
}

// readTimestamp scans the timestamp region (bytes 16..64 of the header)
// for the next two-byte-aligned 0x0000 null terminator. If the region
// up to that terminator decodes to a string matching TimestampLayout,
// it is returned as-is. Otherwise — no terminator found within the
// window, or the decoded string isn't a valid timestamp — the
// hard-coded fallback is substituted and usedFallback is true.
func readTimestamp(region []byte) (ts string, usedFallback bool) {
	nullAt := -1
	for i := 0; i+1 < len(region); i += 2 {
		if region[i] == 0 && region[i+1] == 0 {
			nullAt = i
			break
		}
	}

	var candidate []byte
	if nullAt >= 0 {
		candidate = region[:nullAt]
	} else {
		n := 38
		if n > len(region) {
			n = len(region)
		}
		candidate = region[:n]
	}

	decoded, err := endian.DecodeUTF16LE(candidate)
	if err == nil {
		if _, perr := time.Parse(TimestampLayout, decoded); perr == nil {
			return decoded, false
		}
	}

	return fallbackTimestamp, true
}

// WriteHeader renders a 64-byte CT header embedding ts, which must
// format (as UTF-16LE, plus its two-byte null terminator) within the
// 48 bytes available after the magic and its own terminator.
func WriteHeader(ts string) ([]byte, error) {
	tsBytes := endian.EncodeUTF16LE(ts)
	if 16+len(tsBytes)+2 > HeaderSize {
		return nil, errs.ErrTimestampTooLong
	}

	buf := make([]byte, HeaderSize)
	copy(buf[0:magicUTF16Size], endian.EncodeUTF16LE(Magic))
	copy(buf[16:], tsBytes)
	// bytes after the timestamp, including its null terminator and the
	// pad to 64, are already zero from make().

	return buf, nil
}
