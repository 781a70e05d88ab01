// Package ctformat implements CT file framing: the fixed 64-byte
// header, the schema section, row-count framing, and the CRC-16/XMODEM
// trailer.
package ctformat

const (
	// Magic is the literal identifying a CT file, stored UTF-16LE.
	Magic = "RO2SEC!"

	// HeaderSize is the fixed size in bytes of the CT header.
	HeaderSize = 64

	// magicUTF16Size is the byte length of Magic encoded as UTF-16LE.
	magicUTF16Size = len(Magic) * 2

	// fallbackTimestamp is substituted when the header's timestamp
	// region cannot be decoded.
	fallbackTimestamp = "2014-10-06 12:28:25"

	// TimestampLayout is the wall-clock format CT embeds in its header.
	TimestampLayout = "2006-01-02 15:04:05"
)
