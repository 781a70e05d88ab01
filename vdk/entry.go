package vdk

import (
	"bytes"
	"fmt"
	"io"

	"github.com/JordanRO2/RO2-Table-Converter/endian"
	"golang.org/x/text/encoding/korean"
)

const entrySize = 1 + 128 + 4*4

// Entry is one directory or file record: a 145-byte fixed structure of
// a directory flag, a cp949-encoded 128-byte name buffer, and four u32
// fields.
type Entry struct {
	IsDir bool
	Name  string

	UncompressedSize uint32
	CompressedSize   uint32

	// DataOffset is carried for fidelity with the source record but
	// unused by Extract, which reads entries and their payloads
	// sequentially rather than seeking.
	DataOffset uint32

	// NextOffset is nonzero while more entries remain at the current
	// directory level. Like DataOffset it was never used as a seek
	// target by the source reader, only as a continue/stop flag.
	NextOffset uint32
}

func parseEntry(r io.Reader) (Entry, error) {
	var raw [entrySize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Entry{}, err
	}

	name, err := decodeName(raw[1:129])
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		IsDir:            raw[0] != 0,
		Name:             name,
		UncompressedSize: endian.LE.Uint32(raw[129:133]),
		CompressedSize:   endian.LE.Uint32(raw[133:137]),
		DataOffset:       endian.LE.Uint32(raw[137:141]),
		NextOffset:       endian.LE.Uint32(raw[141:145]),
	}, nil
}

// decodeName trims the fixed name buffer's trailing NULs and decodes
// it from cp949 (the Korean codepage the client's filesystem used).
func decodeName(raw []byte) (string, error) {
	trimmed := bytes.TrimRight(raw, "\x00")

	decoded, err := korean.EUCKR.NewDecoder().Bytes(trimmed)
	if err != nil {
		return "", fmt.Errorf("vdk: decode entry name: %w", err)
	}

	return string(decoded), nil
}
