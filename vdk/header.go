// Package vdk reads the archive container used for the format
// family's compressed game assets. It is a standalone reader: nothing
// in celltype/cell/ctformat/table/matrix imports it, and it does not
// import them, matching the separation the format's own tooling draws
// between the table codec and the asset archive.
package vdk

import (
	"fmt"
	"io"

	"github.com/JordanRO2/RO2-Table-Converter/endian"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
)

const (
	// MagicV10 identifies the original archive revision, which carries
	// no trailing Extra field.
	MagicV10 = "VDISK1.0"

	// MagicV11 identifies the revision with the trailing Extra field.
	MagicV11 = "VDISK1.1"

	headerBaseSize = 24
)

// Header is a VDK archive's fixed leading record.
type Header struct {
	Magic string

	// Reserved is the u32 immediately following the magic whose
	// purpose the source never documented.
	Reserved uint32

	Files uint32
	Dirs  uint32
	Size  uint32

	// Extra is a trailing u32 present only in MagicV11 archives, left
	// undocumented by the format's own source ("TODO: Document file
	// format"); zero for MagicV10.
	Extra uint32
}

// ParseHeader reads a Header from the start of r.
func ParseHeader(r io.Reader) (Header, error) {
	var raw [headerBaseSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Header{}, fmt.Errorf("vdk: read header: %w", err)
	}

	magic := string(raw[0:8])
	if magic != MagicV10 && magic != MagicV11 {
		return Header{}, fmt.Errorf("%w: %q", errs.ErrVDKBadMagic, magic)
	}

	hdr := Header{
		Magic:    magic,
		Reserved: endian.LE.Uint32(raw[8:12]),
		Files:    endian.LE.Uint32(raw[12:16]),
		Dirs:     endian.LE.Uint32(raw[16:20]),
		Size:     endian.LE.Uint32(raw[20:24]),
	}

	if magic == MagicV11 {
		var extra [4]byte
		if _, err := io.ReadFull(r, extra[:]); err != nil {
			return Header{}, fmt.Errorf("vdk: read extra field: %w", err)
		}
		hdr.Extra = endian.LE.Uint32(extra[:])
	}

	return hdr, nil
}
