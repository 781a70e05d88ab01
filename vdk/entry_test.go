package vdk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEntryFileRecord(t *testing.T) {
	raw := make([]byte, entrySize)
	copy(raw[1:129], "item.ct")
	raw[129] = 0x10 // uncompressed size = 0x10
	raw[133] = 0x08 // compressed size = 0x08
	raw[141] = 0x01 // next offset = 1

	e, err := parseEntry(bytes.NewReader(raw))
	require.NoError(t, err)
	require.False(t, e.IsDir)
	require.Equal(t, "item.ct", e.Name)
	require.Equal(t, uint32(0x10), e.UncompressedSize)
	require.Equal(t, uint32(0x08), e.CompressedSize)
	require.Equal(t, uint32(1), e.NextOffset)
}

func TestParseEntryDirectoryRecordMarksIsDir(t *testing.T) {
	raw := make([]byte, entrySize)
	raw[0] = 1
	copy(raw[1:129], ".")

	e, err := parseEntry(bytes.NewReader(raw))
	require.NoError(t, err)
	require.True(t, e.IsDir)
	require.Equal(t, ".", e.Name)
}

func TestParseEntryTrimsTrailingNulsFromName(t *testing.T) {
	raw := make([]byte, entrySize)
	copy(raw[1:129], "short_name")

	e, err := parseEntry(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, "short_name", e.Name)
	require.NotContains(t, e.Name, "\x00")
}
