package vdk_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/JordanRO2/RO2-Table-Converter/compress"
	"github.com/JordanRO2/RO2-Table-Converter/endian"
	"github.com/JordanRO2/RO2-Table-Converter/vdk"
	"github.com/stretchr/testify/require"
)

func buildEntry(isDir bool, name string, usize, zsize, doffset, noffset uint32) []byte {
	buf := make([]byte, 145)
	if isDir {
		buf[0] = 1
	}
	copy(buf[1:129], name)
	endian.LE.PutUint32(buf[129:133], usize)
	endian.LE.PutUint32(buf[133:137], zsize)
	endian.LE.PutUint32(buf[137:141], doffset)
	endian.LE.PutUint32(buf[141:145], noffset)

	return buf
}

func TestExtractRoundTrip(t *testing.T) {
	content := []byte("hello world, hello world, hello world")

	compressed, err := compress.DeflateCodec{}.Compress(content)
	require.NoError(t, err)

	var archive bytes.Buffer
	archive.Write(buildHeaderV10(1, 0, uint32(len(content))))
	archive.Write(buildEntry(true, ".", 0, 0, 0, 1))
	archive.Write(buildEntry(true, "..", 0, 0, 0, 1))
	archive.Write(buildEntry(false, "hello.txt", uint32(len(content)), uint32(len(compressed)), 0, 0))
	archive.Write(compressed)

	destRoot := t.TempDir()

	hdr, err := vdk.Extract(&archive, destRoot)
	require.NoError(t, err)
	require.Equal(t, vdk.MagicV10, hdr.Magic)

	got, err := os.ReadFile(filepath.Join(destRoot, "hello.txt"))
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestExtractFallsBackToRawBytesOnBadPayload(t *testing.T) {
	garbage := []byte("not actually deflate data")

	var archive bytes.Buffer
	archive.Write(buildHeaderV10(1, 0, uint32(len(garbage))))
	archive.Write(buildEntry(false, "raw.bin", uint32(len(garbage)), uint32(len(garbage)), 0, 0))
	archive.Write(garbage)

	destRoot := t.TempDir()

	_, err := vdk.Extract(&archive, destRoot)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(destRoot, "raw.bin"))
	require.NoError(t, err)
	require.Equal(t, garbage, got)
}

func TestPackIsUnimplemented(t *testing.T) {
	err := vdk.Pack(t.TempDir())
	require.Error(t, err)
}
