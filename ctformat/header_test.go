package ctformat_test

import (
	"testing"

	"github.com/JordanRO2/RO2-Table-Converter/ctformat"
	"github.com/JordanRO2/RO2-Table-Converter/errs"
	"github.com/stretchr/testify/require"
)

func TestWriteHeaderThenParseHeaderRoundTrip(t *testing.T) {
	raw, err := ctformat.WriteHeader("2021-03-15 09:30:00")
	require.NoError(t, err)
	require.Len(t, raw, ctformat.HeaderSize)

	hdr, usedFallback, err := ctformat.ParseHeader(raw)
	require.NoError(t, err)
	require.False(t, usedFallback)
	require.Equal(t, "2021-03-15 09:30:00", hdr.Timestamp)
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	raw, err := ctformat.WriteHeader("2021-03-15 09:30:00")
	require.NoError(t, err)
	raw[0] = 0xFF

	_, _, err = ctformat.ParseHeader(raw)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestParseHeaderRejectsTruncatedHeader(t *testing.T) {
	_, _, err := ctformat.ParseHeader(make([]byte, ctformat.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

// TestParseHeaderZeroFilledRegionFallsBack covers a header whose magic
// is present but whose timestamp region is entirely zeroed, so the
// null terminator is found at offset 0 and the empty string fails the
// timestamp layout check.
func TestParseHeaderZeroFilledRegionFallsBack(t *testing.T) {
	raw, err := ctformat.WriteHeader("2021-03-15 09:30:00")
	require.NoError(t, err)
	for i := 16; i < ctformat.HeaderSize; i++ {
		raw[i] = 0
	}

	hdr, usedFallback, err := ctformat.ParseHeader(raw)
	require.NoError(t, err)
	require.True(t, usedFallback)
	require.Equal(t, "2014-10-06 12:28:25", hdr.Timestamp)
}

func TestWriteHeaderRejectsOverlongTimestamp(t *testing.T) {
	_, err := ctformat.WriteHeader("this timestamp string is far too long to fit in the header budget")
	require.ErrorIs(t, err, errs.ErrTimestampTooLong)
}
