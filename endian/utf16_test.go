package endian_test

import (
	"testing"

	"github.com/JordanRO2/RO2-Table-Converter/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hi",
		"RO2SEC!",
		"with\x00embedded\x00nul",
		"emoji: \U0001F600",
	}

	for _, s := range cases {
		encoded := endian.EncodeUTF16LE(s)
		assert.Equal(t, 0, len(encoded)%2)

		decoded, err := endian.DecodeUTF16LE(encoded)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	_, err := endian.DecodeUTF16LE([]byte{0x01})
	assert.Error(t, err)
}

func TestEncodeEmptyString(t *testing.T) {
	assert.Empty(t, endian.EncodeUTF16LE(""))
}
