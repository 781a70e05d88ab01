package cell_test

import (
	"testing"

	"github.com/JordanRO2/RO2-Table-Converter/celltype"
	"github.com/JordanRO2/RO2-Table-Converter/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerWithFractionTruncatesTowardZero(t *testing.T) {
	c, err := cell.Parse(celltype.Int, "3.7")
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.I64)

	c, err = cell.Parse(celltype.Int, "-3.7")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), c.I64)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := cell.Parse(celltype.Int, "not-a-number")
	assert.Error(t, err)
}

func TestParseWordRejectsNegativeOne(t *testing.T) {
	_, err := cell.Parse(celltype.Word, "-1")
	assert.Error(t, err)
}

func TestParseEmptyStringIsZeroValue(t *testing.T) {
	c, err := cell.Parse(celltype.Int, "")
	require.NoError(t, err)
	assert.Equal(t, cell.NewInt(0), c)

	c, err = cell.Parse(celltype.Float, "")
	require.NoError(t, err)
	assert.Equal(t, cell.NewFloat(0), c)

	c, err = cell.Parse(celltype.Bool, "")
	require.NoError(t, err)
	assert.Equal(t, cell.NewBool(false), c)

	c, err = cell.Parse(celltype.String, "")
	require.NoError(t, err)
	assert.Equal(t, cell.NewString(""), c)
}

func TestParseBoolAcceptsCommonTruthyAndFalseyStrings(t *testing.T) {
	inputs := []string{"true", "false", "0", "1", "No", "yes"}
	want := []bool{true, false, false, true, false, true}

	for i, in := range inputs {
		c, err := cell.Parse(celltype.Bool, in)
		require.NoError(t, err)
		assert.Equal(t, want[i], c.Bool, "input %q", in)
	}
}

func TestParseDwordHexAcceptsHexLiteral(t *testing.T) {
	c, err := cell.Parse(celltype.DwordHex, "0xCAFEBABE")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xCAFEBABE), c.U64)
}

func TestRenderDwordHex(t *testing.T) {
	assert.Equal(t, "0x0", cell.Render(cell.NewDwordHex(0)))
	assert.Equal(t, "0xDEAD", cell.Render(cell.NewDwordHex(0xDEAD)))
}

func TestParseDwordHexDecimalFallback(t *testing.T) {
	c, err := cell.Parse(celltype.DwordHex, "42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), c.U64)
}

func TestRenderRoundTripsParse(t *testing.T) {
	cases := []cell.Cell{
		cell.NewByte(7),
		cell.NewShort(-5),
		cell.NewWord(500),
		cell.NewInt(-42),
		cell.NewDword(123456),
		cell.NewDwordHex(0xABCDEF01),
		cell.NewInt64(1 << 40),
		cell.NewFloat(1.5),
		cell.NewBool(true),
		cell.NewString("hello world"),
	}

	for _, c := range cases {
		raw := cell.Render(c)
		got, err := cell.Parse(c.Tag, raw)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
