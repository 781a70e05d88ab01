package xlsxrow_test

import (
	"errors"
	"testing"

	"github.com/JordanRO2/RO2-Table-Converter/xlsxrow"
	"github.com/stretchr/testify/require"
)

var errFake = errors.New("fake sheet failure")

type fakeSheet struct {
	rows    [][]string
	written [][]string
	err     error
}

func (f *fakeSheet) Rows() ([][]string, error) {
	return f.rows, f.err
}

func (f *fakeSheet) WriteRows(rows [][]string) error {
	f.written = rows
	return f.err
}

func TestToMatrixSwapsTypesAndNamesHeaderRows(t *testing.T) {
	src := &fakeSheet{rows: [][]string{
		{"INT", "STRING"},
		{"id", "name"},
		{"1", "alpha"},
	}}

	m, err := xlsxrow.ToMatrix(src)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, m[0])
	require.Equal(t, []string{"INT", "STRING"}, m[1])
	require.Equal(t, []string{"1", "alpha"}, m[2])
}

func TestFromMatrixSwapsNamesAndTypesHeaderRows(t *testing.T) {
	m := [][]string{
		{"id", "name"},
		{"INT", "STRING"},
		{"1", "alpha"},
	}

	dst := &fakeSheet{}
	require.NoError(t, xlsxrow.FromMatrix(dst, m))
	require.Equal(t, []string{"INT", "STRING"}, dst.written[0])
	require.Equal(t, []string{"id", "name"}, dst.written[1])
}

func TestToMatrixPropagatesSourceError(t *testing.T) {
	src := &fakeSheet{err: errFake}
	_, err := xlsxrow.ToMatrix(src)
	require.ErrorIs(t, err, errFake)
}

func TestShortSheetsPassThroughUnchanged(t *testing.T) {
	src := &fakeSheet{rows: [][]string{{"only"}}}

	m, err := xlsxrow.ToMatrix(src)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"only"}}, m)
}
