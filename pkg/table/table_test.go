package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix(t *testing.T) Matrix {
	m, err := New([][]float64{
		{0, 1, 2, 3, 4, 5},
		{1, 2, 4, 6, 8, 10},
		{2, 10, 20, 30, 40, 50},
	})
	require.NoError(t, err)
	return m
}

func TestNewRejectsBadShapes(t *testing.T) {
	_, err := New([][]float64{{0, 1}, {0, 2}})
	assert.Error(t, err)

	_, err = New([][]float64{{0, 1, 2}, {0, 1}, {0, 1, 2}})
	assert.Error(t, err)

	// A lone label column carries no data points.
	_, err = New([][]float64{{0}, {1}, {2}})
	assert.Error(t, err)
}

func TestSplitReturnsPrefixes(t *testing.T) {
	m := testMatrix(t)
	require.Equal(t, 5, m.DataColumns())

	for w := 1; w <= m.DataColumns(); w++ {
		multi, single, cells, err := m.Split(w)
		require.NoError(t, err)

		assert.Len(t, multi, w)
		assert.Len(t, single, w)
		assert.Len(t, cells, w)

		// Contiguous prefixes of the data region, label column excluded.
		for i := 0; i < w; i++ {
			assert.Equal(t, m[0][i+1], multi[i])
			assert.Equal(t, m[1][i+1], single[i])
			assert.Equal(t, m[2][i+1], cells[i])
		}
	}
}

func TestSplitRejectsOutOfRangeWidths(t *testing.T) {
	m := testMatrix(t)

	for _, w := range []int{0, -1, 6, 100} {
		_, _, _, err := m.Split(w)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestSplitDoesNotAliasTheMatrix(t *testing.T) {
	m := testMatrix(t)

	multi, _, _, err := m.Split(3)
	require.NoError(t, err)

	multi[0] = -1
	assert.Equal(t, 1.0, m[0][1])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	content := "0 1.5 2.5 3.5\n1 3.0 5.0 7.0\n2 50 100 150\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, m.DataColumns())
	assert.Equal(t, 2.5, m[0][2])
	assert.Equal(t, 150.0, m[2][3])
}

func TestLoadBracketedRows(t *testing.T) {
	// The data generator's list format parses the same way.
	path := filepath.Join(t.TempDir(), "output.txt")
	content := "0 [1.5, 2.5]\n1 [3.0, 5.0]\n2 [50, 100]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, m.DataColumns())
	assert.Equal(t, 5.0, m[1][2])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1 2\n1 x 2\n2 1 2\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
