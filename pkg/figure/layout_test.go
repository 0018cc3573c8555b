package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conway-lab/lifebench/pkg/table"
)

func TestSelectLayoutSinglePanel(t *testing.T) {
	specs, err := SelectLayout(30)
	require.NoError(t, err)

	require.Len(t, specs, 1)
	assert.Equal(t, 30, specs[0].PrefixWidth)
	assert.Empty(t, specs[0].Title)
}

func TestSelectLayoutAdaptivePanels(t *testing.T) {
	specs, err := SelectLayout(120)
	require.NoError(t, err)

	require.Len(t, specs, 4)

	widths := make([]int, len(specs))
	for i, s := range specs {
		widths[i] = s.PrefixWidth
	}
	assert.Equal(t, []int{10, 20, 50, 120}, widths)

	assert.Equal(t, "10 Values from dataset", specs[0].Title)
	assert.Equal(t, "20 Values from dataset", specs[1].Title)
	assert.Equal(t, "50 Values from dataset", specs[2].Title)
	assert.Equal(t, "120 Values from dataset", specs[3].Title)
}

func TestSelectLayoutBoundary(t *testing.T) {
	// 49 is still a single full-width panel.
	specs, err := SelectLayout(49)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, 49, specs[0].PrefixWidth)

	// At exactly 50 the step matching the full width is not duplicated.
	specs, err = SelectLayout(50)
	require.NoError(t, err)

	widths := make([]int, len(specs))
	for i, s := range specs {
		widths[i] = s.PrefixWidth
	}
	assert.Equal(t, []int{10, 20, 50}, widths)
}

func TestSelectLayoutRejectsEmptyTables(t *testing.T) {
	for _, n := range []int{0, -5} {
		_, err := SelectLayout(n)
		assert.ErrorIs(t, err, table.ErrInvalidRange)
	}
}
