package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/grid"
)

// TestGridXYZ checks the vertical flip: grid row 0 is the top plot row.
func TestGridXYZ(t *testing.T) {
	g, err := grid.From2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	xyz := gridXYZ{m: g.Dense()}

	c, r := xyz.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 4.0, xyz.Z(0, 0))
	assert.Equal(t, 3.0, xyz.Z(2, 1))
	assert.Equal(t, 2.0, xyz.X(2))
	assert.Equal(t, 1.0, xyz.Y(1))
}
