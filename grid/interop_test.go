package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/noisefield/grid"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToMatrixLayout verifies m.At(j,i) == g.At(i,j) for a non-square grid.
func TestToMatrixLayout(t *testing.T) {
	g := randGrid(t, 3, 5, 11)
	m := g.ToMatrix()

	r, c := m.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 3, c)
	for j := 0; j < 5; j++ {
		for i := 0; i < 3; i++ {
			v, err := g.At(i, j)
			require.NoError(t, err)
			require.Equal(t, v, m.At(j, i))
		}
	}

	// The matrix owns its own copy.
	m.Set(0, 0, 99)
	v, _ := g.At(0, 0)
	require.NotEqual(t, 99.0, v)
}

// TestFromMatrixRoundTrip converts grid → matrix → grid without loss.
func TestFromMatrixRoundTrip(t *testing.T) {
	g := randGrid(t, 4, 6, 3)
	back, err := grid.FromMatrix(g.ToMatrix())
	require.NoError(t, err)

	ok, err := grid.AllClose(back, g, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFromMatrixErrors(t *testing.T) {
	_, err := grid.FromMatrix(nil)
	require.ErrorIs(t, err, grid.ErrNilMatrix)

	m := mat.NewDense(2, 2, []float64{1, math.NaN(), 3, 4})
	_, err = grid.FromMatrix(m, grid.WithFiniteOnly())
	require.ErrorIs(t, err, grid.ErrNaNInf)

	g, err := grid.FromMatrix(m)
	require.NoError(t, err)
	v, _ := g.At(1, 0)
	require.True(t, math.IsNaN(v))
}
