// SPDX-License-Identifier: MIT

// Package grid - gonum interop.
//
// A Grid stores cell (i,j) at i + xsize*j, which is exactly the row-major
// offset of element (row=j, col=i) in a ysize×xsize gonum matrix. Both
// conversions therefore copy the buffer verbatim.
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToMatrix   = "ToMatrix"
	ctxFromMatrix = "FromMatrix"
)

// ToMatrix returns a ysize×xsize *mat.Dense holding a copy of the grid,
// so that m.At(j, i) == g.At(i, j).
// Complexity: O(size).
func (g *Grid) ToMatrix() *mat.Dense {
	return mat.NewDense(g.ysize, g.xsize, g.Values())
}

// FromMatrix builds a grid from any gonum matrix: rows become j, columns become i.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty matrix), ErrNaNInf under WithFiniteOnly.
// Complexity: O(rows*cols).
func FromMatrix(m mat.Matrix, opts ...Option) (*Grid, error) {
	if m == nil {
		return nil, gridErrorf(ctxFromMatrix, ErrNilMatrix)
	}
	rows, cols := m.Dims()
	g, err := New(cols, rows, opts...)
	if err != nil {
		return nil, gridErrorf(ctxFromMatrix, err)
	}

	var i, j int
	var v float64
	for j = 0; j < rows; j++ {
		for i = 0; i < cols; i++ {
			v = m.At(j, i)
			if g.finiteOnly && !isFinite(v) {
				return nil, fmt.Errorf("%s: row %d col %d: %w", ctxFromMatrix, j, i, ErrNaNInf)
			}
			g.data[g.IdxOf(i, j)] = v
		}
	}

	return g, nil
}
