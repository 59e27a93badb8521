// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Whole-grid elementwise primitives: Combine (pure, allocates the result)
//     and Update (in place, no allocation).
//   - One flat loop over the buffer; the row-parallel variant splits the same
//     loop by j so every cell is written by exactly one goroutine.
//
// Determinism:
//   - Sequential path visits idx = 0..size-1.
//   - Parallel path reports the error of the lowest failing row, so the
//     returned error does not depend on scheduling.

package grid

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
)

const (
	ctxCombine  = "Combine"
	ctxUpdate   = "Update"
	ctxAllClose = "AllClose"
)

// CombineFunc merges the values of two cells sharing a linear index.
type CombineFunc func(a, b float64) float64

// UpdateFunc maps a cell value to its replacement.
type UpdateFunc func(v float64) float64

// ValidateNotNil returns ErrNilGrid if g == nil.
func ValidateNotNil(g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b share xsize and ysize.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Grid) error {
	if a.xsize != b.xsize || a.ysize != b.ysize {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.xsize, a.ysize, b.xsize, b.ysize, ErrDimensionMismatch)
	}

	return nil
}

// Combine returns a new grid whose cell idx holds fn(g[idx], other[idx]).
// Stage 1 (Validate): non-nil operands and fn; identical shapes.
// Stage 2 (Execute): one pass over the flat buffers (row-parallel under WithParallel).
// Stage 3 (Finalize): return the result; neither input is mutated.
//
// Errors: ErrNilGrid, ErrNilFunc, ErrDimensionMismatch, ErrNaNInf (finite-only
// receiver). No partial result is returned on error.
// Complexity: O(size) time and memory.
func (g *Grid) Combine(fn CombineFunc, other *Grid) (*Grid, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, gridErrorf(ctxCombine, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, gridErrorf(ctxCombine, err)
	}
	if fn == nil {
		return nil, gridErrorf(ctxCombine, ErrNilFunc)
	}
	if err := ValidateSameShape(g, other); err != nil {
		return nil, gridErrorf(ctxCombine, err)
	}

	out := newWithPolicy(g.xsize, g.ysize, g.finiteOnly, g.parallel)
	kernel := func(lo, hi int) error {
		var v float64
		for idx := lo; idx < hi; idx++ {
			v = fn(g.data[idx], other.data[idx])
			if g.finiteOnly && !isFinite(v) {
				i, j := g.CoordsOf(idx)
				return cellErrorf(ctxCombine, i, j, ErrNaNInf)
			}
			out.data[idx] = v
		}
		return nil
	}
	if err := g.run(kernel); err != nil {
		return nil, err
	}

	return out, nil
}

// Update replaces every cell with fn(cell) in place, reusing the same buffer.
//
// Errors: ErrNilGrid, ErrNilFunc; ErrNaNInf under the finite-only policy. On ErrNaNInf the
// offending cell keeps its old value, but other cells may already be updated.
// Complexity: O(size) time, O(1) extra memory.
func (g *Grid) Update(fn UpdateFunc) error {
	if err := ValidateNotNil(g); err != nil {
		return gridErrorf(ctxUpdate, err)
	}
	if fn == nil {
		return gridErrorf(ctxUpdate, ErrNilFunc)
	}

	return g.run(func(lo, hi int) error {
		var v float64
		for idx := lo; idx < hi; idx++ {
			v = fn(g.data[idx])
			if g.finiteOnly && !isFinite(v) {
				i, j := g.CoordsOf(idx)
				return cellErrorf(ctxUpdate, i, j, ErrNaNInf)
			}
			g.data[idx] = v
		}
		return nil
	})
}

// run executes kernel over [0,size). Under the parallel policy each row j
// (cells [j*xsize, (j+1)*xsize)) is a separate task.
func (g *Grid) run(kernel func(lo, hi int) error) error {
	if !g.parallel || g.ysize == 1 {
		return kernel(0, g.size)
	}

	errs := make([]error, g.ysize) // one slot per row; disjoint writes
	parallel.For(g.ysize, func(j, _ int) {
		lo := j * g.xsize
		errs[j] = kernel(lo, lo+g.xsize)
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// AllClose checks |a-b| ≤ atol + rtol*|b| for every cell of equally shaped grids.
// Negative tolerances are normalized to their absolute values.
// Errors: ErrNilGrid, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
// Complexity: O(size) time, O(1) memory.
func AllClose(a, b *Grid, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, gridErrorf(ctxAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, gridErrorf(ctxAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, gridErrorf(ctxAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, gridErrorf(ctxAllClose, err)
	}

	for idx := 0; idx < a.size; idx++ {
		if math.Abs(a.data[idx]-b.data[idx]) > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
