// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/katalvlaran/noisefield/gradient"
	"github.com/katalvlaran/noisefield/grid"
)

const (
	ctxMaterialize = "Materialize"
	ctxNewNoise    = "NewNoise"
	ctxAverage     = "Average"
)

// Materialize evaluates src at (i*scale, j*scale) for every cell (i,j) of a
// new xsize×ysize grid.
//
// Stage 1 (Validate): non-nil src; finite, non-negative scale; positive dimensions.
// Stage 2 (Bounds): if src is Bounded, the farthest point ((xsize-1)*scale, (ysize-1)*scale)
// must lie inside its domain, else gradient.ErrOutOfDomain.
// Stage 3 (Execute): sample every cell, row by row (rows in parallel under WithParallel).
// Stage 4 (Finalize): return the grid, or nil and the first error by row order.
//
// Complexity: O(xsize*ysize) samples.
func Materialize(src Source, xsize, ysize int, scale float64, opts ...Option) (*grid.Grid, error) {
	if src == nil {
		return nil, fieldErrorf(ctxMaterialize, ErrNilSource)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		return nil, fmt.Errorf("%s: scale %g: %w", ctxMaterialize, scale, ErrInvalidScale)
	}
	o := gatherOptions(opts...)

	g, err := grid.New(xsize, ysize, o.gridOpts...)
	if err != nil {
		return nil, fieldErrorf(ctxMaterialize, err)
	}

	if b, ok := src.(Bounded); ok {
		xb, yb := b.Bounds()
		fx, fy := float64(xsize-1)*scale, float64(ysize-1)*scale
		if !(fx < xb) || !(fy < yb) {
			return nil, fmt.Errorf("%s: scale %g reaches (%g,%g) outside [0,%g)x[0,%g): %w",
				ctxMaterialize, scale, fx, fy, xb, yb, gradient.ErrOutOfDomain)
		}
	}

	fillRow := func(j int) error {
		y := float64(j) * scale
		var v float64
		var err error
		for i := 0; i < xsize; i++ {
			if v, err = src.Sample(float64(i)*scale, y); err != nil {
				return fmt.Errorf("%s: cell (%d,%d): %w", ctxMaterialize, i, j, err)
			}
			if err = g.SetIndex(g.IdxOf(i, j), v); err != nil {
				return fmt.Errorf("%s: cell (%d,%d): %w", ctxMaterialize, i, j, err)
			}
		}
		return nil
	}

	if !o.parallel {
		for j := 0; j < ysize; j++ {
			if err = fillRow(j); err != nil {
				return nil, err
			}
		}
		return g, nil
	}

	errs := make([]error, ysize) // disjoint per-row slots
	parallel.For(ysize, func(j, _ int) {
		errs[j] = fillRow(j)
	})
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	return g, nil
}

// NewNoise builds a gradient.Sampler over [0,xsize)×[0,ysize) and
// materializes it at the given spacing. The sampler domain equals the grid
// size, so (xsize-1)*scale must stay below xsize and likewise for y; any
// scale ≤ 1 satisfies this.
//
// The seed comes from WithSeed; WithSamplerOptions may override it.
func NewNoise(xsize, ysize int, scale float64, opts ...Option) (*grid.Grid, error) {
	o := gatherOptions(opts...)

	samplerOpts := make([]gradient.Option, 0, len(o.samplerOpts)+1)
	samplerOpts = append(samplerOpts, gradient.WithSeed(o.seed))
	samplerOpts = append(samplerOpts, o.samplerOpts...)

	s, err := gradient.New(xsize, ysize, samplerOpts...)
	if err != nil {
		return nil, fieldErrorf(ctxNewNoise, err)
	}

	g, err := Materialize(s, xsize, ysize, scale, opts...)
	if err != nil {
		return nil, fieldErrorf(ctxNewNoise, err)
	}

	return g, nil
}

// Average returns the cellwise mean of two equally shaped layers.
// Errors: grid.ErrNilGrid, grid.ErrDimensionMismatch.
func Average(a, b *grid.Grid) (*grid.Grid, error) {
	out, err := a.Combine(func(x, y float64) float64 { return (x + y) / 2 }, b)
	if err != nil {
		return nil, fieldErrorf(ctxAverage, err)
	}

	return out, nil
}
