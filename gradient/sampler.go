// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"
	"math"
)

const (
	ctxNew    = "New"
	ctxSample = "Sample"
)

// Sampler evaluates gradient noise over [0,xsize)×[0,ysize).
// It owns its Lattice and holds no per-query state.
type Sampler struct {
	xsize, ysize int
	xmax, ymax   float64 // float copies of the bounds for the hot-path check
	lattice      *Lattice
	outputScale  float64
	fade         Fade
}

// New builds a Sampler and its lattice for an xsize×ysize domain.
//
// Errors: ErrInvalidDimensions, ErrDegenerateGradient.
// Complexity: O((xsize+1)*(ysize+1)).
func New(xsize, ysize int, opts ...Option) (*Sampler, error) {
	if xsize <= 0 || ysize <= 0 {
		return nil, gradientErrorf(ctxNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(o.seed)
	}

	lattice, err := NewLattice(xsize, ysize, rng)
	if err != nil {
		return nil, gradientErrorf(ctxNew, err)
	}

	return &Sampler{
		xsize:       xsize,
		ysize:       ysize,
		xmax:        float64(xsize),
		ymax:        float64(ysize),
		lattice:     lattice,
		outputScale: o.outputScale,
		fade:        o.fade,
	}, nil
}

// Bounds returns the exclusive upper bounds (xsize, ysize) of the domain.
func (s *Sampler) Bounds() (x, y float64) { return s.xmax, s.ymax }

// Lattice exposes the (immutable) gradient lattice.
func (s *Sampler) Lattice() *Lattice { return s.lattice }

// OutputScale returns the multiplier applied to every sample.
func (s *Sampler) OutputScale() float64 { return s.outputScale }

// Sample returns the noise value at (x,y).
//
// Stage 1 (Validate): 0 ≤ x < xsize and 0 ≤ y < ysize, else ErrOutOfDomain (NaN fails too).
// Stage 2 (Locate): enclosing cell corners (ix0,iy0)..(ix0+1,iy0+1) and offsets sx, sy.
// Stage 3 (Interpolate): four corner dot products, blended along x then y.
// Stage 4 (Finalize): multiply by the output scale.
// Complexity: O(1).
func (s *Sampler) Sample(x, y float64) (float64, error) {
	if !(x >= 0 && x < s.xmax) || !(y >= 0 && y < s.ymax) {
		return 0, fmt.Errorf("%s(%g,%g) outside [0,%d)x[0,%d): %w",
			ctxSample, x, y, s.xsize, s.ysize, ErrOutOfDomain)
	}

	fx, fy := math.Floor(x), math.Floor(y)
	ix0, iy0 := int(fx), int(fy)
	ix1, iy1 := ix0+1, iy0+1

	wx := s.fade.Apply(x - fx)
	wy := s.fade.Apply(y - fy)

	n00 := s.dotGridGradient(ix0, iy0, x, y)
	n10 := s.dotGridGradient(ix1, iy0, x, y)
	g0 := lerp(n00, n10, wx)

	n01 := s.dotGridGradient(ix0, iy1, x, y)
	n11 := s.dotGridGradient(ix1, iy1, x, y)
	g1 := lerp(n01, n11, wx)

	return lerp(g0, g1, wy) * s.outputScale, nil
}

// dotGridGradient is the dot product of corner (ix,iy)'s gradient with the
// offset from that corner to (x,y).
func (s *Sampler) dotGridGradient(ix, iy int, x, y float64) float64 {
	gx, gy := s.lattice.at(ix, iy)
	return (x-float64(ix))*gx + (y-float64(iy))*gy
}
