// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	ctxNewLattice = "NewLattice"
	ctxLatticeAt  = "Lattice.At"
)

// Lattice holds one unit gradient per integer corner of [0,xsize]×[0,ysize].
//   - xs, ys are parallel buffers of length (xsize+1)*(ysize+1).
//   - corner (ix,iy) lives at ix*stride + iy with stride = ysize+1.
//
// A Lattice is read-only after NewLattice returns.
type Lattice struct {
	xsize, ysize int
	stride       int
	xs, ys       []float64
}

// NewLattice draws a random unit vector for each of the (xsize+1)*(ysize+1)
// corners. Each draw takes x and y uniformly from [-1,1) and divides by the
// magnitude. A nil rng uses the default deterministic stream.
//
// Errors: ErrInvalidDimensions (also when the corner count overflows an int),
// ErrDegenerateGradient (zero-length draw).
// Complexity: O((xsize+1)*(ysize+1)).
func NewLattice(xsize, ysize int, rng *rand.Rand) (*Lattice, error) {
	if xsize <= 0 || ysize <= 0 || xsize == math.MaxInt || ysize == math.MaxInt ||
		xsize+1 > math.MaxInt/(ysize+1) {
		return nil, gradientErrorf(ctxNewLattice, ErrInvalidDimensions)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	stride := ysize + 1
	n := stride * (xsize + 1)
	l := &Lattice{
		xsize:  xsize,
		ysize:  ysize,
		stride: stride,
		xs:     make([]float64, n),
		ys:     make([]float64, n),
	}

	var x, y, mag float64
	for idx := 0; idx < n; idx++ {
		x = 2 * (rng.Float64() - 0.5)
		y = 2 * (rng.Float64() - 0.5)
		mag = math.Hypot(x, y)
		if mag == 0 {
			return nil, fmt.Errorf("%s: corner %d: %w", ctxNewLattice, idx, ErrDegenerateGradient)
		}
		l.xs[idx] = x / mag
		l.ys[idx] = y / mag
	}

	return l, nil
}

// XSize returns the number of cells along x (corners: XSize()+1).
func (l *Lattice) XSize() int { return l.xsize }

// YSize returns the number of cells along y (corners: YSize()+1).
func (l *Lattice) YSize() int { return l.ysize }

// Stride returns ysize+1, the distance between consecutive ix in the buffers.
func (l *Lattice) Stride() int { return l.stride }

// Len returns the number of corners.
func (l *Lattice) Len() int { return len(l.xs) }

// At returns the gradient at corner (ix,iy).
// Errors: ErrOutOfRange outside [0,xsize]×[0,ysize].
func (l *Lattice) At(ix, iy int) (gx, gy float64, err error) {
	if ix < 0 || ix > l.xsize || iy < 0 || iy > l.ysize {
		return 0, 0, fmt.Errorf("%s(%d,%d): %w", ctxLatticeAt, ix, iy, ErrOutOfRange)
	}
	gx, gy = l.at(ix, iy)

	return gx, gy, nil
}

// at is the unchecked accessor used by the sampler, which only visits
// corners of cells inside the domain.
func (l *Lattice) at(ix, iy int) (gx, gy float64) {
	idx := ix*l.stride + iy
	return l.xs[idx], l.ys[idx]
}
