// SPDX-License-Identifier: MIT

// Package grid - dense storage (row-major in j) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit index formula i + xsize*j.
//   - Guarantee safety at the public surface: At/Set/AtIndex/SetIndex return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - New: O(xsize*ysize) zero-init; At/Set/AtIndex/SetIndex: O(1); Clone/Fill/Values: O(size).
package grid

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAtIndex  = "AtIndex"
	ctxSetIndex = "SetIndex"
	ctxFill     = "Fill"
	ctxNew      = "New"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a dense xsize×ysize scalar field.
//   - xsize, ysize hold dimensions; size == xsize*ysize.
//   - data is a flat buffer of length size; cell (i,j) lives at i + xsize*j.
//   - finiteOnly and parallel carry the policy resolved from Options.
type Grid struct {
	xsize, ysize int       // dimensions (> 0)
	size         int       // xsize*ysize, cached
	data         []float64 // contiguous storage (len == size)
	finiteOnly   bool      // reject NaN/Inf on writes when true
	parallel     bool      // row-parallel Combine/Update when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid)(nil)

// New creates an xsize×ysize grid with every cell set to zero.
// Stage 1 (Validate): xsize > 0, ysize > 0 and xsize*ysize fits in an int,
// else ErrInvalidDimensions.
// Stage 2 (Prepare): resolve options.
// Stage 3 (Finalize): allocate the zero-filled buffer.
// Complexity: O(xsize*ysize) time and memory.
func New(xsize, ysize int, opts ...Option) (*Grid, error) {
	if xsize <= 0 || ysize <= 0 || xsize > math.MaxInt/ysize {
		return nil, gridErrorf(ctxNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newWithPolicy(xsize, ysize, o.finiteOnly, o.parallel), nil
}

// newWithPolicy allocates a grid with explicit policy flags.
// Callers must have validated the dimensions.
func newWithPolicy(xsize, ysize int, finiteOnly, parallel bool) *Grid {
	size := xsize * ysize

	return &Grid{
		xsize:      xsize,
		ysize:      ysize,
		size:       size,
		data:       make([]float64, size), // make() zero-fills deterministically
		finiteOnly: finiteOnly,
		parallel:   parallel,
	}
}

// XSize returns the number of cells along i.
func (g *Grid) XSize() int { return g.xsize }

// YSize returns the number of cells along j.
func (g *Grid) YSize() int { return g.ysize }

// Size returns xsize*ysize, the number of cells.
func (g *Grid) Size() int { return g.size }

// Shape returns (xsize, ysize).
func (g *Grid) Shape() (xsize, ysize int) { return g.xsize, g.ysize }

// IdxOf maps (i,j) to the linear index i + xsize*j.
// No bounds check: pure index arithmetic for callers that already hold valid coordinates.
// Complexity: O(1).
func (g *Grid) IdxOf(i, j int) int {
	return i + g.xsize*j
}

// CoordsOf maps a linear index back to (i,j) = (idx mod xsize, idx / xsize).
// For every idx in [0,size) it is the exact inverse of IdxOf.
// Complexity: O(1).
func (g *Grid) CoordsOf(idx int) (i, j int) {
	return idx % g.xsize, idx / g.xsize
}

// InBounds reports whether (i,j) addresses a cell.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.xsize && j >= 0 && j < g.ysize
}

// indexOf validates (i,j) and returns the flat offset.
func (g *Grid) indexOf(method string, i, j int) (int, error) {
	if !g.InBounds(i, j) {
		return 0, cellErrorf(method, i, j, ErrOutOfRange)
	}

	return g.IdxOf(i, j), nil
}

// At returns the value at (i,j), or ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) At(i, j int) (float64, error) {
	idx, err := g.indexOf(ctxAt, i, j)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set stores v at (i,j).
// Errors: ErrOutOfRange; ErrNaNInf when the finite-only policy rejects v.
// Complexity: O(1).
func (g *Grid) Set(i, j int, v float64) error {
	idx, err := g.indexOf(ctxSet, i, j)
	if err != nil {
		return err
	}
	if g.finiteOnly && !isFinite(v) {
		return cellErrorf(ctxSet, i, j, ErrNaNInf)
	}
	g.data[idx] = v

	return nil
}

// AtIndex reads the buffer directly by linear index, bypassing coordinate
// conversion. Intended for hot loops that already iterate 0..Size()-1.
// Complexity: O(1).
func (g *Grid) AtIndex(idx int) (float64, error) {
	if idx < 0 || idx >= g.size {
		return 0, fmt.Errorf("Grid.%s(%d): %w", ctxAtIndex, idx, ErrOutOfRange)
	}

	return g.data[idx], nil
}

// SetIndex writes the buffer directly by linear index.
// Complexity: O(1).
func (g *Grid) SetIndex(idx int, v float64) error {
	if idx < 0 || idx >= g.size {
		return fmt.Errorf("Grid.%s(%d): %w", ctxSetIndex, idx, ErrOutOfRange)
	}
	if g.finiteOnly && !isFinite(v) {
		return fmt.Errorf("Grid.%s(%d): %w", ctxSetIndex, idx, ErrNaNInf)
	}
	g.data[idx] = v

	return nil
}

// Fill sets every cell to v.
// Complexity: O(size).
func (g *Grid) Fill(v float64) error {
	if g.finiteOnly && !isFinite(v) {
		return gridErrorf(ctxFill, ErrNaNInf)
	}
	for idx := range g.data {
		g.data[idx] = v
	}

	return nil
}

// Clone returns a deep copy carrying the same policy.
// Complexity: O(size) time and memory.
func (g *Grid) Clone() *Grid {
	out := newWithPolicy(g.xsize, g.ysize, g.finiteOnly, g.parallel)
	copy(out.data, g.data)

	return out
}

// Values returns a copy of the backing buffer in linear-index order.
// Encoders and renderers read dimensions plus this slice; mutating it
// does not affect the grid.
func (g *Grid) Values() []float64 {
	out := make([]float64, g.size)
	copy(out, g.data)

	return out
}

// Do visits every cell in linear-index order and stops early when f returns false.
func (g *Grid) Do(f func(i, j int, v float64) bool) {
	var idx, i, j int
	for idx = 0; idx < g.size; idx++ {
		i, j = g.CoordsOf(idx)
		if !f(i, j, g.data[idx]) {
			return
		}
	}
}

// MinMax returns the smallest and largest stored values.
// NaN cells are skipped; a grid holding only NaN reports (NaN, NaN).
func (g *Grid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	seen := false
	for _, v := range g.data {
		if math.IsNaN(v) {
			continue
		}
		seen = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !seen {
		return math.NaN(), math.NaN()
	}

	return lo, hi
}

// String renders one bracketed line per j, cells ordered by i.
// Complexity: O(size).
func (g *Grid) String() string {
	var sb strings.Builder
	var i, j int
	for j = 0; j < g.ysize; j++ {
		sb.WriteString(_fmtRowOpen)
		for i = 0; i < g.xsize; i++ {
			sb.WriteString(fmt.Sprintf("%g", g.data[g.IdxOf(i, j)]))
			if i < g.xsize-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
