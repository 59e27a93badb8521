// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All public operations return these sentinels (optionally wrapped with a
// method tag via %w); tests MUST match them with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a coordinate or linear index is outside valid bounds.
	// Public indexers (At/Set/AtIndex/SetIndex) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates that two grids do not share xsize and ysize.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNilGrid indicates that a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNilMatrix indicates that a nil gonum matrix was passed to FromMatrix.
	ErrNilMatrix = errors.New("grid: nil matrix")

	// ErrNilFunc indicates that a nil CombineFunc or UpdateFunc was passed.
	ErrNilFunc = errors.New("grid: nil function")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
)

// gridErrorf wraps a sentinel with a method tag for diagnostics.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps a sentinel with a method tag and the offending coordinates.
func cellErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, i, j, err)
}
