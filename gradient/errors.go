// SPDX-License-Identifier: MIT

package gradient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive domain size.
	ErrInvalidDimensions = errors.New("gradient: dimensions must be > 0")

	// ErrOutOfDomain indicates a sample point outside [0,xsize)×[0,ysize).
	// It is a caller bug: validate or clamp coordinates before sampling.
	ErrOutOfDomain = errors.New("gradient: sample point out of domain")

	// ErrOutOfRange indicates a lattice corner outside [0,xsize]×[0,ysize].
	ErrOutOfRange = errors.New("gradient: lattice index out of range")

	// ErrDegenerateGradient indicates a zero-length random direction that cannot be normalized.
	ErrDegenerateGradient = errors.New("gradient: zero-length gradient vector")
)

// gradientErrorf wraps a sentinel with a method tag.
func gradientErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
