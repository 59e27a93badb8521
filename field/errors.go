// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource indicates a nil Source was passed to Materialize.
	ErrNilSource = errors.New("field: nil source")

	// ErrInvalidScale indicates a NaN, infinite or negative sample spacing.
	ErrInvalidScale = errors.New("field: scale must be finite and >= 0")
)

// fieldErrorf wraps an error with an operation tag.
func fieldErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
