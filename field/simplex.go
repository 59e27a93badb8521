// SPDX-License-Identifier: MIT

package field

import "github.com/ojrac/opensimplex-go"

// Simplex is an unbounded Source backed by OpenSimplex noise.
// Eval2 only reads precomputed tables, so Sample is safe for concurrent use.
type Simplex struct {
	noise opensimplex.Noise
}

var _ Source = (*Simplex)(nil)

// NewSimplex returns OpenSimplex noise in [-1,1] for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// NewNormalizedSimplex returns OpenSimplex noise rescaled to [0,1).
func NewNormalizedSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.NewNormalized(seed)}
}

// Sample never fails.
func (s *Simplex) Sample(x, y float64) (float64, error) {
	return s.noise.Eval2(x, y), nil
}
