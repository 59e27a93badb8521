// SPDX-License-Identifier: MIT

package field

import "github.com/katalvlaran/noisefield/gradient"

// Source is a scalar field that can be sampled at continuous coordinates.
type Source interface {
	Sample(x, y float64) (float64, error)
}

// Bounded is implemented by sources whose domain is [0,x)×[0,y).
type Bounded interface {
	Bounds() (x, y float64)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(x, y float64) (float64, error)

// Sample calls f(x, y).
func (f SourceFunc) Sample(x, y float64) (float64, error) {
	return f(x, y)
}

// Compile-time assertions.
var (
	_ Source  = (*gradient.Sampler)(nil)
	_ Bounded = (*gradient.Sampler)(nil)
	_ Source  = SourceFunc(nil)
)
