// SPDX-License-Identifier: MIT

package field

import "github.com/aquilax/go-perlin"

// perlinIterations is fixed at one: a single noise layer, no octave sum.
const perlinIterations int32 = 1

// Perlin is an unbounded Source backed by classic Perlin noise.
type Perlin struct {
	p *perlin.Perlin
}

var _ Source = (*Perlin)(nil)

// NewPerlin returns single-layer Perlin noise. alpha and beta are forwarded
// to go-perlin; with one iteration only the seed influences the output.
func NewPerlin(alpha, beta float64, seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(alpha, beta, perlinIterations, seed)}
}

// Sample never fails.
func (p *Perlin) Sample(x, y float64) (float64, error) {
	return p.p.Noise2D(x, y), nil
}
