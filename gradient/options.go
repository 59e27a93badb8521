// SPDX-License-Identifier: MIT

// Package gradient: functional configuration for Sampler.
//
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that resolves defaults.
package gradient

import (
	"math"
	"math/rand"
)

// DefaultOutputScale stretches the narrow interpolated range toward [-1,1].
// Empirically chosen for terrain rendering; see WithOutputScale.
const DefaultOutputScale = 2.2

// DefaultFade keeps raw bilinear weights.
const DefaultFade = FadeLinear

const (
	panicOutputScaleInvalid = "gradient: WithOutputScale: scale must be finite and > 0"
	panicFadeInvalid        = "gradient: WithFade: unknown fade curve"
)

// Option mutates Sampler options.
type Option func(*Options)

// Options stores the effective Sampler configuration.
type Options struct {
	seed        int64      // 0 ⇒ defaultRNGSeed
	rng         *rand.Rand // overrides seed when non-nil
	outputScale float64    // DefaultOutputScale
	fade        Fade       // DefaultFade
}

// WithSeed selects the lattice random stream. Seed 0 maps to a fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand injects a random source for the lattice; it takes precedence over WithSeed.
// The source is consumed during construction only.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithOutputScale replaces DefaultOutputScale. Panics unless scale is finite and > 0.
func WithOutputScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicOutputScaleInvalid)
	}
	return func(o *Options) { o.outputScale = scale }
}

// WithFade selects the interpolation curve. Panics on an unknown Fade.
func WithFade(f Fade) Option {
	if !f.valid() {
		panic(panicFadeInvalid)
	}
	return func(o *Options) { o.fade = f }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		outputScale: DefaultOutputScale,
		fade:        DefaultFade,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
