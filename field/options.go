// SPDX-License-Identifier: MIT

package field

import (
	"github.com/katalvlaran/noisefield/gradient"
	"github.com/katalvlaran/noisefield/grid"
)

// DefaultParallel keeps materialization on the calling goroutine.
const DefaultParallel = false

// Option configures Materialize and NewNoise.
type Option func(*Options)

// Options stores the resolved configuration.
type Options struct {
	seed        int64             // passed to gradient.WithSeed by NewNoise
	parallel    bool              // DefaultParallel
	samplerOpts []gradient.Option // appended after the seed, so they win
	gridOpts    []grid.Option     // applied to the materialized grid
}

// WithSeed selects the lattice seed used by NewNoise. Ignored by Materialize.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithParallel samples rows concurrently through go-parallel.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSamplerOptions forwards options to the gradient.Sampler built by NewNoise.
func WithSamplerOptions(opts ...gradient.Option) Option {
	return func(o *Options) { o.samplerOpts = append(o.samplerOpts, opts...) }
}

// WithGridOptions forwards options to the materialized grid.Grid.
func WithGridOptions(opts ...grid.Option) Option {
	return func(o *Options) { o.gridOpts = append(o.gridOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{parallel: DefaultParallel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
