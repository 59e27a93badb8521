// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Grid construction.
//
// Design goals:
//   - Deterministic behavior: no global state, options only toggle policy.
//   - No dead switches: each flag changes observable behavior and is tested.
//   - Options are resolved once in gatherOptions and copied into the Grid;
//     results of Clone and Combine inherit the receiver's policy.
package grid

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultFiniteOnly toggles rejection of NaN/±Inf on every write path.
	// Off by default: a grid is a general scalar container.
	DefaultFiniteOnly = false

	// DefaultParallel runs Combine/Update row-by-row across goroutines when true.
	DefaultParallel = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	finiteOnly bool // DefaultFiniteOnly
	parallel   bool // DefaultParallel
}

// WithFiniteOnly enables the finite-value numeric policy: Set, SetIndex,
// Fill, Update and Combine fail with ErrNaNInf instead of storing NaN/±Inf.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithParallel makes Combine and Update split work by rows across
// goroutines. Every row is written by exactly one goroutine, so results
// are bitwise identical to the sequential path.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		finiteOnly: DefaultFiniteOnly,
		parallel:   DefaultParallel,
	}
}

// gatherOptions applies opts over defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
