// Package noisefield is the numeric core of a procedural terrain generator:
// seeded gradient noise and the dense 2-D grids that hold it.
//
// 🚀 What is noisefield?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• grid/    : Dense 2-D scalar grid: index arithmetic, bounds-checked
//		              access, Combine / Update elementwise primitives, gonum interop
//		• gradient/: random unit-vector lattice + bilinear gradient-noise sampler
//		• field/   : Source abstraction, materialization of any source into a grid,
//		              OpenSimplex and Perlin adapters, layer averaging
//
// ✨ Why noisefield?
//
//   - Deterministic – explicit seeds everywhere, no global RNG
//   - Safe surface – sentinel errors instead of panics on caller mistakes
//   - Parallel when asked – row-parallel kernels with identical results
//
// Data flow:
//
//	gradient.Lattice → gradient.Sampler → field.Materialize → grid.Grid
//
// Rendering, color mapping and terrain classification are left to callers,
// which only need Grid.Values() and the grid dimensions.
//
//	go get github.com/katalvlaran/noisefield
package noisefield
