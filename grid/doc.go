// Package grid offers a dense 2-D scalar container over an integer lattice.
//
// 🚀 What is grid?
//
//	A Grid maps integer coordinates (i,j) with 0 ≤ i < xsize and
//	0 ≤ j < ysize to a float64 value. Storage is one contiguous buffer of
//	xsize*ysize cells addressed by idx = i + xsize*j, so a whole row of
//	constant j is adjacent in memory.
//
// ✨ Key features:
//   - O(1) coordinate ↔ index arithmetic (IdxOf / CoordsOf are exact inverses)
//   - bounds-checked accessors (At, Set, AtIndex, SetIndex) returning sentinel errors
//   - whole-grid elementwise primitives: Combine (pure) and Update (in place)
//   - optional finite-only numeric policy and row-parallel kernels
//   - gonum interop (ToMatrix / FromMatrix) sharing the same row-major layout
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/noisefield/grid"
//
//	a, _ := grid.New(3, 5)
//	b, _ := grid.New(3, 5)
//	a.Fill(1)
//	b.Fill(2)
//	sum, err := a.Combine(func(x, y float64) float64 { return x + y }, b)
//
// Errors:
//   - ErrInvalidDimensions: xsize or ysize ≤ 0.
//   - ErrOutOfRange: coordinate or linear index outside the grid.
//   - ErrDimensionMismatch: Combine / AllClose on grids of different shape.
//   - ErrNilGrid: nil receiver or operand.
//   - ErrNaNInf: non-finite value under WithFiniteOnly.
//
// Complexity:
//
//   - New, Clone, Combine, Update, Fill: O(xsize*ysize)
//   - At, Set, AtIndex, SetIndex, IdxOf, CoordsOf: O(1)
package grid
