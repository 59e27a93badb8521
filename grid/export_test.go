// SPDX-License-Identifier: MIT

package grid

// White-box bridge for grid_test: exposes the backing buffer's identity
// without widening the production API.

// DataPtr returns the address of the first backing cell.
func DataPtr(g *Grid) *float64 { return &g.data[0] }
