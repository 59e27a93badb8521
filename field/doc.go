// Package field materializes scalar field sources into dense grids.
//
// What:
//
//   - Source is anything answering Sample(x,y). *gradient.Sampler is the
//     built-in implementation; Simplex and Perlin wrap third-party noise
//     generators; SourceFunc adapts a plain function.
//   - Materialize evaluates a Source at (i*scale, j*scale) for every cell of
//     an xsize×ysize grid.Grid. Smaller scale ⇒ smoother, lower-frequency field.
//   - NewNoise builds a seeded gradient.Sampler over the grid's own domain and
//     materializes it in one call.
//   - Average derives a new field from two equally shaped layers.
//
// Guarantees:
//
//   - Materialize never returns a partially filled grid: any sample error
//     aborts and yields (nil, err).
//   - Sources that also implement Bounded are checked up front; a scale that
//     would push the farthest sample point out of the domain fails with
//     gradient.ErrOutOfDomain before any sampling happens.
//   - WithParallel samples rows concurrently; each cell is written exactly
//     once, so output is identical to the sequential path. The Source must
//     be safe for concurrent Sample calls (all sources in this module are).
//
// Complexity:
//
//   - Materialize: O(xsize*ysize) samples, O(xsize*ysize) memory.
//   - NewNoise: plus O((xsize+1)*(ysize+1)) for the lattice.
package field
