// Package gradient samples single-layer 2-D gradient noise over a bounded domain.
//
// What:
//
//   - Lattice stores one random unit vector per integer corner of a
//     (xsize+1)×(ysize+1) lattice, in two parallel buffers.
//   - Sampler answers Sample(x,y) for 0 ≤ x < xsize, 0 ≤ y < ysize by taking
//     the dot product of each enclosing corner's gradient with the offset to
//     (x,y), interpolating the four values bilinearly and multiplying by an
//     output scale (DefaultOutputScale = 2.2).
//
// Interpolation weights are the raw fractional offsets by default
// (FadeLinear). The field is continuous across cell edges but its slope is
// not; WithFade(FadeSmoothstep) or WithFade(FadeQuintic) give the classic
// smooth Perlin look. The value is exactly zero at every lattice corner.
//
// Determinism:
//
//   - No global RNG. WithSeed / WithRand select the random stream; equal seeds
//     build equal lattices and therefore equal samples.
//
// Concurrency:
//
//   - Lattice and Sampler are immutable after construction; Sample is safe to
//     call from any number of goroutines.
//
// Complexity:
//
//   - New / NewLattice: O((xsize+1)*(ysize+1)) time and memory.
//   - Sample: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: xsize or ysize ≤ 0.
//   - ErrOutOfDomain: query point outside [0,xsize)×[0,ysize).
//   - ErrOutOfRange: lattice corner outside [0,xsize]×[0,ysize].
//   - ErrDegenerateGradient: a random draw had zero length.
package gradient
