// SPDX-License-Identifier: MIT

package gradient_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/noisefield/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSampler(t *testing.T, xsize, ysize int, opts ...gradient.Option) *gradient.Sampler {
	t.Helper()
	s, err := gradient.New(xsize, ysize, opts...)
	require.NoError(t, err)

	return s
}

func mustSample(t *testing.T, s *gradient.Sampler, x, y float64) float64 {
	t.Helper()
	v, err := s.Sample(x, y)
	require.NoError(t, err, "Sample(%g,%g)", x, y)

	return v
}

func TestNewInvalidDimensions(t *testing.T) {
	_, err := gradient.New(0, 4)
	require.ErrorIs(t, err, gradient.ErrInvalidDimensions)
	_, err = gradient.New(4, 0)
	require.ErrorIs(t, err, gradient.ErrInvalidDimensions)
	_, err = gradient.New(math.MaxInt/2, 2)
	require.ErrorIs(t, err, gradient.ErrInvalidDimensions)
}

// TestSampleOutOfDomain covers both bounds on both axes and NaN.
func TestSampleOutOfDomain(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 5}, {8, 2}} {
		s := mustSampler(t, dims[0], dims[1], gradient.WithSeed(5))
		xs, ys := s.Bounds()
		require.Equal(t, float64(dims[0]), xs)
		require.Equal(t, float64(dims[1]), ys)

		bad := [][2]float64{
			{xs, 0},
			{-0.1, 0},
			{0, ys},
			{0, -1e-12},
			{math.NaN(), 0},
			{0, math.NaN()},
			{math.Inf(1), 0},
		}
		for _, p := range bad {
			_, err := s.Sample(p[0], p[1])
			require.ErrorIs(t, err, gradient.ErrOutOfDomain, "dims %v point %v", dims, p)
		}

		// Just inside the upper bounds stays valid.
		_, err := s.Sample(math.Nextafter(xs, 0), math.Nextafter(ys, 0))
		require.NoError(t, err)
	}
}

// TestSampleZeroAtCorners: every interior lattice corner has zero offset to itself.
func TestSampleZeroAtCorners(t *testing.T) {
	for _, fade := range []gradient.Fade{gradient.FadeLinear, gradient.FadeSmoothstep, gradient.FadeQuintic} {
		s := mustSampler(t, 4, 3, gradient.WithSeed(17), gradient.WithFade(fade))
		for ix := 0; ix < 4; ix++ {
			for iy := 0; iy < 3; iy++ {
				require.InDelta(t, 0, mustSample(t, s, float64(ix), float64(iy)), 1e-12, "%s (%d,%d)", fade, ix, iy)
			}
		}
	}
}

// TestSampleBounded: every corner term is at most the offset length √2, and
// interpolation is convex, so |v| ≤ scale·√2.
func TestSampleBounded(t *testing.T) {
	s := mustSampler(t, 8, 8, gradient.WithSeed(3))
	limit := gradient.DefaultOutputScale * math.Sqrt2
	rng := rand.New(rand.NewSource(1))
	for k := 0; k < 5000; k++ {
		v := mustSample(t, s, rng.Float64()*8, rng.Float64()*8)
		require.LessOrEqual(t, math.Abs(v), limit)
	}
}

// TestSampleContinuousAcrossCellEdges samples just below and above integer
// boundaries and expects the gap to shrink with the offset.
func TestSampleContinuousAcrossCellEdges(t *testing.T) {
	s := mustSampler(t, 6, 6, gradient.WithSeed(11))
	offsets := []float64{1e-1, 1e-2, 1e-3, 1e-4, 1e-6}

	for _, edge := range []float64{1, 2, 3, 5} {
		for _, other := range []float64{0.3, 2.71, 4.5} {
			gapsX := make([]float64, len(offsets))
			gapsY := make([]float64, len(offsets))
			for k, eps := range offsets {
				gapsX[k] = math.Abs(mustSample(t, s, edge-eps, other) - mustSample(t, s, edge+eps, other))
				gapsY[k] = math.Abs(mustSample(t, s, other, edge-eps) - mustSample(t, s, other, edge+eps))
			}
			last := len(offsets) - 1
			assert.Less(t, gapsX[last], 1e-4, "x edge %g at y=%g: %v", edge, other, gapsX)
			assert.Less(t, gapsY[last], 1e-4, "y edge %g at x=%g: %v", edge, other, gapsY)
			assert.LessOrEqual(t, gapsX[last], gapsX[0]+1e-12)
			assert.LessOrEqual(t, gapsY[last], gapsY[0]+1e-12)
		}
	}
}

// TestSampleDeterministic: equal seeds reproduce samples; different seeds differ.
func TestSampleDeterministic(t *testing.T) {
	a := mustSampler(t, 16, 16, gradient.WithSeed(12345))
	b := mustSampler(t, 16, 16, gradient.WithSeed(12345))
	c := mustSampler(t, 16, 16, gradient.WithSeed(54321))
	r := mustSampler(t, 16, 16, gradient.WithRand(rand.New(rand.NewSource(12345))))

	different := false
	for k := 0; k < 200; k++ {
		x, y := float64(k)*0.073, float64(k)*0.061
		va := mustSample(t, a, x, y)
		require.Equal(t, va, mustSample(t, b, x, y))
		require.Equal(t, va, mustSample(t, r, x, y), "WithRand with the same seed must match WithSeed")
		if va != mustSample(t, c, x, y) {
			different = true
		}
	}
	require.True(t, different, "different seeds should produce different noise")
}

// TestSeedZeroUsesDefault: seed 0 is an alias of the fixed default stream.
func TestSeedZeroUsesDefault(t *testing.T) {
	a := mustSampler(t, 4, 4)
	b := mustSampler(t, 4, 4, gradient.WithSeed(0))
	require.Equal(t, mustSample(t, a, 1.5, 2.25), mustSample(t, b, 1.5, 2.25))
}

// TestOutputScale checks the multiplier is applied linearly.
func TestOutputScale(t *testing.T) {
	def := mustSampler(t, 5, 5, gradient.WithSeed(8))
	unit := mustSampler(t, 5, 5, gradient.WithSeed(8), gradient.WithOutputScale(1))
	require.Equal(t, gradient.DefaultOutputScale, def.OutputScale())

	for _, p := range [][2]float64{{0.5, 0.5}, {1.25, 3.8}, {4.9, 0.1}} {
		require.InDelta(t, mustSample(t, unit, p[0], p[1])*gradient.DefaultOutputScale, mustSample(t, def, p[0], p[1]), 1e-12)
	}
}

func TestOptionGuardsPanic(t *testing.T) {
	require.Panics(t, func() { gradient.WithOutputScale(0) })
	require.Panics(t, func() { gradient.WithOutputScale(-1) })
	require.Panics(t, func() { gradient.WithOutputScale(math.NaN()) })
	require.Panics(t, func() { gradient.WithOutputScale(math.Inf(1)) })
	require.Panics(t, func() { gradient.WithFade(gradient.Fade(42)) })
}

func TestFadeCurves(t *testing.T) {
	for _, f := range []gradient.Fade{gradient.FadeLinear, gradient.FadeSmoothstep, gradient.FadeQuintic} {
		assert.Equal(t, 0.0, f.Apply(0), f.String())
		assert.Equal(t, 1.0, f.Apply(1), f.String())
		assert.InDelta(t, 0.5, f.Apply(0.5), 1e-15, f.String())
	}
	assert.InDelta(t, 0.25, gradient.FadeLinear.Apply(0.25), 1e-15)
	assert.InDelta(t, 0.15625, gradient.FadeSmoothstep.Apply(0.25), 1e-15)
	assert.InDelta(t, 0.103515625, gradient.FadeQuintic.Apply(0.25), 1e-15)
	assert.Equal(t, "Fade(42)", gradient.Fade(42).String())
}

// TestSampleConcurrentReaders exercises Sample from several goroutines (run with -race).
func TestSampleConcurrentReaders(t *testing.T) {
	s := mustSampler(t, 32, 32, gradient.WithSeed(21))
	want := make([]float64, 64)
	for k := range want {
		want[k] = mustSample(t, s, float64(k)*0.49, float64(k)*0.31)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range want {
				v, err := s.Sample(float64(k)*0.49, float64(k)*0.31)
				if err != nil {
					errs <- err
					return
				}
				if v != want[k] {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
