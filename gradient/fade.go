// SPDX-License-Identifier: MIT

package gradient

import "fmt"

// Fade selects the curve applied to the fractional offsets before interpolation.
type Fade int

const (
	// FadeLinear uses the offsets directly: w(t) = t.
	FadeLinear Fade = iota

	// FadeSmoothstep uses w(t) = 3t² − 2t³ (zero slope at cell edges).
	FadeSmoothstep

	// FadeQuintic uses w(t) = 6t⁵ − 15t⁴ + 10t³ (zero slope and curvature at cell edges).
	FadeQuintic
)

// Apply evaluates the curve at t ∈ [0,1]. Every curve maps 0→0 and 1→1.
func (f Fade) Apply(t float64) float64 {
	switch f {
	case FadeSmoothstep:
		return t * t * (3 - 2*t)
	case FadeQuintic:
		return t * t * t * (t*(t*6-15) + 10)
	default:
		return t
	}
}

// String implements fmt.Stringer.
func (f Fade) String() string {
	switch f {
	case FadeLinear:
		return "linear"
	case FadeSmoothstep:
		return "smoothstep"
	case FadeQuintic:
		return "quintic"
	default:
		return fmt.Sprintf("Fade(%d)", int(f))
	}
}

func (f Fade) valid() bool {
	return f >= FadeLinear && f <= FadeQuintic
}

// lerp interpolates linearly between a0 and a1.
func lerp(a0, a1, w float64) float64 {
	return (1.0-w)*a0 + w*a1
}
