package render

import (
	"math"
)

const bailout = 4.0 // |z|² escape radius

// EscapeResult is the outcome of iterating one point.
// Smoothed is only meaningful when Escaped is true.
type EscapeResult struct {
	Iterations int
	Smoothed   float64
	Escaped    bool
}

// Evaluate iterates z = z² + c from z = 0 until |z|² > 4 or maxIter
// iterations ran. Iterations counts completed iterations before the escaping
// one, so a point whose first iterate already escapes reports 0.
func Evaluate(c complex128, maxIter int) EscapeResult {
	cr, ci := real(c), imag(c)

	// The set lies inside the closed disc of radius 2 and touches its edge only at -2.
	if mag := cr*cr + ci*ci; mag >= bailout && c != -2 {
		return EscapeResult{Iterations: 0, Smoothed: smooth(0, math.Sqrt(mag), maxIter), Escaped: true}
	}

	var zr, zi, zr2, zi2 float64
	for n := 0; n < maxIter; n++ {
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2 = zr * zr
		zi2 = zi * zi
		if zr2+zi2 > bailout {
			return EscapeResult{Iterations: n, Smoothed: smooth(n, math.Sqrt(zr2+zi2), maxIter), Escaped: true}
		}
	}
	return EscapeResult{Iterations: maxIter, Smoothed: float64(maxIter)}
}

// smooth applies the log-log continuous coloring correction, clamped to
// [0, maxIter] so boundary rounding never leaks NaN into the palette.
func smooth(n int, modulus float64, maxIter int) float64 {
	mu := float64(n) + 1 - math.Log2(math.Log2(modulus))
	switch {
	case math.IsNaN(mu), mu < 0:
		return 0
	case mu > float64(maxIter):
		return float64(maxIter)
	}
	return mu
}
