package render

import (
	"math"

	mandel "github.com/marben/mandelview"
)

// IterPolicy picks the iteration cap from the zoom depth: Base at the default
// view plus PerOctave for every halving of the scale, capped at Cap.
type IterPolicy struct {
	Base      int
	PerOctave int
	Cap       int
}

func DefaultIterPolicy() IterPolicy {
	return IterPolicy{Base: 256, PerOctave: 48, Cap: 4096}
}

// MaxIterations returns the cap for a view of the given half-width.
func (p IterPolicy) MaxIterations(scale float64) int {
	n := p.Base
	if scale > 0 && scale < mandel.DefaultScale {
		n += int(float64(p.PerOctave) * math.Log2(mandel.DefaultScale/scale))
	}
	if p.Cap > 0 && n > p.Cap {
		n = p.Cap
	}
	if n < 1 {
		n = 1
	}
	return n
}
