package mandel

import (
	"fmt"
	"math"
)

const (
	// MinScale is the deepest useful zoom with float64 coordinates; below it
	// neighbouring pixels collapse onto the same plane value.
	MinScale = 1e-14
	// MaxScale shows the whole set with room to spare.
	MaxScale = 4.0

	DefaultScale = 2.0
)

// DefaultCenter frames the whole set.
const DefaultCenter = complex(-0.5, 0)

// Viewport is the visible rectangle of the complex plane.
// Scale is the half-width in plane units; the half-height follows from the
// target buffer's aspect ratio so pixels stay square.
type Viewport struct {
	Center complex128
	Scale  float64
}

// DefaultViewport returns the canonical whole-set view.
func DefaultViewport() Viewport {
	return Viewport{Center: DefaultCenter, Scale: DefaultScale}
}

func (v Viewport) String() string {
	return fmt.Sprintf("center=(%.17g, %.17g) scale=%.6g", real(v.Center), imag(v.Center), v.Scale)
}

func mustDims(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("mandel: invalid buffer dimensions %dx%d", w, h))
	}
}

// PixelSize returns the plane distance between neighbouring pixels on a
// buffer w pixels wide. It is the same on both axes.
func (v Viewport) PixelSize(w int) float64 {
	return 2 * v.Scale / float64(w)
}

// PixelToComplex maps a pixel position on a w×h buffer to the plane.
// Rows grow downwards while the imaginary axis grows upwards.
func (v Viewport) PixelToComplex(px, py float64, w, h int) complex128 {
	mustDims(w, h)
	unit := v.PixelSize(w)
	halfH := v.Scale * float64(h) / float64(w)
	re := real(v.Center) - v.Scale + px*unit
	im := imag(v.Center) + halfH - py*unit
	return complex(re, im)
}

// ComplexToPixel is the inverse of PixelToComplex.
func (v Viewport) ComplexToPixel(c complex128, w, h int) (float64, float64) {
	mustDims(w, h)
	unit := v.PixelSize(w)
	halfH := v.Scale * float64(h) / float64(w)
	px := (real(c) - (real(v.Center) - v.Scale)) / unit
	py := ((imag(v.Center) + halfH) - imag(c)) / unit
	return px, py
}

// Region returns the plane rectangle covered by a w×h buffer.
func (v Viewport) Region(w, h int) Region {
	mustDims(w, h)
	halfH := v.Scale * float64(h) / float64(w)
	return Region{
		Xmin: real(v.Center) - v.Scale,
		Xmax: real(v.Center) + v.Scale,
		Ymin: imag(v.Center) - halfH,
		Ymax: imag(v.Center) + halfH,
	}
}

// Recenter moves the view so c is in the middle.
func (v *Viewport) Recenter(c complex128) {
	v.Center = c
}

// Pan shifts the view by a cursor movement of (dx, dy) pixels so the content
// under the cursor follows it: dragging right reveals what lies to the left.
func (v *Viewport) Pan(dx, dy float64, w, h int) {
	mustDims(w, h)
	unit := v.PixelSize(w)
	v.Center = complex(real(v.Center)-dx*unit, imag(v.Center)+dy*unit)
}

// Zoom multiplies Scale by factor (<1 zooms in). If pivot is set, the pivot
// keeps its on-screen position. The resulting scale is clamped to
// [MinScale, MaxScale]; Zoom reports false when the clamp cut the change short.
func (v *Viewport) Zoom(factor float64, pivot *complex128) bool {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return false
	}
	want := v.Scale * factor
	scale := clampScale(want)
	effective := scale / v.Scale
	if effective == 1 {
		return want == scale
	}
	if pivot != nil {
		p := *pivot
		v.Center = p + (v.Center-p)*complex(effective, 0)
	}
	v.Scale = scale
	return want == scale
}

// Depth is the zoom magnification relative to the default view.
func (v Viewport) Depth() float64 {
	return DefaultScale / v.Scale
}

func clampScale(s float64) float64 {
	switch {
	case math.IsNaN(s):
		return DefaultScale
	case s < MinScale:
		return MinScale
	case s > MaxScale:
		return MaxScale
	}
	return s
}
