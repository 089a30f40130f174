package mandel

import (
	"math"
	"testing"
)

func TestPixelRoundTrip(t *testing.T) {
	views := []Viewport{
		DefaultViewport(),
		{Center: complex(-0.743643887037151, 0.131825904205330), Scale: 1e-9},
		{Center: complex(0.25, -0.5), Scale: 3.5},
	}
	sizes := [][2]int{{800, 600}, {641, 479}, {1, 1}, {3, 200}}
	for _, v := range views {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			for _, p := range [][2]int{{0, 0}, {w - 1, h - 1}, {w / 2, h / 3}} {
				c := v.PixelToComplex(float64(p[0]), float64(p[1]), w, h)
				x, y := v.ComplexToPixel(c, w, h)
				if math.Abs(x-float64(p[0])) >= 1 || math.Abs(y-float64(p[1])) >= 1 {
					t.Fatalf("%v %dx%d: pixel %v round-tripped to (%f,%f)", v, w, h, p, x, y)
				}
			}
		}
	}
}

func TestPixelToComplexCorners(t *testing.T) {
	v := Viewport{Center: 0, Scale: 2}
	if got := v.PixelToComplex(0, 0, 800, 400); got != complex(-2, 1) {
		t.Fatalf("top-left = %v, want (-2+1i)", got)
	}
	if got := v.PixelToComplex(400, 200, 800, 400); got != 0 {
		t.Fatalf("middle = %v, want 0", got)
	}
	r := v.Region(800, 400)
	if r.Xmin != -2 || r.Xmax != 2 || r.Ymin != -1 || r.Ymax != 1 {
		t.Fatalf("unexpected region %+v", r)
	}
}

func TestPixelToComplexPanicsOnZeroSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero width")
		}
	}()
	DefaultViewport().PixelToComplex(0, 0, 0, 10)
}

func TestZoomByOneIsNoop(t *testing.T) {
	pivots := []complex128{0, complex(1e6, -3), complex(-0.75, 0.1), DefaultCenter}
	for _, p := range pivots {
		v := Viewport{Center: complex(-0.7436, 0.1318), Scale: 0.0123}
		before := v
		v.Zoom(1, &p)
		if v != before {
			t.Fatalf("zoom(1, %v) changed viewport: %v -> %v", p, before, v)
		}
	}
}

func TestZoomInverseRestoresScale(t *testing.T) {
	for _, k := range []float64{0.01, 0.1, 0.5, 0.999, 1.5, 7, 42, 99.9} {
		v := Viewport{Center: complex(-1.25, 0.02), Scale: 1e-6}
		c := v.Center
		v.Zoom(k, &c)
		c = v.Center
		v.Zoom(1/k, &c)
		if math.Abs(v.Scale-1e-6)/1e-6 > 1e-12 {
			t.Fatalf("k=%g: scale %g, want 1e-6", k, v.Scale)
		}
	}
}

func TestZoomKeepsPivotStationary(t *testing.T) {
	v := DefaultViewport()
	const w, h = 640, 480
	pivot := v.PixelToComplex(100, 50, w, h)
	v.Zoom(0.25, &pivot)
	x, y := v.ComplexToPixel(pivot, w, h)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Fatalf("pivot moved to (%f,%f)", x, y)
	}
	if v.Scale != 0.5 {
		t.Fatalf("scale = %g, want 0.5", v.Scale)
	}
}

func TestZoomClamps(t *testing.T) {
	v := DefaultViewport()
	if v.Zoom(10, nil) {
		t.Fatal("zoom past MaxScale should report clamping")
	}
	if v.Scale != MaxScale {
		t.Fatalf("scale = %g, want %g", v.Scale, MaxScale)
	}
	v.Scale = 1e-13
	if v.Zoom(1e-3, nil) {
		t.Fatal("zoom past MinScale should report clamping")
	}
	if v.Scale != MinScale {
		t.Fatalf("scale = %g, want %g", v.Scale, MinScale)
	}
	before := v
	if v.Zoom(0, nil) || v != before {
		t.Fatal("non-positive factor must be ignored")
	}
}

func TestPanFollowsCursor(t *testing.T) {
	v := Viewport{Center: 0, Scale: 2}
	v.Pan(10, 0, 800, 600)
	if math.Abs(real(v.Center)+0.05) > 1e-15 || imag(v.Center) != 0 {
		t.Fatalf("center = %v, want (-0.05+0i)", v.Center)
	}
	v.Pan(0, 20, 800, 600)
	if math.Abs(imag(v.Center)-0.1) > 1e-15 {
		t.Fatalf("center = %v, want imag 0.1", v.Center)
	}
}

func TestRegionViewportCoversRegion(t *testing.T) {
	for _, l := range Landmarks {
		v := l.Region.Viewport(9.0 / 16.0)
		r := v.Region(1920, 1080)
		if r.Xmin > l.Region.Xmin+1e-12 || r.Xmax < l.Region.Xmax-1e-12 ||
			r.Ymin > l.Region.Ymin+1e-12 || r.Ymax < l.Region.Ymax-1e-12 {
			t.Fatalf("%s: viewport region %+v does not cover %+v", l.Name, r, l.Region)
		}
	}
	if _, ok := LandmarkByName("Dragon"); !ok {
		t.Fatal("expected case-insensitive landmark lookup")
	}
}
