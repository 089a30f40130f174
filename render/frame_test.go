package render

import (
	"bytes"
	"image"
	"sync"
	"testing"

	mandel "github.com/marben/mandelview"
)

func TestRenderMatchesPerPixelPipeline(t *testing.T) {
	r := NewRenderer(Options{Workers: 3, Palette: HSV{Period: 40, Saturation: 1, Value: 1}})
	v := mandel.Viewport{Center: complex(-0.75, 0.1), Scale: 0.05}
	const w, h = 37, 23
	img := r.Render(v, w, h)
	maxIter := r.opts.Iter.MaxIterations(v.Scale)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := r.opts.Palette.Color(Evaluate(v.PixelToComplex(float64(x), float64(y), w, h), maxIter))
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestRenderIndependentOfWorkerCount(t *testing.T) {
	v := mandel.DefaultViewport()
	ref := NewRenderer(Options{Workers: 1}).Render(v, 64, 48)
	for _, n := range []int{2, 5, 16, 200} {
		img := NewRenderer(Options{Workers: n}).Render(v, 64, 48)
		if !bytes.Equal(ref.Pix, img.Pix) {
			t.Fatalf("workers=%d produced a different frame", n)
		}
	}
}

func TestRenderIntoReportsStats(t *testing.T) {
	var mu sync.Mutex
	var covered int
	r := NewRenderer(Options{Workers: 4, OnTileRender: func(tile image.Rectangle) {
		mu.Lock()
		covered += tile.Dx() * tile.Dy()
		mu.Unlock()
	}})
	dst := image.NewRGBA(image.Rect(0, 0, 30, 17))
	stats := r.RenderInto(dst, mandel.DefaultViewport())
	if stats.MaxIter != DefaultIterPolicy().Base {
		t.Fatalf("MaxIter = %d, want %d", stats.MaxIter, DefaultIterPolicy().Base)
	}
	if stats.Workers < 1 || stats.Workers > 4 {
		t.Fatalf("Workers = %d", stats.Workers)
	}
	if covered != 30*17 {
		t.Fatalf("bands covered %d pixels, want %d", covered, 30*17)
	}
}

func TestRenderPanicsOnDegenerateSize(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("size %v: expected panic", sz)
				}
			}()
			r.Render(mandel.DefaultViewport(), sz[0], sz[1])
		}()
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("offset destination: expected panic")
			}
		}()
		r.RenderInto(image.NewRGBA(image.Rect(5, 5, 10, 10)), mandel.DefaultViewport())
	}()
}

func TestRenderTile(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	tile := image.Rect(64, 0, 128, 64)
	img, err := r.RenderTile(mandel.SeahorseValley, tile, 256, 128)
	if err != nil {
		t.Fatalf("RenderTile: %v", err)
	}
	if img.Bounds() != tile {
		t.Fatalf("bounds %v, want %v", img.Bounds(), tile)
	}
	if _, err := r.RenderTile(mandel.SeahorseValley, image.Rect(250, 0, 300, 10), 256, 128); err == nil {
		t.Fatal("expected error for tile outside image")
	}
	if _, err := r.RenderTile(mandel.SeahorseValley, image.Rect(0, 0, 8, 8), mandel.MaxFrameSide+1, 16); err == nil {
		t.Fatal("expected error for oversized image")
	}
	if _, err := r.RenderTile(mandel.Region{Xmin: 1, Xmax: 1, Ymin: 0, Ymax: 1}, tile, 256, 128); err == nil {
		t.Fatal("expected error for degenerate region")
	}
}

func TestSplitRectNoClipCoversRect(t *testing.T) {
	r := image.Rect(0, 0, 100, 37)
	tiles := splitRectNoClip(r, 30, 10)
	area := 0
	for _, tl := range tiles {
		if !tl.In(r) {
			t.Fatalf("tile %v outside %v", tl, r)
		}
		area += tl.Dx() * tl.Dy()
	}
	if area != 100*37 {
		t.Fatalf("tiles cover %d pixels, want %d", area, 100*37)
	}
	if len(tiles) != 16 {
		t.Fatalf("got %d tiles, want 16", len(tiles))
	}
}

func TestMaxIterationsGrowsWithDepth(t *testing.T) {
	p := DefaultIterPolicy()
	prev := 0
	for _, s := range []float64{4, 2, 1, 1e-3, 1e-8, 1e-14} {
		n := p.MaxIterations(s)
		if n < prev {
			t.Fatalf("scale %g: %d iterations, fewer than %d", s, n, prev)
		}
		prev = n
	}
	if got := p.MaxIterations(mandel.DefaultScale); got != p.Base {
		t.Fatalf("default scale: %d, want %d", got, p.Base)
	}
	if got := p.MaxIterations(1e-300); got != p.Cap {
		t.Fatalf("deep scale: %d, want cap %d", got, p.Cap)
	}
}

func TestRenderSupersampledSize(t *testing.T) {
	r := NewRenderer(Options{Workers: 2})
	img, _ := r.RenderSupersampled(mandel.DefaultViewport(), 20, 10, 3)
	if img.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Fatalf("bounds %v", img.Bounds())
	}
}
