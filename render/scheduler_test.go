package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	mandel "github.com/marben/mandelview"
)

// tileFunc adapts a function to mandel.TileRenderer.
type tileFunc func(r mandel.Region, tile image.Rectangle, imgW, imgH int) (image.RGBA, error)

func (f tileFunc) RenderTile(r mandel.Region, tile image.Rectangle, imgW, imgH int) (image.RGBA, error) {
	return f(r, tile, imgW, imgH)
}

// reference renders the whole image as one tile.
func reference(t *testing.T, r *Renderer, region mandel.Region, w, h int) []byte {
	t.Helper()
	img, err := r.RenderTile(region, image.Rect(0, 0, w, h), w, h)
	if err != nil {
		t.Fatalf("RenderTile: %v", err)
	}
	return img.Pix
}

func waitWorkers(t *testing.T, s *Scheduler, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.Workers() != n {
		if time.Now().After(deadline) {
			t.Fatalf("workers %d, want %d", s.Workers(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSchedulerWithoutWorkers(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	s := NewScheduler(r)
	img, err := s.GetImage(mandel.SeahorseValley, 150, 100)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 150, 100) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if !bytes.Equal(img.Pix, reference(t, r, mandel.SeahorseValley, 150, 100)) {
		t.Fatal("tiled image differs from a single-tile render")
	}
}

func TestSchedulerSharesTilesWithWorkers(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	s := NewScheduler(r)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rendered := make(chan image.Rectangle, 256)
	worker := tileFunc(func(reg mandel.Region, tile image.Rectangle, w, h int) (image.RGBA, error) {
		rendered <- tile
		return r.RenderTile(reg, tile, w, h)
	})
	served := make(chan error, 2)
	for range 2 {
		go func() { served <- s.Serve(ctx, worker) }()
	}
	waitWorkers(t, s, 2)

	v := mandel.Viewport{Center: complex(-0.75, 0.1), Scale: 0.05}
	dst := image.NewRGBA(image.Rect(0, 0, 320, 200))
	stats := s.RenderInto(dst, v)
	if stats.Workers != 3 || stats.MaxIter != r.MaxIterations(v.Scale) {
		t.Fatalf("stats %+v", stats)
	}
	if !bytes.Equal(dst.Pix, reference(t, r, v.Region(320, 200), 320, 200)) {
		t.Fatal("frame rendered with workers differs from a single-tile render")
	}

	cancel()
	for range 2 {
		if err := <-served; !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve: %v", err)
		}
	}
	waitWorkers(t, s, 0)
	for len(rendered) > 0 {
		tile := <-rendered
		if tile.Dx() > TileSize || tile.Dy() > TileSize {
			t.Fatalf("worker got oversized tile %v", tile)
		}
	}
}

func TestSchedulerRequeuesFailedTiles(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	errBroken := errors.New("worker broke")
	tests := []struct {
		name   string
		worker tileFunc
	}{
		{"error", func(mandel.Region, image.Rectangle, int, int) (image.RGBA, error) {
			return image.RGBA{}, errBroken
		}},
		{"wrong bounds", func(reg mandel.Region, tile image.Rectangle, w, h int) (image.RGBA, error) {
			return r.RenderTile(reg, tile.Add(image.Pt(1, 0)), w+1, h)
		}},
	}
	for _, tt := range tests {
		s := NewScheduler(r)
		ctx, cancel := context.WithCancel(context.Background())
		served := make(chan error, 1)
		go func() { served <- s.Serve(ctx, tt.worker) }()
		waitWorkers(t, s, 1)

		img, err := s.GetImage(mandel.ElephantValley, 200, 130)
		if err != nil {
			t.Fatalf("%s: GetImage: %v", tt.name, err)
		}
		if !bytes.Equal(img.Pix, reference(t, r, mandel.ElephantValley, 200, 130)) {
			t.Fatalf("%s: image differs after a failing worker", tt.name)
		}

		// the worker either failed on a tile or never got one before cancel
		cancel()
		err = <-served
		if err == nil {
			t.Fatalf("%s: Serve returned nil", tt.name)
		}
		if tt.name == "error" && !errors.Is(err, errBroken) && !errors.Is(err, context.Canceled) {
			t.Fatalf("%s: Serve returned %v", tt.name, err)
		}
		waitWorkers(t, s, 0)
	}
}

func TestSchedulerRendersAroundStragglers(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	s := NewScheduler(r)
	s.straggler = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stuck := make(chan struct{})
	defer close(stuck)
	go s.Serve(ctx, tileFunc(func(mandel.Region, image.Rectangle, int, int) (image.RGBA, error) {
		<-stuck
		return image.RGBA{}, errors.New("gave up")
	}))
	waitWorkers(t, s, 1)

	done := make(chan image.RGBA)
	go func() {
		img, _ := s.GetImage(mandel.TripleSpiral, 256, 256)
		done <- img
	}()
	select {
	case img := <-done:
		if !bytes.Equal(img.Pix, reference(t, r, mandel.TripleSpiral, 256, 256)) {
			t.Fatal("image differs with a stuck worker")
		}
	case <-time.After(30 * time.Second):
		t.Fatal("image never finished with a stuck worker")
	}
}

func TestSchedulerRejectsBadImages(t *testing.T) {
	s := NewScheduler(NewRenderer(DefaultOptions()))
	bad := []struct {
		r    mandel.Region
		w, h int
	}{
		{mandel.SeahorseValley, 0, 10},
		{mandel.SeahorseValley, 10, -1},
		{mandel.SeahorseValley, mandel.MaxFrameSide + 1, 10},
		{mandel.SeahorseValley, 10, 1 << 40},
		{mandel.Region{Xmin: 1, Xmax: 0, Ymin: 0, Ymax: 1}, 10, 10},
	}
	for _, tt := range bad {
		if _, err := s.GetImage(tt.r, tt.w, tt.h); err == nil {
			t.Fatalf("GetImage(%+v, %d, %d): expected error", tt.r, tt.w, tt.h)
		}
	}
}
