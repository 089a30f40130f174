package render

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	mandel "github.com/marben/mandelview"
)

// Options configures a Renderer.
type Options struct {
	Workers int // goroutines per frame, defaults to runtime.NumCPU()
	Palette Palette
	Iter    IterPolicy

	// OnTileRender is called from worker goroutines as each band or tile starts.
	OnTileRender func(tile image.Rectangle)
}

func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Palette: Gradient{Stops: ClassicStops, Period: 32},
		Iter:    DefaultIterPolicy(),
	}
}

// Renderer computes frames. It holds no per-frame state, so one Renderer may
// serve several viewers.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Palette == nil {
		opts.Palette = DefaultOptions().Palette
	}
	if opts.Iter.Base <= 0 {
		opts.Iter = DefaultIterPolicy()
	}
	return &Renderer{opts: opts}
}

var _ mandel.Renderer = (*Renderer)(nil)
var _ mandel.TileRenderer = (*Renderer)(nil)

// Render allocates a width×height frame of v.
func (r *Renderer) Render(v mandel.Viewport, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid frame size %dx%d", width, height))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r.RenderInto(img, v)
	return img
}

// RenderInto fills dst with v. Rows are split into bands and fanned out to
// the worker pool; each band owns a disjoint part of dst.Pix.
func (r *Renderer) RenderInto(dst *image.RGBA, v mandel.Viewport) mandel.FrameStats {
	b := dst.Bounds()
	if b.Min != (image.Point{}) || b.Dx() <= 0 || b.Dy() <= 0 {
		panic(fmt.Sprintf("render: destination bounds %v must be non-empty and start at the origin", b))
	}
	start := time.Now()
	w, h := b.Dx(), b.Dy()
	maxIter := r.opts.Iter.MaxIterations(v.Scale)

	bands := rowBands(b, r.opts.Workers)
	workers := min(r.opts.Workers, len(bands))

	jobs := make(chan image.Rectangle)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for band := range jobs {
				if r.opts.OnTileRender != nil {
					r.opts.OnTileRender(band)
				}
				for py := band.Min.Y; py < band.Max.Y; py++ {
					row := dst.Pix[py*dst.Stride : py*dst.Stride+w*4]
					for px := 0; px < w; px++ {
						c := v.PixelToComplex(float64(px), float64(py), w, h)
						col := r.opts.Palette.Color(Evaluate(c, maxIter))
						row[px*4+0] = col.R
						row[px*4+1] = col.G
						row[px*4+2] = col.B
						row[px*4+3] = col.A
					}
				}
			}
		}()
	}
	for _, band := range bands {
		jobs <- band
	}
	close(jobs)
	wg.Wait()

	return mandel.FrameStats{MaxIter: maxIter, Workers: workers, Elapsed: time.Since(start)}
}

// RenderTile renders the tile part of an imgW×imgH image spanning region.
// The returned image uses the tile's global coordinates.
func (r *Renderer) RenderTile(region mandel.Region, tile image.Rectangle, imgW, imgH int) (image.RGBA, error) {
	if err := mandel.CheckFrameSize(imgW, imgH); err != nil {
		return image.RGBA{}, err
	}
	full := image.Rect(0, 0, imgW, imgH)
	if tile.Empty() || !tile.In(full) {
		return image.RGBA{}, fmt.Errorf("tile %v outside image %v", tile, full)
	}
	if !(region.Xmax > region.Xmin) || !(region.Ymax > region.Ymin) {
		return image.RGBA{}, fmt.Errorf("degenerate region %+v", region)
	}
	if r.opts.OnTileRender != nil {
		r.opts.OnTileRender(tile)
	}

	img := image.NewRGBA(tile)
	maxIter := r.opts.Iter.MaxIterations((region.Xmax - region.Xmin) / 2)
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		yf := region.Ymax - (float64(py)/float64(imgH))*(region.Ymax-region.Ymin)

		for px := tile.Min.X; px < tile.Max.X; px++ {
			xf := region.Xmin + (float64(px)/float64(imgW))*(region.Xmax-region.Xmin)

			img.SetRGBA(px, py, r.opts.Palette.Color(Evaluate(complex(xf, yf), maxIter)))
		}
	}
	return *img, nil
}

// MaxIterations is the iteration cap used for a view of the given half-width.
func (r *Renderer) MaxIterations(scale float64) int {
	return r.opts.Iter.MaxIterations(scale)
}
