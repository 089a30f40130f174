package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	mandel "github.com/marben/mandelview"
)

// RenderSupersampled renders v at factor times the requested size and scales
// the result down, smoothing the filaments for still exports.
func (r *Renderer) RenderSupersampled(v mandel.Viewport, width, height, factor int) (*image.RGBA, mandel.FrameStats) {
	if factor <= 1 {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		return img, r.RenderInto(img, v)
	}
	big := image.NewRGBA(image.Rect(0, 0, width*factor, height*factor))
	stats := r.RenderInto(big, v)
	return Downsample(big, width, height), stats
}

// Downsample scales src to width×height with a Catmull-Rom filter.
func Downsample(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
