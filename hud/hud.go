// Package hud draws the viewer's info overlay onto a frame.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/interaction"
)

const (
	margin     = 5
	lineHeight = 13
)

var (
	textColor    = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	outlineColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Lines returns the info text for a frame.
func Lines(v mandel.Viewport, stats mandel.FrameStats, mode interaction.Mode) []string {
	return []string{
		fmt.Sprintf("x: %.17g", real(v.Center)),
		fmt.Sprintf("y: %.17g", imag(v.Center)),
		fmt.Sprintf("scale: %.6g (x%.3g)", v.Scale, v.Depth()),
		fmt.Sprintf("iterations: %d", stats.MaxIter),
		fmt.Sprintf("rendering time: %.4f[sec] on %d workers", stats.Elapsed.Seconds(), stats.Workers),
		fmt.Sprintf("mode: %s", mode),
	}
}

// Draw writes lines into the top-left corner of dst with a dark outline so
// they stay readable over any part of the set.
func Draw(dst draw.Image, lines []string) {
	d := &font.Drawer{Dst: dst, Face: basicfont.Face7x13}
	b := dst.Bounds()
	for i, line := range lines {
		x := b.Min.X + margin
		y := b.Min.Y + margin + (i+1)*lineHeight
		d.Src = image.NewUniform(outlineColor)
		for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {1, 1}} {
			d.Dot = fixed.P(x+off[0], y+off[1])
			d.DrawString(line)
		}
		d.Src = image.NewUniform(textColor)
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
	}
}

// Width returns the pixel width of the widest line.
func Width(lines []string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := 0
	for _, l := range lines {
		w = max(w, d.MeasureString(l).Ceil())
	}
	return w + 2*margin
}
