package render

import "image"

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}

// rowBands splits r into full-width bands so that each of workers gets a few
// bands to balance uneven escape times (the set's interior is the slow part).
func rowBands(r image.Rectangle, workers int) []image.Rectangle {
	if workers < 1 {
		workers = 1
	}
	bandH := r.Dy() / (workers * 4)
	if bandH < 1 {
		bandH = 1
	}
	return splitRectNoClip(r, r.Dx(), bandH)
}
