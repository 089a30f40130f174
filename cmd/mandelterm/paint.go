package main

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// cellStyle colours one cell: the upper half takes pixel (x, 2y), the lower
// half pixel (x, 2y+1).
func cellStyle(img *image.RGBA, x, y int) tcell.Style {
	top := img.RGBAAt(x, 2*y)
	bottom := img.RGBAAt(x, 2*y+1)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

// paint copies a frame of cols×(rows*2) pixels onto the screen.
func paint(s tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy()/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			s.SetContent(x, y, halfBlock, nil, cellStyle(img, x, y))
		}
	}
}

var hudStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(0xb0, 0xb0, 0xb0)).
	Background(tcell.ColorBlack)

// text writes lines from the top-left cell, clipped to the screen width.
func text(s tcell.Screen, lines []string) {
	cols, rows := s.Size()
	for y, line := range lines {
		if y >= rows {
			return
		}
		x := 0
		for _, r := range line {
			if x >= cols {
				break
			}
			s.SetContent(x, y, r, nil, hudStyle)
			x++
		}
	}
}
