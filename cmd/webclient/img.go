//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
)

// canvas wraps the page's drawing surface.
type canvas struct {
	elem js.Value
	ctx  js.Value
}

func newCanvas(id string) canvas {
	elem := js.Global().Get("document").Call("getElementById", id)
	return canvas{elem: elem, ctx: elem.Call("getContext", "2d")}
}

// size returns the canvas's on-screen size, resizing its backing store to match.
func (c canvas) size() (int, int) {
	w := c.elem.Get("clientWidth").Int()
	h := c.elem.Get("clientHeight").Int()
	if c.elem.Get("width").Int() != w || c.elem.Get("height").Int() != h {
		c.elem.Set("width", w)
		c.elem.Set("height", h)
	}
	return w, h
}

// displayImage copies img onto the canvas at the origin.
func (c canvas) displayImage(img *image.RGBA) {
	// Uint8ClampedArray of width * height * 4 (RGBA)
	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	imageData := js.Global().Get("ImageData").New(jsData, img.Rect.Dx(), img.Rect.Dy())
	c.ctx.Call("putImageData", imageData, 0, 0)
}
