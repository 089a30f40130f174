package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Background is the color of points classified as inside the set.
var Background = color.RGBA{A: 255}

// Palette maps an escape result to a color. Implementations are stateless,
// deterministic and continuous in Smoothed.
type Palette interface {
	Color(r EscapeResult) color.RGBA
}

// Gradient cycles through Stops, spending Period smoothed iterations between
// neighbouring stops and interpolating linearly. The last stop blends back
// into the first so the cycle has no seam.
type Gradient struct {
	Stops  []color.RGBA
	Period float64
}

// ClassicStops is the navy/green/yellow/cyan/blue table of the first viewer.
var ClassicStops = []color.RGBA{
	{0x00, 0x00, 0x80, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0x00, 0x00, 0xff, 0xff},
}

func (g Gradient) Color(r EscapeResult) color.RGBA {
	if !r.Escaped || len(g.Stops) == 0 {
		return Background
	}
	if len(g.Stops) == 1 {
		return g.Stops[0]
	}
	period := g.Period
	if period <= 0 {
		period = 1
	}
	pos := math.Mod(r.Smoothed/period, float64(len(g.Stops)))
	i := int(pos)
	f := pos - float64(i)
	a := g.Stops[i%len(g.Stops)]
	b := g.Stops[(i+1)%len(g.Stops)]
	return color.RGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
		A: 255,
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// HSV cycles the hue once every Period smoothed iterations.
type HSV struct {
	Period     float64
	Saturation float64
	Value      float64
}

func (p HSV) Color(r EscapeResult) color.RGBA {
	if !r.Escaped {
		return Background
	}
	period := p.Period
	if period <= 0 {
		period = 1
	}
	return hsv(r.Smoothed/period, p.Saturation, p.Value)
}

// Simple HSV → RGB. Colors at neighbouring sextants meet so the hue wheel is continuous.
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{to8(r), to8(g), to8(b), 255}
}

func to8(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * 255))
}

var palettes = map[string]func() Palette{
	"classic": func() Palette { return Gradient{Stops: ClassicStops, Period: 32} },
	"hsv":     func() Palette { return HSV{Period: 64, Saturation: 0.85, Value: 1} },
	"fire": func() Palette {
		return Gradient{Period: 24, Stops: []color.RGBA{
			{0x10, 0x00, 0x00, 0xff},
			{0xb0, 0x20, 0x00, 0xff},
			{0xff, 0xa0, 0x00, 0xff},
			{0xff, 0xff, 0xc0, 0xff},
		}}
	},
	"gray": func() Palette {
		return Gradient{Period: 48, Stops: []color.RGBA{
			{0x18, 0x18, 0x18, 0xff},
			{0xf0, 0xf0, 0xf0, 0xff},
		}}
	},
}

// PaletteNames lists the names accepted by PaletteByName.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PaletteByName returns a built-in palette.
func PaletteByName(name string) (Palette, error) {
	mk, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (have %v)", name, PaletteNames())
	}
	return mk(), nil
}
