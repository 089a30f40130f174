// Package remote runs viewer sessions and tile workers over irpc. The server
// side serves mandel.Viewer and mandel.ImgProvider; every connected client
// serves mandel.TileRenderer back, so the server can render on it.
package remote

import (
	"fmt"
	"image"
	"math"
	"unicode/utf8"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/interaction"
)

// mandel.Input kinds
const (
	KindMouseDown   = "mousedown"
	KindMouseUp     = "mouseup"
	KindMouseMove   = "mousemove"
	KindDoubleClick = "dblclick"
	KindWheel       = "wheel"
	KindKeyDown     = "keydown"
	KindKeyUp       = "keyup"
	KindResize      = "resize"
)

const allMods = interaction.ModShift | interaction.ModAlt | interaction.ModCtrl

func inputKey(in mandel.Input) (interaction.Key, rune, interaction.Modifiers, error) {
	k, ok := interaction.ParseKey(in.Key)
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown key %q", in.Key)
	}
	var r rune
	if k == interaction.KeyRune {
		var size int
		r, size = utf8.DecodeRuneInString(in.Rune)
		if size == 0 || size != len(in.Rune) || r == utf8.RuneError {
			return 0, 0, 0, fmt.Errorf("key %q without a single rune", in.Key)
		}
	}
	mods := interaction.Modifiers(in.Mods)
	if mods&^allMods != 0 {
		return 0, 0, 0, fmt.Errorf("unknown modifiers %#x", in.Mods)
	}
	return k, r, mods, nil
}

func inputButton(in mandel.Input) (interaction.Button, error) {
	b := interaction.Button(in.Button)
	if b < interaction.ButtonLeft || b > interaction.ButtonRight {
		return 0, fmt.Errorf("unknown button %d", in.Button)
	}
	return b, nil
}

// EventOf decodes a wire input into an event. Resizes beyond
// mandel.MaxFrameSide are rejected.
func EventOf(in mandel.Input) (interaction.Event, error) {
	pos := image.Pt(in.X, in.Y)
	switch in.Kind {
	case KindMouseDown, KindMouseUp:
		b, err := inputButton(in)
		if err != nil {
			return nil, err
		}
		if in.Kind == KindMouseDown {
			return interaction.MouseDown{Pos: pos, Button: b}, nil
		}
		return interaction.MouseUp{Pos: pos, Button: b}, nil
	case KindMouseMove:
		return interaction.MouseMove{Pos: pos}, nil
	case KindDoubleClick:
		return interaction.MouseDoubleClick{Pos: pos}, nil
	case KindWheel:
		if math.IsNaN(in.Delta) || math.IsInf(in.Delta, 0) {
			return nil, fmt.Errorf("wheel delta %v", in.Delta)
		}
		return interaction.Wheel{Delta: in.Delta, Pos: pos}, nil
	case KindKeyDown, KindKeyUp:
		k, r, mods, err := inputKey(in)
		if err != nil {
			return nil, err
		}
		if in.Kind == KindKeyDown {
			return interaction.KeyDown{Key: k, Rune: r, Mods: mods}, nil
		}
		return interaction.KeyUp{Key: k, Rune: r, Mods: mods}, nil
	case KindResize:
		if err := mandel.CheckFrameSize(in.Width, in.Height); err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
		return interaction.Resize{Width: in.Width, Height: in.Height}, nil
	}
	return nil, fmt.Errorf("unknown input kind %q", in.Kind)
}

func keyInput(kind string, k interaction.Key, r rune, mods interaction.Modifiers) mandel.Input {
	in := mandel.Input{Kind: kind, Key: k.String(), Mods: uint8(mods)}
	if k == interaction.KeyRune {
		in.Rune = string(r)
	}
	return in
}

// InputOf encodes an event for the wire.
func InputOf(ev interaction.Event) mandel.Input {
	switch ev := ev.(type) {
	case interaction.MouseDown:
		return mandel.Input{Kind: KindMouseDown, X: ev.Pos.X, Y: ev.Pos.Y, Button: int(ev.Button)}
	case interaction.MouseUp:
		return mandel.Input{Kind: KindMouseUp, X: ev.Pos.X, Y: ev.Pos.Y, Button: int(ev.Button)}
	case interaction.MouseMove:
		return mandel.Input{Kind: KindMouseMove, X: ev.Pos.X, Y: ev.Pos.Y}
	case interaction.MouseDoubleClick:
		return mandel.Input{Kind: KindDoubleClick, X: ev.Pos.X, Y: ev.Pos.Y}
	case interaction.Wheel:
		return mandel.Input{Kind: KindWheel, X: ev.Pos.X, Y: ev.Pos.Y, Delta: ev.Delta}
	case interaction.KeyDown:
		return keyInput(KindKeyDown, ev.Key, ev.Rune, ev.Mods)
	case interaction.KeyUp:
		return keyInput(KindKeyUp, ev.Key, ev.Rune, ev.Mods)
	case interaction.Resize:
		return mandel.Input{Kind: KindResize, Width: ev.Width, Height: ev.Height}
	}
	panic(fmt.Sprintf("remote: unhandled event %T", ev))
}

// BrowserKey maps a DOM KeyboardEvent.key value to a decoded key.
func BrowserKey(name string) (interaction.Key, rune) {
	switch name {
	case " ", "Spacebar":
		return interaction.KeySpace, 0
	case "Escape", "Esc":
		return interaction.KeyEscape, 0
	case "PageUp":
		return interaction.KeyPageUp, 0
	case "PageDown":
		return interaction.KeyPageDown, 0
	case "ArrowUp":
		return interaction.KeyArrowUp, 0
	case "ArrowDown":
		return interaction.KeyArrowDown, 0
	case "ArrowLeft":
		return interaction.KeyArrowLeft, 0
	case "ArrowRight":
		return interaction.KeyArrowRight, 0
	case "Shift":
		return interaction.KeyShift, 0
	case "Alt":
		return interaction.KeyAlt, 0
	case "Control":
		return interaction.KeyCtrl, 0
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) && r != utf8.RuneError {
		return interaction.KeyRune, r
	}
	return interaction.KeyUnknown, 0
}
