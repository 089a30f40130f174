package main

import (
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/marben/mandelview/interaction"
)

// input turns tcell events into viewer events. Terminals report neither
// double clicks nor button releases as such, so both are reconstructed here.
type input struct {
	clicks  interaction.ClickTracker
	pressed tcell.ButtonMask
}

func newInput(cfg interaction.Config) *input {
	return &input{clicks: interaction.ClickTracker{Interval: cfg.DoubleClickInterval}}
}

// cellToPixel maps a terminal cell to the top pixel of its half-block pair.
func cellToPixel(x, y int) image.Point {
	return image.Pt(x, y*2)
}

func mods(m tcell.ModMask) interaction.Modifiers {
	var out interaction.Modifiers
	if m&tcell.ModShift != 0 {
		out |= interaction.ModShift
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		out |= interaction.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= interaction.ModCtrl
	}
	return out
}

func (in *input) key(ev *tcell.EventKey) []interaction.Event {
	var k interaction.Key
	var r rune
	switch ev.Key() {
	case tcell.KeyPgUp:
		k = interaction.KeyPageUp
	case tcell.KeyPgDn:
		k = interaction.KeyPageDown
	case tcell.KeyEscape:
		k = interaction.KeyEscape
	case tcell.KeyUp:
		k = interaction.KeyArrowUp
	case tcell.KeyDown:
		k = interaction.KeyArrowDown
	case tcell.KeyLeft:
		k = interaction.KeyArrowLeft
	case tcell.KeyRight:
		k = interaction.KeyArrowRight
	case tcell.KeyCtrlC:
		k, r = interaction.KeyRune, 'q'
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			k = interaction.KeySpace
		} else {
			k, r = interaction.KeyRune, ev.Rune()
		}
	default:
		return nil
	}
	m := mods(ev.Modifiers())
	// no key-up events in a terminal, so every press is also its release
	return []interaction.Event{
		interaction.KeyDown{Key: k, Rune: r, Mods: m},
		interaction.KeyUp{Key: k, Rune: r, Mods: m},
	}
}

func (in *input) mouse(ev *tcell.EventMouse, now time.Time) []interaction.Event {
	x, y := ev.Position()
	pos := cellToPixel(x, y)
	btn := ev.Buttons()

	var out []interaction.Event
	switch {
	case btn&tcell.WheelUp != 0:
		return []interaction.Event{interaction.Wheel{Delta: 1, Pos: pos}}
	case btn&tcell.WheelDown != 0:
		return []interaction.Event{interaction.Wheel{Delta: -1, Pos: pos}}
	}

	held := btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	for _, b := range []struct {
		mask   tcell.ButtonMask
		button interaction.Button
	}{
		{tcell.Button1, interaction.ButtonLeft},
		{tcell.Button3, interaction.ButtonMiddle},
		{tcell.Button2, interaction.ButtonRight},
	} {
		was, is := in.pressed&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, in.clicks.Press(pos, b.button, now))
		case was && !is:
			out = append(out, interaction.MouseUp{Pos: pos, Button: b.button})
		}
	}
	in.pressed = held
	if len(out) == 0 {
		out = append(out, interaction.MouseMove{Pos: pos})
	}
	return out
}

// translate returns the viewer events for one tcell event.
func (in *input) translate(ev tcell.Event) []interaction.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		return in.mouse(ev, ev.When())
	}
	return nil
}
