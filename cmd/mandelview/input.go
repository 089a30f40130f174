package main

import (
	"image"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/marben/mandelview/interaction"
)

// input turns shiny window events into viewer events.
type input struct {
	clicks interaction.ClickTracker
	now    func() time.Time
}

func newInput(cfg interaction.Config) *input {
	return &input{clicks: interaction.ClickTracker{Interval: cfg.DoubleClickInterval}, now: time.Now}
}

var buttons = map[mouse.Button]interaction.Button{
	mouse.ButtonLeft:   interaction.ButtonLeft,
	mouse.ButtonMiddle: interaction.ButtonMiddle,
	mouse.ButtonRight:  interaction.ButtonRight,
}

func (in *input) mouse(e mouse.Event) []interaction.Event {
	pos := image.Pt(int(e.X), int(e.Y))
	switch e.Button {
	case mouse.ButtonWheelUp:
		return []interaction.Event{interaction.Wheel{Delta: 1, Pos: pos}}
	case mouse.ButtonWheelDown:
		return []interaction.Event{interaction.Wheel{Delta: -1, Pos: pos}}
	}
	b, known := buttons[e.Button]
	switch {
	case e.Direction == mouse.DirPress && known:
		return []interaction.Event{in.clicks.Press(pos, b, in.now())}
	case e.Direction == mouse.DirRelease && known:
		return []interaction.Event{interaction.MouseUp{Pos: pos, Button: b}}
	case e.Direction == mouse.DirNone:
		return []interaction.Event{interaction.MouseMove{Pos: pos}}
	}
	return nil
}

var codes = map[key.Code]interaction.Key{
	key.CodePageUp:       interaction.KeyPageUp,
	key.CodePageDown:     interaction.KeyPageDown,
	key.CodeEscape:       interaction.KeyEscape,
	key.CodeSpacebar:     interaction.KeySpace,
	key.CodeUpArrow:      interaction.KeyArrowUp,
	key.CodeDownArrow:    interaction.KeyArrowDown,
	key.CodeLeftArrow:    interaction.KeyArrowLeft,
	key.CodeRightArrow:   interaction.KeyArrowRight,
	key.CodeLeftShift:    interaction.KeyShift,
	key.CodeRightShift:   interaction.KeyShift,
	key.CodeLeftAlt:      interaction.KeyAlt,
	key.CodeRightAlt:     interaction.KeyAlt,
	key.CodeLeftControl:  interaction.KeyCtrl,
	key.CodeRightControl: interaction.KeyCtrl,
}

func mods(m key.Modifiers) interaction.Modifiers {
	var out interaction.Modifiers
	if m&key.ModShift != 0 {
		out |= interaction.ModShift
	}
	if m&key.ModAlt != 0 {
		out |= interaction.ModAlt
	}
	if m&key.ModControl != 0 {
		out |= interaction.ModCtrl
	}
	return out
}

// key handles presses and releases; auto-repeat (DirNone) counts as another press.
func (in *input) key(e key.Event) []interaction.Event {
	k, r := codes[e.Code], rune(0)
	if k == interaction.KeyUnknown {
		if e.Rune <= 0 {
			return nil
		}
		k, r = interaction.KeyRune, e.Rune
	}
	m := mods(e.Modifiers)
	if e.Direction == key.DirRelease {
		return []interaction.Event{interaction.KeyUp{Key: k, Rune: r, Mods: m}}
	}
	return []interaction.Event{interaction.KeyDown{Key: k, Rune: r, Mods: m}}
}
