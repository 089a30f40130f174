package main

import (
	"image"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/marben/mandelview/interaction"
)

func TestMouseTranslation(t *testing.T) {
	in := newInput(interaction.DefaultConfig())
	now := time.Unix(100, 0)
	in.now = func() time.Time { return now }

	tests := []struct {
		ev   mouse.Event
		want interaction.Event
	}{
		{mouse.Event{X: 10, Y: 20, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, interaction.MouseDown{Pos: image.Pt(10, 20), Button: interaction.ButtonLeft}},
		{mouse.Event{X: 12.7, Y: 21, Direction: mouse.DirNone}, interaction.MouseMove{Pos: image.Pt(12, 21)}},
		{mouse.Event{X: 12, Y: 21, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}, interaction.MouseUp{Pos: image.Pt(12, 21), Button: interaction.ButtonLeft}},
		{mouse.Event{X: 12, Y: 21, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, interaction.MouseDoubleClick{Pos: image.Pt(12, 21)}},
		{mouse.Event{X: 1, Y: 2, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep}, interaction.Wheel{Delta: 1, Pos: image.Pt(1, 2)}},
		{mouse.Event{X: 1, Y: 2, Button: mouse.ButtonWheelDown, Direction: mouse.DirStep}, interaction.Wheel{Delta: -1, Pos: image.Pt(1, 2)}},
		{mouse.Event{X: 1, Y: 2, Button: mouse.ButtonRight, Direction: mouse.DirPress}, interaction.MouseDown{Pos: image.Pt(1, 2), Button: interaction.ButtonRight}},
	}
	for i, tt := range tests {
		got := in.mouse(tt.ev)
		if len(got) != 1 || got[0] != tt.want {
			t.Fatalf("event %d: got %#v, want %#v", i, got, tt.want)
		}
	}
}

func TestKeyTranslation(t *testing.T) {
	in := newInput(interaction.DefaultConfig())
	tests := []struct {
		ev   key.Event
		want interaction.Event
	}{
		{key.Event{Code: key.CodePageUp, Rune: -1, Modifiers: key.ModAlt, Direction: key.DirPress}, interaction.KeyDown{Key: interaction.KeyPageUp, Mods: interaction.ModAlt}},
		{key.Event{Code: key.CodeLeftShift, Rune: -1, Direction: key.DirPress}, interaction.KeyDown{Key: interaction.KeyShift}},
		{key.Event{Code: key.CodeLeftShift, Rune: -1, Direction: key.DirRelease}, interaction.KeyUp{Key: interaction.KeyShift}},
		{key.Event{Code: key.CodeSpacebar, Rune: ' ', Direction: key.DirPress}, interaction.KeyDown{Key: interaction.KeySpace}},
		{key.Event{Code: key.CodeQ, Rune: 'q', Direction: key.DirPress}, interaction.KeyDown{Key: interaction.KeyRune, Rune: 'q'}},
		{key.Event{Code: key.CodeRightArrow, Rune: -1, Direction: key.DirNone}, interaction.KeyDown{Key: interaction.KeyArrowRight}},
	}
	for i, tt := range tests {
		got := in.key(tt.ev)
		if len(got) != 1 || got[0] != tt.want {
			t.Fatalf("event %d: got %#v, want %#v", i, got, tt.want)
		}
	}

	if got := in.key(key.Event{Code: key.CodeF5, Rune: -1, Direction: key.DirPress}); got != nil {
		t.Fatalf("F5 translated to %#v", got)
	}
}
