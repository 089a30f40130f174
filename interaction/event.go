package interaction

import (
	"fmt"
	"image"
)

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key identifies a decoded key. Printable keys use KeyRune with the rune set.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeySpace
	KeyEscape
	KeyPageUp
	KeyPageDown
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyShift
	KeyAlt
	KeyCtrl
)

var keyNames = map[Key]string{
	KeyUnknown:    "Unknown",
	KeyRune:       "Rune",
	KeySpace:      "Space",
	KeyEscape:     "Escape",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyShift:      "Shift",
	KeyAlt:        "Alt",
	KeyCtrl:       "Ctrl",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey is the inverse of Key.String.
func ParseKey(s string) (Key, bool) {
	for k, name := range keyNames {
		if name == s {
			return k, true
		}
	}
	return KeyUnknown, false
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Event is a decoded input event. The set of variants is closed.
type Event interface {
	isEvent()
}

type MouseDown struct {
	Pos    image.Point
	Button Button
}

type MouseUp struct {
	Pos    image.Point
	Button Button
}

type MouseMove struct {
	Pos image.Point
}

type MouseDoubleClick struct {
	Pos image.Point
}

// Wheel carries scroll steps (positive zooms in) and the cursor position.
type Wheel struct {
	Delta float64
	Pos   image.Point
}

type KeyDown struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

type KeyUp struct {
	Key  Key
	Rune rune
	Mods Modifiers
}

// Resize reports the current target buffer size.
type Resize struct {
	Width, Height int
}

func (MouseDown) isEvent()        {}
func (MouseUp) isEvent()          {}
func (MouseMove) isEvent()        {}
func (MouseDoubleClick) isEvent() {}
func (Wheel) isEvent()            {}
func (KeyDown) isEvent()          {}
func (KeyUp) isEvent()            {}
func (Resize) isEvent()           {}
