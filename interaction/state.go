package interaction

import (
	"image"
	"time"
)

// Mode names the active InteractionState variant.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeAutoZooming
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeAutoZooming:
		return "auto-zooming"
	}
	return "unknown"
}

// State is the controller's current state. Exactly one variant is active, so
// dragging while auto-zooming cannot be represented.
type State interface {
	Mode() Mode
}

type Idle struct{}

// Dragging remembers where the gesture began and the last cursor position
// a pan was applied for.
type Dragging struct {
	Anchor       image.Point
	AnchorCenter complex128
	last         image.Point
}

// Direction of an auto-zoom.
type Direction int

const (
	ZoomIn  Direction = 1
	ZoomOut Direction = -1
)

func (d Direction) String() string {
	if d == ZoomOut {
		return "out"
	}
	return "in"
}

// AutoZooming scales the viewport by Rate every second until cancelled.
type AutoZooming struct {
	Direction Direction
	Rate      float64
	StartedAt time.Time
}

func (Idle) Mode() Mode        { return ModeIdle }
func (Dragging) Mode() Mode    { return ModeDragging }
func (AutoZooming) Mode() Mode { return ModeAutoZooming }
