package interaction

import (
	"image"
	"time"
)

// doubleClickSlop is how far apart, in pixels, two presses may land and still
// count as a double click.
const doubleClickSlop = 4

// ClickTracker synthesises double clicks for hosts that only report presses.
type ClickTracker struct {
	Interval time.Duration

	last    time.Time
	lastPos image.Point
}

// Press turns a button press into a MouseDown, or a MouseDoubleClick when it
// follows a left press within Interval at about the same spot.
func (t *ClickTracker) Press(pos image.Point, b Button, now time.Time) Event {
	if b != ButtonLeft {
		return MouseDown{Pos: pos, Button: b}
	}
	d := pos.Sub(t.lastPos)
	if !t.last.IsZero() && now.Sub(t.last) < t.Interval &&
		abs(d.X) <= doubleClickSlop && abs(d.Y) <= doubleClickSlop {
		t.last = time.Time{}
		return MouseDoubleClick{Pos: pos}
	}
	t.last = now
	t.lastPos = pos
	return MouseDown{Pos: pos, Button: b}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
