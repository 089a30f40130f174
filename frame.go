package mandel

import (
	"fmt"
	"image"
	"time"
)

// MaxFrameSide bounds both sides of any frame a remote peer may ask for.
const MaxFrameSide = 8192

// CheckFrameSize rejects frame sizes a remote peer should not be able to
// request.
func CheckFrameSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxFrameSide || height > MaxFrameSide {
		return fmt.Errorf("frame size %dx%d outside 1..%d", width, height, MaxFrameSide)
	}
	return nil
}

// FrameStats describes one completed render pass.
type FrameStats struct {
	MaxIter int
	Workers int
	Elapsed time.Duration
}

// Renderer fills dst with the view of v. dst's bounds must start at the origin.
type Renderer interface {
	RenderInto(dst *image.RGBA, v Viewport) FrameStats
}
