package interaction

import (
	"log"
	"math"
	"time"

	mandel "github.com/marben/mandelview"
)

func (c *Controller) startAutoZoom(dir Direction) {
	rate := c.cfg.AutoZoomRate
	if dir == ZoomOut {
		rate = 1 / rate
	}
	c.state = AutoZooming{Direction: dir, Rate: rate, StartedAt: c.now()}
	log.Printf("auto-zoom %s at %gx per second", dir, rate)
}

// Tick advances time-based animation by dt seconds. Hosts call it once per
// rendered frame whether or not input arrived, with dt taken from a
// monotonic clock, so zoom speed does not depend on the frame rate.
func (c *Controller) Tick(v *mandel.Viewport, dt float64) {
	az, ok := c.state.(AutoZooming)
	if !ok || dt <= 0 {
		return
	}
	center := v.Center
	if !v.Zoom(math.Pow(az.Rate, dt), &center) {
		c.state = Idle{}
		log.Printf("auto-zoom %s reached the scale limit after %s", az.Direction, c.now().Sub(az.StartedAt).Round(time.Millisecond))
	}
}
