package interaction

import (
	"image"
	"log"
	"math"
	"time"
	"unicode"

	mandel "github.com/marben/mandelview"
)

// Controller turns decoded input events into viewport mutations. It is owned
// by a single goroutine; the viewport is passed in explicitly so several
// viewers can run side by side.
type Controller struct {
	cfg    Config
	state  State
	width  int
	height int
	cursor image.Point
	held   Modifiers
	quit   bool
	info   bool

	now    func() time.Time
	onDump func(mandel.Viewport)
}

// NewController returns an idle controller sized for a 640×480 buffer until
// the host reports its real size with a Resize event.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:    cfg,
		state:  Idle{},
		width:  640,
		height: 480,
		info:   true,
		now:    time.Now,
	}
}

// SetClock replaces the time source used to stamp AutoZooming.StartedAt.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

// SetDumpHook replaces the default log line written for the D key.
func (c *Controller) SetDumpHook(fn func(mandel.Viewport)) { c.onDump = fn }

func (c *Controller) State() State { return c.state }

func (c *Controller) AutoZooming() bool { return c.state.Mode() == ModeAutoZooming }

// ShouldQuit reports whether the user asked to leave the viewer.
func (c *Controller) ShouldQuit() bool { return c.quit }

// ShowInfo reports whether the info HUD is toggled on.
func (c *Controller) ShowInfo() bool { return c.info }

func (c *Controller) Size() (int, int) { return c.width, c.height }

// Cursor is the last pointer position seen.
func (c *Controller) Cursor() image.Point { return c.cursor }

func (c *Controller) toComplex(v *mandel.Viewport, p image.Point) complex128 {
	return v.PixelToComplex(float64(p.X), float64(p.Y), c.width, c.height)
}

func (c *Controller) HandleEvent(v *mandel.Viewport, ev Event) {
	switch ev := ev.(type) {
	case Resize:
		if ev.Width > 0 && ev.Height > 0 {
			c.width, c.height = ev.Width, ev.Height
		}

	case MouseDown:
		c.cursor = ev.Pos
		if ev.Button == ButtonLeft && c.state.Mode() == ModeIdle {
			c.state = Dragging{Anchor: ev.Pos, AnchorCenter: v.Center, last: ev.Pos}
		}

	case MouseMove:
		c.cursor = ev.Pos
		if d, ok := c.state.(Dragging); ok {
			c.dragTo(v, &d, ev.Pos)
			c.state = d
		}

	case MouseUp:
		c.cursor = ev.Pos
		if d, ok := c.state.(Dragging); ok && ev.Button == ButtonLeft {
			c.dragTo(v, &d, ev.Pos)
			c.state = Idle{}
		}

	case MouseDoubleClick:
		c.cursor = ev.Pos
		target := c.toComplex(v, ev.Pos)
		v.Recenter(target)
		if c.state.Mode() == ModeDragging {
			c.state = Idle{}
		}

	case Wheel:
		c.cursor = ev.Pos
		if ev.Delta == 0 {
			return
		}
		pivot := c.toComplex(v, ev.Pos)
		if !v.Zoom(math.Pow(c.cfg.WheelBase, -ev.Delta), &pivot) {
			log.Printf("zoom limit reached: scale %g", v.Scale)
		}

	case KeyDown:
		if m := modifierOf(ev.Key); m != 0 {
			c.held |= m
			return
		}
		c.keyDown(v, ev.Key, ev.Rune, ev.Mods|c.held)

	case KeyUp:
		if m := modifierOf(ev.Key); m != 0 {
			c.held &^= m
		}
	}
}

// dragTo pans by the movement since the previous pointer position so pan
// speed doesn't depend on how far the gesture has travelled.
func (c *Controller) dragTo(v *mandel.Viewport, d *Dragging, p image.Point) {
	delta := p.Sub(d.last)
	if delta != (image.Point{}) {
		v.Pan(float64(delta.X), float64(delta.Y), c.width, c.height)
	}
	d.last = p
}

func modifierOf(k Key) Modifiers {
	switch k {
	case KeyShift:
		return ModShift
	case KeyAlt:
		return ModAlt
	case KeyCtrl:
		return ModCtrl
	}
	return 0
}

func (c *Controller) keyDown(v *mandel.Viewport, k Key, r rune, mods Modifiers) {
	switch k {
	case KeySpace:
		c.reset(v)
	case KeyEscape:
		c.escape(v)
	case KeyPageUp:
		c.pageZoom(v, ZoomIn, mods)
	case KeyPageDown:
		c.pageZoom(v, ZoomOut, mods)
	case KeyArrowUp:
		c.pan(v, 0, c.cfg.PanStep)
	case KeyArrowDown:
		c.pan(v, 0, -c.cfg.PanStep)
	case KeyArrowLeft:
		c.pan(v, c.cfg.PanStep, 0)
	case KeyArrowRight:
		c.pan(v, -c.cfg.PanStep, 0)
	case KeyRune:
		c.runeDown(v, r)
	}
}

func (c *Controller) runeDown(v *mandel.Viewport, r rune) {
	switch r = unicode.ToLower(r); r {
	case ' ':
		c.reset(v)
	case 'q':
		c.quit = true
	case 'i':
		c.info = !c.info
	case 'd':
		if c.onDump != nil {
			c.onDump(*v)
		} else {
			log.Printf("x: %.17g y: %.17g scale: %g", real(v.Center), imag(v.Center), v.Scale)
		}
	case 'k':
		c.pan(v, 0, c.cfg.PanStep)
	case 'j':
		c.pan(v, 0, -c.cfg.PanStep)
	case 'h':
		c.pan(v, c.cfg.PanStep, 0)
	case 'l':
		c.pan(v, -c.cfg.PanStep, 0)
	default:
		if r >= '1' && r <= '9' {
			c.jump(v, int(r-'1'))
		}
	}
}

func (c *Controller) reset(v *mandel.Viewport) {
	*v = mandel.DefaultViewport()
	c.state = Idle{}
	log.Printf("reset: %s", v)
}

func (c *Controller) escape(v *mandel.Viewport) {
	switch s := c.state.(type) {
	case AutoZooming:
		c.state = Idle{}
		log.Printf("auto-zoom cancelled at scale %g", v.Scale)
	case Dragging:
		v.Recenter(s.AnchorCenter)
		c.state = Idle{}
	default:
		c.quit = true
	}
}

// pan moves the view by a key press; drags own the viewport while active.
func (c *Controller) pan(v *mandel.Viewport, dx, dy float64) {
	if c.state.Mode() == ModeDragging {
		return
	}
	v.Pan(dx, dy, c.width, c.height)
}

func (c *Controller) jump(v *mandel.Viewport, i int) {
	if i >= len(mandel.Landmarks) {
		return
	}
	l := mandel.Landmarks[i]
	*v = l.Region.Viewport(float64(c.height) / float64(c.width))
	c.state = Idle{}
	log.Printf("landmark %s: %s", l.Name, v)
}

func (c *Controller) pageZoom(v *mandel.Viewport, dir Direction, mods Modifiers) {
	mode := c.state.Mode()
	switch {
	case mode == ModeDragging:
		return
	case mods&ModAlt != 0:
		c.startAutoZoom(dir)
	case mode == ModeAutoZooming:
		c.state = Idle{}
		log.Printf("auto-zoom stopped at scale %g", v.Scale)
	default:
		step := c.cfg.KeyZoomStep
		if mods&ModShift != 0 {
			step /= c.cfg.FineDivisor
		}
		center := v.Center
		v.Zoom(math.Pow(c.cfg.KeyZoomBase, -float64(dir)*step), &center)
	}
}
