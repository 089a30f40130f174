// Package viewer wires the controller, viewport and renderer into the
// per-frame loop hosts drive: events in, tick, render, frame out.
package viewer

import (
	"image"
	"log"
	"sync"
	"time"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/interaction"
)

// Frame is the result of one Session.Frame call.
type Frame struct {
	Image    *image.RGBA
	Viewport mandel.Viewport
	Stats    mandel.FrameStats
	Mode     interaction.Mode
	ShowInfo bool
}

// Session owns one viewer's state. Dispatch may be called from any
// goroutine; events arriving while a render pass is in flight are queued and
// applied once the pass has finished, so a pass always sees one viewport.
type Session struct {
	renderer mandel.Renderer
	now      func() time.Time

	mu        sync.Mutex
	viewport  mandel.Viewport
	ctrl      *interaction.Controller
	rendering bool
	pending   []interaction.Event
	lastTick  time.Time

	// touched by the rendering goroutine only
	last     Frame
	lastSize image.Point
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source for tick deltas.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithViewport starts the session somewhere other than the default view.
func WithViewport(v mandel.Viewport) Option {
	return func(s *Session) { s.viewport = v }
}

func NewSession(r mandel.Renderer, cfg interaction.Config, opts ...Option) *Session {
	s := &Session{
		renderer: r,
		now:      time.Now,
		viewport: mandel.DefaultViewport(),
		ctrl:     interaction.NewController(cfg),
	}
	for _, o := range opts {
		o(s)
	}
	s.ctrl.SetClock(s.now)
	s.ctrl.SetDumpHook(func(v mandel.Viewport) {
		log.Printf("x: %.17g y: %.17g scale: %g rendering time: %s", real(v.Center), imag(v.Center), v.Scale, s.last.Stats.Elapsed)
	})
	return s
}

// Dispatch hands an input event to the controller, or queues it while a
// render pass is running.
func (s *Session) Dispatch(ev interaction.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rendering {
		s.pending = append(s.pending, ev)
		return
	}
	s.ctrl.HandleEvent(&s.viewport, ev)
}

// Viewport returns the current viewport.
func (s *Session) Viewport() mandel.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// ShouldQuit reports whether the user asked to leave.
func (s *Session) ShouldQuit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.ShouldQuit()
}

// State returns the controller's interaction state.
func (s *Session) State() interaction.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.State()
}

// Frame advances animation by the wall-clock time since the previous call and
// renders a width×height frame. It returns false with the previous frame when
// nothing visible changed. Frame must not be called concurrently with itself.
func (s *Session) Frame(width, height int) (Frame, bool) {
	s.mu.Lock()
	now := s.now()
	if !s.lastTick.IsZero() {
		from := s.lastTick
		// an auto-zoom started between frames only runs from its start
		if az, ok := s.ctrl.State().(interaction.AutoZooming); ok && az.StartedAt.After(from) {
			from = az.StartedAt
		}
		s.ctrl.Tick(&s.viewport, now.Sub(from).Seconds())
	}
	s.lastTick = now
	if w, h := s.ctrl.Size(); w != width || h != height {
		s.ctrl.HandleEvent(&s.viewport, interaction.Resize{Width: width, Height: height})
	}
	snap := Frame{
		Viewport: s.viewport,
		Mode:     s.ctrl.State().Mode(),
		ShowInfo: s.ctrl.ShowInfo(),
	}
	size := image.Pt(width, height)
	if s.last.Image != nil && s.lastSize == size &&
		s.last.Viewport == snap.Viewport && s.last.ShowInfo == snap.ShowInfo && s.last.Mode == snap.Mode {
		s.mu.Unlock()
		return s.last, false
	}
	s.rendering = true
	s.mu.Unlock()

	img := s.last.Image
	if img == nil || s.lastSize != size {
		img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	snap.Stats = s.renderer.RenderInto(img, snap.Viewport)
	snap.Image = img
	s.last, s.lastSize = snap, size

	s.mu.Lock()
	s.rendering = false
	pending := s.pending
	s.pending = nil
	for _, ev := range pending {
		s.ctrl.HandleEvent(&s.viewport, ev)
	}
	s.mu.Unlock()
	return snap, true
}
