package remote

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/hud"
	"github.com/marben/mandelview/interaction"
	"github.com/marben/mandelview/viewer"
)

// ErrUnknownSession is returned for session ids that were never opened,
// were closed, or expired.
var ErrUnknownSession = errors.New("unknown viewer session")

// MaxDispatch is the most events one Dispatch call may carry.
const MaxDispatch = 1024

// DefaultIdleTimeout is how long a session may go without a frame request
// before Run drops it.
const DefaultIdleTimeout = 30 * time.Second

type viewerEntry struct {
	session  *viewer.Session
	frameMu  sync.Mutex // Session.Frame must not run concurrently
	lastSeen time.Time  // guarded by Viewers.mu
}

// Viewers implements mandel.Viewer. All sessions share one renderer, so on
// the server they render on every connected worker.
type Viewers struct {
	renderer mandel.Renderer
	cfg      interaction.Config
	hud      bool
	idle     time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[uint64]*viewerEntry
}

var _ mandel.Viewer = (*Viewers)(nil)

// ViewersOption configures Viewers.
type ViewersOption func(*Viewers)

// WithHUD draws the info overlay into frames while a session shows it.
func WithHUD(on bool) ViewersOption {
	return func(v *Viewers) { v.hud = on }
}

// WithIdleTimeout overrides DefaultIdleTimeout.
func WithIdleTimeout(d time.Duration) ViewersOption {
	return func(v *Viewers) { v.idle = d }
}

// WithClock sets the time source of the sessions and of idle expiry.
func WithClock(now func() time.Time) ViewersOption {
	return func(v *Viewers) { v.now = now }
}

func NewViewers(r mandel.Renderer, cfg interaction.Config, opts ...ViewersOption) *Viewers {
	v := &Viewers{
		renderer: r,
		cfg:      cfg,
		idle:     DefaultIdleTimeout,
		now:      time.Now,
		sessions: make(map[uint64]*viewerEntry),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Len returns the number of open sessions.
func (v *Viewers) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.sessions)
}

func (v *Viewers) Open() (uint64, error) {
	e := &viewerEntry{session: viewer.NewSession(v.renderer, v.cfg, viewer.WithClock(v.now))}

	v.mu.Lock()
	defer v.mu.Unlock()
	var id uint64
	for id == 0 || v.sessions[id] != nil {
		id = rand.Uint64()
	}
	e.lastSeen = v.now()
	v.sessions[id] = e
	log.Printf("viewer %016x opened, %d open", id, len(v.sessions))
	return id, nil
}

func (v *Viewers) get(id uint64) (*viewerEntry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e, ok := v.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w %016x", ErrUnknownSession, id)
	}
	e.lastSeen = v.now()
	return e, nil
}

// Dispatch applies events in order. A batch holding any invalid input is
// rejected as a whole.
func (v *Viewers) Dispatch(id uint64, events []mandel.Input) error {
	if len(events) > MaxDispatch {
		return fmt.Errorf("%d events in one dispatch, at most %d", len(events), MaxDispatch)
	}
	e, err := v.get(id)
	if err != nil {
		return err
	}
	evs := make([]interaction.Event, len(events))
	for i, in := range events {
		if evs[i], err = EventOf(in); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	for _, ev := range evs {
		e.session.Dispatch(ev)
	}
	return nil
}

// Frame renders the session at width×height. A session that quit is closed
// by the frame reporting it.
func (v *Viewers) Frame(id uint64, width, height int) (mandel.ViewerFrame, error) {
	if err := mandel.CheckFrameSize(width, height); err != nil {
		return mandel.ViewerFrame{}, err
	}
	e, err := v.get(id)
	if err != nil {
		return mandel.ViewerFrame{}, err
	}

	e.frameMu.Lock()
	f, fresh := e.session.Frame(width, height)
	out := mandel.ViewerFrame{
		Fresh:     fresh,
		Quit:      e.session.ShouldQuit(),
		X:         real(f.Viewport.Center),
		Y:         imag(f.Viewport.Center),
		Scale:     f.Viewport.Scale,
		MaxIter:   f.Stats.MaxIter,
		Workers:   f.Stats.Workers,
		Mode:      f.Mode.String(),
		ElapsedMs: float64(f.Stats.Elapsed) / float64(time.Millisecond),
		Info:      f.ShowInfo,
	}
	if fresh {
		// the session renders into the same buffer next time
		img := image.NewRGBA(f.Image.Bounds())
		copy(img.Pix, f.Image.Pix)
		if v.hud && f.ShowInfo {
			hud.Draw(img, hud.Lines(f.Viewport, f.Stats, f.Mode))
		}
		out.Image = *img
	}
	e.frameMu.Unlock()

	if out.Quit {
		v.drop(id, "quit")
	}
	return out, nil
}

func (v *Viewers) Close(id uint64) error {
	if !v.drop(id, "closed") {
		return fmt.Errorf("%w %016x", ErrUnknownSession, id)
	}
	return nil
}

func (v *Viewers) drop(id uint64, why string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.sessions[id]; !ok {
		return false
	}
	delete(v.sessions, id)
	log.Printf("viewer %016x %s, %d open", id, why, len(v.sessions))
	return true
}

// Expire drops sessions idle for longer than the idle timeout and returns
// how many it dropped.
func (v *Viewers) Expire() int {
	now := v.now()
	v.mu.Lock()
	var idle []uint64
	for id, e := range v.sessions {
		if now.Sub(e.lastSeen) > v.idle {
			idle = append(idle, id)
		}
	}
	v.mu.Unlock()

	for _, id := range idle {
		v.drop(id, "expired")
	}
	return len(idle)
}

// Run expires idle sessions until ctx is done.
func (v *Viewers) Run(ctx context.Context) {
	ticker := time.NewTicker(v.idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Expire()
		}
	}
}
