package interaction

import (
	"image"
	"math"
	"testing"
	"time"

	mandel "github.com/marben/mandelview"
)

func newTestController(w, h int) (*Controller, *mandel.Viewport) {
	c := NewController(DefaultConfig())
	v := mandel.DefaultViewport()
	c.HandleEvent(&v, Resize{Width: w, Height: h})
	return c, &v
}

func TestDragPansByIncrementalDeltas(t *testing.T) {
	c, v := newTestController(800, 600)
	v.Center = 0
	c.HandleEvent(v, MouseDown{Pos: image.Pt(100, 100), Button: ButtonLeft})
	if c.State().Mode() != ModeDragging {
		t.Fatalf("state %v, want dragging", c.State().Mode())
	}
	c.HandleEvent(v, MouseMove{Pos: image.Pt(110, 100)})
	c.HandleEvent(v, MouseUp{Pos: image.Pt(110, 100), Button: ButtonLeft})
	if c.State().Mode() != ModeIdle {
		t.Fatalf("state %v, want idle", c.State().Mode())
	}
	if math.Abs(real(v.Center)-(-0.05)) > 1e-15 || imag(v.Center) != 0 {
		t.Fatalf("center %v, want (-0.05+0i)", v.Center)
	}
}

func TestDragSumsToTotalDistance(t *testing.T) {
	c, v := newTestController(800, 600)
	v.Center = 0
	c.HandleEvent(v, MouseDown{Pos: image.Pt(0, 0), Button: ButtonLeft})
	for i := 1; i <= 40; i++ {
		c.HandleEvent(v, MouseMove{Pos: image.Pt(i, 2*i)})
	}
	c.HandleEvent(v, MouseUp{Pos: image.Pt(40, 80), Button: ButtonLeft})
	unit := 4.0 / 800
	if math.Abs(real(v.Center)+40*unit) > 1e-12 || math.Abs(imag(v.Center)-80*unit) > 1e-12 {
		t.Fatalf("center %v, want (%g+%gi)", v.Center, -40*unit, 80*unit)
	}
}

func TestMouseUpWithoutMoveAppliesFinalDelta(t *testing.T) {
	c, v := newTestController(800, 600)
	v.Center = 0
	c.HandleEvent(v, MouseDown{Pos: image.Pt(100, 100), Button: ButtonLeft})
	c.HandleEvent(v, MouseUp{Pos: image.Pt(90, 100), Button: ButtonLeft})
	if math.Abs(real(v.Center)-0.05) > 1e-15 {
		t.Fatalf("center %v, want (0.05+0i)", v.Center)
	}
}

func TestRightButtonDoesNotDrag(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, MouseDown{Pos: image.Pt(1, 1), Button: ButtonRight})
	if c.State().Mode() != ModeIdle {
		t.Fatalf("state %v, want idle", c.State().Mode())
	}
}

func TestEscapeDuringDragRestoresAnchor(t *testing.T) {
	c, v := newTestController(800, 600)
	start := v.Center
	c.HandleEvent(v, MouseDown{Pos: image.Pt(10, 10), Button: ButtonLeft})
	c.HandleEvent(v, MouseMove{Pos: image.Pt(300, 200)})
	c.HandleEvent(v, KeyDown{Key: KeyEscape})
	if v.Center != start || c.State().Mode() != ModeIdle || c.ShouldQuit() {
		t.Fatalf("center %v state %v quit %v", v.Center, c.State().Mode(), c.ShouldQuit())
	}
}

func TestDoubleClickRecentersExactly(t *testing.T) {
	c, v := newTestController(640, 480)
	v.Center = complex(-0.7436, 0.1318)
	v.Scale = 0.003
	p := image.Pt(123, 456)
	want := v.PixelToComplex(123, 456, 640, 480)
	c.HandleEvent(v, MouseDoubleClick{Pos: p})
	if v.Center != want {
		t.Fatalf("center %v, want %v", v.Center, want)
	}
	if v.Scale != 0.003 {
		t.Fatalf("double click changed scale to %g", v.Scale)
	}
}

func TestWheelZoomKeepsCursorPoint(t *testing.T) {
	c, v := newTestController(800, 600)
	p := image.Pt(200, 150)
	under := v.PixelToComplex(200, 150, 800, 600)
	c.HandleEvent(v, Wheel{Delta: 3, Pos: p})
	if want := 2 * math.Pow(1.1, -3); math.Abs(v.Scale-want) > 1e-15 {
		t.Fatalf("scale %g, want %g", v.Scale, want)
	}
	x, y := v.ComplexToPixel(under, 800, 600)
	if math.Abs(x-200) > 1e-9 || math.Abs(y-150) > 1e-9 {
		t.Fatalf("point under cursor moved to (%f,%f)", x, y)
	}
}

func TestWheelIsGeometric(t *testing.T) {
	c, v := newTestController(800, 600)
	p := image.Pt(400, 300)
	var scales []float64
	for range 5 {
		c.HandleEvent(v, Wheel{Delta: 1, Pos: p})
		scales = append(scales, v.Scale)
	}
	for i := 1; i < len(scales); i++ {
		if r := scales[i] / scales[i-1]; math.Abs(r-1/1.1) > 1e-12 {
			t.Fatalf("step %d ratio %g, want %g", i, r, 1/1.1)
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, Wheel{Delta: 10, Pos: image.Pt(1, 2)})
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModAlt})
	c.Tick(v, 0.3)
	for range 3 {
		c.HandleEvent(v, KeyDown{Key: KeySpace})
		if *v != mandel.DefaultViewport() || c.State().Mode() != ModeIdle {
			t.Fatalf("after reset: %v state %v", v, c.State().Mode())
		}
	}
}

func TestPageKeysStepZoom(t *testing.T) {
	cfg := DefaultConfig()
	c, v := newTestController(800, 600)
	center := v.Center
	c.HandleEvent(v, KeyDown{Key: KeyPageUp})
	coarse := 2 * math.Pow(cfg.KeyZoomBase, -cfg.KeyZoomStep)
	if math.Abs(v.Scale-coarse) > 1e-15 || v.Center != center {
		t.Fatalf("PageUp: scale %g center %v, want %g %v", v.Scale, v.Center, coarse, center)
	}
	c.HandleEvent(v, KeyDown{Key: KeyPageDown})
	if math.Abs(v.Scale-2) > 1e-14 {
		t.Fatalf("PageDown: scale %g, want 2", v.Scale)
	}
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModShift})
	fine := 2 * math.Pow(cfg.KeyZoomBase, -cfg.KeyZoomStep/cfg.FineDivisor)
	if math.Abs(v.Scale-fine) > 1e-14 {
		t.Fatalf("Shift+PageUp: scale %g, want %g", v.Scale, fine)
	}
}

func TestHeldShiftKeyActsAsModifier(t *testing.T) {
	cfg := DefaultConfig()
	c, v := newTestController(800, 600)
	c.HandleEvent(v, KeyDown{Key: KeyShift})
	c.HandleEvent(v, KeyDown{Key: KeyPageUp})
	fine := 2 * math.Pow(cfg.KeyZoomBase, -cfg.KeyZoomStep/cfg.FineDivisor)
	if math.Abs(v.Scale-fine) > 1e-14 {
		t.Fatalf("scale %g, want %g", v.Scale, fine)
	}
	c.HandleEvent(v, KeyUp{Key: KeyShift})
	before := v.Scale
	c.HandleEvent(v, KeyDown{Key: KeyPageUp})
	if want := before * math.Pow(cfg.KeyZoomBase, -cfg.KeyZoomStep); math.Abs(v.Scale-want) > 1e-14 {
		t.Fatalf("after release: scale %g, want %g", v.Scale, want)
	}
}

func TestAutoZoomTickIsTimeBased(t *testing.T) {
	c, v := newTestController(800, 600)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return start })
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModAlt})
	az, ok := c.State().(AutoZooming)
	if !ok {
		t.Fatalf("state %T, want AutoZooming", c.State())
	}
	if az.Direction != ZoomIn || az.Rate != 0.5 || !az.StartedAt.Equal(start) {
		t.Fatalf("unexpected auto-zoom state %+v", az)
	}
	center := v.Center
	c.Tick(v, 1.0)
	if v.Scale != 1.0 || v.Center != center {
		t.Fatalf("after dt=1: scale %g center %v, want 1 %v", v.Scale, v.Center, center)
	}

	a, b := mandel.Viewport{Scale: 1}, mandel.Viewport{Scale: 1}
	c.Tick(&a, 0.5)
	c.Tick(&a, 0.5)
	c.Tick(&b, 1.0)
	if math.Abs(a.Scale-b.Scale) > 1e-15 {
		t.Fatalf("two half ticks gave %g, one full tick %g", a.Scale, b.Scale)
	}
}

func TestAutoZoomOutUsesReciprocalRate(t *testing.T) {
	c, v := newTestController(800, 600)
	v.Scale = 0.01
	c.HandleEvent(v, KeyDown{Key: KeyPageDown, Mods: ModAlt})
	c.Tick(v, 1)
	if math.Abs(v.Scale-0.02) > 1e-15 {
		t.Fatalf("scale %g, want 0.02", v.Scale)
	}
}

func TestTickOutsideAutoZoomIsNoop(t *testing.T) {
	c, v := newTestController(800, 600)
	before := *v
	c.Tick(v, 5)
	if *v != before {
		t.Fatalf("idle tick changed viewport to %v", v)
	}
}

func TestAutoZoomStopsAtScaleLimit(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, KeyDown{Key: KeyPageDown, Mods: ModAlt})
	c.Tick(v, 10)
	if v.Scale != mandel.MaxScale {
		t.Fatalf("scale %g, want %g", v.Scale, mandel.MaxScale)
	}
	if c.AutoZooming() {
		t.Fatal("auto-zoom should end at the clamp")
	}
}

func TestEscapeCancelsAutoZoomThenQuits(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModAlt})
	c.Tick(v, 0.25)
	at := *v
	c.HandleEvent(v, KeyDown{Key: KeyEscape})
	if c.AutoZooming() || c.ShouldQuit() || *v != at {
		t.Fatalf("escape: autozoom %v quit %v viewport %v (want %v)", c.AutoZooming(), c.ShouldQuit(), v, at)
	}
	c.HandleEvent(v, KeyDown{Key: KeyEscape})
	if !c.ShouldQuit() {
		t.Fatal("escape while idle should request quit")
	}
}

func TestPlainPageKeyStopsAutoZoom(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModAlt})
	scale := v.Scale
	c.HandleEvent(v, KeyDown{Key: KeyPageDown})
	if c.AutoZooming() || v.Scale != scale {
		t.Fatalf("autozoom %v scale %g (want %g)", c.AutoZooming(), v.Scale, scale)
	}
}

func TestAltPageKeySwitchesAutoZoomDirection(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModAlt})
	c.HandleEvent(v, KeyDown{Key: KeyPageDown, Mods: ModAlt})
	az, ok := c.State().(AutoZooming)
	if !ok || az.Direction != ZoomOut || az.Rate != 2 {
		t.Fatalf("state %+v, want zoom out at rate 2", c.State())
	}
}

func TestNoDragWhileAutoZooming(t *testing.T) {
	c, v := newTestController(800, 600)
	c.HandleEvent(v, KeyDown{Key: KeyPageUp, Mods: ModAlt})
	c.HandleEvent(v, MouseDown{Pos: image.Pt(5, 5), Button: ButtonLeft})
	if !c.AutoZooming() {
		t.Fatalf("state %v, want auto-zooming", c.State().Mode())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, r := range []rune{'q', 'Q'} {
		c, v := newTestController(800, 600)
		c.HandleEvent(v, KeyDown{Key: KeyRune, Rune: r})
		if !c.ShouldQuit() {
			t.Fatalf("%q did not request quit", r)
		}
	}
}

func TestArrowAndVimKeysPan(t *testing.T) {
	tests := []struct {
		ev     KeyDown
		dx, dy float64 // expected direction of the view in plane units
	}{
		{KeyDown{Key: KeyArrowUp}, 0, 1},
		{KeyDown{Key: KeyRune, Rune: 'k'}, 0, 1},
		{KeyDown{Key: KeyArrowDown}, 0, -1},
		{KeyDown{Key: KeyRune, Rune: 'j'}, 0, -1},
		{KeyDown{Key: KeyArrowLeft}, -1, 0},
		{KeyDown{Key: KeyRune, Rune: 'h'}, -1, 0},
		{KeyDown{Key: KeyArrowRight}, 1, 0},
		{KeyDown{Key: KeyRune, Rune: 'l'}, 1, 0},
	}
	for _, tt := range tests {
		c, v := newTestController(800, 600)
		v.Center = 0
		c.HandleEvent(v, tt.ev)
		step := 10 * 4.0 / 800
		if math.Abs(real(v.Center)-tt.dx*step) > 1e-15 || math.Abs(imag(v.Center)-tt.dy*step) > 1e-15 {
			t.Fatalf("%+v: center %v, want (%g+%gi)", tt.ev, v.Center, tt.dx*step, tt.dy*step)
		}
	}
}

func TestKeyNames(t *testing.T) {
	for k := KeyUnknown; k <= KeyCtrl; k++ {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKey(%q) = %v %v, want %v", k.String(), got, ok, k)
		}
	}
	if KeyArrowUp.String() != "ArrowUp" || KeyArrowRight.String() != "ArrowRight" {
		t.Fatalf("arrow names %q %q", KeyArrowUp, KeyArrowRight)
	}
	if _, ok := ParseKey("Up"); ok {
		t.Fatal("ParseKey accepted a name no key has")
	}
}

func TestInfoToggleAndLandmarkJump(t *testing.T) {
	c, v := newTestController(1600, 900)
	if !c.ShowInfo() {
		t.Fatal("info should start visible")
	}
	c.HandleEvent(v, KeyDown{Key: KeyRune, Rune: 'i'})
	if c.ShowInfo() {
		t.Fatal("i should hide info")
	}
	c.HandleEvent(v, KeyDown{Key: KeyRune, Rune: '5'})
	want := mandel.ValleyOfTheDragon.Viewport(900.0 / 1600.0)
	if *v != want {
		t.Fatalf("landmark 5: %v, want %v", v, want)
	}
	before := *v
	c.HandleEvent(v, KeyDown{Key: KeyRune, Rune: '9'})
	if *v != before {
		t.Fatal("unbound landmark key changed the viewport")
	}
}

func TestDumpHook(t *testing.T) {
	c, v := newTestController(800, 600)
	var got mandel.Viewport
	c.SetDumpHook(func(v mandel.Viewport) { got = v })
	c.HandleEvent(v, KeyDown{Key: KeyRune, Rune: 'D'})
	if got != *v {
		t.Fatalf("dump hook got %v, want %v", got, v)
	}
}

func TestClickTrackerSynthesisesDoubleClick(t *testing.T) {
	tr := ClickTracker{Interval: 700 * time.Millisecond}
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := tr.Press(image.Pt(10, 10), ButtonLeft, t0).(MouseDown); !ok {
		t.Fatal("first press should be MouseDown")
	}
	if _, ok := tr.Press(image.Pt(11, 10), ButtonLeft, t0.Add(300*time.Millisecond)).(MouseDoubleClick); !ok {
		t.Fatal("second quick press should be a double click")
	}
	if _, ok := tr.Press(image.Pt(11, 10), ButtonLeft, t0.Add(400*time.Millisecond)).(MouseDown); !ok {
		t.Fatal("third press should start over")
	}
	if _, ok := tr.Press(image.Pt(11, 10), ButtonLeft, t0.Add(2*time.Second)).(MouseDown); !ok {
		t.Fatal("slow press should be MouseDown")
	}
	if _, ok := tr.Press(image.Pt(200, 10), ButtonLeft, t0.Add(2100*time.Millisecond)).(MouseDown); !ok {
		t.Fatal("distant press should be MouseDown")
	}
}
