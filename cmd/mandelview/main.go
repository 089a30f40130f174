// mandelview is the desktop Mandelbrot explorer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"golang.design/x/clipboard"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/hud"
	"github.com/marben/mandelview/interaction"
	"github.com/marben/mandelview/render"
	"github.com/marben/mandelview/viewer"
)

// frameEvent carries a finished frame from the render loop to the window.
type frameEvent struct {
	img *image.RGBA
}

var clipboardReady bool

// quitEvent asks the window loop to close.
type quitEvent struct{}

// sizeBox is the window size shared by the event and render loops.
type sizeBox struct {
	mu sync.Mutex
	p  image.Point
}

func (b *sizeBox) set(p image.Point) {
	b.mu.Lock()
	b.p = p
	b.mu.Unlock()
}

func (b *sizeBox) get() image.Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.p
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type options struct {
	width, height int
	fps           int
	workers       int
	palette       render.Palette
	start         *mandel.Viewport
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.IntVar(&o.width, "w", 800, "window width")
	fs.IntVar(&o.height, "h", 600, "window height")
	fs.IntVar(&o.fps, "fps", 60, "frame rate cap")
	fs.IntVar(&o.workers, "workers", 0, "render goroutines per frame (0 = number of CPUs)")
	palette := fs.String("palette", "classic", "palette: "+strings.Join(render.PaletteNames(), ", "))
	region := fs.String("region", "", "landmark to start at")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.width <= 0 || o.height <= 0 || o.width > mandel.MaxFrameSide || o.height > mandel.MaxFrameSide {
		return o, fmt.Errorf("invalid window size %dx%d", o.width, o.height)
	}
	pal, err := render.PaletteByName(*palette)
	if err != nil {
		return o, fmt.Errorf("palette: %w", err)
	}
	o.palette = pal
	if *region != "" {
		l, ok := mandel.LandmarkByName(*region)
		if !ok {
			return o, fmt.Errorf("unknown region %q", *region)
		}
		v := l.Region.Viewport(float64(o.height) / float64(o.width))
		o.start = &v
	}
	if o.fps <= 0 {
		o.fps = 60
	}
	return o, nil
}

func run() error {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	var opts []viewer.Option
	if o.start != nil {
		opts = append(opts, viewer.WithViewport(*o.start))
	}
	cfg := interaction.DefaultConfig()
	session := viewer.NewSession(render.NewRenderer(render.Options{Workers: o.workers, Palette: o.palette}), cfg, opts...)

	// driver.Main owns the main goroutine until the window closes
	var winErr error
	driver.Main(func(s screen.Screen) {
		winErr = runWindow(s, session, cfg, o)
	})
	return winErr
}

func runWindow(s screen.Screen, session *viewer.Session, cfg interaction.Config, o options) error {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: o.width, Height: o.height, Title: "mandelview"})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.Release()

	var winSize sizeBox
	winSize.set(image.Pt(o.width, o.height))

	done := make(chan struct{})
	defer close(done)
	go renderLoop(session, &winSize, w, time.Second/time.Duration(o.fps), done)

	var b screen.Buffer
	defer func() {
		if b != nil {
			b.Release()
		}
	}()
	in := newInput(cfg)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > 0 {
				winSize.set(image.Pt(e.WidthPx, e.HeightPx))
			}
		case quitEvent:
			log.Printf("quit at %s", session.Viewport())
			return nil
		case frameEvent:
			if b == nil || b.Size() != e.img.Rect.Size() {
				if b != nil {
					b.Release()
				}
				if b, err = s.NewBuffer(e.img.Rect.Size()); err != nil {
					return fmt.Errorf("new buffer: %w", err)
				}
			}
			draw.Draw(b.RGBA(), b.Bounds(), e.img, image.Point{}, draw.Src)
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()
		case paint.Event:
			if b != nil {
				w.Upload(image.Point{}, b, b.Bounds())
				w.Publish()
			}
		case mouse.Event:
			for _, ev := range in.mouse(e) {
				session.Dispatch(ev)
			}
		case key.Event:
			if e.Direction == key.DirPress && (e.Rune == 'c' || e.Rune == 'C') {
				copyLocation(session.Viewport())
				continue
			}
			for _, ev := range in.key(e) {
				session.Dispatch(ev)
			}
		case error:
			log.Printf("window: %v", e)
		}
	}
}

// renderLoop produces frames at most once per interval and hands them to the
// window loop. Input keeps flowing into the session while a frame renders.
func renderLoop(session *viewer.Session, winSize *sizeBox, w screen.Window, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}
		sz := winSize.get()
		f, fresh := session.Frame(sz.X, sz.Y)
		if session.ShouldQuit() {
			w.Send(quitEvent{})
			return
		}
		if !fresh {
			continue
		}
		// the session reuses f.Image for the next frame
		img := image.NewRGBA(f.Image.Rect)
		copy(img.Pix, f.Image.Pix)
		if f.ShowInfo {
			hud.Draw(img, hud.Lines(f.Viewport, f.Stats, f.Mode))
		}
		w.Send(frameEvent{img: img})
	}
}

// copyLocation puts the current view on the clipboard in the form the
// command line tools accept.
func copyLocation(v mandel.Viewport) {
	if !clipboardReady {
		log.Printf("clipboard unavailable, location: %s", v)
		return
	}
	text := fmt.Sprintf("-x %.17g -y %.17g -scale %.17g", real(v.Center), imag(v.Center), v.Scale)
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("copied %s", text)
}
