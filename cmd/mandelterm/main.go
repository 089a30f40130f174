// mandelterm explores the Mandelbrot set in a terminal. Each character cell
// shows two pixels using a half block with separate fore and background colours.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/hud"
	"github.com/marben/mandelview/interaction"
	"github.com/marben/mandelview/render"
	"github.com/marben/mandelview/viewer"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	fps := flag.Int("fps", 30, "frame rate cap")
	workers := flag.Int("workers", 0, "render goroutines per frame (0 = number of CPUs)")
	palette := flag.String("palette", "classic", "palette: "+strings.Join(render.PaletteNames(), ", "))
	region := flag.String("region", "", "landmark to start at")
	logFile := flag.String("log", "", "write the log to this file (the terminal is busy drawing)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	pal, err := render.PaletteByName(*palette)
	if err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	cols, rows := s.Size()
	var opts []viewer.Option
	if *region != "" {
		l, ok := mandel.LandmarkByName(*region)
		if !ok {
			return fmt.Errorf("unknown region %q", *region)
		}
		opts = append(opts, viewer.WithViewport(l.Region.Viewport(float64(rows*2)/float64(max(cols, 1)))))
	}

	cfg := interaction.DefaultConfig()
	session := viewer.NewSession(render.NewRenderer(render.Options{Workers: *workers, Palette: pal}), cfg, opts...)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		in := newInput(cfg)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				s.Sync()
				continue
			}
			for _, e := range in.translate(ev) {
				session.Dispatch(e)
			}
			if session.ShouldQuit() {
				return
			}
		}
	}()

	if *fps <= 0 {
		*fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			log.Printf("quit at %s", session.Viewport())
			return nil
		case <-ticker.C:
		}

		cols, rows := s.Size()
		if cols <= 0 || rows <= 0 {
			continue
		}
		f, fresh := session.Frame(cols, rows*2)
		if session.ShouldQuit() {
			log.Printf("quit at %s", session.Viewport())
			return nil
		}
		if !fresh {
			continue
		}
		paint(s, f.Image)
		if f.ShowInfo {
			text(s, hud.Lines(f.Viewport, f.Stats, f.Mode))
		}
		s.Show()
	}
}
