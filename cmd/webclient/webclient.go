//go:build js && wasm

// webclient.go is a WASM web client for the Mandelbrot viewer.
// It runs a viewer session on the server, forwards canvas input to it and paints the frames it returns.
// The server renders part of every frame here, on the tile renderer this client serves.

package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync/atomic"
	"syscall/js"
	"time"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/interaction"
	"github.com/marben/mandelview/remote"
	"github.com/marben/mandelview/render"
)

const fps = 30

// tilesRendered counts tiles the server had this client render.
var tilesRendered atomic.Int64

func main() {
	logScreenf("Starting WASM web client...")
	if err := run(); err != nil {
		logFatalf("run: %v", err)
	}
}

func run() error {
	loc := js.Global().Get("window").Get("location")
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + loc.Get("host").String() + "/ws"

	// the renderer service is called from the server to render tiles
	renderer := render.NewRenderer(render.Options{OnTileRender: func(image.Rectangle) { tilesRendered.Add(1) }})

	logScreenf("Connecting to viewer server at %s...", websocketUrl)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	endpoint, err := remote.DialWebsocket(ctx, websocketUrl, renderer)
	cancel()
	if err != nil {
		return err
	}
	defer endpoint.Close()
	logScreenf("IRPC endpoint created.")

	viewer, err := mandel.NewViewerIrpcClient(endpoint)
	if err != nil {
		return fmt.Errorf("failed to create Viewer client: %w", err)
	}
	session, err := viewer.Open()
	if err != nil {
		return fmt.Errorf("viewer.Open: %w", err)
	}
	logScreenf("Viewer session %016x opened.", session)

	cv := newCanvas("myCanvas")
	events := make(chan interaction.Event, 256)
	bindInput(cv, events)
	go dispatchLoop(viewer, session, events)

	ticker := time.NewTicker(time.Second / fps)
	defer ticker.Stop()
	for range ticker.C {
		w, h := cv.size()
		if w <= 0 || h <= 0 {
			continue
		}
		f, err := viewer.Frame(session, min(w, mandel.MaxFrameSide), min(h, mandel.MaxFrameSide))
		if err != nil {
			return fmt.Errorf("viewer.Frame: %w", err)
		}
		if f.Fresh {
			cv.displayImage(&f.Image)
			hudSetStatus(f)
		}
		if f.Quit {
			logScreenf("Viewer closed.")
			return nil
		}
	}
	return nil
}

// dispatchLoop forwards events in order, batching whatever queued up while
// the previous batch was in flight.
func dispatchLoop(viewer mandel.Viewer, session uint64, events <-chan interaction.Event) {
	for ev := range events {
		batch := []mandel.Input{remote.InputOf(ev)}
	drain:
		for len(batch) < remote.MaxDispatch {
			select {
			case ev := <-events:
				batch = append(batch, remote.InputOf(ev))
			default:
				break drain
			}
		}
		if err := viewer.Dispatch(session, batch); err != nil {
			logScreenf("dispatch: %v", err)
			return
		}
	}
}

// bindInput registers DOM listeners translating canvas input into events.
// Listeners must not block, so events go through a buffered channel and are
// dropped when it is full.
func bindInput(cv canvas, events chan<- interaction.Event) {
	send := func(ev interaction.Event) {
		select {
		case events <- ev:
		default:
		}
	}
	pos := func(e js.Value) image.Point {
		return image.Pt(e.Get("offsetX").Int(), e.Get("offsetY").Int())
	}
	button := func(e js.Value) interaction.Button {
		switch e.Get("button").Int() {
		case 1:
			return interaction.ButtonMiddle
		case 2:
			return interaction.ButtonRight
		}
		return interaction.ButtonLeft
	}
	mods := func(e js.Value) interaction.Modifiers {
		var m interaction.Modifiers
		if e.Get("shiftKey").Bool() {
			m |= interaction.ModShift
		}
		if e.Get("altKey").Bool() {
			m |= interaction.ModAlt
		}
		if e.Get("ctrlKey").Bool() {
			m |= interaction.ModCtrl
		}
		return m
	}
	on := func(target js.Value, name string, fn func(e js.Value)) {
		target.Call("addEventListener", name, js.FuncOf(func(_ js.Value, args []js.Value) any {
			fn(args[0])
			return nil
		}))
	}

	on(cv.elem, "mousedown", func(e js.Value) { send(interaction.MouseDown{Pos: pos(e), Button: button(e)}) })
	on(cv.elem, "mouseup", func(e js.Value) { send(interaction.MouseUp{Pos: pos(e), Button: button(e)}) })
	on(cv.elem, "mousemove", func(e js.Value) { send(interaction.MouseMove{Pos: pos(e)}) })
	on(cv.elem, "dblclick", func(e js.Value) { send(interaction.MouseDoubleClick{Pos: pos(e)}) })
	on(cv.elem, "wheel", func(e js.Value) {
		e.Call("preventDefault")
		// one notch is about 100 pixels of deltaY; scrolling up zooms in
		send(interaction.Wheel{Delta: -e.Get("deltaY").Float() / 100, Pos: pos(e)})
	})

	doc := js.Global().Get("document")
	key := func(e js.Value) (interaction.Key, rune, bool) {
		k, r := remote.BrowserKey(e.Get("key").String())
		if k == interaction.KeyUnknown {
			return k, r, false
		}
		e.Call("preventDefault")
		return k, r, true
	}
	on(doc, "keydown", func(e js.Value) {
		if k, r, ok := key(e); ok {
			send(interaction.KeyDown{Key: k, Rune: r, Mods: mods(e)})
		}
	})
	on(doc, "keyup", func(e js.Value) {
		if k, r, ok := key(e); ok {
			send(interaction.KeyUp{Key: k, Rune: r, Mods: mods(e)})
		}
	})
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetStatus shows where the view is and how the frame was rendered.
func hudSetStatus(f mandel.ViewerFrame) {
	doc := js.Global().Get("document")
	doc.Call("getElementById", "status").Set("textContent",
		fmt.Sprintf("x: %.17g  y: %.17g  scale: %.6g  iterations: %d  %s  %.1fms  workers: %d  tiles rendered here: %d",
			f.X, f.Y, f.Scale, f.MaxIter, f.Mode, f.ElapsedMs, f.Workers, tilesRendered.Load()))
}

