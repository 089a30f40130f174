// cliclient renders one view of the Mandelbrot set and saves it as a PNG file.
// It renders locally, or connects to a running server with -addr and asks it for the image.
// While connected it renders tiles for the server like every other client; with -worker it does nothing else.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"net"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/hud"
	"github.com/marben/mandelview/interaction"
	"github.com/marben/mandelview/remote"
	"github.com/marben/mandelview/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// maxSupersample bounds -ss; the intermediate image grows with its square.
const maxSupersample = 4

type options struct {
	addr     string
	out      string
	width    int
	height   int
	landmark string
	factor   int
	palette  string
	workers  int
	info     bool
	worker   bool
	view     mandel.Viewport
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	var x, y, scale float64
	fs.StringVar(&o.addr, "addr", "", "server tcp address, e.g. localhost:8081 (empty renders locally)")
	fs.StringVar(&o.out, "o", "mandel.png", "output file")
	fs.IntVar(&o.width, "w", 1920, "image width")
	fs.IntVar(&o.height, "h", 1080, "image height")
	fs.StringVar(&o.landmark, "region", "", "landmark to render: "+landmarkNames())
	fs.IntVar(&o.factor, "ss", 1, fmt.Sprintf("supersampling factor 1..%d (local rendering only)", maxSupersample))
	fs.StringVar(&o.palette, "palette", "classic", "palette (local rendering only): "+strings.Join(render.PaletteNames(), ", "))
	fs.IntVar(&o.workers, "workers", 0, "render goroutines (0 = number of CPUs)")
	fs.BoolVar(&o.info, "info", false, "draw the info overlay")
	fs.BoolVar(&o.worker, "worker", false, "only render tiles for the server at -addr until interrupted")
	fs.Float64Var(&x, "x", real(mandel.DefaultCenter), "center real part")
	fs.Float64Var(&y, "y", imag(mandel.DefaultCenter), "center imaginary part")
	fs.Float64Var(&scale, "scale", mandel.DefaultScale, fmt.Sprintf("half-width of the view in the complex plane, clamped to [%g, %g]", mandel.MinScale, mandel.MaxScale))
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	hasCenter := set["x"] || set["y"] || set["scale"]

	if err := mandel.CheckFrameSize(o.width, o.height); err != nil {
		return o, fmt.Errorf("image size: %w", err)
	}
	if o.worker && o.addr == "" {
		return o, errors.New("-worker needs -addr")
	}
	if o.addr != "" && (set["palette"] || set["ss"]) {
		return o, errors.New("-palette and -ss apply to local rendering only")
	}
	if _, err := render.PaletteByName(o.palette); err != nil {
		return o, err
	}
	if o.factor < 1 || o.factor > maxSupersample {
		return o, fmt.Errorf("supersampling factor %d outside 1..%d", o.factor, maxSupersample)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return o, fmt.Errorf("invalid center %g%+gi", x, y)
	}
	if !(scale > 0) {
		return o, fmt.Errorf("scale must be positive, got %g", scale)
	}
	o.view = mandel.Viewport{Center: complex(x, y), Scale: min(max(scale, mandel.MinScale), mandel.MaxScale)}
	if o.view.Scale != scale {
		log.Printf("scale %g clamped to %g", scale, o.view.Scale)
	}

	if o.landmark != "" {
		if hasCenter {
			return o, errors.New("-region cannot be combined with -x, -y or -scale")
		}
		l, ok := mandel.LandmarkByName(o.landmark)
		if !ok {
			return o, fmt.Errorf("unknown region %q, want one of: %s", o.landmark, landmarkNames())
		}
		o.view = l.Region.Viewport(float64(o.height) / float64(o.width))
	}
	return o, nil
}

func landmarkNames() string {
	names := make([]string, len(mandel.Landmarks))
	for i, l := range mandel.Landmarks {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}

func run() error {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if o.worker {
		return serveTiles(o)
	}

	var img *image.RGBA
	if o.addr != "" {
		img, err = renderRemote(o)
	} else {
		img, err = renderLocal(o)
	}
	if err != nil {
		return err
	}

	log.Printf("Saving rendered image to %q...", o.out)
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	log.Printf("Fully rendered image saved to %q", o.out)
	return nil
}

func renderLocal(o options) (*image.RGBA, error) {
	pal, err := render.PaletteByName(o.palette)
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(render.Options{Workers: o.workers, Palette: pal})
	log.Printf("Rendering %dx%d (x%d supersampling) at %s", o.width, o.height, o.factor, o.view)
	img, stats := r.RenderSupersampled(o.view, o.width, o.height, o.factor)
	log.Printf("Rendered in %s on %d workers, %d iterations", stats.Elapsed.Round(time.Millisecond), stats.Workers, stats.MaxIter)
	if o.info {
		hud.Draw(img, hud.Lines(o.view, stats, interaction.ModeIdle))
	}
	return img, nil
}

// connect dials the server and serves it a tile renderer.
func connect(o options) (*irpc.Endpoint, *render.Renderer, error) {
	log.Printf("Connecting to Mandelbrot server on %s...", o.addr)
	tcpConn, err := net.Dial("tcp", o.addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	// the renderer service is called from the server to render tiles using our CPU
	renderer := render.NewRenderer(render.Options{
		Workers:      o.workers,
		OnTileRender: func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) },
	})
	return remote.Connect(tcpConn, renderer), renderer, nil
}

// renderRemote asks the server for the whole image. The server splits it
// among all its workers, this client included.
func renderRemote(o options) (*image.RGBA, error) {
	ep, renderer, err := connect(o)
	if err != nil {
		return nil, err
	}
	defer ep.Close()

	client, err := mandel.NewImgProviderIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create ImgProvider client: %w", err)
	}

	log.Printf("Requesting %dx%d at %s from server...", o.width, o.height, o.view)
	start := time.Now()
	img, err := client.GetImage(o.view.Region(o.width, o.height), o.width, o.height)
	if err != nil {
		return nil, fmt.Errorf("client.GetImage: %w", err)
	}
	stats := mandel.FrameStats{MaxIter: renderer.MaxIterations(o.view.Scale), Elapsed: time.Since(start)}
	log.Printf("Server delivered the image in %s", stats.Elapsed.Round(time.Millisecond))
	if o.info {
		hud.Draw(&img, hud.Lines(o.view, stats, interaction.ModeIdle))
	}
	return &img, nil
}

// serveTiles lends this machine to the server until interrupted or
// disconnected.
func serveTiles(o options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ep, _, err := connect(o)
	if err != nil {
		return err
	}
	defer ep.Close()

	log.Printf("Rendering tiles for %s, interrupt to stop", o.addr)
	select {
	case <-ctx.Done():
		return nil
	case <-ep.Context().Done():
		if cause := context.Cause(ep.Context()); !errors.Is(cause, irpc.ErrEndpointClosedByCounterpart) {
			return cause
		}
		log.Printf("Server closed the connection")
		return nil
	}
}
