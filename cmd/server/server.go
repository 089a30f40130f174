package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/marben/mandelview/interaction"
	"github.com/marben/mandelview/remote"
	"github.com/marben/mandelview/render"
)

// main is the entry point for the Mandelbrot viewer server.
// Every browser tab gets its own viewer session. Frames are split into tiles rendered here and on every connected client.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	port := flag.Int("port", 8080, "http port serving the web client and its websocket")
	tcpAddr := flag.String("tcp", ":8081", "tcp address for cli clients (empty disables)")
	static := flag.String("static", "./static", "directory with index.html and main.wasm")
	workers := flag.Int("workers", 0, "render goroutines per tile (0 = number of CPUs)")
	tileWorkers := flag.Int("tile-workers", 1, "local goroutines taking tiles next to the connected clients")
	showHUD := flag.Bool("hud", true, "draw the info overlay into frames")
	idle := flag.Duration("idle", remote.DefaultIdleTimeout, "drop viewer sessions without frame requests for this long")
	origins := flag.String("origins", "", "comma separated websocket origin patterns")
	flag.Parse()

	if *idle <= 0 {
		return fmt.Errorf("invalid -idle %s", *idle)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// imgWorkScheduler hands tiles of every frame to its own goroutines and
	// to each connected client. Clients color tiles with the default palette,
	// so the server does too.
	renderer := render.NewRenderer(render.Options{Workers: *workers})
	imgWorkScheduler := render.NewScheduler(renderer)
	for range *tileWorkers {
		go imgWorkScheduler.Serve(ctx, renderer)
	}

	viewers := remote.NewViewers(imgWorkScheduler, interaction.DefaultConfig(),
		remote.WithHUD(*showHUD), remote.WithIdleTimeout(*idle))
	go viewers.Run(ctx)

	irpcServer := remote.NewServer(imgWorkScheduler, viewers)
	errCh := make(chan error, 3)

	// TCP
	if *tcpAddr != "" {
		tcpListener, err := net.Listen("tcp", *tcpAddr)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		log.Printf("tcp listening on %s", tcpListener.Addr())
		go func() {
			errCh <- fmt.Errorf("server.Serve tcp: %w", irpcServer.Serve(tcpListener))
		}()
	}

	// WEBSOCKET
	var originPatterns []string
	if *origins != "" {
		originPatterns = strings.Split(*origins, ",")
	}
	websocketListener, httpServer := webServer(ctx, *port, *static, originPatterns)

	// httpServer provides index.html, main.wasm along with websocket endpoint
	go func() {
		errCh <- fmt.Errorf("httpServer: %w", httpServer.ListenAndServe())
	}()
	go func() {
		errCh <- fmt.Errorf("server.Serve ws: %w", irpcServer.Serve(websocketListener))
	}()

	log.Printf("mb server waiting for tcp and websocket connections")
	select {
	case err := <-errCh:
		irpcServer.Close()
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}
	// endpoints the clients already closed report it here
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	return nil
}
