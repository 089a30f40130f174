package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/marben/mandelview/remote"
)

// webServer creates a server serving files in the static folder.
// It initializes the websocket endpoint and returns the listener accepting its connections.
func webServer(ctx context.Context, port int, static string, originPatterns []string) (*remote.WebsocketListener, *http.Server) {
	l := remote.NewWSListener(ctx, fmt.Sprintf(":%d/ws", port), originPatterns)
	mux := http.NewServeMux()
	mux.Handle("/ws", l.Handler())
	mux.Handle("/", http.FileServer(http.Dir(static)))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return l, srv
}
