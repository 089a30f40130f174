package remote

import (
	"context"
	"fmt"
	"io"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandelview"
)

// Connect starts an endpoint on conn that serves tr to the server.
func Connect(conn io.ReadWriteCloser, tr mandel.TileRenderer) *irpc.Endpoint {
	return irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewTileRendererIrpcService(tr)))
}

// DialWebsocket connects to a server's websocket endpoint, e.g.
// "ws://localhost:8080/ws", and serves tr over it.
func DialWebsocket(ctx context.Context, url string, tr mandel.TileRenderer) (*irpc.Endpoint, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	// whole images come back in one message
	c.SetReadLimit(-1)
	return Connect(websocket.NetConn(context.Background(), c, websocket.MessageBinary), tr), nil
}
