//go:build !js

package remote

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"
)

// MaxClientMessage bounds a single websocket message from a client. Tile
// results are the largest thing clients send.
const MaxClientMessage = 1 << 20

// WebsocketListener implements net.Listener on top of the websocket
// connections its Handler accepts, so an irpc server can serve them.
type WebsocketListener struct {
	ch      chan *websocket.Conn
	ctx     context.Context
	cancel  context.CancelFunc
	addr    wsAddr
	origins []string
}

// NewWSListener returns a listener reporting addr. originPatterns are passed
// to websocket.Accept; empty allows same-origin requests only.
func NewWSListener(ctx context.Context, addr string, originPatterns []string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:      make(chan *websocket.Conn),
		ctx:     ctx,
		cancel:  cancel,
		addr:    wsAddr{addr: addr},
		origins: originPatterns,
	}
}

// Handler upgrades requests to websockets and hands them to Accept.
func (l *WebsocketListener) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: l.origins,
		})
		if err != nil {
			log.Println(err)
			return
		}
		c.SetReadLimit(MaxClientMessage)

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	})
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

// Close stops accepting and closes every connection handed out.
func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
