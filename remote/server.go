package remote

import (
	"log"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/render"
)

// NewServer returns an irpc server serving viewers and whole images rendered
// on sched. Every client that connects becomes a worker of sched for as long
// as it stays connected.
func NewServer(sched *render.Scheduler, viewers *Viewers) *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(
			mandel.NewImgProviderIrpcService(sched),
			mandel.NewViewerIrpcService(viewers),
		),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			go func() {
				log.Printf("got connection from: %s", ep.RemoteAddr())

				// each client renders tiles for us, whatever else it asks for
				tileRenderer, err := mandel.NewTileRendererIrpcClient(ep)
				if err != nil {
					log.Printf("err: new TileRenderer client: %v", err)
					return
				}
				err = sched.Serve(ep.Context(), tileRenderer)
				log.Printf("worker %s gone: %v", ep.RemoteAddr(), err)
			}()
		}),
	)
}
