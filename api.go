package mandel

import (
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// TileRenderer renders the tile part of an imgW×imgH image spanning r.
// Every client connected to the server serves it, so the server can hand
// tiles of any frame to any client.
type TileRenderer interface {
	RenderTile(r Region, tile image.Rectangle, imgW, imgH int) (image.RGBA, error)
}

// ImgProvider renders a whole image of a region on the server's workers.
type ImgProvider interface {
	GetImage(r Region, width, height int) (image.RGBA, error)
}

// Viewer runs interactive viewer sessions on the server. A session lives
// until Close or until it has not been asked for a frame for a while.
type Viewer interface {
	Open() (uint64, error)
	Dispatch(session uint64, events []Input) error
	Frame(session uint64, width, height int) (ViewerFrame, error)
	Close(session uint64) error
}

// Input is one decoded input event in wire form.
type Input struct {
	Kind          string
	X, Y          int
	Button        int
	Delta         float64
	Key           string
	Rune          string
	Mods          uint8
	Width, Height int
}

// ViewerFrame is the answer to Viewer.Frame. Image is empty unless Fresh.
type ViewerFrame struct {
	Fresh     bool
	Quit      bool
	Image     image.RGBA
	X, Y      float64
	Scale     float64
	MaxIter   int
	Workers   int
	Mode      string
	ElapsedMs float64
	Info      bool
}
