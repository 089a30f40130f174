package render

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"
	"time"

	mandel "github.com/marben/mandelview"
)

// TileSize is the side of the square tiles a scheduled frame is split into.
const TileSize = 64

// imgWork is one image being rendered tile by tile. Guarded by Scheduler.m.
type imgWork struct {
	region mandel.Region
	img    *image.RGBA
	w, h   int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}

	finished bool
	done     chan struct{}
}

func newImgWork(img *image.RGBA, region mandel.Region) *imgWork {
	allTilesSlice := splitRectNoClip(img.Bounds(), TileSize, TileSize)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	return &imgWork{
		region:    region,
		img:       img,
		w:         img.Bounds().Dx(),
		h:         img.Bounds().Dy(),
		unstarted: allTiles,
		inProcess: make(map[image.Rectangle]struct{}),
		done:      make(chan struct{}),
	}
}

// Scheduler splits images into tiles and hands them out to every attached
// worker, local or remote. The goroutine asking for an image renders tiles
// as well, so an image completes even with no worker attached, and tiles
// held by a worker for longer than the straggler timeout are rendered again
// locally.
type Scheduler struct {
	local     *Renderer
	straggler time.Duration

	m       sync.Mutex
	works   []*imgWork
	wake    chan struct{} // closed and replaced whenever tiles become available
	workers int
}

var _ mandel.Renderer = (*Scheduler)(nil)
var _ mandel.ImgProvider = (*Scheduler)(nil)

func NewScheduler(local *Renderer) *Scheduler {
	return &Scheduler{
		local:     local,
		straggler: time.Second,
		wake:      make(chan struct{}),
	}
}

// Workers returns the number of attached workers.
func (s *Scheduler) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

func (s *Scheduler) incActiveWorkers() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *Scheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

// broadcast wakes idle workers. s.m must be held.
func (s *Scheduler) broadcast() {
	close(s.wake)
	s.wake = make(chan struct{})
}

func (s *Scheduler) add(w *imgWork) {
	s.m.Lock()
	defer s.m.Unlock()
	s.works = append(s.works, w)
	s.broadcast()
}

func (s *Scheduler) remove(w *imgWork) {
	s.m.Lock()
	defer s.m.Unlock()
	for i, x := range s.works {
		if x == w {
			s.works = append(s.works[:i], s.works[i+1:]...)
			return
		}
	}
}

// popTile takes an unstarted tile of w, or of the oldest image with one when
// w is nil. Without a tile it returns the channel announcing new ones.
func (s *Scheduler) popTile(w *imgWork) (*imgWork, image.Rectangle, <-chan struct{}) {
	s.m.Lock()
	defer s.m.Unlock()

	works := s.works
	if w != nil {
		works = []*imgWork{w}
	}
	for _, w := range works {
		if w.finished {
			continue
		}
		for tile := range w.unstarted {
			delete(w.unstarted, tile)
			w.inProcess[tile] = struct{}{}
			return w, tile, nil
		}
	}
	return nil, image.Rectangle{}, s.wake
}

// requeue hands a tile a worker failed on back to the others.
func (s *Scheduler) requeue(w *imgWork, tile image.Rectangle) {
	s.m.Lock()
	defer s.m.Unlock()
	if _, ok := w.inProcess[tile]; !ok || w.finished {
		return
	}
	delete(w.inProcess, tile)
	w.unstarted[tile] = struct{}{}
	s.broadcast()
}

func (s *Scheduler) stragglers(w *imgWork) []image.Rectangle {
	s.m.Lock()
	defer s.m.Unlock()
	tiles := make([]image.Rectangle, 0, len(w.inProcess))
	for t := range w.inProcess {
		tiles = append(tiles, t)
	}
	return tiles
}

func (s *Scheduler) tileFinished(w *imgWork, tile image.Rectangle, tileImg image.RGBA) error {
	if tileImg.Rect != tile || tileImg.Stride != 4*tile.Dx() || len(tileImg.Pix) != 4*tile.Dx()*tile.Dy() {
		return fmt.Errorf("tile %v came back as %v with %d bytes", tile, tileImg.Rect, len(tileImg.Pix))
	}

	s.m.Lock()
	defer s.m.Unlock()

	if w.finished {
		return nil
	}
	if _, found := w.inProcess[tile]; !found {
		// rendered twice, the other copy won
		return nil
	}
	draw.Draw(
		w.img,
		tile,     // destination rectangle (global coords)
		&tileImg, // source image
		tile.Min, // source start
		draw.Src,
	)
	delete(w.inProcess, tile)

	if len(w.unstarted) == 0 && len(w.inProcess) == 0 {
		w.finished = true
		close(w.done)
	}
	return nil
}

// Serve renders tiles on tr until ctx is done or tr fails. It can be called
// from multiple goroutines in parallel; each call is one worker.
func (s *Scheduler) Serve(ctx context.Context, tr mandel.TileRenderer) error {
	s.incActiveWorkers()
	defer s.decActiveWorkers()

	for ctx.Err() == nil {
		w, tile, wake := s.popTile(nil)
		if w == nil {
			select {
			case <-wake:
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		tileImg, err := tr.RenderTile(w.region, tile, w.w, w.h)
		if err == nil {
			err = s.tileFinished(w, tile, tileImg)
		}
		if err != nil {
			s.requeue(w, tile)
			return fmt.Errorf("render of tile %s failed: %w", tile, err)
		}
	}
	return ctx.Err()
}

func (s *Scheduler) renderLocal(w *imgWork, tile image.Rectangle) {
	tileImg, err := s.local.RenderTile(w.region, tile, w.w, w.h)
	if err == nil {
		err = s.tileFinished(w, tile, tileImg)
	}
	if err != nil {
		panic(fmt.Sprintf("render: local tile %v: %v", tile, err))
	}
}

// render fills img with region and returns once every tile is in.
func (s *Scheduler) render(img *image.RGBA, region mandel.Region) {
	w := newImgWork(img, region)
	s.add(w)
	defer s.remove(w)

	for {
		_, tile, wake := s.popTile(w)
		if wake == nil {
			s.renderLocal(w, tile)
			continue
		}
		timer := time.NewTimer(s.straggler)
		select {
		case <-w.done:
			timer.Stop()
			return
		case <-wake:
			timer.Stop()
		case <-timer.C:
			for _, tile := range s.stragglers(w) {
				s.renderLocal(w, tile)
			}
		}
	}
}

// RenderInto implements mandel.Renderer on top of the attached workers.
func (s *Scheduler) RenderInto(dst *image.RGBA, v mandel.Viewport) mandel.FrameStats {
	b := dst.Bounds()
	if b.Min != (image.Point{}) || b.Dx() <= 0 || b.Dy() <= 0 {
		panic(fmt.Sprintf("render: destination bounds %v must be non-empty and start at the origin", b))
	}
	if mandel.CheckFrameSize(b.Dx(), b.Dy()) != nil {
		return s.local.RenderInto(dst, v)
	}
	start := time.Now()
	workers := s.Workers() + 1
	s.render(dst, v.Region(b.Dx(), b.Dy()))
	return mandel.FrameStats{MaxIter: s.local.MaxIterations(v.Scale), Workers: workers, Elapsed: time.Since(start)}
}

// GetImage implements mandel.ImgProvider.
func (s *Scheduler) GetImage(r mandel.Region, width, height int) (image.RGBA, error) {
	if err := mandel.CheckFrameSize(width, height); err != nil {
		return image.RGBA{}, err
	}
	if !(r.Xmax > r.Xmin) || !(r.Ymax > r.Ymin) {
		return image.RGBA{}, fmt.Errorf("degenerate region %+v", r)
	}
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	s.render(img, r)
	log.Printf("rendered %dx%d image in %s", width, height, time.Since(start).Round(time.Millisecond))
	return *img, nil
}
