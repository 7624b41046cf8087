// Command mandelzoom opens an interactive Mandelbrot window.
// Scroll to zoom, drag with the left mouse button to pan.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		width   = flag.Int("width", mandelzoom.DefaultWidth, "window width in pixels")
		height  = flag.Int("height", mandelzoom.DefaultHeight, "window height in pixels")
		maxIter = flag.Int("iter", mandelzoom.DefaultMaxIter, "escape-time iteration cap")
		workers = flag.Int("workers", mandelzoom.DefaultWorkers, "concurrent row bands per frame")
		region  = flag.String("region", "", "start at a named landmark (seahorse, elephant, ...)")
	)
	flag.Parse()

	renderer, err := mandelzoom.NewRenderer(mandelzoom.Config{
		Width:   *width,
		Height:  *height,
		MaxIter: *maxIter,
		Workers: *workers,
	})
	if err != nil {
		return err
	}

	vp := mandelzoom.DefaultViewport()
	if *region != "" {
		r, ok := mandelzoom.Regions[*region]
		if !ok {
			return fmt.Errorf("unknown region %q", *region)
		}
		vp = r.Viewport()
	}

	ebiten.SetWindowTitle("Mandelbrot")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(newGame(renderer, vp))
}
