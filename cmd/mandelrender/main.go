// Command mandelrender renders a single Mandelbrot frame and saves it
// as a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		width   = flag.Int("width", 1920, "image width in pixels")
		height  = flag.Int("height", 1080, "image height in pixels")
		maxIter = flag.Int("iter", mandelzoom.DefaultMaxIter, "escape-time iteration cap")
		workers = flag.Int("workers", mandelzoom.DefaultWorkers, "concurrent row bands")
		region  = flag.String("region", "seahorse", "landmark to render (seahorse, elephant, ...); empty for the full set")
		out     = flag.String("out", "mandel.png", "output file name")
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

	start := time.Now()
	pix := renderer.Render(vp)
	log.Printf("rendered %dx%d at %d iterations in %s", *width, *height, *maxIter, time.Since(start))

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	img.Pix = mandelzoom.ToRGBA(pix, img.Pix)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	log.Printf("saved to %q", *out)
	return nil
}
