// Command webviewer serves an interactive Mandelbrot view to the
// browser. The page in ./static streams pan/zoom events over a
// websocket and the server streams back completed frames.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		width   = flag.Int("width", mandelzoom.DefaultWidth, "frame width in pixels")
		height  = flag.Int("height", mandelzoom.DefaultHeight, "frame height in pixels")
		maxIter = flag.Int("iter", mandelzoom.DefaultMaxIter, "escape-time iteration cap")
		workers = flag.Int("workers", mandelzoom.DefaultWorkers, "concurrent row bands per frame")
		region  = flag.String("region", "", "home viewport landmark (seahorse, elephant, ...)")
		static  = flag.String("static", "./static", "directory with the viewer page")
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

	home := mandelzoom.DefaultViewport()
	if *region != "" {
		r, ok := mandelzoom.Regions[*region]
		if !ok {
			return fmt.Errorf("unknown region %q", *region)
		}
		home = r.Viewport()
	}

	fs := &frameServer{renderer: renderer, home: home}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", fs.handleWS)
	mux.Handle("/", http.FileServer(http.Dir(*static)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on http://localhost%s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
