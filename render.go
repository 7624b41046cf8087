package mandelzoom

import (
	"fmt"
	"sync"
	"unsafe"
)

// cacheLine matches the line size of every platform this runs on; the
// buffer and band descriptors are aligned/padded to it so neighboring
// workers never share a line.
const cacheLine = 64

// maxPixels caps a single frame at 1 GiB of pixel data. Anything larger
// is treated as resource exhaustion up front instead of letting the
// allocator abort the process.
const maxPixels = 1 << 28

// band is one worker's contiguous run of rows, half-open.
type band struct {
	startRow int
	endRow   int

	// Pad so adjacent descriptors sit on separate cache lines.
	_ [cacheLine - 16]byte
}

// splitRows partitions [0, height) into n contiguous bands. Rows are
// covered exactly once with no overlap; the last band absorbs the
// remainder when height is not divisible by n.
func splitRows(height, n int) []band {
	bandHeight := height / n
	bands := make([]band, n)
	for i := range bands {
		bands[i].startRow = i * bandHeight
		bands[i].endRow = (i + 1) * bandHeight
	}
	bands[n-1].endRow = height
	return bands
}

// Renderer draws escape-time frames of the quadratic map into a pixel
// buffer it owns. The buffer is overwritten in place every frame; the
// palette is built once and shared read-only across all workers.
type Renderer struct {
	cfg     Config
	palette Palette
	pix     []uint32
}

// NewRenderer validates cfg (zero fields take defaults) and allocates
// the frame buffer. Failure to obtain the buffer is fatal for the
// engine, so it is reported here rather than degraded around.
func NewRenderer(cfg Config) (*Renderer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("renderer config: %w", err)
	}
	pix, err := alignedPixels(cfg.Width * cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("pixel buffer: %w", err)
	}
	return &Renderer{
		cfg:     cfg,
		palette: NewPalette(cfg.MaxIter),
		pix:     pix,
	}, nil
}

// alignedPixels allocates n packed pixels starting on a cache-line
// boundary, so band edges never straddle a line with a neighbor's rows.
func alignedPixels(n int) ([]uint32, error) {
	if n > maxPixels {
		return nil, fmt.Errorf("%d pixels exceeds the %d pixel limit", n, maxPixels)
	}
	raw := make([]uint32, n+cacheLine/4)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % cacheLine; rem != 0 {
		off = int(cacheLine-rem) / 4
	}
	return raw[off : off+n : off+n], nil
}

// Config returns the renderer's fixed parameters.
func (r *Renderer) Config() Config { return r.cfg }

// Palette returns the shared read-only color table.
func (r *Renderer) Palette() Palette { return r.palette }

// Render draws one frame of vp and returns the completed buffer.
//
// The frame is forked into one goroutine per row band, each writing only
// its own rows, and joined before returning. The barrier means a caller
// never observes a buffer mixing two viewport states, and the next
// Render may safely reuse the buffer. vp is a by-value snapshot: event
// handlers may mutate their Viewport as soon as Render returns.
//
// The returned slice aliases the renderer's buffer and is valid until
// the next Render call.
func (r *Renderer) Render(vp Viewport) []uint32 {
	var wg sync.WaitGroup
	for _, b := range splitRows(r.cfg.Height, r.cfg.Workers) {
		wg.Add(1)
		go func(b band) {
			defer wg.Done()
			r.renderBand(vp, b)
		}(b)
	}
	wg.Wait()
	return r.pix
}

// renderBand rasterizes rows [startRow, endRow) of the frame. Runs on a
// worker goroutine; touches only this band's rows of the shared buffer.
func (r *Renderer) renderBand(vp Viewport, b band) {
	w, h := r.cfg.Width, r.cfg.Height
	// Same arithmetic as Viewport.PointAt, with the denominators hoisted
	// out of the pixel loop.
	denRe := 0.5 * vp.Zoom * float64(w)
	denIm := 0.5 * vp.Zoom * float64(h)
	for y := b.startRow; y < b.endRow; y++ {
		im := (float64(y)-float64(h)/2)/denIm + vp.CenterIm
		row := r.pix[y*w : (y+1)*w]
		for x := range row {
			re := (float64(x)-float64(w)/2)/denRe + vp.CenterRe
			row[x] = r.palette[escapeIter(re, im, r.cfg.MaxIter)]
		}
	}
}
