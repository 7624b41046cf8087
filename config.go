package mandelzoom

import "fmt"

// Defaults matching the classic 800x800 interactive view.
const (
	DefaultWidth   = 800
	DefaultHeight  = 800
	DefaultMaxIter = 1000
	DefaultWorkers = 16
)

// Config holds the fixed per-renderer parameters. A zero value for any
// field selects its default; negative values are rejected.
type Config struct {
	Width   int // image width in pixels
	Height  int // image height in pixels
	MaxIter int // escape-time iteration cap
	Workers int // number of row bands rendered concurrently
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.MaxIter == 0 {
		c.MaxIter = DefaultMaxIter
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	return c
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("iteration cap must be positive, got %d", c.MaxIter)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	// Compare against the quotient so huge dimensions are rejected
	// before Width*Height can overflow int.
	if c.Width > maxPixels/c.Height {
		return fmt.Errorf("%dx%d exceeds the %d pixel limit", c.Width, c.Height, maxPixels)
	}
	return nil
}
