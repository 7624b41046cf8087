package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mandelzoom"
)

// game translates window events into viewport mutations and drives the
// frame pipeline: input is applied between frames, then one synchronous
// render refreshes the texture when the viewport changed.
type game struct {
	renderer *mandelzoom.Renderer
	viewport mandelzoom.Viewport

	frame *ebiten.Image
	rgba  []byte
	dirty bool

	dragging bool
	prevX    int
	prevY    int
}

func newGame(r *mandelzoom.Renderer, vp mandelzoom.Viewport) *game {
	cfg := r.Config()
	return &game{
		renderer: r,
		viewport: vp,
		frame:    ebiten.NewImage(cfg.Width, cfg.Height),
		dirty:    true,
	}
}

func (g *game) Update() error {
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		if wheelY > 0 {
			g.viewport.ZoomIn()
		} else {
			g.viewport.ZoomOut()
		}
		g.dirty = true
	}

	x, y := ebiten.CursorPosition()
	switch {
	case !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.dragging = false
	case !g.dragging:
		// Button just went down: anchor the drag, pan starts next tick.
		g.dragging = true
	default:
		if dx, dy := x-g.prevX, y-g.prevY; dx != 0 || dy != 0 {
			cfg := g.renderer.Config()
			g.viewport.Pan(float64(dx), float64(dy), cfg.Width, cfg.Height)
			g.dirty = true
		}
	}
	g.prevX, g.prevY = x, y
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		pix := g.renderer.Render(g.viewport)
		g.rgba = mandelzoom.ToRGBA(pix, g.rgba)
		g.frame.WritePixels(g.rgba)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.renderer.Config()
	return cfg.Width, cfg.Height
}
