package mandelzoom

// zoomStep is the magnification change per wheel notch.
const zoomStep = 1.1

// Viewport maps pixel space onto a rectangular window of the complex
// plane, parameterized by center and zoom. Zoom 1 shows a window two
// units tall and wide; larger zoom magnifies around the center.
//
// A Viewport is mutated only on the event path between frames. Renders
// take it by value, so an in-flight frame never sees a later mutation.
type Viewport struct {
	CenterRe float64
	CenterIm float64
	Zoom     float64 // always > 0
}

// DefaultViewport frames the full set with the main cardioid centered.
func DefaultViewport() Viewport {
	return Viewport{CenterRe: -0.5, CenterIm: 0, Zoom: 1}
}

// PointAt returns the complex-plane point under pixel (x, y) of a
// width x height image. The center pixel maps to (CenterRe, CenterIm).
func (v Viewport) PointAt(x, y, width, height int) (re, im float64) {
	re = (float64(x)-float64(width)/2)/(0.5*v.Zoom*float64(width)) + v.CenterRe
	im = (float64(y)-float64(height)/2)/(0.5*v.Zoom*float64(height)) + v.CenterIm
	return re, im
}

// ZoomIn magnifies by one wheel notch. Zoom is unclamped: extreme
// magnification silently loses float64 precision rather than failing.
func (v *Viewport) ZoomIn() { v.Zoom *= zoomStep }

// ZoomOut shrinks by one wheel notch.
func (v *Viewport) ZoomOut() { v.Zoom /= zoomStep }

// Pan moves the center by a pixel-space drag delta, so the image follows
// the cursor. The formula is linear in (dx, dy): accumulating small drag
// deltas lands on the same center as one combined delta.
func (v *Viewport) Pan(dx, dy float64, width, height int) {
	v.CenterRe -= dx / (v.Zoom * float64(width))
	v.CenterIm -= dy / (v.Zoom * float64(height))
}
