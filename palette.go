package mandelzoom

import "math"

// Palette maps an escape iteration count to a packed 0xAARRGGBB color.
// Entry MaxIter (the non-escaping case) is the final, darkest entry.
// It is built once and never written afterwards, so all render workers
// share it without locking.
type Palette []uint32

// NewPalette builds the iteration -> color table for the given cap.
// Channels follow a smooth cubic ramp over t = i/maxIter; the polynomial
// peaks stay inside 8 bits for these coefficients, but the channels are
// clamped anyway.
func NewPalette(maxIter int) Palette {
	p := make(Palette, maxIter+1)
	for i := range p {
		t := float64(i) / float64(maxIter)
		r := channel(9 * (1 - t) * t * t * t)
		g := channel(15 * (1 - t) * (1 - t) * t * t)
		b := channel(8.5 * (1 - t) * (1 - t) * (1 - t) * t)
		p[i] = 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
	return p
}

func channel(v float64) uint8 {
	s := math.Round(v * 255)
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// ToRGBA converts packed ARGB pixels into the byte order canvas and
// texture uploads expect (R, G, B, A per pixel). dst is reused when it
// is large enough.
func ToRGBA(pix []uint32, dst []byte) []byte {
	n := len(pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range pix {
		j := i * 4
		dst[j+0] = uint8(c >> 16)
		dst[j+1] = uint8(c >> 8)
		dst[j+2] = uint8(c)
		dst[j+3] = uint8(c >> 24)
	}
	return dst
}
