package mandelzoom

import (
	"math"
	"slices"
	"testing"
	"unsafe"
)

func TestSplitRowsPartition(t *testing.T) {
	cases := []struct{ height, n int }{
		{800, 16},
		{800, 1},
		{1, 1},
		{10, 3},
		{7, 16}, // more bands than rows: leading bands are empty
		{100, 7},
		{1081, 16},
	}
	for _, tc := range cases {
		bands := splitRows(tc.height, tc.n)
		if len(bands) != tc.n {
			t.Errorf("splitRows(%d, %d): got %d bands, want %d", tc.height, tc.n, len(bands), tc.n)
			continue
		}
		// Contiguous half-open bands starting at 0 and ending at height
		// cover every row exactly once.
		prevEnd := 0
		for i, b := range bands {
			if b.startRow != prevEnd {
				t.Errorf("splitRows(%d, %d): band %d starts at %d, want %d", tc.height, tc.n, i, b.startRow, prevEnd)
			}
			if b.endRow < b.startRow {
				t.Errorf("splitRows(%d, %d): band %d is negative: [%d, %d)", tc.height, tc.n, i, b.startRow, b.endRow)
			}
			prevEnd = b.endRow
		}
		if prevEnd != tc.height {
			t.Errorf("splitRows(%d, %d): bands end at %d, want %d", tc.height, tc.n, prevEnd, tc.height)
		}
	}
}

func TestAlignedPixels(t *testing.T) {
	pix, err := alignedPixels(333)
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != 333 {
		t.Fatalf("got %d pixels, want 333", len(pix))
	}
	if addr := uintptr(unsafe.Pointer(&pix[0])); addr%cacheLine != 0 {
		t.Fatalf("buffer starts at %#x, not cache-line aligned", addr)
	}

	if _, err := alignedPixels(maxPixels + 1); err == nil {
		t.Fatal("oversized allocation did not fail")
	}
}

func TestNewRendererRejectsBadConfig(t *testing.T) {
	bad := []Config{
		{Width: -1},
		{Height: -100},
		{MaxIter: -5},
		{Workers: -2},
		{Width: 1 << 20, Height: 1 << 20},
		// Width*Height wraps int; the guard must reject it without
		// multiplying, or Render would slice an empty buffer.
		{Width: math.MaxInt / 2, Height: math.MaxInt / 2, MaxIter: 10, Workers: 2},
	}
	for _, cfg := range bad {
		if _, err := NewRenderer(cfg); err == nil {
			t.Errorf("NewRenderer(%+v) succeeded, want error", cfg)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r, err := NewRenderer(Config{Width: 64, Height: 48, MaxIter: 100, Workers: 5})
	if err != nil {
		t.Fatal(err)
	}
	vp := SeahorseValley.Viewport()

	first := slices.Clone(r.Render(vp))
	second := r.Render(vp)
	if !slices.Equal(first, second) {
		t.Fatal("two renders of the same viewport differ")
	}
}

func TestRenderMatchesKernel(t *testing.T) {
	cfg := Config{Width: 40, Height: 30, MaxIter: 150, Workers: 4}
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	vp := Viewport{CenterRe: -0.7, CenterIm: 0.1, Zoom: 3}
	pix := r.Render(vp)

	for _, p := range [][2]int{{0, 0}, {39, 29}, {20, 15}, {7, 23}} {
		x, y := p[0], p[1]
		re, im := vp.PointAt(x, y, cfg.Width, cfg.Height)
		want := r.Palette()[escapeIter(re, im, cfg.MaxIter)]
		if got := pix[y*cfg.Width+x]; got != want {
			t.Errorf("pixel (%d, %d) = %#08x, want %#08x", x, y, got, want)
		}
	}
}

func TestRenderDefaultView(t *testing.T) {
	if testing.Short() {
		t.Skip("full 800x800 frame")
	}
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatal(err)
	}
	pix := r.Render(DefaultViewport())

	// The center pixel sits on (-0.5, 0) inside the main cardioid: it
	// never escapes and takes the final palette entry.
	if got := pix[400*800+400]; got != r.Palette()[DefaultMaxIter] {
		t.Errorf("center pixel = %#08x, want %#08x", got, r.Palette()[DefaultMaxIter])
	}

	// The top-left pixel maps far outside the set and escapes within a
	// few iterations.
	re, im := DefaultViewport().PointAt(0, 0, 800, 800)
	iter := escapeIter(re, im, DefaultMaxIter)
	if iter >= 10 {
		t.Errorf("corner escape count = %d, want < 10", iter)
	}
	if got := pix[0]; got != r.Palette()[iter] {
		t.Errorf("corner pixel = %#08x, want %#08x", got, r.Palette()[iter])
	}
}

func BenchmarkRender(b *testing.B) {
	r, err := NewRenderer(Config{Width: 800, Height: 800, MaxIter: 250})
	if err != nil {
		b.Fatal(err)
	}
	vp := DefaultViewport()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(vp)
	}
}
