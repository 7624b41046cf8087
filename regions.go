package mandelzoom

// Region is an axis-aligned window of the complex plane, used to name
// landmarks by their published coordinate boxes.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Viewport centers on the region and zooms so the visible plane height
// matches the region height (zoom 1 spans two plane units).
func (r Region) Viewport() Viewport {
	return Viewport{
		CenterRe: (r.Xmin + r.Xmax) / 2,
		CenterIm: (r.Ymin + r.Ymax) / 2,
		Zoom:     2 / (r.Ymax - r.Ymin),
	}
}

// Classic regions / landmarks in the Mandelbrot set.
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Regions names the landmark presets for command-line lookup.
var Regions = map[string]Region{
	"seahorse":    SeahorseValley,
	"elephant":    ElephantValley,
	"minibrot":    SpiralMinibrot,
	"triple":      TripleSpiral,
	"dragon":      ValleyOfTheDragon,
	"mini-spiral": MinibrotInMiniSpiral,
}
