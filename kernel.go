package mandelzoom

// escapeIter runs the quadratic map z = z^2 + c from z = 0 and returns
// the iteration at which |z|^2 first reaches the bailout threshold 4,
// or maxIter if the orbit never escapes. The squared magnitude comes
// for free from the zr^2/zi^2 terms of the recurrence, so no square
// root is taken.
func escapeIter(cr, ci float64, maxIter int) int {
	var zr, zi, zr2, zi2 float64
	iter := 0
	for iter < maxIter && zr2+zi2 < 4.0 {
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2 = zr * zr
		zi2 = zi * zi
		iter++
	}
	return iter
}
