package heart

import "math"

// Samples is the number of parameter values the curve is sampled at.
const Samples = 1000

// Domain returns n values evenly spaced over the closed interval [0, 2π].
// The first value is exactly 0 and the last is exactly 2π.
// Domain(1) is [0]; n <= 0 yields nil.
func Domain(n int) []float64 {
	if n <= 0 {
		return nil
	}
	t := make([]float64, n)
	if n == 1 {
		return t
	}

	step := 2 * math.Pi / float64(n-1)
	for i := range t {
		t[i] = float64(i) * step
	}
	// Pin the endpoint so accumulated rounding never leaves the interval.
	t[n-1] = 2 * math.Pi
	return t
}

// X evaluates x(t) = 16·sin³(t).
func X(t float64) float64 {
	s := math.Sin(t)
	return 16 * s * s * s
}

// Y evaluates y(t) = 13·cos(t) − 5·cos(2t) − 2·cos(3t) − cos(4t).
func Y(t float64) float64 {
	return 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
}

// Sample evaluates the curve over Domain(n).
// xs[i] and ys[i] correspond to Domain(n)[i]; both slices have the
// same length as the domain.
func Sample(n int) (xs, ys []float64) {
	t := Domain(n)
	xs = make([]float64, len(t))
	ys = make([]float64, len(t))
	for i, ti := range t {
		xs[i] = X(ti)
		ys[i] = Y(ti)
	}

	Logger().Debug("heart: sampled curve", "points", len(t))
	return xs, ys
}
