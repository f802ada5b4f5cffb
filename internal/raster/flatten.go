package raster

import "math"

// Tolerance is the default maximum distance, in pixels, between a curve
// and its flattened polyline.
const Tolerance = 0.1

// maxFlattenDepth bounds recursive subdivision for degenerate input.
const maxFlattenDepth = 16

// FlattenQuad appends the polyline approximation of the quadratic Bézier
// p0-c-p1 to dst, excluding p0 and including p1.
func FlattenQuad(dst []Point, p0, c, p1 Point, tolerance float64) []Point {
	return flattenQuad(dst, p0, c, p1, tolerance, 0)
}

func flattenQuad(dst []Point, p0, c, p1 Point, tolerance float64, depth int) []Point {
	if depth >= maxFlattenDepth || distanceToLine(c, p0, p1) < tolerance {
		return append(dst, p1)
	}
	q0 := p0.Lerp(c, 0.5)
	q1 := c.Lerp(p1, 0.5)
	m := q0.Lerp(q1, 0.5)
	dst = flattenQuad(dst, p0, q0, m, tolerance, depth+1)
	return flattenQuad(dst, m, q1, p1, tolerance, depth+1)
}

// FlattenCubic appends the polyline approximation of the cubic Bézier
// p0-c1-c2-p1 to dst, excluding p0 and including p1.
func FlattenCubic(dst []Point, p0, c1, c2, p1 Point, tolerance float64) []Point {
	return flattenCubic(dst, p0, c1, c2, p1, tolerance, 0)
}

func flattenCubic(dst []Point, p0, c1, c2, p1 Point, tolerance float64, depth int) []Point {
	d := math.Max(distanceToLine(c1, p0, p1), distanceToLine(c2, p0, p1))
	if depth >= maxFlattenDepth || d < tolerance {
		return append(dst, p1)
	}
	// de Casteljau split at t = 0.5.
	q0 := p0.Lerp(c1, 0.5)
	q1 := c1.Lerp(c2, 0.5)
	q2 := c2.Lerp(p1, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	m := r0.Lerp(r1, 0.5)
	dst = flattenCubic(dst, p0, q0, r0, m, tolerance, depth+1)
	return flattenCubic(dst, m, r1, q2, p1, tolerance, depth+1)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 < 1e-20 {
		return p.Sub(a).Length()
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}
