package raster

import "math"

// joinSegments is the number of sides of the polygon approximating a round
// join.
const joinSegments = 16

// StrokePolygons expands a polyline into polygons whose non-zero union is the
// stroke outline of the given width. Every segment becomes a quad and every
// vertex a round join; all polygons share one orientation so overlaps never
// cancel under the non-zero rule. If closed is true the last point connects
// back to the first.
func StrokePolygons(points []Point, width float64, closed bool) [][]Point {
	if len(points) == 0 || width <= 0 {
		return nil
	}
	half := width / 2

	polys := make([][]Point, 0, 2*len(points))
	segments := len(points) - 1
	if closed {
		segments = len(points)
	}
	for i := 0; i < segments; i++ {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		if q := segmentQuad(p0, p1, half); q != nil {
			polys = append(polys, q)
		}
	}
	for _, p := range points {
		polys = append(polys, disc(p, half))
	}
	return polys
}

// segmentQuad returns the rectangle of half-width half around p0-p1, or nil
// for a degenerate segment.
func segmentQuad(p0, p1 Point, half float64) []Point {
	d := p1.Sub(p0)
	length := d.Length()
	if length < 1e-9 {
		return nil
	}
	n := Point{X: -d.Y / length * half, Y: d.X / length * half}
	return orient([]Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)})
}

// disc approximates a circle of radius r around c.
func disc(c Point, r float64) []Point {
	poly := make([]Point, joinSegments)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / joinSegments
		poly[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return orient(poly)
}

// SignedArea returns twice the signed area of a closed polygon.
// It is positive for polygons that turn clockwise on a y-down raster.
func SignedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p := poly[i]
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// orient reverses poly in place when needed so that SignedArea(poly) >= 0.
func orient(poly []Point) []Point {
	if SignedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}
