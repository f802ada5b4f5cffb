package raster

import "math"

// Point represents a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Edge represents a non-horizontal line segment for scanline rasterization.
// y0 < y1 always holds; dir records the original orientation.
type Edge struct {
	x0, y0 float64 // Top point
	x1, y1 float64 // Bottom point
	dxdy   float64 // Change in x per unit of y
	dir    int     // +1 if the segment pointed down, -1 if up
}

// NewEdge creates an edge from p0 to p1.
// ok is false for horizontal segments, which never cross a scanline.
func NewEdge(p0, p1 Point) (e Edge, ok bool) {
	if p0.Y == p1.Y {
		return Edge{}, false
	}
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}, true
}

// XAtY returns the x coordinate of the edge at scanline y.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// crossing is an edge intersection with a sub-scanline.
type crossing struct {
	x   float64
	dir int
}

// edgesOf converts closed polygons into an edge list.
// Each polygon is closed implicitly from its last point back to its first.
func edgesOf(polygons [][]Point) []Edge {
	n := 0
	for _, poly := range polygons {
		n += len(poly)
	}
	edges := make([]Edge, 0, n)
	for _, poly := range polygons {
		if len(poly) < 2 {
			continue
		}
		for i := range poly {
			p0 := poly[i]
			p1 := poly[(i+1)%len(poly)]
			if e, ok := NewEdge(p0, p1); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}
