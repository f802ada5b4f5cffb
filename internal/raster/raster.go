// Package raster provides anti-aliased scanline rasterization of polygons.
//
// Coverage is accumulated per row from SubScanlines sub-scanlines. Each
// sub-scanline contributes exact fractional horizontal coverage at span
// ends, so vertical edges get smooth gradients without horizontal
// supersampling. A row is blended into the destination once, after all its
// sub-scanlines are accumulated.
package raster

import (
	"math"
	"slices"
)

// SubScanlines is the number of sub-scanlines sampled per pixel row.
const SubScanlines = 4

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is the destination of a fill (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	// BlendPixelAlpha blends c over the existing pixel with coverage alpha
	// in the range 0-255.
	BlendPixelAlpha(x, y int, c RGBA, alpha uint8)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the name of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Rasterizer fills polygons into a Pixmap. Its scratch buffers are
// reused between calls, so a Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int

	cover     []float32
	active    []Edge
	crossings []crossing
}

// NewRasterizer creates a rasterizer for a destination of the given size.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:     width,
		height:    height,
		cover:     make([]float32, max(width, 0)+1),
		active:    make([]Edge, 0, 32),
		crossings: make([]crossing, 0, 32),
	}
}

// Fill rasterizes the union of the given closed polygons onto pixmap.
// Polygons are closed implicitly; all edges take part in a single winding
// computation, so holes and overlapping subpaths follow fillRule.
func (r *Rasterizer) Fill(pixmap Pixmap, polygons [][]Point, fillRule FillRule, color RGBA) {
	edges := edgesOf(polygons)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
		xMin = math.Min(xMin, math.Min(e.x0, e.x1))
		xMax = math.Max(xMax, math.Max(e.x0, e.x1))
	}

	top := max(int(math.Floor(yMin)), 0)
	bottom := min(int(math.Ceil(yMax)), r.height, pixmap.Height())
	left := max(int(math.Floor(xMin)), 0)
	right := min(int(math.Ceil(xMax)), r.width, pixmap.Width())
	if top >= bottom || left >= right {
		return
	}

	slices.SortFunc(edges, func(a, b Edge) int {
		switch {
		case a.y0 < b.y0:
			return -1
		case a.y0 > b.y0:
			return 1
		default:
			return 0
		}
	})

	next := 0
	r.active = r.active[:0]
	const weight = 1.0 / SubScanlines

	for y := top; y < bottom; y++ {
		row := r.cover[left:right]
		clear(row)
		touched := false

		for s := 0; s < SubScanlines; s++ {
			sy := float64(y) + (float64(s)+0.5)*weight

			for next < len(edges) && edges[next].y0 <= sy {
				r.active = append(r.active, edges[next])
				next++
			}
			r.active = slices.DeleteFunc(r.active, func(e Edge) bool {
				return e.y1 <= sy
			})

			r.crossings = r.crossings[:0]
			for i := range r.active {
				e := &r.active[i]
				r.crossings = append(r.crossings, crossing{x: e.XAtY(sy), dir: e.dir})
			}
			if len(r.crossings) < 2 {
				continue
			}
			slices.SortFunc(r.crossings, func(a, b crossing) int {
				switch {
				case a.x < b.x:
					return -1
				case a.x > b.x:
					return 1
				default:
					return 0
				}
			})

			if r.spans(fillRule, left, right, weight) {
				touched = true
			}
		}

		if touched {
			r.blendRow(pixmap, y, left, right, color)
		}
	}
}

// spans walks the sorted crossings of one sub-scanline and accumulates
// coverage for every span that is inside according to fillRule.
func (r *Rasterizer) spans(fillRule FillRule, left, right int, weight float64) bool {
	hit := false
	if fillRule == FillRuleEvenOdd {
		for i := 0; i+1 < len(r.crossings); i += 2 {
			if r.accumulate(r.crossings[i].x, r.crossings[i+1].x, left, right, weight) {
				hit = true
			}
		}
		return hit
	}

	winding := 0
	var x0 float64
	for _, c := range r.crossings {
		if winding == 0 {
			x0 = c.x
		}
		winding += c.dir
		if winding == 0 {
			if r.accumulate(x0, c.x, left, right, weight) {
				hit = true
			}
		}
	}
	return hit
}

// accumulate adds coverage for the horizontal span [x0, x1) clipped to
// [left, right). Partially covered end pixels get fractional coverage.
func (r *Rasterizer) accumulate(x0, x1 float64, left, right int, weight float64) bool {
	x0 = math.Max(x0, float64(left))
	x1 = math.Min(x1, float64(right))
	if x0 >= x1 {
		return false
	}

	i0 := int(x0)
	i1 := int(x1)
	if i0 == i1 {
		r.cover[i0] += float32((x1 - x0) * weight)
		return true
	}

	r.cover[i0] += float32((float64(i0+1) - x0) * weight)
	for i := i0 + 1; i < i1; i++ {
		r.cover[i] += float32(weight)
	}
	if i1 < right {
		r.cover[i1] += float32((x1 - float64(i1)) * weight)
	}
	return true
}

// blendRow converts accumulated coverage into alpha and blends one row.
func (r *Rasterizer) blendRow(pixmap Pixmap, y, left, right int, color RGBA) {
	for x := left; x < right; x++ {
		c := r.cover[x]
		if c <= 0 {
			continue
		}
		if c > 1 {
			c = 1
		}
		alpha := uint8(c*255 + 0.5)
		if alpha == 0 {
			continue
		}
		pixmap.BlendPixelAlpha(x, y, color, alpha)
	}
}
