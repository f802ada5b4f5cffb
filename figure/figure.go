package figure

import (
	"fmt"
	"math"

	"github.com/gogpu/heart"
	"github.com/gogpu/heart/internal/raster"
)

// Axes box as fractions of the canvas, measured from the bottom-left.
const (
	axesLeft   = 0.125
	axesRight  = 0.9
	axesBottom = 0.11
	axesTop    = 0.88

	// dataMargin pads the data limits on each side, as a fraction of the span.
	dataMargin = 0.05
)

// Figure draws a filled, outlined closed curve with a title.
// A Figure holds only styling; it is safe to call Draw concurrently.
type Figure struct {
	opts options
}

// New creates a Figure with the given options applied over the defaults.
func New(opts ...Option) *Figure {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Figure{opts: o}
}

// Title returns the figure title.
func (f *Figure) Title() string {
	return f.opts.title
}

// Size returns the canvas size in pixels.
func (f *Figure) Size() (width, height int) {
	return int(math.Round(f.opts.widthIn * f.opts.dpi)), int(math.Round(f.opts.heightIn * f.opts.dpi))
}

// pointsToPixels converts a length in points to pixels at the figure dpi.
func (f *Figure) pointsToPixels(pt float64) float64 {
	return pt * f.opts.dpi / 72
}

// axesBox returns the axes rectangle in pixel coordinates.
func (f *Figure) axesBox() (left, top, right, bottom float64) {
	w, h := f.Size()
	return axesLeft * float64(w), (1 - axesTop) * float64(h),
		axesRight * float64(w), (1 - axesBottom) * float64(h)
}

// validate checks the sequences handed to Draw.
func validate(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return fmt.Errorf("%w: point %d is (%v, %v)", ErrNonFinite, i, xs[i], ys[i])
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DataTransform returns the affine mapping from data space to pixels used by
// Draw. Both axes share one scale and y is flipped so that it grows up.
func (f *Figure) DataTransform(xs, ys []float64) (Matrix, error) {
	if w, h := f.Size(); w <= 0 || h <= 0 {
		return Matrix{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if err := validate(xs, ys); err != nil {
		return Matrix{}, err
	}

	xMin, xMax := bounds(xs)
	yMin, yMax := bounds(ys)
	spanX := paddedSpan(xMax - xMin)
	spanY := paddedSpan(yMax - yMin)

	left, top, right, bottom := f.axesBox()
	scale := math.Min((right-left)/spanX, (bottom-top)/spanY)

	dataCX, dataCY := (xMin+xMax)/2, (yMin+yMax)/2
	boxCX, boxCY := (left+right)/2, (top+bottom)/2

	// Center the data in the box, then flip y.
	m := Translate(boxCX, boxCY).
		Multiply(Scale(scale, -scale)).
		Multiply(Translate(-dataCX, -dataCY))

	heart.Logger().Debug("figure: data transform",
		"scale", scale, "xmin", xMin, "xmax", xMax, "ymin", yMin, "ymax", yMax)
	return m, nil
}

// bounds returns the minimum and maximum of vs.
func bounds(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// paddedSpan widens a data span by the margin on both sides.
// A zero span is treated as one unit so a degenerate axis still maps.
func paddedSpan(span float64) float64 {
	if span == 0 {
		span = 1
	}
	return span * (1 + 2*dataMargin)
}

// Draw renders the closed curve through (xs[i], ys[i]) onto a new Pixmap.
// The interior is filled first with the non-zero rule, then the outline is
// stroked over it, then the title is drawn above the axes.
func (f *Figure) Draw(xs, ys []float64) (*Pixmap, error) {
	m, err := f.DataTransform(xs, ys)
	if err != nil {
		return nil, err
	}

	w, h := f.Size()
	pm := NewPixmap(w, h)
	pm.Clear(f.opts.background)

	poly := make([]raster.Point, len(xs))
	for i := range xs {
		p := m.TransformPoint(Pt(xs[i], ys[i]))
		poly[i] = raster.Point{X: p.X, Y: p.Y}
	}

	r := raster.NewRasterizer(w, h)
	target := rasterTarget{pm}
	r.Fill(target, [][]raster.Point{poly}, raster.FillRuleNonZero, toRaster(f.opts.fill))

	if lw := f.pointsToPixels(f.opts.lineWidth); lw > 0 {
		outline := raster.StrokePolygons(poly, lw, true)
		r.Fill(target, outline, raster.FillRuleNonZero, toRaster(f.opts.stroke))
	}

	if f.opts.title != "" {
		if err := f.drawTitle(r, target); err != nil {
			return nil, err
		}
	}

	heart.Logger().Debug("figure: drawn", "width", w, "height", h, "points", len(xs))
	return pm, nil
}
