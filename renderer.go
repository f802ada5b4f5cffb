package heart

// Renderer consumes the sampled curve and presents it.
//
// The two slices have equal length and are positionally aligned. A
// Renderer draws the closed polyline through (xs[i], ys[i]) in index order;
// the path closes implicitly because the domain spans a full period.
type Renderer interface {
	Render(xs, ys []float64) error
}

// RenderFunc adapts an ordinary function to the Renderer interface.
type RenderFunc func(xs, ys []float64) error

// Render calls f(xs, ys).
func (f RenderFunc) Render(xs, ys []float64) error {
	return f(xs, ys)
}

// Show samples the curve at Samples points and passes the result to r.
// Errors from r are returned unchanged.
func Show(r Renderer) error {
	xs, ys := Sample(Samples)
	return r.Render(xs, ys)
}
