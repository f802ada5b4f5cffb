// Package figure rasterizes a sampled curve the way a plotting library draws
// a filled line plot: a closed, filled polygon with a stroked outline, placed
// in an equal-aspect axes box with no ticks or frame, and a centered title.
//
// # Quick Start
//
//	fig := figure.New()
//	pm, err := fig.Draw(xs, ys)
//	if err != nil {
//	    return err
//	}
//	img := pm.ToImage()
//
// # Defaults
//
// A default Figure is 6×6 inches at 100 dpi on a white background. The
// interior is filled with pink, the outline is 1.5 pt red, and the title
// "Love Heart" is set in 12 pt Go Regular. Options change the styling only.
//
// # Layout
//
// The axes box occupies the fraction [0.125, 0.9] × [0.11, 0.88] of the
// canvas. Data limits are the data bounds with a 5% margin, widened on one
// axis so both axes share one scale. See [Figure.DataTransform].
package figure
