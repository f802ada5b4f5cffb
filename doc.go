// Package heart samples the parametric heart curve and hands the samples to a
// Renderer.
//
// # Overview
//
// The curve is
//
//	x(t) = 16·sin³(t)
//	y(t) = 13·cos(t) − 5·cos(2t) − 2·cos(3t) − cos(4t)
//
// evaluated at [Samples] evenly spaced values of t over the closed interval
// [0, 2π]. Sampling is a pure computation; drawing is delegated to a
// [Renderer], so the math can be tested without a display.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/heart"
//	    "github.com/gogpu/heart/display"
//	    "github.com/gogpu/heart/figure"
//	)
//
//	if err := heart.Show(display.NewWindow(figure.New())); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Samples are in data space: y grows up, the curve spans roughly
// x ∈ [−16, 16] and y ∈ [−17, 12]. The figure package maps data space to
// pixels with an equal-aspect transform.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package heart
