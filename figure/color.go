package figure

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Named returns the SVG 1.1 color with the given lowercase name, such as
// "red" or "pink". ok is false for unknown names.
func Named(name string) (c RGBA, ok bool) {
	rgba, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return FromColor(rgba), true
}

// MustNamed is like Named but panics on an unknown name.
// It is intended for package-level defaults.
func MustNamed(name string) RGBA {
	c, ok := Named(name)
	if !ok {
		panic("figure: unknown color name " + name)
	}
	return c
}

// clamp255 restricts a value to [0, 255] range and rounds it.
func clamp255(v float64) float64 {
	return math.Round(math.Max(0, math.Min(255, v)))
}
