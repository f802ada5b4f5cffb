package figure

// Option configures a Figure during creation.
//
// Example:
//
//	// Default 600x600 figure
//	fig := figure.New()
//
//	// Larger canvas, no title
//	fig := figure.New(figure.WithSize(8, 8), figure.WithTitle(""))
type Option func(*options)

// options holds the styling of a Figure.
type options struct {
	widthIn, heightIn float64 // canvas size in inches
	dpi               float64
	title             string
	titleSize         float64 // points
	titlePad          float64 // points between title baseline and axes top
	fill              RGBA
	stroke            RGBA
	lineWidth         float64 // points
	background        RGBA
	titleColor        RGBA
}

// defaultOptions mirrors a 6x6 inch line plot with a filled interior.
func defaultOptions() options {
	return options{
		widthIn:    6,
		heightIn:   6,
		dpi:        100,
		title:      "Love Heart",
		titleSize:  12,
		titlePad:   6,
		fill:       MustNamed("pink"),
		stroke:     MustNamed("red"),
		lineWidth:  1.5,
		background: White,
		titleColor: Black,
	}
}

// WithSize sets the canvas size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(o *options) {
		o.widthIn = widthIn
		o.heightIn = heightIn
	}
}

// WithDPI sets the canvas resolution in pixels per inch.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.dpi = dpi
	}
}

// WithTitle sets the title drawn above the axes. An empty title draws nothing.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithFillColor sets the interior color.
func WithFillColor(c RGBA) Option {
	return func(o *options) {
		o.fill = c
	}
}

// WithStrokeColor sets the outline color.
func WithStrokeColor(c RGBA) Option {
	return func(o *options) {
		o.stroke = c
	}
}

// WithLineWidth sets the outline width in points. Zero disables the outline.
func WithLineWidth(points float64) Option {
	return func(o *options) {
		o.lineWidth = points
	}
}

// WithBackground sets the canvas color.
func WithBackground(c RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}
