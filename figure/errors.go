package figure

import "errors"

// Package errors for figure.
var (
	// ErrLengthMismatch is returned when the x and y sequences differ in length.
	ErrLengthMismatch = errors.New("figure: x and y lengths differ")

	// ErrTooFewPoints is returned when fewer than three points are given,
	// which cannot enclose an area.
	ErrTooFewPoints = errors.New("figure: fewer than 3 points")

	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("figure: non-finite coordinate")

	// ErrInvalidSize is returned when the canvas has no pixels.
	ErrInvalidSize = errors.New("figure: invalid canvas size")
)
