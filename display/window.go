// Package display presents a rendered figure in a desktop window.
package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/heart"
	"github.com/gogpu/heart/figure"
)

// Window is a heart.Renderer that draws the curve with a Figure and shows
// the result in a window. Render blocks until the window is closed.
type Window struct {
	fig *figure.Figure

	// run opens the window and runs the game loop. Replaced in tests.
	run func(title string, width, height int, g ebiten.Game) error
}

var _ heart.Renderer = (*Window)(nil)

// NewWindow creates a Window that renders with fig.
func NewWindow(fig *figure.Figure) *Window {
	return &Window{fig: fig, run: runWindow}
}

// Render draws xs, ys and displays the image. Errors from the figure or
// from the windowing system are returned unchanged.
func (w *Window) Render(xs, ys []float64) error {
	pm, err := w.fig.Draw(xs, ys)
	if err != nil {
		return err
	}

	title := w.fig.Title()
	heart.Logger().Info("display: window opened", "title", title, "width", pm.Width(), "height", pm.Height())
	err = w.run(title, pm.Width(), pm.Height(), newGame(pm.ToImage()))
	heart.Logger().Info("display: window closed", "err", err)
	return err
}

// runWindow configures the ebiten window and runs g until the window closes.
func runWindow(title string, width, height int, g ebiten.Game) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Nothing changes after the first frame.
	ebiten.SetTPS(10)
	return ebiten.RunGame(g)
}

// game shows a static image, scaled to the window by ebiten.
type game struct {
	src    image.Image
	width  int
	height int
	img    *ebiten.Image
}

func newGame(src image.Image) *game {
	b := src.Bounds()
	return &game{src: src, width: b.Dx(), height: b.Dy()}
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
