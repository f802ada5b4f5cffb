package figure

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/heart"
)

func near(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func sameColor(a, b RGBA) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func pixelAt(pm *Pixmap, p Point) RGBA {
	return pm.GetPixel(int(p.X), int(p.Y))
}

func drawHeart(t *testing.T, opts ...Option) (*Pixmap, Matrix, []float64, []float64) {
	t.Helper()
	xs, ys := heart.Sample(heart.Samples)
	fig := New(opts...)
	m, err := fig.DataTransform(xs, ys)
	if err != nil {
		t.Fatalf("DataTransform() = %v", err)
	}
	pm, err := fig.Draw(xs, ys)
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	return pm, m, xs, ys
}

// reddestNear returns the pixel with the lowest green channel in the 3x3
// block around p.
func reddestNear(pm *Pixmap, p Point) RGBA {
	best := RGBA{G: 2}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := pm.GetPixel(int(p.X)+dx, int(p.Y)+dy)
			if c.G < best.G {
				best = c
			}
		}
	}
	return best
}

func TestDrawSize(t *testing.T) {
	pm, _, _, _ := drawHeart(t)
	if pm.Width() != 600 || pm.Height() != 600 {
		t.Errorf("canvas = %dx%d, want 600x600", pm.Width(), pm.Height())
	}
}

func TestDrawFill(t *testing.T) {
	pm, m, _, _ := drawHeart(t)
	pink := MustNamed("pink")

	for _, p := range []Point{Pt(0, -5), Pt(5, 0), Pt(-5, 0), Pt(0, -14)} {
		if got := pixelAt(pm, m.TransformPoint(p)); !sameColor(got, pink) {
			t.Errorf("interior %v = %+v, want pink", p, got)
		}
	}
}

func TestDrawBackground(t *testing.T) {
	pm, m, _, _ := drawHeart(t)

	outside := []Point{
		{0, 0}, {599, 0}, {0, 599}, {599, 599},
		m.TransformPoint(Pt(14, -12)),
		m.TransformPoint(Pt(-14, -12)),
		m.TransformPoint(Pt(0, 9)),
	}
	for _, p := range outside {
		if got := pixelAt(pm, p); !sameColor(got, White) {
			t.Errorf("pixel %v = %+v, want white", p, got)
		}
	}
}

func TestDrawNoAxes(t *testing.T) {
	pm, _, _, _ := drawHeart(t)

	// Where a frame would be: left, right, and bottom edges of the axes box.
	probes := []Point{{75, 303}, {540, 303}, {307, 534}, {100, 534}}
	for _, p := range probes {
		for d := -2; d <= 2; d++ {
			q := Pt(p.X+float64(d), p.Y+float64(d))
			if got := pixelAt(pm, q); !sameColor(got, White) {
				t.Errorf("frame position %v = %+v, want white", q, got)
			}
		}
	}
}

func TestDrawOutline(t *testing.T) {
	pm, m, xs, ys := drawHeart(t)

	for _, i := range []int{0, 125, 250, 500, 750, 999} {
		p := m.TransformPoint(Pt(xs[i], ys[i]))
		c := reddestNear(pm, p)
		if c.R < 0.95 || c.G > 0.05 || c.B > 0.05 {
			t.Errorf("outline near sample %d (%v) = %+v, want red", i, p, c)
		}
	}
}

func TestDrawNoOutline(t *testing.T) {
	pm, m, xs, ys := drawHeart(t, WithLineWidth(0))

	p := m.TransformPoint(Pt(xs[250], ys[250]))
	if c := reddestNear(pm, p); c.G < 0.7 {
		t.Errorf("pixel near curve = %+v, want no red outline", c)
	}
}

func TestDrawFillColorOption(t *testing.T) {
	blue := RGB(0, 0, 1)
	pm, m, _, _ := drawHeart(t, WithFillColor(blue), WithBackground(Black))

	if got := pixelAt(pm, m.TransformPoint(Pt(0, -5))); !sameColor(got, blue) {
		t.Errorf("interior = %+v, want blue", got)
	}
	if got := pm.GetPixel(1, 1); !sameColor(got, Black) {
		t.Errorf("background = %+v, want black", got)
	}
}

// darkPixels counts pixels above the axes box that are darker than mid gray.
func darkPixels(pm *Pixmap) int {
	n := 0
	for y := 0; y < 72; y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).R < 0.5 {
				n++
			}
		}
	}
	return n
}

func TestDrawTitle(t *testing.T) {
	pm, _, _, _ := drawHeart(t)
	if n := darkPixels(pm); n < 50 {
		t.Errorf("title area has %d dark pixels, want a rendered title", n)
	}

	// The title is centered: ink is found on both halves of the canvas.
	var leftInk, rightInk int
	for y := 40; y < 72; y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).R < 0.5 {
				if x < 307 {
					leftInk++
				} else {
					rightInk++
				}
			}
		}
	}
	if leftInk == 0 || rightInk == 0 {
		t.Errorf("title ink left=%d right=%d, want both sides", leftInk, rightInk)
	}

	pm, _, _, _ = drawHeart(t, WithTitle(""))
	if n := darkPixels(pm); n != 0 {
		t.Errorf("untitled figure has %d dark pixels above the axes", n)
	}
}

func TestDrawDeterministic(t *testing.T) {
	a, _, _, _ := drawHeart(t)
	b, _, _, _ := drawHeart(t)
	if !bytes.Equal(a.data, b.data) {
		t.Error("two draws of the same data differ")
	}
}

func TestDrawErrors(t *testing.T) {
	tri := []float64{0, 1, 2}
	tests := []struct {
		name   string
		fig    *Figure
		xs, ys []float64
		want   error
	}{
		{"length mismatch", New(), tri, []float64{0, 1}, ErrLengthMismatch},
		{"too few points", New(), []float64{0, 1}, []float64{0, 1}, ErrTooFewPoints},
		{"empty", New(), nil, nil, ErrTooFewPoints},
		{"NaN", New(), tri, []float64{0, math.NaN(), 1}, ErrNonFinite},
		{"Inf", New(), []float64{0, math.Inf(1), 2}, tri, ErrNonFinite},
		{"zero size", New(WithSize(0, 6)), tri, tri, ErrInvalidSize},
		{"zero dpi", New(WithDPI(0)), tri, tri, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, err := tt.fig.Draw(tt.xs, tt.ys)
			if !errors.Is(err, tt.want) {
				t.Errorf("Draw() error = %v, want %v", err, tt.want)
			}
			if pm != nil {
				t.Error("Draw() returned a pixmap on error")
			}
		})
	}
}

func TestDataTransformEqualAspect(t *testing.T) {
	xs, ys := heart.Sample(heart.Samples)
	m, err := New().DataTransform(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	if m.A <= 0 || m.A != -m.E || m.B != 0 || m.D != 0 {
		t.Fatalf("transform %+v is not an equal-aspect y-flip", m)
	}

	// Every sample lands inside the axes box.
	for i := range xs {
		p := m.TransformPoint(Pt(xs[i], ys[i]))
		if p.X < 75 || p.X > 540 || p.Y < 72 || p.Y > 534 {
			t.Fatalf("sample %d maps to %v outside the axes box", i, p)
		}
	}

	// y grows up in data space.
	top := m.TransformPoint(Pt(0, 5))
	bottom := m.TransformPoint(Pt(0, -17))
	if top.Y >= bottom.Y {
		t.Errorf("data y=5 at row %v, y=-17 at row %v: want y flipped", top.Y, bottom.Y)
	}
}

func TestDataTransformDegenerateSpan(t *testing.T) {
	// A vertical segment has zero x span but must still map.
	m, err := New().DataTransform([]float64{1, 1, 1}, []float64{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	p := m.TransformPoint(Pt(1, 1))
	if math.Abs(p.X-307.5) > 1e-9 || math.Abs(p.Y-303) > 1e-9 {
		t.Errorf("center maps to %v, want axes center (307.5, 303)", p)
	}
}

func TestSizeOptions(t *testing.T) {
	w, h := New(WithSize(4, 3), WithDPI(50)).Size()
	if w != 200 || h != 150 {
		t.Errorf("Size() = %dx%d, want 200x150", w, h)
	}
	if got := New().Title(); got != "Love Heart" {
		t.Errorf("default title = %q", got)
	}
	if got := New(WithTitle("x")).Title(); got != "x" {
		t.Errorf("title option = %q", got)
	}
}

func BenchmarkDraw(b *testing.B) {
	xs, ys := heart.Sample(heart.Samples)
	fig := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := fig.Draw(xs, ys); err != nil {
			b.Fatal(err)
		}
	}
}
