package figure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/heart"
	"github.com/gogpu/heart/internal/raster"
)

// titleFont holds the two parsed views of the title typeface: go-text's for
// shaping and sfnt's for outlines. Both are read-only after parsing.
type titleFont struct {
	shape   *font.Font
	outline *sfnt.Font
}

var (
	titleFontOnce sync.Once
	titleFontVal  *titleFont
	titleFontErr  error
)

// loadTitleFont parses the embedded Go Regular font once.
func loadTitleFont() (*titleFont, error) {
	titleFontOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			titleFontErr = fmt.Errorf("figure: parse title font: %w", err)
			return
		}
		outline, err := sfnt.Parse(goregular.TTF)
		if err != nil {
			titleFontErr = fmt.Errorf("figure: parse title font outlines: %w", err)
			return
		}
		titleFontVal = &titleFont{shape: face.Font, outline: outline}
	})
	return titleFontVal, titleFontErr
}

// placedGlyph is a shaped glyph positioned relative to the pen origin.
type placedGlyph struct {
	gid  sfnt.GlyphIndex
	x, y float64 // offset from the line origin, y grows down
}

// paragraphDirection resolves the base direction of s with the Unicode
// bidirectional algorithm. Mixed text with any right-to-left run is shaped
// right-to-left.
func paragraphDirection(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return di.DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// layoutLine shapes s at the given pixel size and returns the positioned
// glyphs and the total advance width.
func layoutLine(tf *titleFont, s string, sizePx float64) ([]placedGlyph, float64) {
	runes := []rune(s)
	dir := paragraphDirection(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(tf.shape),
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	glyphs := make([]placedGlyph, 0, len(out.Glyphs))
	var pen float64
	for _, g := range out.Glyphs {
		glyphs = append(glyphs, placedGlyph{
			gid: sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // Go Regular has fewer than 65536 glyphs
			x:   pen + fixedToFloat(g.XOffset),
			y:   -fixedToFloat(g.YOffset),
		})
		pen += fixedToFloat(g.Advance)
	}
	return glyphs, pen
}

// glyphPolygons loads the outline of gid at sizePx and flattens its contours
// into closed polygons translated to (ox, oy).
func glyphPolygons(dst [][]raster.Point, f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, sizePx, ox, oy float64) ([][]raster.Point, error) {
	segments, err := f.LoadGlyph(buf, gid, fixed.Int26_6(sizePx*64), nil)
	if err != nil {
		return dst, err
	}

	pt := func(p fixed.Point26_6) raster.Point {
		return raster.Point{X: ox + fixedToFloat(p.X), Y: oy + fixedToFloat(p.Y)}
	}

	var contour []raster.Point
	flush := func() {
		if len(contour) > 2 {
			dst = append(dst, contour)
		}
		contour = nil
	}
	for _, seg := range segments {
		if seg.Op != sfnt.SegmentOpMoveTo && len(contour) == 0 {
			continue
		}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			contour = []raster.Point{pt(seg.Args[0])}
		case sfnt.SegmentOpLineTo:
			contour = append(contour, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			last := contour[len(contour)-1]
			contour = raster.FlattenQuad(contour, last, pt(seg.Args[0]), pt(seg.Args[1]), raster.Tolerance)
		case sfnt.SegmentOpCubeTo:
			last := contour[len(contour)-1]
			contour = raster.FlattenCubic(contour, last, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]), raster.Tolerance)
		}
	}
	flush()
	return dst, nil
}

// drawTitle shapes the title and fills its glyph outlines centered above the
// axes box.
func (f *Figure) drawTitle(r *raster.Rasterizer, target rasterTarget) error {
	tf, err := loadTitleFont()
	if err != nil {
		return err
	}

	sizePx := f.pointsToPixels(f.opts.titleSize)
	glyphs, width := layoutLine(tf, f.opts.title, sizePx)

	left, top, right, _ := f.axesBox()
	originX := (left+right)/2 - width/2
	baseline := top - f.pointsToPixels(f.opts.titlePad)

	var (
		buf   sfnt.Buffer
		polys [][]raster.Point
	)
	for _, g := range glyphs {
		polys, err = glyphPolygons(polys, tf.outline, &buf, g.gid, sizePx, originX+g.x, baseline+g.y)
		if err != nil {
			heart.Logger().Warn("figure: title glyph skipped", "gid", g.gid, "err", err)
		}
	}

	r.Fill(target, polys, raster.FillRuleNonZero, toRaster(f.opts.titleColor))
	heart.Logger().Debug("figure: title drawn", "glyphs", len(glyphs), "width", width, "contours", len(polys))
	return nil
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
