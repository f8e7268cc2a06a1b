package draw

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/termgrid/pixel"
)

// Text renders s with face at one cell per glyph pixel, with the top-left corner at p.
// Glyph pixels with at least half coverage are plotted with c. It returns the cell rectangle
// occupied by the text.
func Text(dst Canvas, p image.Point, face font.Face, s string, c pixel.Cell) image.Rectangle {
	var (
		m = face.Metrics()
		w = font.MeasureString(face, s).Ceil()
		h = m.Height.Ceil()
	)
	if w <= 0 || h <= 0 {
		return image.Rectangle{Min: p, Max: p}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				dst.Plot(p.X+x, p.Y+y, c)
			}
		}
	}
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(w, h))}
}

// ParseFace parses a TrueType font and returns a face of size points, rendered at one pixel per
// point.
func ParseFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
