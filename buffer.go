package termgrid

import (
	"image"
	"image/color"
	"log"
	"os"

	"golang.org/x/image/font"

	"github.com/BeatGlow/termgrid/draw"
	"github.com/BeatGlow/termgrid/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("TERMGRID_DEBUG") != ""
}

// Buffer is a fixed size grid of cells.
type Buffer struct {
	width  int
	height int

	// Grids are indexed [y][x].
	chars [][]rune
	fg    [][]pixel.Color
	bg    [][]pixel.Color

	// out holds the serialized frame, its capacity is fixed by New.
	out []byte
}

// New allocates a width by height buffer of blank cells on black. A non-positive dimension
// results in an empty buffer on which every drawing call is a no-op.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	b := &Buffer{
		width:  width,
		height: height,
		chars:  make([][]rune, height),
		fg:     make([][]pixel.Color, height),
		bg:     make([][]pixel.Color, height),
		out:    make([]byte, 0, frameSize(width, height)),
	}
	for y := 0; y < height; y++ {
		b.chars[y] = make([]rune, width)
		b.fg[y] = make([]pixel.Color, width)
		b.bg[y] = make([]pixel.Color, width)
		for x := range b.chars[y] {
			b.chars[y][x] = pixel.Blank.Ch
			b.fg[y][x] = pixel.Blank.Fg
			b.bg[y][x] = pixel.Blank.Bg
		}
	}
	if debug {
		log.Printf("termgrid: allocated %dx%d buffer, %d bytes per frame", width, height, cap(b.out))
	}
	return b
}

// Width of the grid in cells.
func (b *Buffer) Width() int {
	return b.width
}

// Height of the grid in cells.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds is the grid bounding box.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Cell returns the cell at (x, y), ok is false outside the grid.
func (b *Buffer) Cell(x, y int) (c pixel.Cell, ok bool) {
	if !b.in(x, y) {
		return
	}
	return pixel.Cell{Ch: b.chars[y][x], Fg: b.fg[y][x], Bg: b.bg[y][x]}, true
}

// Pixel sets the cell at (x, y). The glyph is always written, fg and bg only when they aren't
// pixel.Default. Points outside the grid are ignored.
func (b *Buffer) Pixel(x, y int, ch rune, fg, bg pixel.Color) {
	if !b.in(x, y) {
		return
	}
	b.chars[y][x] = ch
	if !fg.IsDefault() {
		b.fg[y][x] = fg
	}
	if !bg.IsDefault() {
		b.bg[y][x] = bg
	}
}

// Plot is Pixel taking a cell brush, it makes the buffer a draw.Canvas.
func (b *Buffer) Plot(x, y int, c pixel.Cell) {
	b.Pixel(x, y, c.Ch, c.Fg, c.Bg)
}

// Clear sets every cell of the grid.
func (b *Buffer) Clear(ch rune, fg, bg pixel.Color) {
	draw.Clear(b, pixel.Cell{Ch: ch, Fg: fg, Bg: bg})
}

// StrokeRect draws the border of the w by h rectangle at (x, y).
func (b *Buffer) StrokeRect(x, y, w, h int, ch rune, fg, bg pixel.Color) {
	draw.StrokeRect(b, rect(x, y, w, h), pixel.Cell{Ch: ch, Fg: fg, Bg: bg})
}

// FillRect sets every cell of the w by h rectangle at (x, y).
func (b *Buffer) FillRect(x, y, w, h int, ch rune, fg, bg pixel.Color) {
	draw.FillRect(b, rect(x, y, w, h), pixel.Cell{Ch: ch, Fg: fg, Bg: bg})
}

// Rect draws the w by h rectangle at (x, y) with stroke on its border and fill inside.
func (b *Buffer) Rect(x, y, w, h int, stroke, fill pixel.Cell) {
	draw.Rect(b, rect(x, y, w, h), stroke, fill)
}

// HorizontalText writes s left to right starting at (x, y).
func (b *Buffer) HorizontalText(x, y int, s string, fg, bg pixel.Color) {
	draw.HorizontalText(b, image.Pt(x, y), s, fg, bg)
}

// VerticalText writes s top to bottom starting at (x, y).
func (b *Buffer) VerticalText(x, y int, s string, fg, bg pixel.Color) {
	draw.VerticalText(b, image.Pt(x, y), s, fg, bg)
}

// Line draws a line from (x0, y0) to (x1, y1), both ends included.
func (b *Buffer) Line(x0, y0, x1, y1 int, ch rune, fg, bg pixel.Color) {
	draw.Line(b, image.Pt(x0, y0), image.Pt(x1, y1), pixel.Cell{Ch: ch, Fg: fg, Bg: bg})
}

// Text renders s with face at one cell per glyph pixel and returns the covered rectangle.
func (b *Buffer) Text(x, y int, face font.Face, s string, brush pixel.Cell) image.Rectangle {
	return draw.Text(b, image.Pt(x, y), face, s, brush)
}

// Picture scales src into the w by h cell rectangle at (x, y) using half blocks.
func (b *Buffer) Picture(x, y, w, h int, src image.Image) {
	draw.Picture(b, rect(x, y, w, h), src, nil)
}

// rect doesn't canonicalize like image.Rect, a negative size stays empty.
func rect(x, y, w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + w, Y: y + h},
	}
}

// ColorModel used by the buffer when it acts as an image.
func (b *Buffer) ColorModel() color.Model {
	return pixel.Model
}

// At returns the background color of the cell at (x, y).
func (b *Buffer) At(x, y int) color.Color {
	if !b.in(x, y) {
		return color.Transparent
	}
	return b.bg[y][x]
}

// Set blanks the cell at (x, y) and paints its background with c. Unlike Pixel, black is
// written as is.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.in(x, y) {
		return
	}
	b.chars[y][x] = ' '
	b.bg[y][x] = pixel.Convert(c)
}
