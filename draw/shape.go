package draw

import (
	"image"

	"github.com/BeatGlow/termgrid/pixel"
)

// Line draws a line between two points, both inclusive.
func Line(dst Canvas, a, b image.Point, c pixel.Cell) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Canvas, x, y, w int, c pixel.Cell) {
	if w <= 0 {
		return
	}
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Canvas, x, y, h int, c pixel.Cell) {
	if h <= 0 {
		return
	}
	bresenham(dst, x, y, x, y+h-1, c)
}

// StrokeRect draws the four edges of rect.
func StrokeRect(dst Canvas, rect image.Rectangle, c pixel.Cell) {
	if rect.Empty() {
		return
	}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.Plot(x, rect.Min.Y, c)
		dst.Plot(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.Plot(rect.Min.X, y, c)
		dst.Plot(rect.Max.X-1, y, c)
	}
}

// FillRect sets every cell inside rect.
func FillRect(dst Canvas, rect image.Rectangle, c pixel.Cell) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Plot(x, y, c)
		}
	}
}

// Rect draws rect with its border in stroke and its interior in fill. Every cell is
// written exactly once.
func Rect(dst Canvas, rect image.Rectangle, stroke, fill pixel.Cell) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if x == rect.Min.X || x == rect.Max.X-1 || y == rect.Min.Y || y == rect.Max.Y-1 {
				dst.Plot(x, y, stroke)
			} else {
				dst.Plot(x, y, fill)
			}
		}
	}
}

// HorizontalText writes s one rune per cell, left to right starting at p. There is no wrapping.
func HorizontalText(dst Canvas, p image.Point, s string, fg, bg pixel.Color) {
	var i int
	for _, ch := range s {
		dst.Plot(p.X+i, p.Y, pixel.Cell{Ch: ch, Fg: fg, Bg: bg})
		i++
	}
}

// VerticalText writes s one rune per cell, top to bottom starting at p.
func VerticalText(dst Canvas, p image.Point, s string, fg, bg pixel.Color) {
	var i int
	for _, ch := range s {
		dst.Plot(p.X, p.Y+i, pixel.Cell{Ch: ch, Fg: fg, Bg: bg})
		i++
	}
}

// Integer only Bresenham. Coordinates may be negative, clipping is left to Plot.
func bresenham(dst Canvas, x0, y0, x1, y1 int, c pixel.Cell) {
	dx, dy := x1-x0, y1-y0

	switch {
	// Horizontal (or a single point)
	case dy == 0:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			dst.Plot(x, y0, c)
		}
		return

	// Vertical
	case dx == 0:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			dst.Plot(x0, y, c)
		}
		return
	}

	// Drawing p0 -> p1 equals p1 -> p0, so only the four right octants are handled.
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dx, dy = -dx, -dy
	}

	if abs(dy) <= abs(dx) {
		var (
			y     = y0
			step  = sign(dy)
			slope = 2 * abs(dy)
			span  = 2 * dx
			e     = -dx
		)
		for x := x0; x <= x1; x++ {
			dst.Plot(x, y, c)
			e += slope
			if e >= 0 {
				y += step
				e -= span
			}
		}
		return
	}

	// Higher than wide: walk y upwards.
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dx, dy = -dx, -dy
	}
	var (
		x     = x0
		step  = sign(dx)
		slope = 2 * abs(dx)
		span  = 2 * dy
		e     = -dy
	)
	for y := y0; y <= y1; y++ {
		dst.Plot(x, y, c)
		e += slope
		if e >= 0 {
			x += step
			e -= span
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
