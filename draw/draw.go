// Package draw rasterizes shapes, text and images onto a grid of terminal cells.
package draw

import (
	"image"
	"image/draw"

	"github.com/BeatGlow/termgrid/pixel"
)

// Canvas is a grid of cells.
type Canvas interface {
	// Bounds is the grid bounding box.
	Bounds() image.Rectangle

	// Plot sets the cell at (x, y). Points outside Bounds are ignored and Default colors in c
	// keep the color already stored in the cell.
	Plot(x, y int, c pixel.Cell)
}

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Clear plots c on every cell of dst.
func Clear(dst Canvas, c pixel.Cell) {
	r := dst.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Plot(x, y, c)
		}
	}
}

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}
