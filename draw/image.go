package draw

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/termgrid/pixel"
)

// HalfBlock is the glyph used to show two image rows in a single cell.
const HalfBlock = '▀'

// Scaler is an alias for [golang.org/x/image/draw.Scaler].
type Scaler = xdraw.Scaler

// Picture scales src into the cell rectangle r. Every cell shows two image pixels stacked
// vertically: the upper one as the foreground of a HalfBlock, the lower one as its background.
//
// Black (and fully transparent) pixels map to pixel.Default and leave the cell color alone.
// A nil scaler uses approximate bilinear interpolation.
func Picture(dst Canvas, r image.Rectangle, src image.Image, scaler Scaler) {
	if r.Empty() || src.Bounds().Empty() {
		return
	}
	if scaler == nil {
		scaler = xdraw.ApproxBiLinear
	}

	tmp := image.NewRGBA(image.Rect(0, 0, r.Dx(), 2*r.Dy()))
	scaler.Scale(tmp, tmp.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dst.Plot(r.Min.X+x, r.Min.Y+y, pixel.Cell{
				Ch: HalfBlock,
				Fg: pixel.Convert(tmp.RGBAAt(x, 2*y)),
				Bg: pixel.Convert(tmp.RGBAAt(x, 2*y+1)),
			})
		}
	}
}
