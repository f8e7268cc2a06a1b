package termgrid

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/termgrid/draw"
	"github.com/BeatGlow/termgrid/pixel"
)

var _ display.Drawer = (*Buffer)(nil)

func (b *Buffer) String() string {
	return fmt.Sprintf("terminal grid %dx%d", b.width, b.height)
}

// Draw copies src onto the cell backgrounds in r, aligning r.Min with sp.
func (b *Buffer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(b, r, src, sp, draw.Src)
	return nil
}

// Halt resets every cell to blank on black.
func (b *Buffer) Halt() error {
	for y := range b.chars {
		for x := range b.chars[y] {
			b.chars[y][x] = pixel.Blank.Ch
			b.fg[y][x] = pixel.Blank.Fg
			b.bg[y][x] = pixel.Blank.Bg
		}
	}
	return nil
}
