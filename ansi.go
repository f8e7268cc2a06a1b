package termgrid

import (
	"unicode/utf8"

	"github.com/BeatGlow/termgrid/pixel"
)

// Escape sequences, pre-allocated so rendering doesn't allocate.
var (
	csiHome       = []byte("\x1b[H")
	csiClear      = []byte("\x1b[H\x1b[2J")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiFgRGB      = []byte("\x1b[38;2;") // followed by RRR;GGG;BBBm
	csiBgRGB      = []byte("\x1b[48;2;") // followed by RRR;GGG;BBBm
	csiReset      = []byte("\x1b[m")
)

const (
	// colorSize is the length of one ESC[38;2;RRR;GGG;BBBm sequence.
	colorSize = 7 + 3*3 + 2 + 1

	// cellSize is the worst case length of a serialized cell.
	cellSize = 2*colorSize + utf8.UTFMax
)

// digits holds every color component as three zero padded decimal digits.
var digits [256][3]byte

func init() {
	for i := range digits {
		digits[i] = [3]byte{
			byte(i/100) + '0',
			byte(i/10%10) + '0',
			byte(i%10) + '0',
		}
	}
}

// frameSize is the output buffer capacity for a width by height grid: every cell, a newline
// per row and the closing reset.
func frameSize(width, height int) int {
	return cellSize*width*height + height + len(csiReset)
}

func appendColor(dst, prefix []byte, c pixel.Color) []byte {
	dst = append(dst, prefix...)
	dst = append(dst, digits[c.R][:]...)
	dst = append(dst, ';')
	dst = append(dst, digits[c.G][:]...)
	dst = append(dst, ';')
	dst = append(dst, digits[c.B][:]...)
	return append(dst, 'm')
}

// Frame serializes the whole grid: per cell a foreground and background color sequence and
// the glyph, a newline after every row and a single reset at the end.
//
// The returned slice is reused by the next call to Frame.
func (b *Buffer) Frame() []byte {
	out := b.out[:0]
	for y, row := range b.chars {
		for x, ch := range row {
			out = appendColor(out, csiFgRGB, b.fg[y][x])
			out = appendColor(out, csiBgRGB, b.bg[y][x])
			if ch < utf8.RuneSelf {
				out = append(out, byte(ch))
			} else {
				out = utf8.AppendRune(out, ch)
			}
		}
		out = append(out, '\n')
	}
	out = append(out, csiReset...)
	b.out = out
	return out
}
