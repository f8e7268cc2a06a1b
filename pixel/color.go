package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Model converts any color to a Color.
var Model color.Model = color.ModelFunc(rgbModel)

// ErrUnknownColor is returned by ParseColor for names it can't resolve.
var ErrUnknownColor = errors.New("pixel: unknown color")

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// New returns the color with the given components.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Core colors.
var (
	White   = Color{255, 255, 255}
	Black   = Color{0, 0, 0}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Yellow  = Color{255, 255, 0}
	Orange  = Color{255, 127, 0}
	Purple  = Color{127, 0, 255}
)

// Default leaves the stored color of a cell untouched when passed to a drawing call.
//
// It shares its value with Black, so Black can't be used to paint over a channel.
var Default = Color{0, 0, 0}

// Equal reports whether all three components match.
func (c Color) Equal(other Color) bool {
	return c == other
}

// IsDefault reports whether c is the Default sentinel.
func (c Color) IsDefault() bool {
	return c == Default
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Convert returns c as a Color.
func Convert(c color.Color) Color {
	return rgbModel(c).(Color)
}

// ParseColor resolves a W3C/X11 color name ("navy", "orange") or a "#rrggbb" hex string.
func ParseColor(name string) (Color, error) {
	c := tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
