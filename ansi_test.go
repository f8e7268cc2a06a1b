package termgrid

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/termgrid/pixel"
)

var escapeSequence = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]")

func TestFrameSingleCell(t *testing.T) {
	b := New(1, 1)
	b.Pixel(0, 0, 'A', pixel.New(1, 22, 255), pixel.Orange)
	want := "\x1b[38;2;001;022;255m\x1b[48;2;255;127;000mA\n\x1b[m"
	require.Equal(t, want, string(b.Frame()))
}

func TestFrameLayout(t *testing.T) {
	b := New(3, 2)
	b.HorizontalText(0, 1, "héy", pixel.White, pixel.Default)
	frame := string(b.Frame())

	require.True(t, strings.HasSuffix(frame, "\n\x1b[m"))
	require.Equal(t, 6, strings.Count(frame, "\x1b[38;2;"))
	require.Equal(t, 6, strings.Count(frame, "\x1b[48;2;"))

	visible := escapeSequence.ReplaceAllString(frame, "")
	require.Equal(t, "   \nhéy\n", visible)
}

func TestFrameFreshBuffer(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {40, 20}, {7, 3}} {
		w, h := size[0], size[1]
		visible := escapeSequence.ReplaceAll(New(w, h).Frame(), nil)
		require.Len(t, visible, w*h+h)
		require.Equal(t, h, bytes.Count(visible, []byte{'\n'}))
	}
}

func TestFrameReusesBuffer(t *testing.T) {
	b := New(10, 4)
	b.Clear('█', pixel.Red, pixel.Blue)
	capacity := cap(b.out)

	first := b.Frame()
	b.Line(0, 0, 9, 3, '*', pixel.Yellow, pixel.Default)
	second := b.Frame()

	require.Equal(t, capacity, cap(b.out))
	require.Same(t, &first[0], &second[0])
	require.LessOrEqual(t, len(second), frameSize(10, 4))

	allocs := testing.AllocsPerRun(10, func() { b.Frame() })
	require.Zero(t, allocs)
}
