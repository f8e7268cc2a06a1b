package termgrid

import (
	"bufio"
	"fmt"
	"io"
)

// Screen is a Buffer bound to a terminal output stream.
type Screen struct {
	*Buffer
	w *bufio.Writer
}

// NewScreen returns a width by height screen writing to w, typically os.Stdout.
func NewScreen(w io.Writer, width, height int) *Screen {
	b := New(width, height)
	return &Screen{
		Buffer: b,
		w:      bufio.NewWriterSize(w, len(csiHome)+cap(b.out)),
	}
}

func (s *Screen) String() string {
	return fmt.Sprintf("terminal screen %dx%d", s.width, s.height)
}

// Refresh moves the cursor home and repaints every cell.
func (s *Screen) Refresh() error {
	return s.write(csiHome, s.Frame())
}

// ClearTerminal erases the terminal, not the buffer.
func (s *Screen) ClearTerminal() error {
	return s.write(csiClear)
}

// HideCursor hides the terminal cursor.
func (s *Screen) HideCursor() error {
	return s.write(csiCursorHide)
}

// ShowCursor shows the terminal cursor.
func (s *Screen) ShowCursor() error {
	return s.write(csiCursorShow)
}

func (s *Screen) write(parts ...[]byte) (err error) {
	for _, part := range parts {
		if _, err = s.w.Write(part); err != nil {
			return
		}
	}
	return s.w.Flush()
}
