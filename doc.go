// Package termgrid renders a grid of colored character cells to an ANSI terminal.
//
// A [Buffer] holds the cells and offers the drawing primitives. Every frame is serialized
// in full as 24-bit color escape sequences (see [Buffer.Frame]); a [Screen] writes those
// frames to an output stream such as os.Stdout.
//
// Drawing never fails: coordinates outside the grid are ignored and a [pixel.Default] color
// keeps whatever color a cell already had.
//
// Buffers are not safe for concurrent use.
package termgrid
