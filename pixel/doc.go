// Package pixel implements the color and cell values drawn on a terminal grid.
//
// Colors are plain 24-bit RGB triplets compatible with Go's native [color.Color] and
// [color.Model] interfaces. The zero color doubles as [Default], a marker telling drawing
// calls to keep whatever color a cell already has.
package pixel
