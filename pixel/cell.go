package pixel

// Cell is one grid position: a glyph with a foreground and background color.
//
// Cells are also used as brushes; a Default color in a brush leaves that channel alone.
type Cell struct {
	Ch rune
	Fg Color
	Bg Color
}

// Blank is the state of a freshly allocated cell.
var Blank = Cell{Ch: ' ', Fg: Black, Bg: Black}
