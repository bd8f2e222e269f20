package core

// Color is a named palette entry. Frontends translate it into their own
// color representation (raylib RGBA, terminal ANSI codes).
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorGreen
	ColorRed
	ColorWhite
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	default:
		return "default"
	}
}
