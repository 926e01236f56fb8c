package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// DiscPalette is the cycle of colors given to discs, largest first.
// The first four follow the original yellow/blue/lime/red set.
var DiscPalette = []Color{
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightGreen,
	ColorBrightRed,
	ColorOrange,
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorMagenta,
}

// PaletteColor returns the palette color for the i-th disc (0-based).
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return DiscPalette[i%len(DiscPalette)]
}
