package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
