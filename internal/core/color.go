package core

// Color is a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes or RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorGray
)
