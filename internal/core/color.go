package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The first seven after ColorDefault are the piece colors.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
