package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors available to sprite palettes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// ParseColor maps a palette name to a Color. Unknown names return false.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "default", "":
		return ColorDefault, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "orange":
		return ColorOrange, true
	case "gray", "grey":
		return ColorGray, true
	}
	return ColorDefault, false
}

// RGB returns the 8-bit channels used by the pixel front end.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xe0, 0x30, 0x30
	case ColorGreen:
		return 0x40, 0xd0, 0x40
	case ColorYellow:
		return 0xf0, 0xe0, 0x40
	case ColorBlue:
		return 0x40, 0x70, 0xf0
	case ColorMagenta:
		return 0xd0, 0x40, 0xd0
	case ColorCyan:
		return 0x40, 0xd0, 0xe0
	case ColorOrange:
		return 0xf0, 0x90, 0x20
	case ColorGray:
		return 0x90, 0x90, 0x90
	default:
		return 0xf0, 0xf0, 0xf0
	}
}
