package core

// Color represents a foreground color for a screen cell.
// Each color maps to a hex value; the terminal profile decides how
// closely it is reproduced.
type Color uint8

// Palette used by the scroller.
const (
	ColorDefault   Color = iota
	ColorRed             // Player, grunts
	ColorDarkRed         // Brutes
	ColorPurple          // Tanks, Ultra shots
	ColorGreen           // Ground
	ColorBrown           // Ledges
	ColorTan             // Companion platforms
	ColorYellow          // Basic shots
	ColorOrange          // Enhanced shots
	ColorOrangeRed       // Super shots
	ColorMagenta         // Legendary shots
	ColorPink            // Health power-up
	ColorGold            // Weapon power-up
	ColorSky             // Speed power-up
	ColorWhite
	ColorGray
	ColorCyan
	colorCount
)

var colorHex = [colorCount]string{
	ColorDefault:   "",
	ColorRed:       "#FF5555",
	ColorDarkRed:   "#8B0000",
	ColorPurple:    "#9932CC",
	ColorGreen:     "#4CAF50",
	ColorBrown:     "#795548",
	ColorTan:       "#A1887F",
	ColorYellow:    "#FFFF00",
	ColorOrange:    "#FFA500",
	ColorOrangeRed: "#FF4500",
	ColorMagenta:   "#FF00FF",
	ColorPink:      "#FF69B4",
	ColorGold:      "#FFD700",
	ColorSky:       "#00BFFF",
	ColorWhite:     "#FFFFFF",
	ColorGray:      "#808080",
	ColorCyan:      "#00FFFF",
}

// Hex returns the color as "#RRGGBB", or "" for the terminal default.
func (c Color) Hex() string {
	if c >= colorCount {
		return ""
	}
	return colorHex[c]
}

// Colors returns every non-default palette entry.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
