package core

import (
	"strconv"
	"strings"
)

// Color is a terminal foreground color. The zero value leaves the
// terminal's own color in place.
type Color uint8

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
	colorCount
)

// palette holds the ANSI 256 code and the usual xterm RGB of each color.
var palette = [colorCount]struct {
	code    uint8
	r, g, b uint8
}{
	ColorRed:           {1, 205, 0, 0},
	ColorGreen:         {2, 0, 205, 0},
	ColorYellow:        {3, 205, 205, 0},
	ColorBlue:          {4, 0, 0, 238},
	ColorMagenta:       {5, 205, 0, 205},
	ColorCyan:          {6, 0, 205, 205},
	ColorWhite:         {7, 229, 229, 229},
	ColorBrightRed:     {9, 255, 0, 0},
	ColorBrightGreen:   {10, 0, 255, 0},
	ColorBrightYellow:  {11, 255, 255, 0},
	ColorBrightBlue:    {12, 92, 92, 255},
	ColorBrightMagenta: {13, 255, 0, 255},
	ColorBrightCyan:    {14, 0, 255, 255},
	ColorBrightWhite:   {15, 255, 255, 255},
	ColorOrange:        {208, 255, 135, 0},
	ColorGray:          {245, 138, 138, 138},
}

// ANSI returns the 256-color code of c, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || c >= colorCount {
		return ""
	}
	return strconv.Itoa(int(palette[c].code))
}

// Colors lists every color that has an ANSI code.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseHex reads "#rrggbb" or "#rgb".
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// NearestColor maps a hex color onto the palette by RGB distance.
// Malformed input yields ColorWhite.
func NearestColor(hex string) Color {
	r, g, b, ok := ParseHex(hex)
	if !ok {
		return ColorWhite
	}
	best, bestDist := ColorWhite, -1
	for c := ColorDefault + 1; c < colorCount; c++ {
		p := palette[c]
		dr, dg, db := int(r)-int(p.r), int(g)-int(p.g), int(b)-int(p.b)
		if d := dr*dr + dg*dg + db*db; bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
