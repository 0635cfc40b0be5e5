package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{colorCount, ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
	if n := len(Colors()); n != int(colorCount)-1 {
		t.Errorf("Colors() has %d entries", n)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#ff8800", 0xff, 0x88, 0x00, true},
		{"00ff88", 0x00, 0xff, 0x88, true},
		{"#f80", 0xff, 0x88, 0x00, true},
		{"#12345", 0, 0, 0, false},
		{"#gggggg", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		r, g, b, ok := ParseHex(tt.in)
		if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseHex(%q) = %d,%d,%d,%v", tt.in, r, g, b, ok)
		}
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#ff0000", ColorBrightRed},
		{"#ffffff", ColorBrightWhite},
		{"#ff8800", ColorOrange},
		{"#888888", ColorGray},
		{"#00ffff", ColorBrightCyan},
		{"nonsense", ColorWhite},
	}
	for _, tt := range tests {
		if got := NearestColor(tt.hex); got != tt.want {
			t.Errorf("NearestColor(%q) = %d, want %d", tt.hex, got, tt.want)
		}
	}
}
