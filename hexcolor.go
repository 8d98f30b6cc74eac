package rowan

import (
	"fmt"
	"strconv"
	"strings"
)

// ToHex formats the color as an 8-character uppercase RRGGBBAA hex string.
// Components are clamped to [0, 1] and quantized to 8 bits.
func ToHex(c Color) string {
	return fmt.Sprintf("%02X%02X%02X%02X",
		hexByte(c.R), hexByte(c.G), hexByte(c.B), hexByte(c.A))
}

func hexByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ToColor parses an RRGGBB or RRGGBBAA hex string, with or without a
// leading '#'. Six-digit input gets full alpha. Returns (Color{}, false) on
// malformed input.
func ToColor(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "#")
	var a uint8 = 0xFF
	switch len(s) {
	case 6:
	case 8:
		v, err := strconv.ParseUint(s[6:8], 16, 8)
		if err != nil {
			return Color{}, false
		}
		a = uint8(v)
	default:
		return Color{}, false
	}
	r, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return Color{}, false
	}
	g, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return Color{}, false
	}
	b, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}
