package rowan

import (
	"math"
	"testing"
)

func TestToHexKnownValues(t *testing.T) {
	cases := []struct {
		c    Color
		want string
	}{
		{Color{0, 0, 0, 0}, "00000000"},
		{Color{1, 1, 1, 1}, "FFFFFFFF"},
		{Color{1, 0, 0, 1}, "FF0000FF"},
		{Color{0, 1, 0, 0.5}, "00FF0080"},
	}
	for _, tc := range cases {
		if got := ToHex(tc.c); got != tc.want {
			t.Errorf("ToHex(%+v) = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestToHexClampsOutOfRange(t *testing.T) {
	if got := ToHex(Color{-0.5, 2.0, 0, 1}); got != "00FF00FF" {
		t.Errorf("ToHex clamped = %q, want 00FF00FF", got)
	}
}

func TestToColorParsesSixAndEightDigits(t *testing.T) {
	c, ok := ToColor("FF8000C0")
	if !ok {
		t.Fatal("valid 8-digit hex rejected")
	}
	if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-128.0/255) > 1e-9 || c.B != 0 {
		t.Errorf("parsed %+v", c)
	}
	if math.Abs(c.A-192.0/255) > 1e-9 {
		t.Errorf("alpha = %f, want 192/255", c.A)
	}

	// Six digits: full alpha.
	c, ok = ToColor("#336699")
	if !ok {
		t.Fatal("valid 6-digit hex with '#' rejected")
	}
	if c.A != 1 {
		t.Errorf("implicit alpha = %f, want 1", c.A)
	}
	if math.Abs(c.R-0x33/255.0) > 1e-9 || math.Abs(c.B-0x99/255.0) > 1e-9 {
		t.Errorf("parsed %+v", c)
	}
}

func TestToColorLowercase(t *testing.T) {
	c, ok := ToColor("ff00ff")
	if !ok || math.Abs(c.R-1) > 1e-9 || math.Abs(c.B-1) > 1e-9 {
		t.Errorf("lowercase hex: ok=%v c=%+v", ok, c)
	}
}

func TestToColorMalformed(t *testing.T) {
	bad := []string{"", "FFF", "GGGGGG", "12345", "123456789", "#", "0xFF0000", "FF 000 0"}
	for _, s := range bad {
		if c, ok := ToColor(s); ok || c != (Color{}) {
			t.Errorf("ToColor(%q) = (%+v, %v), want (zero, false)", s, c, ok)
		}
	}
}

func TestHexRoundTripWithinQuantization(t *testing.T) {
	colors := []Color{
		{0.1, 0.2, 0.3, 0.4},
		{0.999, 0.001, 0.5, 1},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0.33333, 0.66666, 0.12345, 0.98765},
	}
	const tol = 1.0 / 255
	for _, c := range colors {
		back, ok := ToColor(ToHex(c))
		if !ok {
			t.Fatalf("ToHex(%+v) produced unparseable output", c)
		}
		if math.Abs(back.R-c.R) > tol || math.Abs(back.G-c.G) > tol ||
			math.Abs(back.B-c.B) > tol || math.Abs(back.A-c.A) > tol {
			t.Errorf("round trip %+v -> %+v exceeds 1/255 per channel", c, back)
		}
	}
}
