package bitmap

import (
	"image/color"
	"testing"
)

func TestToRGB565_Primaries(t *testing.T) {
	tcs := []struct {
		r, g, b uint8
		want    uint16
	}{
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{255, 255, 255, 0xFFFF},
		{0, 0, 0, 0x0000},
	}

	for _, tc := range tcs {
		if got := uint16(ToRGB565(tc.r, tc.g, tc.b)); got != tc.want {
			t.Fatalf("ToRGB565(%d,%d,%d) = %#04x; want %#04x", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestToRGB565_Truncates(t *testing.T) {
	// any red in [8,15] shares the same 5-bit value, so packing must not round
	for r := uint8(8); r <= 15; r++ {
		if got := uint16(ToRGB565(r, 0, 0)); got != 0x0800 {
			t.Fatalf("ToRGB565(%d,0,0) = %#04x; want 0x0800", r, got)
		}
	}
}

func TestToRGB565_ImplementsColor(t *testing.T) {
	// packed pixels are colors in their own right and expand back to the
	// full 16-bit channel range
	var c color.Color = ToRGB565(255, 0, 0)
	r, g, b, a := c.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("ToRGB565(255,0,0).RGBA() = %x,%x,%x,%x; want ffff,0,0,ffff", r, g, b, a)
	}
}

func TestRGB565_RGBA(t *testing.T) {
	tcs := []struct {
		c          RGB565
		r, g, b, a uint32
	}{
		{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{0x0000, 0, 0, 0, 0xFFFF},
		{0xF800, 0xFFFF, 0, 0, 0xFFFF},
		{0x07E0, 0, 0xFFFF, 0, 0xFFFF},
		{0x001F, 0, 0, 0xFFFF, 0xFFFF},
	}

	for _, tc := range tcs {
		r, g, b, a := tc.c.RGBA()
		if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
			t.Fatalf("RGB565(%#04x).RGBA() = %x,%x,%x,%x; want %x,%x,%x,%x",
				uint16(tc.c), r, g, b, a, tc.r, tc.g, tc.b, tc.a)
		}
	}
}
