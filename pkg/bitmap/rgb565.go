package bitmap

import "image/color"

// ToRGB565 packs 8-bit channels into 16 bits by keeping the top 5 (red,
// blue) or 6 (green) bits of each. Low-order bits are truncated, never
// rounded, which matches how RGB565 panels pack their framebuffers.
// There is no alpha channel, so alpha is assumed to always be 100% opaque.
// This shows the bit layout of a pixel:
//
//	bit 15            0
//	    RRRRRGGGGGGBBBBB
func ToRGB565(r, g, b uint8) RGB565 {
	return RGB565(r>>3)<<11 | RGB565(g>>2)<<5 | RGB565(b>>3)
}

// RGB565 implements the color.Color interface.
type RGB565 uint16

var _ color.Color = RGB565(0)

// RGBA implements the color.Color interface.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	// To convert a channel from 5 or 6 bits back to 16 bits, the short bit
	// pattern is duplicated to fill all 16 bits. For example the green
	// channel is the middle 6 bits:
	//     00000GGGGGG00000
	//
	// To create a 16 bit channel, these bits are or-ed together starting at
	// the highest bit:
	//     GGGGGG0000000000 shifted << 5
	//     000000GGGGGG0000 shifted >> 1
	//     000000000000GGGG shifted >> 7
	//
	// These patterns map the minimum (all bits 0) and maximum (all bits 1)
	// 5 and 6 bit channel values to the minimum and maximum 16 bit channel
	// values.
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x7E0)  // 00000GGGGGG00000
	bBits := uint32(c & 0x1F)   // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}
