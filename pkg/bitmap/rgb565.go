package bitmap

import (
	"image/color"

	"gazou/pkg/pixel"
)

// RGB565 is an opaque pixel packing 5 bits of red, 6 bits of green and 5 bits
// of blue into two bytes:
//
//	bit 76543210  76543210
//	    RRRRRGGG  GGGBBBBB
//	   high byte  low byte
//
// It reports its channels on an 8-bit scale.
type RGB565 uint16

// Model converts any color to RGB565, dropping alpha.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return toRGB565(r, g, b)
})

// toRGB565 keeps the highest 5 or 6 bits of each 16-bit channel.
func toRGB565(r, g, b uint32) RGB565 {
	// RRRRRGGGGGGBBBBB
	return RGB565((r & 0xF800) +
		((g & 0xFC00) >> 5) +
		((b & 0xF800) >> 11))
}

// RGBA implements the color.Color interface.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	// To widen a 5 or 6 bit channel to 16 bits the short bit pattern is
	// repeated from the highest bit down, e.g. for green:
	//     GGGGGG0000000000 shifted << 5
	//     000000GGGGGG0000 shifted >> 1
	//     000000000000GGGG shifted >> 7
	// so all-zero and all-one channels map to 0 and 0xFFFF.
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x7E0)  // 00000GGGGGG00000
	bBits := uint32(c & 0x1F)   // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

func (c RGB565) ToRGBA() ([4]float64, float64) {
	r, g, b, _ := c.RGBA()
	return [4]float64{float64(r) / 0x101, float64(g) / 0x101, float64(b) / 0x101, 0xFF}, 0xFF
}

func (RGB565) FromRGBA(v [4]float64) RGB565 {
	return toRGB565(
		uint32(pixel.FromFloat[uint16](v[0]*0x101)),
		uint32(pixel.FromFloat[uint16](v[1]*0x101)),
		uint32(pixel.FromFloat[uint16](v[2]*0x101)),
	)
}

// Blend replaces c with top, which is always opaque.
func (c RGB565) Blend(top RGB565) RGB565 {
	return top
}

// FromPixel quantizes any pixel to RGB565, ignoring its alpha.
func FromPixel[P pixel.Pixel[P]](p P) RGB565 {
	v, m := p.ToRGBA()
	k := 0xFF / m
	return RGB565(0).FromRGBA([4]float64{v[0] * k, v[1] * k, v[2] * k, 0xFF})
}
