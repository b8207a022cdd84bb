// Package pixel defines the pixel representations compositing works on.
//
// A pixel type is any value type P implementing Pixel[P]: it converts itself
// to and from straight (non-premultiplied) RGBA expressed on its own channel
// scale, and knows how to blend another pixel of the same type over itself.
package pixel

import (
	"image/color"
)

// Pixel is the capability set a pixel representation needs to take part in
// compositing.
type Pixel[P any] interface {
	// ToRGBA returns the pixel as straight RGBA on its native channel scale,
	// together with the scale's maximum value.
	ToRGBA() (rgba [4]float64, max float64)
	// FromRGBA converts straight RGBA on the native scale back to P. Only the
	// argument is used, the receiver merely selects the type.
	FromRGBA(rgba [4]float64) P
	// Blend returns the receiver with top blended over it.
	Blend(top P) P
}

// Scale returns the channel maximum of pixel type P.
func Scale[P Pixel[P]]() float64 {
	var p P
	_, m := p.ToRGBA()
	return m
}

// FromColor converts any color.Color to a pixel of type P.
func FromColor[P Pixel[P]](c color.Color) P {
	var n color.NRGBA64
	// straight colors skip the lossy premultiplied round trip
	switch c := c.(type) {
	case color.NRGBA:
		n = color.NRGBA64{R: uint16(c.R) * 0x101, G: uint16(c.G) * 0x101, B: uint16(c.B) * 0x101, A: uint16(c.A) * 0x101}
	default:
		n = color.NRGBA64Model.Convert(c).(color.NRGBA64)
	}

	var p P
	k := Scale[P]() / 0xffff
	return p.FromRGBA([4]float64{
		float64(n.R) * k,
		float64(n.G) * k,
		float64(n.B) * k,
		float64(n.A) * k,
	})
}

// ToNRGBA64 converts p to a 16-bit straight alpha color.
func ToNRGBA64[P Pixel[P]](p P) color.NRGBA64 {
	v, m := p.ToRGBA()
	k := 0xffff / m
	return color.NRGBA64{
		R: FromFloat[uint16](v[0] * k),
		G: FromFloat[uint16](v[1] * k),
		B: FromFloat[uint16](v[2] * k),
		A: FromFloat[uint16](v[3] * k),
	}
}

// over blends top over bottom with straight alpha. Both are on a scale of m.
func over(bottom, top [4]float64, m float64) [4]float64 {
	ta, ba := top[3]/m, bottom[3]/m
	a := ta + ba - ta*ba
	if a == 0 {
		return bottom
	}

	var out [4]float64
	for i := 0; i < 3; i++ {
		out[i] = (top[i]*ta + bottom[i]*ba*(1-ta)) / a
	}
	out[3] = a * m
	return out
}
