package pixel

// RGB is an opaque pixel holding red, green and blue.
type RGB[C Channel] [3]C

type RGB8 = RGB[uint8]

func (p RGB[C]) ToRGBA() ([4]float64, float64) {
	m := float64(Max[C]())
	return [4]float64{float64(p[0]), float64(p[1]), float64(p[2]), m}, m
}

// FromRGBA drops the alpha channel.
func (RGB[C]) FromRGBA(v [4]float64) RGB[C] {
	return RGB[C]{FromFloat[C](v[0]), FromFloat[C](v[1]), FromFloat[C](v[2])}
}

// Blend replaces p with top, which is always opaque.
func (p RGB[C]) Blend(top RGB[C]) RGB[C] {
	return top
}

// RGBA implements color.Color.
func (p RGB[C]) RGBA() (r, g, b, a uint32) {
	return ToNRGBA64(p).RGBA()
}
