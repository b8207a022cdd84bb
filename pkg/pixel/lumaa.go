package pixel

// Rec. 709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// LumaA is a grayscale pixel with alpha.
type LumaA[C Channel] [2]C

type LumaA8 = LumaA[uint8]

func (p LumaA[C]) ToRGBA() ([4]float64, float64) {
	l := float64(p[0])
	return [4]float64{l, l, l, float64(p[1])}, float64(Max[C]())
}

func (LumaA[C]) FromRGBA(v [4]float64) LumaA[C] {
	return LumaA[C]{FromFloat[C](lumaR*v[0] + lumaG*v[1] + lumaB*v[2]), FromFloat[C](v[3])}
}

func (p LumaA[C]) Blend(top LumaA[C]) LumaA[C] {
	switch top[1] {
	case 0:
		return p
	case Max[C]():
		return top
	}

	b, m := p.ToRGBA()
	t, _ := top.ToRGBA()
	o := over(b, t, m)
	return LumaA[C]{FromFloat[C](o[0]), FromFloat[C](o[3])}
}

// RGBA implements color.Color.
func (p LumaA[C]) RGBA() (r, g, b, a uint32) {
	return ToNRGBA64(p).RGBA()
}
