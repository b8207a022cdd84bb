package pixel

// RGBA is a straight alpha pixel holding red, green, blue and alpha.
type RGBA[C Channel] [4]C

type (
	RGBA8   = RGBA[uint8]
	RGBA16  = RGBA[uint16]
	RGBA32F = RGBA[float32]
)

func (p RGBA[C]) ToRGBA() ([4]float64, float64) {
	return [4]float64{float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])}, float64(Max[C]())
}

func (RGBA[C]) FromRGBA(v [4]float64) RGBA[C] {
	return RGBA[C]{FromFloat[C](v[0]), FromFloat[C](v[1]), FromFloat[C](v[2]), FromFloat[C](v[3])}
}

// Blend composites top over p. A fully transparent top leaves p untouched and
// a fully opaque one replaces it.
func (p RGBA[C]) Blend(top RGBA[C]) RGBA[C] {
	switch top[3] {
	case 0:
		return p
	case Max[C]():
		return top
	}

	b, m := p.ToRGBA()
	t, _ := top.ToRGBA()
	return p.FromRGBA(over(b, t, m))
}

// RGBA implements color.Color.
func (p RGBA[C]) RGBA() (r, g, b, a uint32) {
	return ToNRGBA64(p).RGBA()
}
