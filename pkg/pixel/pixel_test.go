package pixel

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	assert.Equal(t, uint8(255), Max[uint8]())
	assert.Equal(t, uint16(65535), Max[uint16]())
	assert.Equal(t, float32(1), Max[float32]())
	assert.Equal(t, float64(1), Max[float64]())

	type level uint8
	assert.Equal(t, level(255), Max[level]())
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		u8   uint8
		u16  uint16
		f32  float32
	}{
		{"zero", 0, 0, 0, 0},
		{"negative saturates", -3.5, 0, 0, 0},
		{"nan", math.NaN(), 0, 0, 0},
		{"rounds half up", 127.5, 128, 128, 1},
		{"rounds down", 127.49, 127, 127, 1},
		{"within float range", 0.25, 0, 0, 0.25},
		{"above 8-bit max", 300, 255, 300, 1},
		{"above 16-bit max", 70000, 255, 65535, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.u8, FromFloat[uint8](tt.in))
			assert.Equal(t, tt.u16, FromFloat[uint16](tt.in))
			assert.Equal(t, tt.f32, FromFloat[float32](tt.in))
		})
	}
}

func TestRGBABlend(t *testing.T) {
	tests := []struct {
		name   string
		bottom RGBA8
		top    RGBA8
		want   RGBA8
	}{
		{"transparent top", RGBA8{10, 20, 30, 255}, RGBA8{255, 255, 255, 0}, RGBA8{10, 20, 30, 255}},
		{"opaque top", RGBA8{10, 20, 30, 255}, RGBA8{1, 2, 3, 255}, RGBA8{1, 2, 3, 255}},
		{"half red over blue", RGBA8{0, 0, 255, 255}, RGBA8{255, 0, 0, 128}, RGBA8{128, 0, 127, 255}},
		{"half red over nothing", RGBA8{0, 0, 0, 0}, RGBA8{255, 0, 0, 128}, RGBA8{255, 0, 0, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bottom.Blend(tt.top))
		})
	}
}

func TestRGBABlendDepthIndependent(t *testing.T) {
	b8 := RGBA8{0, 0, 255, 255}.Blend(RGBA8{255, 0, 0, 51})
	b16 := RGBA16{0, 0, 65535, 65535}.Blend(RGBA16{65535, 0, 0, 51 * 257})
	bf := RGBA32F{0, 0, 1, 1}.Blend(RGBA32F{1, 0, 0, 0.2})

	assert.Equal(t, RGBA8{51, 0, 204, 255}, b8)
	assert.Equal(t, RGBA16{51 * 257, 0, 204 * 257, 65535}, b16)
	assert.InDelta(t, 0.2, bf[0], 1e-6)
	assert.InDelta(t, 0.8, bf[2], 1e-6)
	assert.InDelta(t, 1, bf[3], 1e-6)
}

func TestRGB(t *testing.T) {
	p := RGB8{1, 2, 3}
	v, m := p.ToRGBA()
	assert.Equal(t, [4]float64{1, 2, 3, 255}, v)
	assert.Equal(t, 255.0, m)

	assert.Equal(t, RGB8{4, 5, 6}, p.FromRGBA([4]float64{4, 5, 6, 0}))
	assert.Equal(t, RGB8{9, 9, 9}, p.Blend(RGB8{9, 9, 9}))
}

func TestLumaA(t *testing.T) {
	p := LumaA8{100, 200}
	v, m := p.ToRGBA()
	assert.Equal(t, [4]float64{100, 100, 100, 200}, v)
	assert.Equal(t, 255.0, m)

	assert.Equal(t, LumaA8{255, 255}, p.FromRGBA([4]float64{255, 255, 255, 255}))
	assert.Equal(t, LumaA8{54, 10}, p.FromRGBA([4]float64{255, 0, 0, 10}))

	assert.Equal(t, p, p.Blend(LumaA8{0, 0}))
	assert.Equal(t, LumaA8{7, 255}, p.Blend(LumaA8{7, 255}))
	assert.Equal(t, LumaA8{0, 255}, LumaA8{0, 255}.Blend(LumaA8{0, 128}))
}

func TestColorBridge(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 128}

	p := FromColor[RGBA8](c)
	assert.Equal(t, RGBA8{10, 20, 30, 128}, p)
	assert.Equal(t, color.NRGBA64{R: 10 * 257, G: 20 * 257, B: 30 * 257, A: 128 * 257}, ToNRGBA64(p))

	wide := FromColor[RGBA16](c)
	assert.Equal(t, RGBA16{10 * 257, 20 * 257, 30 * 257, 128 * 257}, wide)

	f := FromColor[RGBA32F](color.NRGBA{R: 255, A: 255})
	require.InDelta(t, 1, f[0], 1e-6)
	require.InDelta(t, 1, f[3], 1e-6)

	r, g, b, a := p.RGBA()
	er, eg, eb, ea := c.RGBA()
	assert.Equal(t, []uint32{er, eg, eb, ea}, []uint32{r, g, b, a})
}

func TestScale(t *testing.T) {
	assert.Equal(t, 255.0, Scale[RGBA8]())
	assert.Equal(t, 65535.0, Scale[RGBA16]())
	assert.Equal(t, 1.0, Scale[RGBA32F]())
	assert.Equal(t, 255.0, Scale[LumaA8]())
}
