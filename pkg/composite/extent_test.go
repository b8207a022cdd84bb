package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazou/pkg/canvas"
	"gazou/pkg/pixel"
)

func TestExtentSinglePixel(t *testing.T) {
	c := pixel.RGBA8{10, 20, 30, 255}
	img := canvas.Filled(1, 1, c)

	out := Extent(img, 3, 3, 1, 1)

	w, h := out.Dimensions()
	require.Equal(t, uint32(3), w)
	require.Equal(t, uint32(3), h)
	for _, p := range out.Pixels() {
		assert.Equal(t, c, p)
	}
}

func TestExtentSameSize(t *testing.T) {
	img := gradient(4, 3)

	out := Extent(img, 4, 3, 0, 0)
	assert.Equal(t, img.Pixels(), out.Pixels())

	// the source is left alone
	assert.Equal(t, gradient(4, 3).Pixels(), img.Pixels())
}

func TestExtentGrow(t *testing.T) {
	img := gradient(2, 2)
	fill := img.PixelAt(0, 0)

	out := Extent(img, 4, 4, -1, -1)

	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			want := fill
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = img.PixelAt(x-1, y-1)
			}
			assert.Equal(t, want, out.PixelAt(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestExtentCrop(t *testing.T) {
	img := gradient(3, 3)

	out := Extent(img, 2, 2, 1, 1)

	assert.Equal(t, []pixel.RGBA8{
		img.PixelAt(1, 1), img.PixelAt(2, 1),
		img.PixelAt(1, 2), img.PixelAt(2, 2),
	}, out.Pixels())
}

func TestExtentShiftedPastEdge(t *testing.T) {
	img := gradient(2, 2)

	out := Extent(img, 2, 2, 1, 0)

	assert.Equal(t, []pixel.RGBA8{
		img.PixelAt(1, 0), img.PixelAt(0, 0),
		img.PixelAt(1, 1), img.PixelAt(0, 0),
	}, out.Pixels())
}

func TestExtentLegacyBounds(t *testing.T) {
	img := canvas.Filled(1, 1, pixel.RGBA8{10, 20, 30, 255})

	out := Extent(img, 3, 3, -1, -1, WithLegacyBounds())

	// the bottom-sized window reaches past the source and copies transparent black
	assert.Equal(t, []pixel.RGBA8{
		{10, 20, 30, 255}, {10, 20, 30, 255}, {10, 20, 30, 255},
		{10, 20, 30, 255}, {10, 20, 30, 255}, {0, 0, 0, 255},
		{10, 20, 30, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	}, out.Pixels())
}

func TestExtentEmptyImage(t *testing.T) {
	assert.Panics(t, func() {
		Extent(canvas.New[pixel.RGBA8](0, 4), 2, 2, 0, 0)
	})
	assert.Panics(t, func() {
		Extent(canvas.New[pixel.RGBA8](4, 0), 2, 2, 0, 0)
	})
}

func TestExtentEmptyCanvas(t *testing.T) {
	out := Extent(gradient(2, 2), 0, 0, 0, 0)
	assert.Empty(t, out.Pixels())
}

func TestExtentSixteenBit(t *testing.T) {
	c := pixel.RGBA16{1000, 2000, 3000, 65535}
	img := canvas.Filled(1, 1, c)

	out := Extent(img, 2, 1, -1, 0)
	assert.Equal(t, []pixel.RGBA16{c, c}, out.Pixels())
}
