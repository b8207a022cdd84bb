package codec

import (
	"image"
	"image/color"

	"gazou/pkg/canvas"
	"gazou/pkg/pixel"
)

// Depth reports 16 for images decoded with 16-bit channels and 8 otherwise.
func Depth(img image.Image) int {
	switch img.ColorModel() {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model, color.Alpha16Model:
		return 16
	}
	return 8
}

// Load copies img into a buffer of pixel type P.
func Load[P pixel.Pixel[P]](img image.Image) *canvas.Buffer[P] {
	r := img.Bounds()
	out := canvas.New[P](uint32(r.Dx()), uint32(r.Dy()))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.SetPixel(uint32(x-r.Min.X), uint32(y-r.Min.Y), pixel.FromColor[P](img.At(x, y)))
		}
	}

	return out
}

// ToImage copies src into an *image.NRGBA for 8-bit pixel types and an
// *image.NRGBA64 for everything wider.
func ToImage[P pixel.Pixel[P]](src canvas.Image[P]) image.Image {
	w, h := src.Dimensions()
	r := image.Rect(0, 0, int(w), int(h))

	if pixel.Scale[P]() == 0xFF {
		dst := image.NewNRGBA(r)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c := pixel.ToNRGBA64(src.PixelAt(uint32(x), uint32(y)))
				dst.SetNRGBA(x, y, color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)})
			}
		}
		return dst
	}

	dst := image.NewNRGBA64(r)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dst.SetNRGBA64(x, y, pixel.ToNRGBA64(src.PixelAt(uint32(x), uint32(y))))
		}
	}
	return dst
}
