// Package bitmap converts images to raw RGB565 framebuffers, the format small
// LCD panels take over serial links.
package bitmap

import (
	"gazou/pkg/canvas"
	"gazou/pkg/pixel"
)

// Encode packs img row by row, two little-endian bytes per pixel.
func Encode[P pixel.Pixel[P]](img canvas.Image[P]) []byte {
	w, h := img.Dimensions()
	pixels := make([]byte, 2*int(w)*int(h))

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c := FromPixel(img.PixelAt(x, y))
			i := 2 * (int(y)*int(w) + int(x))
			pixels[i] = byte(c & 0xFF)
			pixels[i+1] = byte(c >> 8)
		}
	}

	return pixels
}
