package composite

import (
	"fmt"

	"gazou/pkg/canvas"
	"gazou/pkg/pixel"
)

// Extent returns a new width x height image showing img with the new canvas's
// origin at (offsetX, offsetY) of img. Area not covered by img is filled with
// img's top-left pixel. img must hold at least one pixel.
func Extent[P pixel.Pixel[P]](img canvas.Image[P], width, height uint32, offsetX, offsetY int64, opts ...Option) *canvas.Buffer[P] {
	if w, h := img.Dimensions(); w == 0 || h == 0 {
		panic(fmt.Sprintf("composite: cannot extend an empty %dx%d image", w, h))
	}

	out := canvas.Filled(width, height, img.PixelAt(0, 0))
	Composite[P](out, img, -offsetX, -offsetY, Copy, opts...)
	return out
}
