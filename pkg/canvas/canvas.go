// Package canvas holds the image capability interfaces compositing is written
// against, and Buffer, an owned in-memory implementation of them.
package canvas

import (
	"fmt"
	"image"
)

// Image is a read-only rectangular grid of pixels addressed by
// 0 <= x < width, 0 <= y < height.
type Image[P any] interface {
	Dimensions() (width, height uint32)
	PixelAt(x, y uint32) P
}

// MutableImage is an Image whose pixels can be overwritten.
type MutableImage[P any] interface {
	Image[P]
	SetPixel(x, y uint32, p P)
}

// Buffer stores width*height pixels row by row.
type Buffer[P any] struct {
	pixels []P
	width  uint32
	height uint32
}

// New returns a buffer with every pixel set to the zero value of P.
func New[P any](width, height uint32) *Buffer[P] {
	return &Buffer[P]{
		pixels: make([]P, int(width)*int(height)),
		width:  width,
		height: height,
	}
}

// Filled returns a buffer with every pixel set to fill.
func Filled[P any](width, height uint32, fill P) *Buffer[P] {
	b := New[P](width, height)
	for i := range b.pixels {
		b.pixels[i] = fill
	}
	return b
}

// FromPixels wraps pixels, laid out row by row, without copying them. It
// panics if the slice does not hold exactly width*height pixels.
func FromPixels[P any](width, height uint32, pixels []P) *Buffer[P] {
	if len(pixels) != int(width)*int(height) {
		panic(fmt.Sprintf("canvas: %d pixels cannot fill a %dx%d buffer", len(pixels), width, height))
	}
	return &Buffer[P]{pixels: pixels, width: width, height: height}
}

func (b *Buffer[P]) Dimensions() (uint32, uint32) {
	return b.width, b.height
}

// Bounds returns the buffer's rectangle anchored at the origin.
func (b *Buffer[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(b.width), int(b.height))
}

// PixelAt panics when (x, y) lies outside the buffer.
func (b *Buffer[P]) PixelAt(x, y uint32) P {
	return b.pixels[b.index(x, y)]
}

// SetPixel panics when (x, y) lies outside the buffer.
func (b *Buffer[P]) SetPixel(x, y uint32, p P) {
	b.pixels[b.index(x, y)] = p
}

// Pixels exposes the backing slice.
func (b *Buffer[P]) Pixels() []P {
	return b.pixels
}

func (b *Buffer[P]) Clone() *Buffer[P] {
	pixels := make([]P, len(b.pixels))
	copy(pixels, b.pixels)
	return &Buffer[P]{pixels: pixels, width: b.width, height: b.height}
}

func (b *Buffer[P]) index(x, y uint32) int {
	if x >= b.width || y >= b.height {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) out of bounds %dx%d", x, y, b.width, b.height))
	}
	return int(y)*int(b.width) + int(x)
}
