// Package composite places one image onto another with a blend or
// Porter-Duff operator, and extends images onto larger or smaller canvases.
package composite

import (
	"fmt"

	"github.com/samber/lo"

	"gazou/pkg/canvas"
	"gazou/pkg/pixel"
)

// Composite draws top onto bottom with top's origin at (offsetX, offsetY) of
// bottom, combining pixels with op. Only bottom is modified, and only where
// the two images overlap; anything falling outside bottom is ignored.
//
// Porter-Duff operators compute, with alphas normalized by the channel
// maximum and (fs, fd) taken from the operator:
//
//	out.rgb = as*src.rgb*fs + ad*dst.rgb*fd
//	out.a   = as + ad*(1-as)
//
// Color channels are not divided by the output alpha.
func Composite[P pixel.Pixel[P]](bottom canvas.MutableImage[P], top canvas.Image[P], offsetX, offsetY int64, op Operator, opts ...Option) {
	if !op.valid() {
		panic(fmt.Sprintf("composite: unknown operator %s", op))
	}

	c := newConfig(opts)
	bw, bh := dimensions[P](bottom)
	tw, th := dimensions[P](top)

	if offsetX >= bw || offsetX+tw < 0 || offsetY >= bh || offsetY+th < 0 {
		return
	}

	ww := lo.Ternary(c.legacyBounds, bw, tw)
	wh := lo.Ternary(c.legacyBounds, bh, th)
	x0, x1 := max(offsetX, 0), min(offsetX+ww, bw)
	y0, y1 := max(offsetY, 0), min(offsetY+wh, bh)

	for y := y0; y < y1; y++ {
		relY := y - offsetY
		for x := x0; x < x1; x++ {
			relX := x - offsetX
			inTop := relX < tw && relY < th

			if op == Blend {
				if !inTop {
					continue
				}
				dst := bottom.PixelAt(uint32(x), uint32(y))
				bottom.SetPixel(uint32(x), uint32(y), dst.Blend(top.PixelAt(uint32(relX), uint32(relY))))
				continue
			}

			var src [4]float64
			if inTop {
				src, _ = top.PixelAt(uint32(relX), uint32(relY)).ToRGBA()
			}
			dst := bottom.PixelAt(uint32(x), uint32(y))
			d, m := dst.ToRGBA()
			bottom.SetPixel(uint32(x), uint32(y), dst.FromRGBA(porterDuff(d, src, m, op)))
		}
	}
}

// porterDuff combines src into dst, both straight RGBA on a scale of m.
func porterDuff(dst, src [4]float64, m float64, op Operator) [4]float64 {
	as, ad := src[3]/m, dst[3]/m
	fs, fd := op.factors(as, ad)

	return [4]float64{
		as*src[0]*fs + ad*dst[0]*fd,
		as*src[1]*fs + ad*dst[1]*fd,
		as*src[2]*fs + ad*dst[2]*fd,
		(as + ad*(1-as)) * m,
	}
}

func dimensions[P any](img canvas.Image[P]) (int64, int64) {
	w, h := img.Dimensions()
	return int64(w), int64(h)
}
