package app

import (
	"image"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"gazou/pkg/codec"
)

// Depth selects the pixel type images are composited in.
type Depth string

const (
	DepthAuto  Depth = "auto"
	Depth8     Depth = "8"
	Depth16    Depth = "16"
	DepthFloat Depth = "f32"
)

var depths = []Depth{DepthAuto, Depth8, Depth16, DepthFloat}

func ParseDepth(s string) (Depth, error) {
	d := Depth(s)
	if !lo.Contains(depths, d) {
		return "", errors.Errorf("unknown depth %q, want one of auto, 8, 16, f32", s)
	}
	return d, nil
}

// Resolve replaces DepthAuto with 16 when any input carries 16-bit channels,
// and with 8 otherwise.
func (d Depth) Resolve(imgs ...image.Image) Depth {
	if d != DepthAuto {
		return d
	}
	wide := lo.ContainsBy(imgs, func(img image.Image) bool {
		return codec.Depth(img) == 16
	})
	return lo.Ternary(wide, Depth16, Depth8)
}
