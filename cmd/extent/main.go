package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"gazou/internal/app"
	"gazou/pkg/codec"
	"gazou/pkg/composite"
	"gazou/pkg/pixel"
	"gazou/pkg/source"
)

var width = flag.Uint32("width", 0, "canvas width, defaults to the input width")
var height = flag.Uint32("height", 0, "canvas height, defaults to the input height")
var offsetX = flag.Int64("x", 0, "horizontal position of the canvas origin on INPUT")
var offsetY = flag.Int64("y", 0, "vertical position of the canvas origin on INPUT")
var depth = flag.String("depth", string(app.DepthAuto), "channel depth: auto, 8, 16 or f32")
var legacyBounds = flag.Bool("legacy-bounds", false, "clip to a canvas-sized window like the original gazou")
var progress = flag.Bool("progress", false, "show download progress for URL inputs")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: extent [flags] INPUT OUTPUT\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	d, err := app.ParseDepth(*depth)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.Run(app.Options{Debug: *debug, Progress: *progress}, func(l *source.Loader, c *codec.Codec, logger *zap.Logger) error {
		img, err := app.Open(ctx, l, c, flag.Arg(0))
		if err != nil {
			return err
		}

		r := img.Bounds()
		if r.Empty() {
			return errors.Errorf("%s has no pixels", flag.Arg(0))
		}

		w := lo.Ternary(*width > 0, *width, uint32(r.Dx()))
		h := lo.Ternary(*height > 0, *height, uint32(r.Dy()))
		opts := lo.Ternary(*legacyBounds, []composite.Option{composite.WithLegacyBounds()}, nil)

		resolved := d.Resolve(img)
		logger.With(
			zap.Uint32("width", w),
			zap.Uint32("height", h),
			zap.Int64("x", *offsetX),
			zap.Int64("y", *offsetY),
			zap.String("depth", string(resolved)),
		).Debug("extending")

		var out image.Image
		switch resolved {
		case app.Depth16:
			out = extend[pixel.RGBA16](img, w, h, opts)
		case app.DepthFloat:
			out = extend[pixel.RGBA32F](img, w, h, opts)
		default:
			out = extend[pixel.RGBA8](img, w, h, opts)
		}

		return c.Save(flag.Arg(1), out)
	})
	if err != nil {
		log.Fatal(err)
	}
}

func extend[P pixel.Pixel[P]](img image.Image, w, h uint32, opts []composite.Option) image.Image {
	return codec.ToImage[P](composite.Extent[P](codec.Load[P](img), w, h, *offsetX, *offsetY, opts...))
}
