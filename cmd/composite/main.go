package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"gazou/internal/app"
	"gazou/pkg/codec"
	"gazou/pkg/composite"
	"gazou/pkg/pixel"
	"gazou/pkg/source"
)

var opNames = lo.Map(composite.Operators(), func(op composite.Operator, _ int) string { return op.String() })

var op = flag.String("op", composite.SrcOver.String(), "composite operator: "+strings.Join(opNames, ", "))
var offsetX = flag.Int64("x", 0, "horizontal position of TOP on BOTTOM")
var offsetY = flag.Int64("y", 0, "vertical position of TOP on BOTTOM")
var depth = flag.String("depth", string(app.DepthAuto), "channel depth: auto, 8, 16 or f32")
var legacyBounds = flag.Bool("legacy-bounds", false, "clip to a bottom-sized window like the original gazou")
var progress = flag.Bool("progress", false, "show download progress for URL inputs")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: composite [flags] BOTTOM TOP OUTPUT\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	operator, err := composite.ParseOperator(*op)
	if err != nil {
		log.Fatal(err)
	}

	d, err := app.ParseDepth(*depth)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.Run(app.Options{Debug: *debug, Progress: *progress}, func(l *source.Loader, c *codec.Codec, logger *zap.Logger) error {
		bottom, err := app.Open(ctx, l, c, flag.Arg(0))
		if err != nil {
			return err
		}
		top, err := app.Open(ctx, l, c, flag.Arg(1))
		if err != nil {
			return err
		}

		j := &job{
			bottom: bottom,
			top:    top,
			op:     operator,
			opts:   lo.Ternary(*legacyBounds, []composite.Option{composite.WithLegacyBounds()}, nil),
		}

		resolved := d.Resolve(bottom, top)
		logger.With(
			zap.String("op", operator.String()),
			zap.Int64("x", *offsetX),
			zap.Int64("y", *offsetY),
			zap.String("depth", string(resolved)),
		).Debug("compositing")

		var out image.Image
		switch resolved {
		case app.Depth16:
			out = run[pixel.RGBA16](j)
		case app.DepthFloat:
			out = run[pixel.RGBA32F](j)
		default:
			out = run[pixel.RGBA8](j)
		}

		return c.Save(flag.Arg(2), out)
	})
	if err != nil {
		log.Fatal(err)
	}
}
