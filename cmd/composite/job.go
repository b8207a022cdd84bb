package main

import (
	"image"

	"gazou/pkg/codec"
	"gazou/pkg/composite"
	"gazou/pkg/pixel"
)

type job struct {
	bottom image.Image
	top    image.Image
	op     composite.Operator
	opts   []composite.Option
}

func run[P pixel.Pixel[P]](j *job) image.Image {
	bottom := codec.Load[P](j.bottom)
	top := codec.Load[P](j.top)

	composite.Composite[P](bottom, top, *offsetX, *offsetY, j.op, j.opts...)
	return codec.ToImage[P](bottom)
}
