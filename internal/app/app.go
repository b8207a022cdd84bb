// Package app wires the loader, codec and logger the commands share.
package app

import (
	"context"
	"image"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"gazou/pkg/codec"
	"gazou/pkg/source"
)

type Options struct {
	Debug    bool
	Progress bool
}

// Module provides *zap.Logger, afero.Fs, *source.Loader and *codec.Codec.
func Module(opts Options) fx.Option {
	return fx.Options(
		fx.Supply(opts),
		fx.Provide(
			newLogger,
			func() afero.Fs { return afero.NewOsFs() },
			newLoader,
			codec.New,
		),
		lo.Ternary(opts.Debug,
			fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
				return &fxevent.ZapLogger{Logger: logger.Named("fx")}
			}),
			fx.NopLogger,
		),
	)
}

// Run builds the application around invoke, which does all the work before
// Run returns.
func Run(opts Options, invoke interface{}) error {
	return fx.New(Module(opts), fx.Invoke(invoke)).Err()
}

func newLogger(opts Options) (*zap.Logger, error) {
	if opts.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newLoader(fs afero.Fs, logger *zap.Logger, opts Options) *source.Loader {
	var sopts []source.Option
	if opts.Progress {
		sopts = append(sopts, source.WithProgress(os.Stderr))
	}
	return source.New(fs, logger.Named("source"), sopts...)
}

// Open reads and decodes the image behind ref.
func Open(ctx context.Context, l *source.Loader, c *codec.Codec, ref string) (image.Image, error) {
	bs, err := l.Read(ctx, ref)
	if err != nil {
		return nil, err
	}
	return c.Decode(bs)
}
