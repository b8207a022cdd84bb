// Package source reads image inputs from the local filesystem or over HTTP.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

// IsURL reports whether ref is fetched over HTTP rather than read from disk.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Read returns the raw bytes behind ref, a path or an http(s) URL.
func (l *Loader) Read(ctx context.Context, ref string) ([]byte, error) {
	var bs []byte
	var err error

	if IsURL(ref) {
		bs, err = l.fetch(ctx, ref)
	} else {
		bs, err = afero.ReadFile(l.fs, ref)
		err = errors.Wrapf(err, "read %s", ref)
	}

	if err != nil {
		return nil, err
	}

	l.log.With(
		zap.String("ref", ref),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Debug("loaded")

	return bs, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := l.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, errors.Errorf("fetch %s: unexpected status %s", url, resp.Status())
	}

	var buf bytes.Buffer
	var w io.Writer = &buf
	if l.progress != nil {
		bar := progressbar.NewOptions64(
			resp.RawResponse.ContentLength,
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
		)
		w = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(w, resp.RawBody()); err != nil {
		return nil, errors.Wrapf(err, "download %s", url)
	}

	return buf.Bytes(), nil
}
