// Package codec moves images between encoded files and pixel buffers.
package codec

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"gazou/pkg/bitmap"
)

// ExtRGB565 selects the raw RGB565 framebuffer output.
const ExtRGB565 = ".rgb565"

func New(fs afero.Fs, logger *zap.Logger) *Codec {
	return &Codec{fs: fs, log: logger}
}

type Codec struct {
	fs  afero.Fs
	log *zap.Logger
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image, applying any EXIF
// orientation.
func (c *Codec) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	b := img.Bounds()
	c.log.With(
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
		zap.Int("depth", Depth(img)),
	).Debug("decoded")

	return img, nil
}

// Save encodes img in the format named by path's extension and replaces path
// with it. The data is written to a temporary file next to path first.
func (c *Codec) Save(path string, img image.Image) error {
	data, err := c.encode(path, img)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if exists, err := afero.DirExists(c.fs, dir); err != nil {
		return errors.Wrapf(err, "stat %s", dir)
	} else if !exists {
		if err2 := c.fs.MkdirAll(dir, 0755); err2 != nil {
			return errors.Wrapf(err2, "create %s", dir)
		}
	}

	tmp := filepath.Join(dir, "."+xid.New().String()+".tmp")
	if err := afero.WriteFile(c.fs, tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}

	if err := c.fs.Rename(tmp, path); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Wrapf(err, "rename to %s", path)
	}

	c.log.With(zap.String("path", path), zap.Int("bytes", len(data))).Debug("saved")
	return nil
}

func (c *Codec) encode(path string, img image.Image) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ExtRGB565) {
		return bitmap.Encode[bitmap.RGB565](Load[bitmap.RGB565](img)), nil
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return nil, errors.Wrapf(err, "output %s", path)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, errors.Wrapf(err, "encode %s", format)
	}

	return buf.Bytes(), nil
}
