package source

import (
	"io"

	"github.com/go-resty/resty/v2"
)

type Option func(l *Loader)

// WithProgress draws a download progress bar on w for URL inputs.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) {
		l.progress = w
	}
}

// WithClient replaces the HTTP client. Raw response bodies are always kept.
func WithClient(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}
