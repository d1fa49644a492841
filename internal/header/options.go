package header

import (
	"io/fs"
	"log/slog"
)

type Options struct {
	Overrides fs.FS
	Logger    *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Overrides: nil,
		Logger:    slog.Default(),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithOverrides sets a filesystem whose root *.gohtml files replace the
// header's named templates, such as the "logo" slot.
func WithOverrides(overrides fs.FS) OptionFunc {
	return func(opts *Options) {
		opts.Overrides = overrides
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
