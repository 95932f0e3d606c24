// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"log/slog"
)

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := gpu.NewContext(gpu.WithES(), gpu.WithErrorChecks(true))
type Option func(*options)

type options struct {
	es          bool
	logger      *slog.Logger
	decoder     ImageDecoder
	errorChecks bool
}

func defaultOptions() options {
	return options{
		decoder: defaultDecoder{},
	}
}

// WithES loads the OpenGL ES client library instead of desktop OpenGL.
func WithES() Option {
	return func(o *options) {
		o.es = true
	}
}

// WithLogger overrides the package logger for one context.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithImageDecoder replaces the decoder used by NewTextureFromFile.
func WithImageDecoder(d ImageDecoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithErrorChecks makes uploads and draw calls drain glGetError and
// report a *DriverError. Useful while debugging; it stalls pipelined
// drivers.
func WithErrorChecks(enable bool) Option {
	return func(o *options) {
		o.errorChecks = enable
	}
}
