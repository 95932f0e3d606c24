// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements off-screen rendering contexts backed by
// hidden GLFW windows.
//
// Every GLFW call and every function passed to Window.Do runs on a single
// goroutine locked to its OS thread, so a Window can be driven from any
// goroutine. GLFW requires the main thread on macOS; NewWindow fails
// there.
package headless

import (
	"errors"
	"fmt"
	"image"
	"runtime"
)

// API is the client API of a context.
type API uint8

const (
	OpenGL API = iota
	OpenGLES
)

func (a API) String() string {
	if a == OpenGLES {
		return "OpenGL ES"
	}
	return "OpenGL"
}

// Window is a hidden window owning a rendering context.
type Window struct {
	size image.Point
	ctx  context
	api  API
}

type context interface {
	MakeCurrent() error
	ReleaseCurrent()
	Release()
}

type options struct {
	apis         []API
	major, minor int
}

// Option configures NewWindow.
type Option func(*options)

// WithAPI restricts NewWindow to one client API. By default OpenGL ES is
// tried first, then desktop OpenGL.
func WithAPI(api API) Option {
	return func(o *options) {
		o.apis = []API{api}
	}
}

// WithVersion requests a minimum context version. The default is 3.0 for
// OpenGL ES and 3.3 core for OpenGL.
func WithVersion(major, minor int) Option {
	return func(o *options) {
		o.major, o.minor = major, minor
	}
}

// NewWindow creates a hidden window of the given framebuffer size.
func NewWindow(width, height int, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("headless: invalid size %dx%d", width, height)
	}
	if runtime.GOOS == "darwin" {
		return nil, errors.New("headless: GLFW needs the main thread on macOS")
	}
	o := options{apis: []API{OpenGLES, OpenGL}}
	for _, opt := range opts {
		opt(&o)
	}
	var firstErr error
	for _, api := range o.apis {
		major, minor := o.major, o.minor
		if major == 0 {
			major, minor = defaultVersion(api)
		}
		ctx, err := newGLFWContext(width, height, api, major, minor)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return &Window{size: image.Point{X: width, Y: height}, ctx: ctx, api: api}, nil
	}
	if firstErr == nil {
		firstErr = errors.New("headless: no client API requested")
	}
	return nil, firstErr
}

func defaultVersion(api API) (major, minor int) {
	if api == OpenGLES {
		return 3, 0
	}
	return 3, 3
}

// Release destroys the window and its context. Release is a no-op on a
// released window.
func (w *Window) Release() {
	if w.ctx != nil {
		w.ctx.Release()
		w.ctx = nil
	}
}

// Size returns the framebuffer size.
func (w *Window) Size() image.Point {
	return w.size
}

// API returns the client API of the context.
func (w *Window) API() API {
	return w.api
}

// Do runs f with the context current and returns its error. The context
// is released from the thread when f returns. f must not call Do or
// Release.
func (w *Window) Do(f func() error) error {
	if w.ctx == nil {
		return errors.New("headless: window is released")
	}
	return contextDo(w.ctx, f)
}

func contextDo(ctx context, f func() error) error {
	return run(func() error {
		if err := ctx.MakeCurrent(); err != nil {
			return err
		}
		defer ctx.ReleaseCurrent()
		return f()
	})
}
