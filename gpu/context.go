// SPDX-License-Identifier: Unlicense OR MIT

// Package gpu wraps OpenGL and OpenGL ES objects in typed Go handles.
//
// A Context is bound to the rendering context that is current on the
// calling OS thread when NewContext runs. It is not safe for concurrent
// use; callers must drive it from that thread only, typically after
// runtime.LockOSThread.
//
// Every object is released explicitly by its owner. A Scope collects
// objects for release in one deferred call.
package gpu

import (
	"fmt"
	"log/slog"

	"github.com/glwrap/glwrap/internal/gl"
)

// functions is the subset of the driver binding used by the package.
// *gl.Functions implements it.
type functions interface {
	ActiveTexture(texture gl.Enum)
	AttachShader(p gl.Program, s gl.Shader)
	BindAttribLocation(p gl.Program, a gl.Attrib, name string)
	BindBuffer(target gl.Enum, b gl.Buffer)
	BindFramebuffer(target gl.Enum, fb gl.Framebuffer)
	BindTexture(target gl.Enum, t gl.Texture)
	BindVertexArray(a gl.VertexArray)
	BufferData(target gl.Enum, size int, usage gl.Enum, data []byte)
	BufferSubData(target gl.Enum, offset int, src []byte)
	CheckFramebufferStatus(target gl.Enum) gl.Enum
	Clear(mask gl.Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s gl.Shader)
	CreateBuffer() gl.Buffer
	CreateFramebuffer() gl.Framebuffer
	CreateProgram() gl.Program
	CreateShader(ty gl.Enum) gl.Shader
	CreateTexture() gl.Texture
	CreateVertexArray() gl.VertexArray
	DeleteBuffer(v gl.Buffer)
	DeleteFramebuffer(v gl.Framebuffer)
	DeleteProgram(p gl.Program)
	DeleteShader(s gl.Shader)
	DeleteTexture(v gl.Texture)
	DeleteVertexArray(a gl.VertexArray)
	DetachShader(p gl.Program, s gl.Shader)
	DisableVertexAttribArray(a gl.Attrib)
	DrawArrays(mode gl.Enum, first, count int)
	DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int)
	EnableVertexAttribArray(a gl.Attrib)
	Finish()
	Flush()
	FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int)
	GetError() gl.Enum
	GetFloat4(pname gl.Enum) [4]float32
	GetInteger(pname gl.Enum) int
	GetInteger4(pname gl.Enum) [4]int
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program, buf []byte)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader, buf []byte)
	GetString(pname gl.Enum) string
	GetTexParameteri(target, pname gl.Enum) int
	GetUniformLocation(p gl.Program, name string) gl.Uniform
	GetVertexAttrib(index int, pname gl.Enum) int
	LinkProgram(p gl.Program)
	PixelStorei(pname gl.Enum, param int)
	ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte)
	ShaderSource(s gl.Shader, src string)
	TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte)
	TexParameteri(target, pname gl.Enum, param int)
	Uniform1f(dst gl.Uniform, v float32)
	Uniform1i(dst gl.Uniform, v int)
	Uniform2f(dst gl.Uniform, v0, v1 float32)
	Uniform3f(dst gl.Uniform, v0, v1, v2 float32)
	Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32)
	UniformMatrix4f(dst gl.Uniform, m [16]float32)
	UseProgram(p gl.Program)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}

// Context owns the binding cache of one rendering context.
type Context struct {
	funcs functions
	state glState

	glver      [2]int
	gles       bool
	renderer   string
	maxAttribs int
	maxTexSize int

	log         *slog.Logger
	decoder     ImageDecoder
	errorChecks bool
}

// NewContext loads the driver entry points for the rendering context
// current on the calling thread.
func NewContext(opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f, err := gl.NewFunctions(nil, o.es)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	return newContext(f, o)
}

func newContext(f functions, o options) (*Context, error) {
	ver := f.GetString(gl.VERSION)
	glver, gles, err := gl.ParseGLVersion(ver)
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}
	c := &Context{
		funcs:       f,
		glver:       glver,
		gles:        gles,
		renderer:    f.GetString(gl.RENDERER),
		log:         o.logger,
		decoder:     o.decoder,
		errorChecks: o.errorChecks,
	}
	c.state = queryState(f, c.hasVertexArrays())
	c.maxAttribs = f.GetInteger(gl.MAX_VERTEX_ATTRIBS)
	c.maxTexSize = f.GetInteger(gl.MAX_TEXTURE_SIZE)
	// Discard errors raised by queries the driver does not know.
	c.drainErrors()
	c.logger().Info("gpu: context created", "version", ver, "renderer", c.renderer, "gles", gles)
	return c, nil
}

func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// Version reports the OpenGL (ES) major and minor version.
func (c *Context) Version() (major, minor int) {
	return c.glver[0], c.glver[1]
}

// ES reports whether the context is OpenGL ES.
func (c *Context) ES() bool {
	return c.gles
}

// Renderer returns the GL_RENDERER string.
func (c *Context) Renderer() string {
	return c.renderer
}

func (c *Context) hasVertexArrays() bool {
	return c.glver[0] >= 3
}

// ResetState discards the binding cache and queries the driver again.
// Call it after issuing GL calls that bypass the Context.
func (c *Context) ResetState() {
	c.state = queryState(c.funcs, c.hasVertexArrays())
	c.drainErrors()
}

func (c *Context) drainErrors() {
	// Bounded; a lost context reports errors forever on some drivers.
	for i := 0; i < 32; i++ {
		if c.funcs.GetError() == gl.NO_ERROR {
			return
		}
	}
}

// Err returns the oldest pending driver error, if any, and discards the
// rest.
func (c *Context) Err() error {
	st := c.funcs.GetError()
	if st == gl.NO_ERROR {
		return nil
	}
	c.drainErrors()
	return &DriverError{Op: "glGetError", Code: uint(st)}
}

// check reports a pending driver error for op when error checks are
// enabled.
func (c *Context) check(op string) error {
	if !c.errorChecks {
		return nil
	}
	if st := c.funcs.GetError(); st != gl.NO_ERROR {
		c.drainErrors()
		return &DriverError{Op: op, Code: uint(st)}
	}
	return nil
}

// allocFailed logs and returns the error for a zero handle from the
// driver. Pending driver errors are discarded; they describe the failed
// allocation.
func (c *Context) allocFailed(kind ObjectKind) error {
	c.drainErrors()
	c.logger().Warn("gpu: allocation failed", "object", kind.String())
	return &AllocationError{Object: kind}
}
