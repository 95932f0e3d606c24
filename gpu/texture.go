// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/glwrap/glwrap/internal/gl"
)

// TextureTarget is the kind of texture an object was created as.
type TextureTarget uint8

const (
	Texture2D TextureTarget = iota
)

// Filter is a texture sampling filter.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterLinear
)

// Wrap is a texture coordinate wrapping mode.
type Wrap uint8

const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// TextureParameter names a sampling parameter of a texture.
type TextureParameter uint8

const (
	ParamMinFilter TextureParameter = iota
	ParamMagFilter
	ParamWrapS
	ParamWrapT
)

// ParameterValue is a value for Texture.Parameter: a Filter or a Wrap.
type ParameterValue interface {
	paramValue() gl.Enum
}

func (f Filter) paramValue() gl.Enum {
	if f == FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func (w Wrap) paramValue() gl.Enum {
	switch w {
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func filterOf(v int) Filter {
	if gl.Enum(v) == gl.NEAREST {
		return FilterNearest
	}
	return FilterLinear
}

// PixelBuffer is a tightly packed RGBA8 image, row 0 first.
type PixelBuffer struct {
	Width, Height int
	Pix           []byte
}

func (p PixelBuffer) size() int {
	return p.Width * p.Height * 4
}

// FlipVertical returns a copy of p with the row order reversed.
func (p PixelBuffer) FlipVertical() PixelBuffer {
	stride := p.Width * 4
	out := PixelBuffer{Width: p.Width, Height: p.Height, Pix: make([]byte, p.size())}
	for y := 0; y < p.Height; y++ {
		src := p.Pix[y*stride : (y+1)*stride]
		copy(out.Pix[(p.Height-1-y)*stride:], src)
	}
	return out
}

// Texture is a texture object.
type Texture struct {
	ctx    *Context
	obj    gl.Texture
	target TextureTarget
	width  int
	height int
}

// NewTexture allocates a 2D texture object without storage.
func (c *Context) NewTexture() (*Texture, error) {
	obj := c.funcs.CreateTexture()
	if !obj.Valid() {
		return nil, c.allocFailed(ObjectTexture)
	}
	c.logger().Debug("gpu: texture created", "handle", obj.V)
	return &Texture{ctx: c, obj: obj, target: Texture2D}, nil
}

// Upload2D replaces level 0 of the texture with pb, stored as RGBA8. It
// sets the magnification filter to nearest and the minification filter to
// linear. pb is not retained.
func (t *Texture) Upload2D(pb PixelBuffer) error {
	const op = "Upload2D"
	if pb.Width <= 0 || pb.Height <= 0 {
		return argErr(op, "invalid size %dx%d", pb.Width, pb.Height)
	}
	if n := pb.size(); len(pb.Pix) < n {
		return argErr(op, "%d bytes of pixel data for %dx%d RGBA, want %d", len(pb.Pix), pb.Width, pb.Height, n)
	}
	c := t.ctx
	if limit := c.maxTexSize; limit > 0 && (pb.Width > limit || pb.Height > limit) {
		return argErr(op, "size %dx%d exceeds driver limit %d", pb.Width, pb.Height, limit)
	}
	if !t.obj.Valid() {
		return argErr(op, "texture is released")
	}
	f := c.funcs
	c.state.bindTextureActive(f, t.obj)
	f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	internal := gl.Enum(gl.RGBA8)
	if c.gles && c.glver[0] < 3 {
		// OpenGL ES 2 requires matching internal and external formats.
		internal = gl.RGBA
	}
	f.TexImage2D(gl.TEXTURE_2D, 0, internal, pb.Width, pb.Height, gl.RGBA, gl.UNSIGNED_BYTE, pb.Pix[:pb.size()])
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	t.width, t.height = pb.Width, pb.Height
	c.logger().Debug("gpu: texture upload", "handle", t.obj.V, "width", pb.Width, "height", pb.Height)
	return c.check(op)
}

// SetFilter sets the minification and magnification filters.
func (t *Texture) SetFilter(min, mag Filter) error {
	if err := t.Parameter(ParamMinFilter, min); err != nil {
		return err
	}
	return t.Parameter(ParamMagFilter, mag)
}

// SetWrap sets the wrapping modes of the s and t coordinates.
func (t *Texture) SetWrap(s, tc Wrap) error {
	if err := t.Parameter(ParamWrapS, s); err != nil {
		return err
	}
	return t.Parameter(ParamWrapT, tc)
}

// Parameter sets a sampling parameter. Filter parameters take a Filter,
// wrap parameters a Wrap.
func (t *Texture) Parameter(p TextureParameter, v ParameterValue) error {
	const op = "Parameter"
	var pname gl.Enum
	switch p {
	case ParamMinFilter, ParamMagFilter:
		if _, ok := v.(Filter); !ok {
			return argErr(op, "filter parameter given %T", v)
		}
		pname = gl.TEXTURE_MIN_FILTER
		if p == ParamMagFilter {
			pname = gl.TEXTURE_MAG_FILTER
		}
	case ParamWrapS, ParamWrapT:
		if _, ok := v.(Wrap); !ok {
			return argErr(op, "wrap parameter given %T", v)
		}
		pname = gl.TEXTURE_WRAP_S
		if p == ParamWrapT {
			pname = gl.TEXTURE_WRAP_T
		}
	default:
		return argErr(op, "unknown texture parameter %d", p)
	}
	if !t.obj.Valid() {
		return argErr(op, "texture is released")
	}
	c := t.ctx
	c.state.bindTextureActive(c.funcs, t.obj)
	c.funcs.TexParameteri(gl.TEXTURE_2D, pname, int(v.paramValue()))
	return c.check(op)
}

// Filters queries the driver for the minification and magnification
// filters.
func (t *Texture) Filters() (min, mag Filter) {
	c := t.ctx
	c.state.bindTextureActive(c.funcs, t.obj)
	min = filterOf(c.funcs.GetTexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER))
	mag = filterOf(c.funcs.GetTexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER))
	return min, mag
}

// Bind binds the texture to a texture unit for sampling.
func (t *Texture) Bind(unit int) error {
	if unit < 0 || unit >= maxTextureUnits {
		return argErr("Bind", "texture unit %d not in [0,%d)", unit, maxTextureUnits)
	}
	t.ctx.state.bindTexture(t.ctx.funcs, unit, t.obj)
	return nil
}

// ReadPixels reads level 0 back through a temporary framebuffer. The
// texture must have been uploaded.
func (t *Texture) ReadPixels() (PixelBuffer, error) {
	const op = "ReadPixels"
	if !t.obj.Valid() {
		return PixelBuffer{}, argErr(op, "texture is released")
	}
	if t.width == 0 || t.height == 0 {
		return PixelBuffer{}, argErr(op, "texture has no storage")
	}
	c := t.ctx
	f := c.funcs
	fbo := f.CreateFramebuffer()
	if !fbo.Valid() {
		return PixelBuffer{}, c.allocFailed(ObjectFramebuffer)
	}
	prev := c.state.fbo
	defer func() {
		c.state.bindFramebuffer(f, prev)
		c.state.deleteFramebuffer(f, fbo)
	}()
	c.state.bindFramebuffer(f, fbo)
	f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.obj, 0)
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		return PixelBuffer{}, fmt.Errorf("gpu: %s: framebuffer incomplete (%#x)", op, uint(st))
	}
	pb := PixelBuffer{Width: t.width, Height: t.height}
	pb.Pix = make([]byte, pb.size())
	f.PixelStorei(gl.PACK_ALIGNMENT, 1)
	f.ReadPixels(0, 0, t.width, t.height, gl.RGBA, gl.UNSIGNED_BYTE, pb.Pix)
	return pb, c.check(op)
}

// Size returns the dimensions of the last upload.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Target returns the texture kind.
func (t *Texture) Target() TextureTarget {
	return t.target
}

// Handle returns the driver name of the texture, or 0 after Release.
func (t *Texture) Handle() uint {
	if t == nil {
		return 0
	}
	return t.obj.V
}

// Release deletes the texture. Release is a no-op on a released texture.
func (t *Texture) Release() {
	if t == nil || !t.obj.Valid() {
		return
	}
	t.ctx.state.deleteTexture(t.ctx.funcs, t.obj)
	t.ctx.logger().Debug("gpu: texture released", "handle", t.obj.V)
	t.obj = gl.Texture{}
	t.width, t.height = 0, 0
}
