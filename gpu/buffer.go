// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"golang.org/x/exp/constraints"

	"github.com/glwrap/glwrap/internal/gl"
	"github.com/glwrap/glwrap/internal/unsafe"
)

// BufferTarget is the binding point a buffer is uploaded through.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) glEnum() (gl.Enum, bool) {
	switch t {
	case ArrayBuffer:
		return gl.ARRAY_BUFFER, true
	case ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER, true
	default:
		return 0, false
	}
}

// Usage hints how buffer contents are updated. It affects driver
// placement only.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (u Usage) glEnum() (gl.Enum, bool) {
	switch u {
	case StaticDraw:
		return gl.STATIC_DRAW, true
	case DynamicDraw:
		return gl.DYNAMIC_DRAW, true
	case StreamDraw:
		return gl.STREAM_DRAW, true
	default:
		return 0, false
	}
}

// Scalar is the element type of typed buffer uploads.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Buffer is a buffer object.
type Buffer struct {
	ctx  *Context
	obj  gl.Buffer
	size int
}

// NewBuffer allocates a buffer object without storage.
func (c *Context) NewBuffer() (*Buffer, error) {
	obj := c.funcs.CreateBuffer()
	if !obj.Valid() {
		return nil, c.allocFailed(ObjectBuffer)
	}
	c.logger().Debug("gpu: buffer created", "handle", obj.V)
	return &Buffer{ctx: c, obj: obj}, nil
}

// SetBufferData replaces the contents of buf with data. The byte length
// is len(data) times the size of T.
//
//	gpu.SetBufferData(buf, gpu.ArrayBuffer, gpu.StaticDraw, []float32{1, 2, 3})
func SetBufferData[T Scalar](buf *Buffer, target BufferTarget, usage Usage, data []T) error {
	return buf.SetData(target, usage, unsafe.BytesView(data))
}

// SetData replaces the contents of the buffer with data.
func (b *Buffer) SetData(target BufferTarget, usage Usage, data []byte) error {
	t, ok := target.glEnum()
	if !ok {
		return argErr("SetData", "unknown buffer target %d", target)
	}
	u, ok := usage.glEnum()
	if !ok {
		return argErr("SetData", "unknown usage %d", usage)
	}
	if !b.obj.Valid() {
		return argErr("SetData", "buffer is released")
	}
	c := b.ctx
	c.state.bindBuffer(c.funcs, t, b.obj)
	c.funcs.BufferData(t, len(data), u, data)
	b.size = len(data)
	c.logger().Debug("gpu: buffer upload", "handle", b.obj.V, "bytes", len(data))
	return c.check("SetData")
}

// Update overwrites part of the buffer starting at byte offset off.
func (b *Buffer) Update(target BufferTarget, off int, data []byte) error {
	t, ok := target.glEnum()
	if !ok {
		return argErr("Update", "unknown buffer target %d", target)
	}
	if off < 0 || off+len(data) > b.size {
		return argErr("Update", "range [%d,%d) outside buffer of %d bytes", off, off+len(data), b.size)
	}
	c := b.ctx
	c.state.bindBuffer(c.funcs, t, b.obj)
	c.funcs.BufferSubData(t, off, data)
	return c.check("Update")
}

// Size returns the byte size of the last upload.
func (b *Buffer) Size() int {
	return b.size
}

// Handle returns the driver name of the buffer, or 0 after Release.
func (b *Buffer) Handle() uint {
	if b == nil {
		return 0
	}
	return b.obj.V
}

// Release deletes the buffer. Release is a no-op on a released buffer.
func (b *Buffer) Release() {
	if b == nil || !b.obj.Valid() {
		return
	}
	b.ctx.state.deleteBuffer(b.ctx.funcs, b.obj)
	b.ctx.logger().Debug("gpu: buffer released", "handle", b.obj.V)
	b.obj = gl.Buffer{}
	b.size = 0
}
