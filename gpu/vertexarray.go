// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"github.com/glwrap/glwrap/internal/gl"
)

// AttribType is the component type of a vertex attribute in its source
// buffer. Integer types are converted to floats by the driver.
type AttribType uint8

const (
	AttribFloat32 AttribType = iota
	AttribInt16
	AttribUint8
	AttribUint16
	AttribUint32
)

func (t AttribType) glEnum() (gl.Enum, bool) {
	switch t {
	case AttribFloat32:
		return gl.FLOAT, true
	case AttribInt16:
		return gl.SHORT, true
	case AttribUint8:
		return gl.UNSIGNED_BYTE, true
	case AttribUint16:
		return gl.UNSIGNED_SHORT, true
	case AttribUint32:
		return gl.UNSIGNED_INT, true
	default:
		return 0, false
	}
}

// Size returns the byte size of one component.
func (t AttribType) Size() int {
	switch t {
	case AttribUint8:
		return 1
	case AttribInt16, AttribUint16:
		return 2
	default:
		return 4
	}
}

func attribTypeOf(e gl.Enum) AttribType {
	switch e {
	case gl.SHORT:
		return AttribInt16
	case gl.UNSIGNED_BYTE:
		return AttribUint8
	case gl.UNSIGNED_SHORT:
		return AttribUint16
	case gl.UNSIGNED_INT:
		return AttribUint32
	default:
		return AttribFloat32
	}
}

// AttributeDescriptor describes one attribute slot of a vertex array.
type AttributeDescriptor struct {
	Index       int
	Components  int
	Buffer      uint
	VertexArray uint
	Type        AttribType
	Normalized  bool
	// Stride is the byte distance between consecutive elements. Zero
	// means tightly packed.
	Stride  int
	Offset  int
	Enabled bool
}

// EffectiveStride returns Stride, or the packed element size when Stride
// is zero.
func (d AttributeDescriptor) EffectiveStride() int {
	if d.Stride != 0 {
		return d.Stride
	}
	return d.Components * d.Type.Size()
}

// VertexArray is a vertex array object.
type VertexArray struct {
	ctx *Context
	obj gl.VertexArray
	// offsets records the byte offsets of described slots; the driver
	// query for them needs a pointer-sized result.
	offsets map[int]int
}

// NewVertexArray allocates a vertex array object. Drivers without vertex
// array objects return an *AllocationError.
func (c *Context) NewVertexArray() (*VertexArray, error) {
	obj := c.funcs.CreateVertexArray()
	if !obj.Valid() {
		return nil, c.allocFailed(ObjectVertexArray)
	}
	c.logger().Debug("gpu: vertex array created", "handle", obj.V)
	return &VertexArray{ctx: c, obj: obj, offsets: make(map[int]int)}, nil
}

// DescribeAttribute sources attribute slot index from buf as tightly
// packed float32 vectors of the given component count, starting at offset
// 0, and enables the slot. Describing a slot again replaces its
// configuration. The vertex array binding is reset to 0 afterwards.
func (a *VertexArray) DescribeAttribute(buf *Buffer, index, components int) error {
	return a.DescribeAttributeLayout(buf, AttributeDescriptor{
		Index:      index,
		Components: components,
		Type:       AttribFloat32,
	})
}

// DescribeAttributeLayout is like DescribeAttribute with an explicit
// component type, normalization, stride and offset, for interleaved data.
// The Buffer, VertexArray and Enabled fields of d are ignored.
func (a *VertexArray) DescribeAttributeLayout(buf *Buffer, d AttributeDescriptor) error {
	const op = "DescribeAttribute"
	if d.Components < 1 || d.Components > 4 {
		return argErr(op, "component count %d not in [1,4]", d.Components)
	}
	if d.Index < 0 {
		return argErr(op, "negative attribute index %d", d.Index)
	}
	if limit := a.ctx.maxAttribs; limit > 0 && d.Index >= limit {
		return argErr(op, "attribute index %d exceeds driver limit %d", d.Index, limit)
	}
	ty, ok := d.Type.glEnum()
	if !ok {
		return argErr(op, "unknown attribute type %d", d.Type)
	}
	if d.Stride < 0 || d.Offset < 0 {
		return argErr(op, "negative stride %d or offset %d", d.Stride, d.Offset)
	}
	if buf == nil || !buf.obj.Valid() {
		return argErr(op, "buffer is nil or released")
	}
	if !a.obj.Valid() {
		return argErr(op, "vertex array is released")
	}
	c := a.ctx
	f := c.funcs
	c.state.bindVertexArray(f, a.obj)
	c.state.bindBuffer(f, gl.ARRAY_BUFFER, buf.obj)
	f.EnableVertexAttribArray(gl.Attrib(d.Index))
	f.VertexAttribPointer(gl.Attrib(d.Index), d.Components, ty, d.Normalized, d.Stride, d.Offset)
	c.state.bindVertexArray(f, gl.VertexArray{})
	a.offsets[d.Index] = d.Offset
	return c.check(op)
}

// Attribute queries the driver for the configuration of slot index.
func (a *VertexArray) Attribute(index int) (AttributeDescriptor, error) {
	if index < 0 {
		return AttributeDescriptor{}, argErr("Attribute", "negative attribute index %d", index)
	}
	if !a.obj.Valid() {
		return AttributeDescriptor{}, argErr("Attribute", "vertex array is released")
	}
	c := a.ctx
	f := c.funcs
	prev := c.state.vertArray
	c.state.bindVertexArray(f, a.obj)
	d := AttributeDescriptor{
		Index:       index,
		VertexArray: a.obj.V,
		Enabled:     f.GetVertexAttrib(index, gl.VERTEX_ATTRIB_ARRAY_ENABLED) != gl.FALSE,
		Components:  f.GetVertexAttrib(index, gl.VERTEX_ATTRIB_ARRAY_SIZE),
		Type:        attribTypeOf(gl.Enum(f.GetVertexAttrib(index, gl.VERTEX_ATTRIB_ARRAY_TYPE))),
		Normalized:  f.GetVertexAttrib(index, gl.VERTEX_ATTRIB_ARRAY_NORMALIZED) != gl.FALSE,
		Stride:      f.GetVertexAttrib(index, gl.VERTEX_ATTRIB_ARRAY_STRIDE),
		Buffer:      uint(f.GetVertexAttrib(index, gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING)),
		Offset:      a.offsets[index],
	}
	c.state.bindVertexArray(f, prev)
	return d, c.check("Attribute")
}

// Bind makes the vertex array current for draw calls.
func (a *VertexArray) Bind() {
	a.ctx.state.bindVertexArray(a.ctx.funcs, a.obj)
}

// Handle returns the driver name of the vertex array, or 0 after Release.
func (a *VertexArray) Handle() uint {
	if a == nil {
		return 0
	}
	return a.obj.V
}

// Release deletes the vertex array. Release is a no-op on a released
// vertex array.
func (a *VertexArray) Release() {
	if a == nil || !a.obj.Valid() {
		return
	}
	a.ctx.state.deleteVertexArray(a.ctx.funcs, a.obj)
	a.ctx.logger().Debug("gpu: vertex array released", "handle", a.obj.V)
	a.obj = gl.VertexArray{}
	clear(a.offsets)
}
