// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"github.com/glwrap/glwrap/internal/gl"
)

// Mode is a primitive topology.
type Mode uint8

const (
	Points Mode = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

func (m Mode) glEnum() (gl.Enum, bool) {
	switch m {
	case Points:
		return gl.POINTS, true
	case Lines:
		return gl.LINES, true
	case LineLoop:
		return gl.LINE_LOOP, true
	case LineStrip:
		return gl.LINE_STRIP, true
	case Triangles:
		return gl.TRIANGLES, true
	case TriangleStrip:
		return gl.TRIANGLE_STRIP, true
	case TriangleFan:
		return gl.TRIANGLE_FAN, true
	default:
		return 0, false
	}
}

// SetClearColor sets the color used by Clear.
func (c *Context) SetClearColor(r, g, b, a float32) {
	c.state.setClearColor(c.funcs, r, g, b, a)
}

// Clear clears the color buffer of the current framebuffer.
func (c *Context) Clear() {
	c.funcs.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport sets the viewport rectangle in framebuffer pixels.
func (c *Context) Viewport(x, y, width, height int) {
	c.state.setViewport(c.funcs, x, y, width, height)
}

// DrawArrays draws count vertices starting at first with the current
// program and vertex array.
func (c *Context) DrawArrays(mode Mode, first, count int) error {
	const op = "DrawArrays"
	m, ok := mode.glEnum()
	if !ok {
		return argErr(op, "unknown mode %d", mode)
	}
	if first < 0 || count < 0 {
		return argErr(op, "negative first %d or count %d", first, count)
	}
	c.funcs.DrawArrays(m, first, count)
	return c.check(op)
}

// DrawElements draws count uint16 indices read from the element buffer of
// the current vertex array, starting at byte offset.
func (c *Context) DrawElements(mode Mode, count, offset int) error {
	const op = "DrawElements"
	m, ok := mode.glEnum()
	if !ok {
		return argErr(op, "unknown mode %d", mode)
	}
	if count < 0 || offset < 0 {
		return argErr(op, "negative count %d or offset %d", count, offset)
	}
	c.funcs.DrawElements(m, count, gl.UNSIGNED_SHORT, offset)
	return c.check(op)
}

// Finish blocks until the driver has completed all issued commands.
func (c *Context) Finish() {
	c.funcs.Finish()
}
