// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"github.com/glwrap/glwrap/internal/gl"
)

// maxTextureUnits is the number of texture units tracked by the binding
// cache. OpenGL ES 3 and desktop OpenGL 3.3 guarantee at least 16.
const maxTextureUnits = 16

// glState caches driver bindings to skip redundant calls. It mirrors what
// the driver holds as long as every binding change goes through it.
type glState struct {
	prog     gl.Program
	arrayBuf gl.Buffer
	// elemBuf is vertex array state; it is unknown after the vertex array
	// binding changes.
	elemBuf      gl.Buffer
	elemBufKnown bool
	vertArray    gl.VertexArray
	fbo          gl.Framebuffer
	texUnits     struct {
		active gl.Enum
		binds  [maxTextureUnits]gl.Texture
	}
	clearColor [4]float32
	viewport   [4]int
}

func queryState(f functions, vao bool) glState {
	s := glState{
		prog:       gl.Program{V: uint(f.GetInteger(gl.CURRENT_PROGRAM))},
		arrayBuf:   gl.Buffer{V: uint(f.GetInteger(gl.ARRAY_BUFFER_BINDING))},
		elemBuf:    gl.Buffer{V: uint(f.GetInteger(gl.ELEMENT_ARRAY_BUFFER_BINDING))},
		fbo:        gl.Framebuffer{V: uint(f.GetInteger(gl.FRAMEBUFFER_BINDING))},
		clearColor: f.GetFloat4(gl.COLOR_CLEAR_VALUE),
		viewport:   f.GetInteger4(gl.VIEWPORT),
	}
	s.elemBufKnown = true
	if vao {
		s.vertArray = gl.VertexArray{V: uint(f.GetInteger(gl.VERTEX_ARRAY_BINDING))}
	}
	s.texUnits.active = gl.Enum(f.GetInteger(gl.ACTIVE_TEXTURE))
	// Only the active unit is queried; the others are assumed empty.
	if u := int(s.texUnits.active - gl.TEXTURE0); u >= 0 && u < maxTextureUnits {
		s.texUnits.binds[u] = gl.Texture{V: uint(f.GetInteger(gl.TEXTURE_BINDING_2D))}
	}
	return s
}

func (s *glState) activeTexture(f functions, unit gl.Enum) {
	if unit != s.texUnits.active {
		f.ActiveTexture(unit)
		s.texUnits.active = unit
	}
}

func (s *glState) bindTexture(f functions, unit int, t gl.Texture) {
	s.activeTexture(f, gl.TEXTURE0+gl.Enum(unit))
	if !t.Equal(s.texUnits.binds[unit]) {
		f.BindTexture(gl.TEXTURE_2D, t)
		s.texUnits.binds[unit] = t
	}
}

// bindTextureActive binds t to whichever unit is active.
func (s *glState) bindTextureActive(f functions, t gl.Texture) {
	unit := int(s.texUnits.active - gl.TEXTURE0)
	if unit < 0 || unit >= maxTextureUnits {
		unit = 0
	}
	s.bindTexture(f, unit, t)
}

func (s *glState) bindVertexArray(f functions, a gl.VertexArray) {
	if !a.Equal(s.vertArray) {
		f.BindVertexArray(a)
		s.vertArray = a
		s.elemBufKnown = false
	}
}

func (s *glState) bindFramebuffer(f functions, fbo gl.Framebuffer) {
	if !fbo.Equal(s.fbo) {
		f.BindFramebuffer(gl.FRAMEBUFFER, fbo)
		s.fbo = fbo
	}
}

func (s *glState) deleteFramebuffer(f functions, fbo gl.Framebuffer) {
	f.DeleteFramebuffer(fbo)
	if fbo.Equal(s.fbo) {
		s.fbo = gl.Framebuffer{}
	}
}

func (s *glState) deleteBuffer(f functions, b gl.Buffer) {
	f.DeleteBuffer(b)
	if b.Equal(s.arrayBuf) {
		s.arrayBuf = gl.Buffer{}
	}
	if b.Equal(s.elemBuf) {
		s.elemBuf = gl.Buffer{}
	}
}

func (s *glState) deleteProgram(f functions, p gl.Program) {
	f.DeleteProgram(p)
	if p.Equal(s.prog) {
		s.prog = gl.Program{}
	}
}

func (s *glState) deleteVertexArray(f functions, a gl.VertexArray) {
	f.DeleteVertexArray(a)
	if a.Equal(s.vertArray) {
		s.vertArray = gl.VertexArray{}
		s.elemBufKnown = false
	}
}

func (s *glState) deleteTexture(f functions, t gl.Texture) {
	f.DeleteTexture(t)
	binds := &s.texUnits.binds
	for i, obj := range binds {
		if t.Equal(obj) {
			binds[i] = gl.Texture{}
		}
	}
}

func (s *glState) useProgram(f functions, p gl.Program) {
	if !p.Equal(s.prog) {
		f.UseProgram(p)
		s.prog = p
	}
}

func (s *glState) bindBuffer(f functions, target gl.Enum, buf gl.Buffer) {
	switch target {
	case gl.ARRAY_BUFFER:
		if buf.Equal(s.arrayBuf) {
			return
		}
		s.arrayBuf = buf
	case gl.ELEMENT_ARRAY_BUFFER:
		if s.elemBufKnown && buf.Equal(s.elemBuf) {
			return
		}
		s.elemBuf = buf
		s.elemBufKnown = true
	default:
		panic("unknown buffer target")
	}
	f.BindBuffer(target, buf)
}

func (s *glState) setClearColor(f functions, r, g, b, a float32) {
	col := [4]float32{r, g, b, a}
	if col != s.clearColor {
		f.ClearColor(r, g, b, a)
		s.clearColor = col
	}
}

func (s *glState) setViewport(f functions, x, y, width, height int) {
	view := [4]int{x, y, width, height}
	if view != s.viewport {
		f.Viewport(x, y, width, height)
		s.viewport = view
	}
}
