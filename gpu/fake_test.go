// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glwrap/glwrap/internal/gl"
)

// fakeGL is an in-memory driver. Its compiler accepts any source that
// declares main and contains no #error directive; its linker wants a
// vertex and a fragment stage, or a lone compute stage.
type fakeGL struct {
	version  string
	renderer string

	next  uint
	errs  []gl.Enum
	calls map[string]int

	// failAlloc makes the Create call of a kind return the zero name.
	failAlloc map[ObjectKind]bool
	noVAO     bool

	maxAttribs int
	maxTexSize int

	shaders  map[uint]*fakeShader
	programs map[uint]*fakeProgram
	buffers  map[uint]*fakeBuffer
	vaos     map[uint]*fakeVAO
	textures map[uint]*fakeTexture
	fbos     map[uint]*fakeFBO

	prog       uint
	arrayBuf   uint
	vao        uint
	defaultVAO fakeVAO
	fbo        uint
	activeTex  gl.Enum
	texBinds   map[gl.Enum]uint
	clearColor [4]float32
	viewport   [4]int
	pixelStore map[gl.Enum]int

	clears []([4]float32)
	draws  []fakeDraw
}

type fakeShader struct {
	ty      gl.Enum
	src     string
	status  bool
	log     string
	deleted bool
}

type fakeProgram struct {
	attached   []uint
	status     bool
	log        string
	linked     bool
	uniforms   map[string]int
	values     map[int][]float32
	attribLocs map[string]int
}

type fakeBuffer struct {
	data  []byte
	usage gl.Enum
}

type fakeAttrib struct {
	enabled    bool
	size       int
	ty         gl.Enum
	normalized bool
	stride     int
	offset     int
	buf        uint
}

type fakeVAO struct {
	attribs [16]fakeAttrib
	elemBuf uint
}

type fakeTexture struct {
	width, height int
	internal      gl.Enum
	pix           []byte
	params        map[gl.Enum]int
}

type fakeFBO struct {
	tex uint
}

type fakeDraw struct {
	mode         gl.Enum
	first, count int
	indexed      bool
	prog, vao    uint
}

const fakeNearestMipmapLinear = 0x2702

var (
	uniformDecl = regexp.MustCompile(`uniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*;`)
	errorDecl   = regexp.MustCompile(`#error\s*(.*)`)
)

func newFakeGL() *fakeGL {
	return &fakeGL{
		version:    "3.3 (Core Profile) Mesa 23.2.1",
		renderer:   "fake",
		next:       1,
		calls:      make(map[string]int),
		failAlloc:  make(map[ObjectKind]bool),
		maxAttribs: 16,
		maxTexSize: 4096,
		shaders:    make(map[uint]*fakeShader),
		programs:   make(map[uint]*fakeProgram),
		buffers:    make(map[uint]*fakeBuffer),
		vaos:       make(map[uint]*fakeVAO),
		textures:   make(map[uint]*fakeTexture),
		fbos:       make(map[uint]*fakeFBO),
		activeTex:  gl.TEXTURE0,
		texBinds:   make(map[gl.Enum]uint),
		viewport:   [4]int{0, 0, 640, 480},
		pixelStore: map[gl.Enum]int{gl.PACK_ALIGNMENT: 4, gl.UNPACK_ALIGNMENT: 4},
	}
}

// newTestContext returns a Context over a fresh fakeGL.
func newTestContext(t *testing.T, opts ...Option) (*Context, *fakeGL) {
	t.Helper()
	f := newFakeGL()
	return newTestContextWith(t, f, opts...), f
}

func newTestContextWith(t *testing.T, f *fakeGL, opts ...Option) *Context {
	t.Helper()
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c, err := newContext(f, o)
	require.NoError(t, err)
	return c
}

func (f *fakeGL) call(name string) {
	f.calls[name]++
}

func (f *fakeGL) fail(code gl.Enum) {
	f.errs = append(f.errs, code)
}

func (f *fakeGL) name() uint {
	n := f.next
	f.next++
	return n
}

func (f *fakeGL) currentVAO() *fakeVAO {
	if f.vao == 0 {
		return &f.defaultVAO
	}
	return f.vaos[f.vao]
}

// live counts objects that were created and not deleted.
func (f *fakeGL) live() int {
	n := len(f.programs) + len(f.buffers) + len(f.vaos) + len(f.textures) + len(f.fbos)
	for _, s := range f.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

func (f *fakeGL) ActiveTexture(texture gl.Enum) {
	f.call("ActiveTexture")
	f.activeTex = texture
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) {
	f.call("AttachShader")
	prog, ok := f.programs[p.V]
	if !ok || f.shaders[s.V] == nil {
		f.fail(gl.INVALID_VALUE)
		return
	}
	for _, a := range prog.attached {
		if a == s.V {
			f.fail(gl.INVALID_OPERATION)
			return
		}
	}
	prog.attached = append(prog.attached, s.V)
}

func (f *fakeGL) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.call("BindAttribLocation")
	if prog, ok := f.programs[p.V]; ok {
		prog.attribLocs[name] = int(a)
	}
}

func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.call("BindBuffer")
	switch target {
	case gl.ARRAY_BUFFER:
		f.arrayBuf = b.V
	case gl.ELEMENT_ARRAY_BUFFER:
		f.currentVAO().elemBuf = b.V
	default:
		f.fail(gl.INVALID_ENUM)
	}
}

func (f *fakeGL) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.call("BindFramebuffer")
	f.fbo = fb.V
}

func (f *fakeGL) BindTexture(target gl.Enum, t gl.Texture) {
	f.call("BindTexture")
	f.texBinds[f.activeTex] = t.V
}

func (f *fakeGL) BindVertexArray(a gl.VertexArray) {
	f.call("BindVertexArray")
	if a.V != 0 && f.vaos[a.V] == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	f.vao = a.V
}

func (f *fakeGL) boundBuffer(target gl.Enum) *fakeBuffer {
	switch target {
	case gl.ARRAY_BUFFER:
		return f.buffers[f.arrayBuf]
	case gl.ELEMENT_ARRAY_BUFFER:
		return f.buffers[f.currentVAO().elemBuf]
	}
	return nil
}

func (f *fakeGL) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	f.call("BufferData")
	b := f.boundBuffer(target)
	if b == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	b.data = make([]byte, size)
	copy(b.data, data)
	b.usage = usage
}

func (f *fakeGL) BufferSubData(target gl.Enum, offset int, src []byte) {
	f.call("BufferSubData")
	b := f.boundBuffer(target)
	if b == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	if offset+len(src) > len(b.data) {
		f.fail(gl.INVALID_VALUE)
		return
	}
	copy(b.data[offset:], src)
}

func (f *fakeGL) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	fbo := f.fbos[f.fbo]
	if fbo == nil {
		return gl.FRAMEBUFFER_COMPLETE
	}
	if tex := f.textures[fbo.tex]; tex != nil && tex.pix != nil {
		return gl.FRAMEBUFFER_COMPLETE
	}
	// GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT.
	return 0x8CD6
}

func (f *fakeGL) Clear(mask gl.Enum) {
	f.call("Clear")
	f.clears = append(f.clears, f.clearColor)
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.call("ClearColor")
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *fakeGL) CompileShader(s gl.Shader) {
	f.call("CompileShader")
	sh := f.shaders[s.V]
	src := strings.TrimSpace(sh.src)
	switch {
	case src == "":
		sh.status, sh.log = false, "0:1(1): error: syntax error, unexpected end of file\n"
	case strings.Contains(src, "#fail-silently"):
		sh.status, sh.log = false, ""
	case errorDecl.MatchString(src):
		var lines []string
		for i, l := range strings.Split(src, "\n") {
			if m := errorDecl.FindStringSubmatch(l); m != nil {
				lines = append(lines, fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(m[1])))
			}
		}
		sh.status, sh.log = false, strings.Join(lines, "\n")+"\n"
	case !strings.Contains(src, "main"):
		sh.status, sh.log = false, "0:1(1): error: no main function defined\n"
	case strings.Contains(src, "#warning"):
		sh.status, sh.log = true, "0:1(1): warning: extension directive ignored\n"
	default:
		sh.status, sh.log = true, ""
	}
}

func (f *fakeGL) CreateBuffer() gl.Buffer {
	f.call("CreateBuffer")
	if f.failAlloc[ObjectBuffer] {
		f.fail(gl.OUT_OF_MEMORY)
		return gl.Buffer{}
	}
	n := f.name()
	f.buffers[n] = new(fakeBuffer)
	return gl.Buffer{V: n}
}

func (f *fakeGL) CreateFramebuffer() gl.Framebuffer {
	f.call("CreateFramebuffer")
	if f.failAlloc[ObjectFramebuffer] {
		return gl.Framebuffer{}
	}
	n := f.name()
	f.fbos[n] = new(fakeFBO)
	return gl.Framebuffer{V: n}
}

func (f *fakeGL) CreateProgram() gl.Program {
	f.call("CreateProgram")
	if f.failAlloc[ObjectProgram] {
		return gl.Program{}
	}
	n := f.name()
	f.programs[n] = &fakeProgram{attribLocs: make(map[string]int), values: make(map[int][]float32)}
	return gl.Program{V: n}
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	f.call("CreateShader")
	if f.failAlloc[ObjectShader] {
		return gl.Shader{}
	}
	n := f.name()
	f.shaders[n] = &fakeShader{ty: ty}
	return gl.Shader{V: n}
}

func (f *fakeGL) CreateTexture() gl.Texture {
	f.call("CreateTexture")
	if f.failAlloc[ObjectTexture] {
		return gl.Texture{}
	}
	n := f.name()
	f.textures[n] = &fakeTexture{params: map[gl.Enum]int{
		gl.TEXTURE_MIN_FILTER: fakeNearestMipmapLinear,
		gl.TEXTURE_MAG_FILTER: gl.LINEAR,
		gl.TEXTURE_WRAP_S:     gl.REPEAT,
		gl.TEXTURE_WRAP_T:     gl.REPEAT,
	}}
	return gl.Texture{V: n}
}

func (f *fakeGL) CreateVertexArray() gl.VertexArray {
	f.call("CreateVertexArray")
	if f.noVAO || f.failAlloc[ObjectVertexArray] {
		return gl.VertexArray{}
	}
	n := f.name()
	f.vaos[n] = new(fakeVAO)
	return gl.VertexArray{V: n}
}

func (f *fakeGL) DeleteBuffer(v gl.Buffer) {
	f.call("DeleteBuffer")
	delete(f.buffers, v.V)
	if f.arrayBuf == v.V {
		f.arrayBuf = 0
	}
	if vao := f.currentVAO(); vao.elemBuf == v.V {
		vao.elemBuf = 0
	}
}

func (f *fakeGL) DeleteFramebuffer(v gl.Framebuffer) {
	f.call("DeleteFramebuffer")
	delete(f.fbos, v.V)
	if f.fbo == v.V {
		f.fbo = 0
	}
}

func (f *fakeGL) DeleteProgram(p gl.Program) {
	f.call("DeleteProgram")
	delete(f.programs, p.V)
}

func (f *fakeGL) DeleteShader(s gl.Shader) {
	f.call("DeleteShader")
	if sh, ok := f.shaders[s.V]; ok {
		sh.deleted = true
	}
}

func (f *fakeGL) DeleteTexture(v gl.Texture) {
	f.call("DeleteTexture")
	delete(f.textures, v.V)
	for unit, t := range f.texBinds {
		if t == v.V {
			delete(f.texBinds, unit)
		}
	}
}

func (f *fakeGL) DeleteVertexArray(a gl.VertexArray) {
	f.call("DeleteVertexArray")
	delete(f.vaos, a.V)
	if f.vao == a.V {
		f.vao = 0
	}
}

func (f *fakeGL) DetachShader(p gl.Program, s gl.Shader) {
	f.call("DetachShader")
	prog, ok := f.programs[p.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return
	}
	for i, a := range prog.attached {
		if a == s.V {
			prog.attached = append(prog.attached[:i], prog.attached[i+1:]...)
			return
		}
	}
	f.fail(gl.INVALID_OPERATION)
}

func (f *fakeGL) DisableVertexAttribArray(a gl.Attrib) {
	f.call("DisableVertexAttribArray")
	f.currentVAO().attribs[a].enabled = false
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.call("DrawArrays")
	if f.prog == 0 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	f.draws = append(f.draws, fakeDraw{mode: mode, first: first, count: count, prog: f.prog, vao: f.vao})
}

func (f *fakeGL) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.call("DrawElements")
	if f.prog == 0 || f.currentVAO().elemBuf == 0 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	f.draws = append(f.draws, fakeDraw{mode: mode, first: offset, count: count, indexed: true, prog: f.prog, vao: f.vao})
}

func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) {
	f.call("EnableVertexAttribArray")
	if int(a) >= f.maxAttribs {
		f.fail(gl.INVALID_VALUE)
		return
	}
	f.currentVAO().attribs[a].enabled = true
}

func (f *fakeGL) Finish() {
	f.call("Finish")
}

func (f *fakeGL) Flush() {
	f.call("Flush")
}

func (f *fakeGL) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.call("FramebufferTexture2D")
	fbo := f.fbos[f.fbo]
	if fbo == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	fbo.tex = t.V
}

func (f *fakeGL) GetError() gl.Enum {
	if len(f.errs) == 0 {
		return gl.NO_ERROR
	}
	e := f.errs[0]
	f.errs = f.errs[1:]
	return e
}

func (f *fakeGL) GetFloat4(pname gl.Enum) [4]float32 {
	if pname == gl.COLOR_CLEAR_VALUE {
		return f.clearColor
	}
	f.fail(gl.INVALID_ENUM)
	return [4]float32{}
}

func (f *fakeGL) GetInteger(pname gl.Enum) int {
	switch pname {
	case gl.CURRENT_PROGRAM:
		return int(f.prog)
	case gl.ARRAY_BUFFER_BINDING:
		return int(f.arrayBuf)
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return int(f.currentVAO().elemBuf)
	case gl.FRAMEBUFFER_BINDING:
		return int(f.fbo)
	case gl.VERTEX_ARRAY_BINDING:
		return int(f.vao)
	case gl.ACTIVE_TEXTURE:
		return int(f.activeTex)
	case gl.TEXTURE_BINDING_2D:
		return int(f.texBinds[f.activeTex])
	case gl.MAX_VERTEX_ATTRIBS:
		return f.maxAttribs
	case gl.MAX_TEXTURE_SIZE:
		return f.maxTexSize
	}
	f.fail(gl.INVALID_ENUM)
	return 0
}

func (f *fakeGL) GetInteger4(pname gl.Enum) [4]int {
	if pname == gl.VIEWPORT {
		return f.viewport
	}
	f.fail(gl.INVALID_ENUM)
	return [4]int{}
}

func logLength(log string) int {
	if log == "" {
		return 0
	}
	return len(log) + 1
}

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.call(fmt.Sprintf("GetProgrami(%#x)", uint(pname)))
	prog, ok := f.programs[p.V]
	if !ok {
		f.fail(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.status {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return logLength(prog.log)
	case gl.ATTACHED_SHADERS:
		return len(prog.attached)
	}
	f.fail(gl.INVALID_ENUM)
	return 0
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program, buf []byte) {
	f.call("GetProgramInfoLog")
	copy(buf, f.programs[p.V].log+"\x00")
}

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.call(fmt.Sprintf("GetShaderi(%#x)", uint(pname)))
	sh := f.shaders[s.V]
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.status {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return logLength(sh.log)
	case gl.SHADER_TYPE:
		return int(sh.ty)
	}
	f.fail(gl.INVALID_ENUM)
	return 0
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader, buf []byte) {
	f.call("GetShaderInfoLog")
	copy(buf, f.shaders[s.V].log+"\x00")
}

func (f *fakeGL) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return f.version
	case gl.RENDERER:
		return f.renderer
	}
	f.fail(gl.INVALID_ENUM)
	return ""
}

func (f *fakeGL) boundTexture() *fakeTexture {
	return f.textures[f.texBinds[f.activeTex]]
}

func (f *fakeGL) GetTexParameteri(target, pname gl.Enum) int {
	tex := f.boundTexture()
	if tex == nil {
		f.fail(gl.INVALID_OPERATION)
		return 0
	}
	return tex.params[pname]
}

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.call("GetUniformLocation")
	prog, ok := f.programs[p.V]
	if !ok || !prog.linked {
		f.fail(gl.INVALID_OPERATION)
		return gl.Uniform{V: -1}
	}
	if loc, ok := prog.uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}

func (f *fakeGL) GetVertexAttrib(index int, pname gl.Enum) int {
	if index >= f.maxAttribs {
		f.fail(gl.INVALID_VALUE)
		return 0
	}
	a := f.currentVAO().attribs[index]
	switch pname {
	case gl.VERTEX_ATTRIB_ARRAY_ENABLED:
		if a.enabled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.VERTEX_ATTRIB_ARRAY_SIZE:
		if a.size == 0 {
			// The initial size is 4.
			return 4
		}
		return a.size
	case gl.VERTEX_ATTRIB_ARRAY_TYPE:
		if a.ty == 0 {
			return gl.FLOAT
		}
		return int(a.ty)
	case gl.VERTEX_ATTRIB_ARRAY_NORMALIZED:
		if a.normalized {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.VERTEX_ATTRIB_ARRAY_STRIDE:
		return a.stride
	case gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		return int(a.buf)
	}
	f.fail(gl.INVALID_ENUM)
	return 0
}

func (f *fakeGL) LinkProgram(p gl.Program) {
	f.call("LinkProgram")
	prog := f.programs[p.V]
	var vert, frag, comp, other int
	var srcs []string
	for _, n := range prog.attached {
		sh := f.shaders[n]
		srcs = append(srcs, sh.src)
		switch sh.ty {
		case gl.VERTEX_SHADER:
			vert++
		case gl.FRAGMENT_SHADER:
			frag++
		case gl.COMPUTE_SHADER:
			comp++
		default:
			other++
		}
	}
	prog.linked = false
	prog.uniforms = nil
	switch {
	case comp > 0 && vert+frag+other > 0:
		prog.status, prog.log = false, "error: compute shader linked with graphics stages\n"
	case comp == 0 && vert == 0:
		prog.status, prog.log = false, "error: no vertex shader attached\n"
	case comp == 0 && frag == 0:
		prog.status, prog.log = false, "error: no fragment shader attached\n"
	default:
		prog.status, prog.log = true, ""
		prog.linked = true
		prog.uniforms = make(map[string]int)
		for _, src := range srcs {
			for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
				if _, ok := prog.uniforms[m[1]]; !ok {
					prog.uniforms[m[1]] = len(prog.uniforms)
				}
			}
		}
	}
}

func (f *fakeGL) PixelStorei(pname gl.Enum, param int) {
	f.call("PixelStorei")
	f.pixelStore[pname] = param
}

func (f *fakeGL) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.call("ReadPixels")
	fbo := f.fbos[f.fbo]
	if fbo == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	tex := f.textures[fbo.tex]
	for row := 0; row < height; row++ {
		src := tex.pix[((y+row)*tex.width+x)*4:]
		copy(data[row*width*4:(row+1)*width*4], src[:width*4])
	}
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) {
	f.call("ShaderSource")
	f.shaders[s.V].src = src
}

func (f *fakeGL) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.call("TexImage2D")
	tex := f.boundTexture()
	if tex == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	if width > f.maxTexSize || height > f.maxTexSize {
		f.fail(gl.INVALID_VALUE)
		return
	}
	tex.width, tex.height = width, height
	tex.internal = internalFormat
	tex.pix = make([]byte, width*height*4)
	copy(tex.pix, data)
}

func (f *fakeGL) TexParameteri(target, pname gl.Enum, param int) {
	f.call("TexParameteri")
	tex := f.boundTexture()
	if tex == nil {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	tex.params[pname] = param
}

func (f *fakeGL) setUniform(dst gl.Uniform, v ...float32) {
	if dst.V == -1 {
		return
	}
	prog := f.programs[f.prog]
	if prog == nil || !prog.linked {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	prog.values[dst.V] = v
}

func (f *fakeGL) Uniform1f(dst gl.Uniform, v float32) {
	f.call("Uniform1f")
	f.setUniform(dst, v)
}

func (f *fakeGL) Uniform1i(dst gl.Uniform, v int) {
	f.call("Uniform1i")
	f.setUniform(dst, float32(v))
}

func (f *fakeGL) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.call("Uniform2f")
	f.setUniform(dst, v0, v1)
}

func (f *fakeGL) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.call("Uniform3f")
	f.setUniform(dst, v0, v1, v2)
}

func (f *fakeGL) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.call("Uniform4f")
	f.setUniform(dst, v0, v1, v2, v3)
}

func (f *fakeGL) UniformMatrix4f(dst gl.Uniform, m [16]float32) {
	f.call("UniformMatrix4f")
	f.setUniform(dst, m[:]...)
}

func (f *fakeGL) UseProgram(p gl.Program) {
	f.call("UseProgram")
	if p.V != 0 && f.programs[p.V] == nil {
		f.fail(gl.INVALID_VALUE)
		return
	}
	f.prog = p.V
}

func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.call("VertexAttribPointer")
	if int(dst) >= f.maxAttribs {
		f.fail(gl.INVALID_VALUE)
		return
	}
	if f.arrayBuf == 0 {
		f.fail(gl.INVALID_OPERATION)
		return
	}
	f.currentVAO().attribs[dst] = fakeAttrib{
		enabled:    f.currentVAO().attribs[dst].enabled,
		size:       size,
		ty:         ty,
		normalized: normalized,
		stride:     stride,
		offset:     offset,
		buf:        f.arrayBuf,
	}
}

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.call("Viewport")
	f.viewport = [4]int{x, y, width, height}
}
