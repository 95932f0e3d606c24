// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"math"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows has no system OpenGL ES library; the ANGLE build of
// libGLESv2.dll is expected next to the executable or on the DLL path.
var (
	LibGLESv2                   = windows.NewLazyDLL("libGLESv2.dll")
	_glActiveTexture            = LibGLESv2.NewProc("glActiveTexture")
	_glAttachShader             = LibGLESv2.NewProc("glAttachShader")
	_glBindAttribLocation       = LibGLESv2.NewProc("glBindAttribLocation")
	_glBindBuffer               = LibGLESv2.NewProc("glBindBuffer")
	_glBindFramebuffer          = LibGLESv2.NewProc("glBindFramebuffer")
	_glBindTexture              = LibGLESv2.NewProc("glBindTexture")
	_glBindVertexArray          = LibGLESv2.NewProc("glBindVertexArray")
	_glBufferData               = LibGLESv2.NewProc("glBufferData")
	_glBufferSubData            = LibGLESv2.NewProc("glBufferSubData")
	_glCheckFramebufferStatus   = LibGLESv2.NewProc("glCheckFramebufferStatus")
	_glClear                    = LibGLESv2.NewProc("glClear")
	_glClearColor               = LibGLESv2.NewProc("glClearColor")
	_glCompileShader            = LibGLESv2.NewProc("glCompileShader")
	_glCreateProgram            = LibGLESv2.NewProc("glCreateProgram")
	_glCreateShader             = LibGLESv2.NewProc("glCreateShader")
	_glDeleteBuffers            = LibGLESv2.NewProc("glDeleteBuffers")
	_glDeleteFramebuffers       = LibGLESv2.NewProc("glDeleteFramebuffers")
	_glDeleteProgram            = LibGLESv2.NewProc("glDeleteProgram")
	_glDeleteShader             = LibGLESv2.NewProc("glDeleteShader")
	_glDeleteTextures           = LibGLESv2.NewProc("glDeleteTextures")
	_glDeleteVertexArrays       = LibGLESv2.NewProc("glDeleteVertexArrays")
	_glDetachShader             = LibGLESv2.NewProc("glDetachShader")
	_glDisableVertexAttribArray = LibGLESv2.NewProc("glDisableVertexAttribArray")
	_glDrawArrays               = LibGLESv2.NewProc("glDrawArrays")
	_glDrawElements             = LibGLESv2.NewProc("glDrawElements")
	_glEnableVertexAttribArray  = LibGLESv2.NewProc("glEnableVertexAttribArray")
	_glFinish                   = LibGLESv2.NewProc("glFinish")
	_glFlush                    = LibGLESv2.NewProc("glFlush")
	_glFramebufferTexture2D     = LibGLESv2.NewProc("glFramebufferTexture2D")
	_glGenBuffers               = LibGLESv2.NewProc("glGenBuffers")
	_glGenFramebuffers          = LibGLESv2.NewProc("glGenFramebuffers")
	_glGenTextures              = LibGLESv2.NewProc("glGenTextures")
	_glGenVertexArrays          = LibGLESv2.NewProc("glGenVertexArrays")
	_glGetError                 = LibGLESv2.NewProc("glGetError")
	_glGetFloatv                = LibGLESv2.NewProc("glGetFloatv")
	_glGetIntegerv              = LibGLESv2.NewProc("glGetIntegerv")
	_glGetProgramiv             = LibGLESv2.NewProc("glGetProgramiv")
	_glGetProgramInfoLog        = LibGLESv2.NewProc("glGetProgramInfoLog")
	_glGetShaderiv              = LibGLESv2.NewProc("glGetShaderiv")
	_glGetShaderInfoLog         = LibGLESv2.NewProc("glGetShaderInfoLog")
	_glGetString                = LibGLESv2.NewProc("glGetString")
	_glGetTexParameteriv        = LibGLESv2.NewProc("glGetTexParameteriv")
	_glGetUniformLocation       = LibGLESv2.NewProc("glGetUniformLocation")
	_glGetVertexAttribiv        = LibGLESv2.NewProc("glGetVertexAttribiv")
	_glLinkProgram              = LibGLESv2.NewProc("glLinkProgram")
	_glPixelStorei              = LibGLESv2.NewProc("glPixelStorei")
	_glReadPixels               = LibGLESv2.NewProc("glReadPixels")
	_glShaderSource             = LibGLESv2.NewProc("glShaderSource")
	_glTexImage2D               = LibGLESv2.NewProc("glTexImage2D")
	_glTexParameteri            = LibGLESv2.NewProc("glTexParameteri")
	_glUniform1f                = LibGLESv2.NewProc("glUniform1f")
	_glUniform1i                = LibGLESv2.NewProc("glUniform1i")
	_glUniform2f                = LibGLESv2.NewProc("glUniform2f")
	_glUniform3f                = LibGLESv2.NewProc("glUniform3f")
	_glUniform4f                = LibGLESv2.NewProc("glUniform4f")
	_glUniformMatrix4fv         = LibGLESv2.NewProc("glUniformMatrix4fv")
	_glUseProgram               = LibGLESv2.NewProc("glUseProgram")
	_glVertexAttribPointer      = LibGLESv2.NewProc("glVertexAttribPointer")
	_glViewport                 = LibGLESv2.NewProc("glViewport")
)

type Functions struct {
	// Query caches.
	int32s   [100]int32
	float32s [100]float32
}

type Context interface{}

func NewFunctions(ctx Context, forceES bool) (*Functions, error) {
	if ctx != nil {
		panic("non-nil context")
	}
	if err := LibGLESv2.Load(); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func (c *Functions) ActiveTexture(t Enum) {
	syscall.Syscall(_glActiveTexture.Addr(), 1, uintptr(t), 0, 0)
}
func (c *Functions) AttachShader(p Program, s Shader) {
	syscall.Syscall(_glAttachShader.Addr(), 2, uintptr(p.V), uintptr(s.V), 0)
}
func (c *Functions) BindAttribLocation(p Program, a Attrib, name string) {
	cname := cString(name)
	c0 := &cname[0]
	syscall.Syscall(_glBindAttribLocation.Addr(), 3, uintptr(p.V), uintptr(a), uintptr(unsafe.Pointer(c0)))
	issue34474KeepAlive(c0)
}
func (c *Functions) BindBuffer(target Enum, b Buffer) {
	syscall.Syscall(_glBindBuffer.Addr(), 2, uintptr(target), uintptr(b.V), 0)
}
func (c *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	syscall.Syscall(_glBindFramebuffer.Addr(), 2, uintptr(target), uintptr(fb.V), 0)
}
func (c *Functions) BindTexture(target Enum, t Texture) {
	syscall.Syscall(_glBindTexture.Addr(), 2, uintptr(target), uintptr(t.V), 0)
}
func (c *Functions) BindVertexArray(a VertexArray) {
	if _glBindVertexArray.Find() != nil {
		return
	}
	syscall.Syscall(_glBindVertexArray.Addr(), 1, uintptr(a.V), 0, 0)
}
func (c *Functions) BufferData(target Enum, size int, usage Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	syscall.Syscall6(_glBufferData.Addr(), 4, uintptr(target), uintptr(size), uintptr(p), uintptr(usage), 0, 0)
	issue34474KeepAlive(data)
}
func (f *Functions) BufferSubData(target Enum, offset int, src []byte) {
	if n := len(src); n > 0 {
		s0 := &src[0]
		syscall.Syscall6(_glBufferSubData.Addr(), 4, uintptr(target), uintptr(offset), uintptr(n), uintptr(unsafe.Pointer(s0)), 0, 0)
		issue34474KeepAlive(s0)
	}
}
func (c *Functions) CheckFramebufferStatus(target Enum) Enum {
	s, _, _ := syscall.Syscall(_glCheckFramebufferStatus.Addr(), 1, uintptr(target), 0, 0)
	return Enum(s)
}
func (c *Functions) Clear(mask Enum) {
	syscall.Syscall(_glClear.Addr(), 1, uintptr(mask), 0, 0)
}
func (c *Functions) ClearColor(red, green, blue, alpha float32) {
	syscall.Syscall6(_glClearColor.Addr(), 4, uintptr(math.Float32bits(red)), uintptr(math.Float32bits(green)), uintptr(math.Float32bits(blue)), uintptr(math.Float32bits(alpha)), 0, 0)
}
func (c *Functions) CompileShader(s Shader) {
	syscall.Syscall(_glCompileShader.Addr(), 1, uintptr(s.V), 0, 0)
}
func (c *Functions) CreateBuffer() Buffer {
	var buf uint32
	syscall.Syscall(_glGenBuffers.Addr(), 2, 1, uintptr(unsafe.Pointer(&buf)), 0)
	return Buffer{uint(buf)}
}
func (c *Functions) CreateFramebuffer() Framebuffer {
	var fb uint32
	syscall.Syscall(_glGenFramebuffers.Addr(), 2, 1, uintptr(unsafe.Pointer(&fb)), 0)
	return Framebuffer{uint(fb)}
}
func (c *Functions) CreateProgram() Program {
	p, _, _ := syscall.Syscall(_glCreateProgram.Addr(), 0, 0, 0, 0)
	return Program{uint(p)}
}
func (c *Functions) CreateShader(ty Enum) Shader {
	s, _, _ := syscall.Syscall(_glCreateShader.Addr(), 1, uintptr(ty), 0, 0)
	return Shader{uint(s)}
}
func (c *Functions) CreateTexture() Texture {
	var t uint32
	syscall.Syscall(_glGenTextures.Addr(), 2, 1, uintptr(unsafe.Pointer(&t)), 0)
	return Texture{uint(t)}
}
func (c *Functions) CreateVertexArray() VertexArray {
	if _glGenVertexArrays.Find() != nil {
		return VertexArray{}
	}
	var a uint32
	syscall.Syscall(_glGenVertexArrays.Addr(), 2, 1, uintptr(unsafe.Pointer(&a)), 0)
	return VertexArray{uint(a)}
}
func (c *Functions) DeleteBuffer(v Buffer) {
	id := uint32(v.V)
	syscall.Syscall(_glDeleteBuffers.Addr(), 2, 1, uintptr(unsafe.Pointer(&id)), 0)
}
func (c *Functions) DeleteFramebuffer(v Framebuffer) {
	id := uint32(v.V)
	syscall.Syscall(_glDeleteFramebuffers.Addr(), 2, 1, uintptr(unsafe.Pointer(&id)), 0)
}
func (c *Functions) DeleteProgram(p Program) {
	syscall.Syscall(_glDeleteProgram.Addr(), 1, uintptr(p.V), 0, 0)
}
func (c *Functions) DeleteShader(s Shader) {
	syscall.Syscall(_glDeleteShader.Addr(), 1, uintptr(s.V), 0, 0)
}
func (c *Functions) DeleteTexture(v Texture) {
	id := uint32(v.V)
	syscall.Syscall(_glDeleteTextures.Addr(), 2, 1, uintptr(unsafe.Pointer(&id)), 0)
}
func (f *Functions) DeleteVertexArray(array VertexArray) {
	if _glDeleteVertexArrays.Find() != nil {
		return
	}
	id := uint32(array.V)
	syscall.Syscall(_glDeleteVertexArrays.Addr(), 2, 1, uintptr(unsafe.Pointer(&id)), 0)
}
func (c *Functions) DetachShader(p Program, s Shader) {
	syscall.Syscall(_glDetachShader.Addr(), 2, uintptr(p.V), uintptr(s.V), 0)
}
func (c *Functions) DisableVertexAttribArray(a Attrib) {
	syscall.Syscall(_glDisableVertexAttribArray.Addr(), 1, uintptr(a), 0, 0)
}
func (c *Functions) DrawArrays(mode Enum, first, count int) {
	syscall.Syscall(_glDrawArrays.Addr(), 3, uintptr(mode), uintptr(first), uintptr(count))
}
func (c *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	syscall.Syscall6(_glDrawElements.Addr(), 4, uintptr(mode), uintptr(count), uintptr(ty), uintptr(offset), 0, 0)
}
func (c *Functions) EnableVertexAttribArray(a Attrib) {
	syscall.Syscall(_glEnableVertexAttribArray.Addr(), 1, uintptr(a), 0, 0)
}
func (c *Functions) Finish() {
	syscall.Syscall(_glFinish.Addr(), 0, 0, 0, 0)
}
func (c *Functions) Flush() {
	syscall.Syscall(_glFlush.Addr(), 0, 0, 0, 0)
}
func (c *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	syscall.Syscall6(_glFramebufferTexture2D.Addr(), 5, uintptr(target), uintptr(attachment), uintptr(texTarget), uintptr(t.V), uintptr(level), 0)
}
func (c *Functions) GetError() Enum {
	e, _, _ := syscall.Syscall(_glGetError.Addr(), 0, 0, 0, 0)
	return Enum(e)
}
func (c *Functions) GetFloat4(pname Enum) [4]float32 {
	syscall.Syscall(_glGetFloatv.Addr(), 2, uintptr(pname), uintptr(unsafe.Pointer(&c.float32s[0])), 0)
	var r [4]float32
	copy(r[:], c.float32s[:])
	return r
}
func (c *Functions) GetInteger4(pname Enum) [4]int {
	syscall.Syscall(_glGetIntegerv.Addr(), 2, uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])), 0)
	var r [4]int
	for i := range r {
		r[i] = int(c.int32s[i])
	}
	return r
}
func (c *Functions) GetInteger(pname Enum) int {
	syscall.Syscall(_glGetIntegerv.Addr(), 2, uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])), 0)
	return int(c.int32s[0])
}
func (c *Functions) GetProgrami(p Program, pname Enum) int {
	syscall.Syscall(_glGetProgramiv.Addr(), 3, uintptr(p.V), uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])))
	return int(c.int32s[0])
}
func (c *Functions) GetProgramInfoLog(p Program, buf []byte) {
	if len(buf) == 0 {
		return
	}
	b0 := &buf[0]
	syscall.Syscall6(_glGetProgramInfoLog.Addr(), 4, uintptr(p.V), uintptr(len(buf)), 0, uintptr(unsafe.Pointer(b0)), 0, 0)
	issue34474KeepAlive(b0)
}
func (c *Functions) GetShaderi(s Shader, pname Enum) int {
	syscall.Syscall(_glGetShaderiv.Addr(), 3, uintptr(s.V), uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])))
	return int(c.int32s[0])
}
func (c *Functions) GetShaderInfoLog(s Shader, buf []byte) {
	if len(buf) == 0 {
		return
	}
	b0 := &buf[0]
	syscall.Syscall6(_glGetShaderInfoLog.Addr(), 4, uintptr(s.V), uintptr(len(buf)), 0, uintptr(unsafe.Pointer(b0)), 0, 0)
	issue34474KeepAlive(b0)
}
func (c *Functions) GetString(pname Enum) string {
	s, _, _ := syscall.Syscall(_glGetString.Addr(), 1, uintptr(pname), 0, 0)
	return windows.BytePtrToString((*byte)(unsafe.Pointer(s)))
}
func (c *Functions) GetTexParameteri(target, pname Enum) int {
	syscall.Syscall(_glGetTexParameteriv.Addr(), 3, uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])))
	return int(c.int32s[0])
}
func (c *Functions) GetUniformLocation(p Program, name string) Uniform {
	cname := cString(name)
	c0 := &cname[0]
	u, _, _ := syscall.Syscall(_glGetUniformLocation.Addr(), 2, uintptr(p.V), uintptr(unsafe.Pointer(c0)), 0)
	issue34474KeepAlive(c0)
	return Uniform{int(int32(u))}
}
func (c *Functions) GetVertexAttrib(index int, pname Enum) int {
	syscall.Syscall(_glGetVertexAttribiv.Addr(), 3, uintptr(index), uintptr(pname), uintptr(unsafe.Pointer(&c.int32s[0])))
	return int(c.int32s[0])
}
func (c *Functions) LinkProgram(p Program) {
	syscall.Syscall(_glLinkProgram.Addr(), 1, uintptr(p.V), 0, 0)
}
func (c *Functions) PixelStorei(pname Enum, param int) {
	syscall.Syscall(_glPixelStorei.Addr(), 2, uintptr(pname), uintptr(param), 0)
}
func (f *Functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	d0 := &data[0]
	syscall.Syscall9(_glReadPixels.Addr(), 7, uintptr(x), uintptr(y), uintptr(width), uintptr(height), uintptr(format), uintptr(ty), uintptr(unsafe.Pointer(d0)), 0, 0)
	issue34474KeepAlive(d0)
}
func (c *Functions) ShaderSource(s Shader, src string) {
	csrc := cString(src)
	p0 := &csrc[0]
	n := int32(len(src))
	syscall.Syscall6(_glShaderSource.Addr(), 4, uintptr(s.V), 1, uintptr(unsafe.Pointer(&p0)), uintptr(unsafe.Pointer(&n)), 0, 0)
	issue34474KeepAlive(p0)
}
func (f *Functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	syscall.Syscall9(_glTexImage2D.Addr(), 9, uintptr(target), uintptr(level), uintptr(internalFormat), uintptr(width), uintptr(height), 0, uintptr(format), uintptr(ty), uintptr(p))
	issue34474KeepAlive(data)
}
func (c *Functions) TexParameteri(target, pname Enum, param int) {
	syscall.Syscall(_glTexParameteri.Addr(), 3, uintptr(target), uintptr(pname), uintptr(param))
}
func (c *Functions) Uniform1f(dst Uniform, v float32) {
	syscall.Syscall(_glUniform1f.Addr(), 2, uintptr(dst.V), uintptr(math.Float32bits(v)), 0)
}
func (c *Functions) Uniform1i(dst Uniform, v int) {
	syscall.Syscall(_glUniform1i.Addr(), 2, uintptr(dst.V), uintptr(v), 0)
}
func (c *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	syscall.Syscall(_glUniform2f.Addr(), 3, uintptr(dst.V), uintptr(math.Float32bits(v0)), uintptr(math.Float32bits(v1)))
}
func (c *Functions) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	syscall.Syscall6(_glUniform3f.Addr(), 4, uintptr(dst.V), uintptr(math.Float32bits(v0)), uintptr(math.Float32bits(v1)), uintptr(math.Float32bits(v2)), 0, 0)
}
func (c *Functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	syscall.Syscall6(_glUniform4f.Addr(), 5, uintptr(dst.V), uintptr(math.Float32bits(v0)), uintptr(math.Float32bits(v1)), uintptr(math.Float32bits(v2)), uintptr(math.Float32bits(v3)), 0)
}
func (c *Functions) UniformMatrix4f(dst Uniform, m [16]float32) {
	copy(c.float32s[:], m[:])
	syscall.Syscall6(_glUniformMatrix4fv.Addr(), 4, uintptr(dst.V), 1, FALSE, uintptr(unsafe.Pointer(&c.float32s[0])), 0, 0)
}
func (c *Functions) UseProgram(p Program) {
	syscall.Syscall(_glUseProgram.Addr(), 1, uintptr(p.V), 0, 0)
}
func (c *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	var norm uintptr
	if normalized {
		norm = 1
	}
	syscall.Syscall6(_glVertexAttribPointer.Addr(), 6, uintptr(dst), uintptr(size), uintptr(ty), norm, uintptr(stride), uintptr(offset))
}
func (c *Functions) Viewport(x, y, width, height int) {
	syscall.Syscall6(_glViewport.Addr(), 4, uintptr(x), uintptr(y), uintptr(width), uintptr(height), 0, 0)
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v interface{}) {
	runtime.KeepAlive(v)
}
