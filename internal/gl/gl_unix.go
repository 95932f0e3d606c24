// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || linux || freebsd || openbsd

package gl

import (
	"fmt"
	"runtime"
	"unsafe"
)

/*
#cgo CFLAGS: -Werror
#cgo linux freebsd LDFLAGS: -ldl

#include <stdint.h>
#include <stdlib.h>
#include <sys/types.h>
#define __USE_GNU
#include <dlfcn.h>

typedef unsigned int GLenum;
typedef unsigned int GLuint;
typedef char GLchar;
typedef float GLfloat;
typedef ssize_t GLsizeiptr;
typedef intptr_t GLintptr;
typedef unsigned int GLbitfield;
typedef int GLint;
typedef unsigned char GLboolean;
typedef int GLsizei;
typedef uint8_t GLubyte;

typedef struct {
	void (*glActiveTexture)(GLenum texture);
	void (*glAttachShader)(GLuint program, GLuint shader);
	void (*glBindAttribLocation)(GLuint program, GLuint index, const GLchar *name);
	void (*glBindBuffer)(GLenum target, GLuint buffer);
	void (*glBindFramebuffer)(GLenum target, GLuint framebuffer);
	void (*glBindTexture)(GLenum target, GLuint texture);
	void (*glBufferData)(GLenum target, GLsizeiptr size, const void *data, GLenum usage);
	void (*glBufferSubData)(GLenum target, GLintptr offset, GLsizeiptr size, const void *data);
	GLenum (*glCheckFramebufferStatus)(GLenum target);
	void (*glClear)(GLbitfield mask);
	void (*glClearColor)(GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha);
	void (*glCompileShader)(GLuint shader);
	GLuint (*glCreateProgram)(void);
	GLuint (*glCreateShader)(GLenum type);
	void (*glDeleteBuffers)(GLsizei n, const GLuint *buffers);
	void (*glDeleteFramebuffers)(GLsizei n, const GLuint *framebuffers);
	void (*glDeleteProgram)(GLuint program);
	void (*glDeleteShader)(GLuint shader);
	void (*glDeleteTextures)(GLsizei n, const GLuint *textures);
	void (*glDetachShader)(GLuint program, GLuint shader);
	void (*glDisableVertexAttribArray)(GLuint index);
	void (*glDrawArrays)(GLenum mode, GLint first, GLsizei count);
	void (*glDrawElements)(GLenum mode, GLsizei count, GLenum type, const void *indices);
	void (*glEnableVertexAttribArray)(GLuint index);
	void (*glFinish)(void);
	void (*glFlush)(void);
	void (*glFramebufferTexture2D)(GLenum target, GLenum attachment, GLenum textarget, GLuint texture, GLint level);
	void (*glGenBuffers)(GLsizei n, GLuint *buffers);
	void (*glGenFramebuffers)(GLsizei n, GLuint *framebuffers);
	void (*glGenTextures)(GLsizei n, GLuint *textures);
	GLenum (*glGetError)(void);
	void (*glGetFloatv)(GLenum pname, GLfloat *data);
	void (*glGetIntegerv)(GLenum pname, GLint *data);
	void (*glGetProgramiv)(GLuint program, GLenum pname, GLint *params);
	void (*glGetProgramInfoLog)(GLuint program, GLsizei bufSize, GLsizei *length, GLchar *infoLog);
	void (*glGetShaderiv)(GLuint shader, GLenum pname, GLint *params);
	void (*glGetShaderInfoLog)(GLuint shader, GLsizei bufSize, GLsizei *length, GLchar *infoLog);
	const GLubyte *(*glGetString)(GLenum name);
	void (*glGetTexParameteriv)(GLenum target, GLenum pname, GLint *params);
	GLint (*glGetUniformLocation)(GLuint program, const GLchar *name);
	void (*glGetVertexAttribiv)(GLuint index, GLenum pname, GLint *params);
	void (*glLinkProgram)(GLuint program);
	void (*glPixelStorei)(GLenum pname, GLint param);
	void (*glReadPixels)(GLint x, GLint y, GLsizei width, GLsizei height, GLenum format, GLenum type, void *pixels);
	void (*glShaderSource)(GLuint shader, GLsizei count, const GLchar *const*string, const GLint *length);
	void (*glTexImage2D)(GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLint border, GLenum format, GLenum type, const void *pixels);
	void (*glTexParameteri)(GLenum target, GLenum pname, GLint param);
	void (*glUniform1f)(GLint location, GLfloat v0);
	void (*glUniform1i)(GLint location, GLint v0);
	void (*glUniform2f)(GLint location, GLfloat v0, GLfloat v1);
	void (*glUniform3f)(GLint location, GLfloat v0, GLfloat v1, GLfloat v2);
	void (*glUniform4f)(GLint location, GLfloat v0, GLfloat v1, GLfloat v2, GLfloat v3);
	void (*glUniformMatrix4fv)(GLint location, GLsizei count, GLboolean transpose, const GLfloat *value);
	void (*glUseProgram)(GLuint program);
	void (*glVertexAttribPointer)(GLuint index, GLint size, GLenum type, GLboolean normalized, GLsizei stride, const void *pointer);
	void (*glViewport)(GLint x, GLint y, GLsizei width, GLsizei height);

	void (*glBindVertexArray)(GLuint array);
	void (*glDeleteVertexArrays)(GLsizei n, const GLuint *arrays);
	void (*glGenVertexArrays)(GLsizei n, GLuint *arrays);
} glFunctions;

static void glActiveTexture(glFunctions *f, GLenum texture) {
	f->glActiveTexture(texture);
}

static void glAttachShader(glFunctions *f, GLuint program, GLuint shader) {
	f->glAttachShader(program, shader);
}

static void glBindAttribLocation(glFunctions *f, GLuint program, GLuint index, const GLchar *name) {
	f->glBindAttribLocation(program, index, name);
}

static void glBindBuffer(glFunctions *f, GLenum target, GLuint buffer) {
	f->glBindBuffer(target, buffer);
}

static void glBindFramebuffer(glFunctions *f, GLenum target, GLuint framebuffer) {
	f->glBindFramebuffer(target, framebuffer);
}

static void glBindTexture(glFunctions *f, GLenum target, GLuint texture) {
	f->glBindTexture(target, texture);
}

static void glBufferData(glFunctions *f, GLenum target, GLsizeiptr size, const void *data, GLenum usage) {
	f->glBufferData(target, size, data, usage);
}

static void glBufferSubData(glFunctions *f, GLenum target, GLintptr offset, GLsizeiptr size, const void *data) {
	f->glBufferSubData(target, offset, size, data);
}

static GLenum glCheckFramebufferStatus(glFunctions *f, GLenum target) {
	return f->glCheckFramebufferStatus(target);
}

static void glClear(glFunctions *f, GLbitfield mask) {
	f->glClear(mask);
}

static void glClearColor(glFunctions *f, GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha) {
	f->glClearColor(red, green, blue, alpha);
}

static void glCompileShader(glFunctions *f, GLuint shader) {
	f->glCompileShader(shader);
}

static GLuint glCreateProgram(glFunctions *f) {
	return f->glCreateProgram();
}

static GLuint glCreateShader(glFunctions *f, GLenum type) {
	return f->glCreateShader(type);
}

static void glDeleteBuffers(glFunctions *f, GLsizei n, const GLuint *buffers) {
	f->glDeleteBuffers(n, buffers);
}

static void glDeleteFramebuffers(glFunctions *f, GLsizei n, const GLuint *framebuffers) {
	f->glDeleteFramebuffers(n, framebuffers);
}

static void glDeleteProgram(glFunctions *f, GLuint program) {
	f->glDeleteProgram(program);
}

static void glDeleteShader(glFunctions *f, GLuint shader) {
	f->glDeleteShader(shader);
}

static void glDeleteTextures(glFunctions *f, GLsizei n, const GLuint *textures) {
	f->glDeleteTextures(n, textures);
}

static void glDetachShader(glFunctions *f, GLuint program, GLuint shader) {
	f->glDetachShader(program, shader);
}

static void glDisableVertexAttribArray(glFunctions *f, GLuint index) {
	f->glDisableVertexAttribArray(index);
}

static void glDrawArrays(glFunctions *f, GLenum mode, GLint first, GLsizei count) {
	f->glDrawArrays(mode, first, count);
}

// offset is defined as an uintptr_t to omit Cgo pointer checks.
static void glDrawElements(glFunctions *f, GLenum mode, GLsizei count, GLenum type, const uintptr_t offset) {
	f->glDrawElements(mode, count, type, (const void *)offset);
}

static void glEnableVertexAttribArray(glFunctions *f, GLuint index) {
	f->glEnableVertexAttribArray(index);
}

static void glFinish(glFunctions *f) {
	f->glFinish();
}

static void glFlush(glFunctions *f) {
	f->glFlush();
}

static void glFramebufferTexture2D(glFunctions *f, GLenum target, GLenum attachment, GLenum textarget, GLuint texture, GLint level) {
	f->glFramebufferTexture2D(target, attachment, textarget, texture, level);
}

static void glGenBuffers(glFunctions *f, GLsizei n, GLuint *buffers) {
	f->glGenBuffers(n, buffers);
}

static void glGenFramebuffers(glFunctions *f, GLsizei n, GLuint *framebuffers) {
	f->glGenFramebuffers(n, framebuffers);
}

static void glGenTextures(glFunctions *f, GLsizei n, GLuint *textures) {
	f->glGenTextures(n, textures);
}

static GLenum glGetError(glFunctions *f) {
	return f->glGetError();
}

static void glGetFloatv(glFunctions *f, GLenum pname, GLfloat *data) {
	f->glGetFloatv(pname, data);
}

static void glGetIntegerv(glFunctions *f, GLenum pname, GLint *data) {
	f->glGetIntegerv(pname, data);
}

static void glGetProgramiv(glFunctions *f, GLuint program, GLenum pname, GLint *params) {
	f->glGetProgramiv(program, pname, params);
}

static void glGetProgramInfoLog(glFunctions *f, GLuint program, GLsizei bufSize, GLchar *infoLog) {
	f->glGetProgramInfoLog(program, bufSize, NULL, infoLog);
}

static void glGetShaderiv(glFunctions *f, GLuint shader, GLenum pname, GLint *params) {
	f->glGetShaderiv(shader, pname, params);
}

static void glGetShaderInfoLog(glFunctions *f, GLuint shader, GLsizei bufSize, GLchar *infoLog) {
	f->glGetShaderInfoLog(shader, bufSize, NULL, infoLog);
}

static const GLubyte *glGetString(glFunctions *f, GLenum name) {
	return f->glGetString(name);
}

static void glGetTexParameteriv(glFunctions *f, GLenum target, GLenum pname, GLint *params) {
	f->glGetTexParameteriv(target, pname, params);
}

static GLint glGetUniformLocation(glFunctions *f, GLuint program, const GLchar *name) {
	return f->glGetUniformLocation(program, name);
}

static void glGetVertexAttribiv(glFunctions *f, GLuint index, GLenum pname, GLint *data) {
	f->glGetVertexAttribiv(index, pname, data);
}

static void glLinkProgram(glFunctions *f, GLuint program) {
	f->glLinkProgram(program);
}

static void glPixelStorei(glFunctions *f, GLenum pname, GLint param) {
	f->glPixelStorei(pname, param);
}

static void glReadPixels(glFunctions *f, GLint x, GLint y, GLsizei width, GLsizei height, GLenum format, GLenum type, void *pixels) {
	f->glReadPixels(x, y, width, height, format, type, pixels);
}

static void glShaderSource(glFunctions *f, GLuint shader, GLsizei count, const GLchar *const*string, const GLint *length) {
	f->glShaderSource(shader, count, string, length);
}

static void glTexImage2D(glFunctions *f, GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLint border, GLenum format, GLenum type, const void *pixels) {
	f->glTexImage2D(target, level, internalformat, width, height, border, format, type, pixels);
}

static void glTexParameteri(glFunctions *f, GLenum target, GLenum pname, GLint param) {
	f->glTexParameteri(target, pname, param);
}

static void glUniform1f(glFunctions *f, GLint location, GLfloat v0) {
	f->glUniform1f(location, v0);
}

static void glUniform1i(glFunctions *f, GLint location, GLint v0) {
	f->glUniform1i(location, v0);
}

static void glUniform2f(glFunctions *f, GLint location, GLfloat v0, GLfloat v1) {
	f->glUniform2f(location, v0, v1);
}

static void glUniform3f(glFunctions *f, GLint location, GLfloat v0, GLfloat v1, GLfloat v2) {
	f->glUniform3f(location, v0, v1, v2);
}

static void glUniform4f(glFunctions *f, GLint location, GLfloat v0, GLfloat v1, GLfloat v2, GLfloat v3) {
	f->glUniform4f(location, v0, v1, v2, v3);
}

static void glUniformMatrix4fv(glFunctions *f, GLint location, GLsizei count, GLboolean transpose, const GLfloat *value) {
	f->glUniformMatrix4fv(location, count, transpose, value);
}

static void glUseProgram(glFunctions *f, GLuint program) {
	f->glUseProgram(program);
}

// offset is defined as an uintptr_t to omit Cgo pointer checks.
static void glVertexAttribPointer(glFunctions *f, GLuint index, GLint size, GLenum type, GLboolean normalized, GLsizei stride, uintptr_t offset) {
	f->glVertexAttribPointer(index, size, type, normalized, stride, (const void *)offset);
}

static void glViewport(glFunctions *f, GLint x, GLint y, GLsizei width, GLsizei height) {
	f->glViewport(x, y, width, height);
}

// Vertex array objects are missing from OpenGL ES 2.0 drivers. Generation
// then yields the zero object.
static void glBindVertexArray(glFunctions *f, GLuint array) {
	if (f->glBindVertexArray != NULL) {
		f->glBindVertexArray(array);
	}
}

static void glDeleteVertexArrays(glFunctions *f, GLsizei n, const GLuint *arrays) {
	if (f->glDeleteVertexArrays != NULL) {
		f->glDeleteVertexArrays(n, arrays);
	}
}

static void glGenVertexArrays(glFunctions *f, GLsizei n, GLuint *arrays) {
	if (f->glGenVertexArrays == NULL) {
		for (GLsizei i = 0; i < n; i++) {
			arrays[i] = 0;
		}
		return;
	}
	f->glGenVertexArrays(n, arrays);
}
*/
import "C"

// Context is the platform rendering context. The unix loaders resolve
// entry points from the context current on the calling thread, so it must
// be nil.
type Context interface{}

type Functions struct {
	// Query caches.
	uints  [100]C.GLuint
	ints   [100]C.GLint
	floats [100]C.GLfloat

	f C.glFunctions
}

func NewFunctions(ctx Context, forceES bool) (*Functions, error) {
	if ctx != nil {
		panic("non-nil context")
	}
	f := new(Functions)
	err := f.load(forceES)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func dlsym(handle unsafe.Pointer, s string) unsafe.Pointer {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.dlsym(handle, cs)
}

func dlopen(lib string) unsafe.Pointer {
	clib := C.CString(lib)
	defer C.free(unsafe.Pointer(clib))
	return C.dlopen(clib, C.RTLD_NOW|C.RTLD_LOCAL)
}

func libraryNames(forceES bool) []string {
	switch {
	case runtime.GOOS == "darwin" && !forceES:
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	case runtime.GOOS == "darwin" && forceES:
		return []string{"libGLESv2.dylib"}
	case runtime.GOOS == "ios":
		return []string{"/System/Library/Frameworks/OpenGLES.framework/OpenGLES"}
	case runtime.GOOS == "android":
		return []string{"libGLESv2.so", "libGLESv3.so"}
	case forceES:
		return []string{"libGLESv2.so.2"}
	default:
		return []string{"libGL.so.1", "libOpenGL.so.0"}
	}
}

func (f *Functions) load(forceES bool) error {
	var (
		loadErr error
		handles []unsafe.Pointer
	)
	libNames := libraryNames(forceES)
	for _, lib := range libNames {
		if h := dlopen(lib); h != nil {
			handles = append(handles, h)
		}
	}
	if len(handles) == 0 {
		return fmt.Errorf("gl: no OpenGL implementation could be loaded (tried %q)", libNames)
	}
	load := func(s string) *[0]byte {
		for _, h := range handles {
			if f := dlsym(h, s); f != nil {
				return (*[0]byte)(f)
			}
		}
		return nil
	}
	must := func(s string) *[0]byte {
		ptr := load(s)
		if ptr == nil && loadErr == nil {
			loadErr = fmt.Errorf("gl: failed to load symbol %q", s)
		}
		return ptr
	}
	// GL ES 2.0 functions.
	f.f.glActiveTexture = must("glActiveTexture")
	f.f.glAttachShader = must("glAttachShader")
	f.f.glBindAttribLocation = must("glBindAttribLocation")
	f.f.glBindBuffer = must("glBindBuffer")
	f.f.glBindFramebuffer = must("glBindFramebuffer")
	f.f.glBindTexture = must("glBindTexture")
	f.f.glBufferData = must("glBufferData")
	f.f.glBufferSubData = must("glBufferSubData")
	f.f.glCheckFramebufferStatus = must("glCheckFramebufferStatus")
	f.f.glClear = must("glClear")
	f.f.glClearColor = must("glClearColor")
	f.f.glCompileShader = must("glCompileShader")
	f.f.glCreateProgram = must("glCreateProgram")
	f.f.glCreateShader = must("glCreateShader")
	f.f.glDeleteBuffers = must("glDeleteBuffers")
	f.f.glDeleteFramebuffers = must("glDeleteFramebuffers")
	f.f.glDeleteProgram = must("glDeleteProgram")
	f.f.glDeleteShader = must("glDeleteShader")
	f.f.glDeleteTextures = must("glDeleteTextures")
	f.f.glDetachShader = must("glDetachShader")
	f.f.glDisableVertexAttribArray = must("glDisableVertexAttribArray")
	f.f.glDrawArrays = must("glDrawArrays")
	f.f.glDrawElements = must("glDrawElements")
	f.f.glEnableVertexAttribArray = must("glEnableVertexAttribArray")
	f.f.glFinish = must("glFinish")
	f.f.glFlush = must("glFlush")
	f.f.glFramebufferTexture2D = must("glFramebufferTexture2D")
	f.f.glGenBuffers = must("glGenBuffers")
	f.f.glGenFramebuffers = must("glGenFramebuffers")
	f.f.glGenTextures = must("glGenTextures")
	f.f.glGetError = must("glGetError")
	f.f.glGetFloatv = must("glGetFloatv")
	f.f.glGetIntegerv = must("glGetIntegerv")
	f.f.glGetProgramiv = must("glGetProgramiv")
	f.f.glGetProgramInfoLog = must("glGetProgramInfoLog")
	f.f.glGetShaderiv = must("glGetShaderiv")
	f.f.glGetShaderInfoLog = must("glGetShaderInfoLog")
	f.f.glGetString = must("glGetString")
	f.f.glGetTexParameteriv = must("glGetTexParameteriv")
	f.f.glGetUniformLocation = must("glGetUniformLocation")
	f.f.glGetVertexAttribiv = must("glGetVertexAttribiv")
	f.f.glLinkProgram = must("glLinkProgram")
	f.f.glPixelStorei = must("glPixelStorei")
	f.f.glReadPixels = must("glReadPixels")
	f.f.glShaderSource = must("glShaderSource")
	f.f.glTexImage2D = must("glTexImage2D")
	f.f.glTexParameteri = must("glTexParameteri")
	f.f.glUniform1f = must("glUniform1f")
	f.f.glUniform1i = must("glUniform1i")
	f.f.glUniform2f = must("glUniform2f")
	f.f.glUniform3f = must("glUniform3f")
	f.f.glUniform4f = must("glUniform4f")
	f.f.glUniformMatrix4fv = must("glUniformMatrix4fv")
	f.f.glUseProgram = must("glUseProgram")
	f.f.glVertexAttribPointer = must("glVertexAttribPointer")
	f.f.glViewport = must("glViewport")

	// GL ES 3 and desktop GL 3 functions.
	f.f.glBindVertexArray = load("glBindVertexArray")
	f.f.glDeleteVertexArrays = load("glDeleteVertexArrays")
	f.f.glGenVertexArrays = load("glGenVertexArrays")
	if f.f.glGenVertexArrays == nil {
		f.f.glBindVertexArray = load("glBindVertexArrayOES")
		f.f.glDeleteVertexArrays = load("glDeleteVertexArraysOES")
		f.f.glGenVertexArrays = load("glGenVertexArraysOES")
	}

	return loadErr
}

func (f *Functions) ActiveTexture(texture Enum) {
	C.glActiveTexture(&f.f, C.GLenum(texture))
}

func (f *Functions) AttachShader(p Program, s Shader) {
	C.glAttachShader(&f.f, C.GLuint(p.V), C.GLuint(s.V))
}

func (f *Functions) BindAttribLocation(p Program, a Attrib, name string) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.glBindAttribLocation(&f.f, C.GLuint(p.V), C.GLuint(a), cname)
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	C.glBindBuffer(&f.f, C.GLenum(target), C.GLuint(b.V))
}

func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	C.glBindFramebuffer(&f.f, C.GLenum(target), C.GLuint(fb.V))
}

func (f *Functions) BindTexture(target Enum, t Texture) {
	C.glBindTexture(&f.f, C.GLenum(target), C.GLuint(t.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	C.glBindVertexArray(&f.f, C.GLuint(a.V))
}

func (f *Functions) BufferData(target Enum, size int, usage Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	C.glBufferData(&f.f, C.GLenum(target), C.GLsizeiptr(size), p, C.GLenum(usage))
}

func (f *Functions) BufferSubData(target Enum, offset int, src []byte) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	C.glBufferSubData(&f.f, C.GLenum(target), C.GLintptr(offset), C.GLsizeiptr(len(src)), p)
}

func (f *Functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(C.glCheckFramebufferStatus(&f.f, C.GLenum(target)))
}

func (f *Functions) Clear(mask Enum) {
	C.glClear(&f.f, C.GLbitfield(mask))
}

func (f *Functions) ClearColor(red float32, green float32, blue float32, alpha float32) {
	C.glClearColor(&f.f, C.GLfloat(red), C.GLfloat(green), C.GLfloat(blue), C.GLfloat(alpha))
}

func (f *Functions) CompileShader(s Shader) {
	C.glCompileShader(&f.f, C.GLuint(s.V))
}

func (f *Functions) CreateBuffer() Buffer {
	f.uints[0] = 0
	C.glGenBuffers(&f.f, 1, &f.uints[0])
	return Buffer{uint(f.uints[0])}
}

func (f *Functions) CreateFramebuffer() Framebuffer {
	f.uints[0] = 0
	C.glGenFramebuffers(&f.f, 1, &f.uints[0])
	return Framebuffer{uint(f.uints[0])}
}

func (f *Functions) CreateProgram() Program {
	return Program{uint(C.glCreateProgram(&f.f))}
}

func (f *Functions) CreateShader(ty Enum) Shader {
	return Shader{uint(C.glCreateShader(&f.f, C.GLenum(ty)))}
}

func (f *Functions) CreateTexture() Texture {
	f.uints[0] = 0
	C.glGenTextures(&f.f, 1, &f.uints[0])
	return Texture{uint(f.uints[0])}
}

func (f *Functions) CreateVertexArray() VertexArray {
	f.uints[0] = 0
	C.glGenVertexArrays(&f.f, 1, &f.uints[0])
	return VertexArray{uint(f.uints[0])}
}

func (f *Functions) DeleteBuffer(v Buffer) {
	f.uints[0] = C.GLuint(v.V)
	C.glDeleteBuffers(&f.f, 1, &f.uints[0])
}

func (f *Functions) DeleteFramebuffer(v Framebuffer) {
	f.uints[0] = C.GLuint(v.V)
	C.glDeleteFramebuffers(&f.f, 1, &f.uints[0])
}

func (f *Functions) DeleteProgram(p Program) {
	C.glDeleteProgram(&f.f, C.GLuint(p.V))
}

func (f *Functions) DeleteShader(s Shader) {
	C.glDeleteShader(&f.f, C.GLuint(s.V))
}

func (f *Functions) DeleteTexture(v Texture) {
	f.uints[0] = C.GLuint(v.V)
	C.glDeleteTextures(&f.f, 1, &f.uints[0])
}

func (f *Functions) DeleteVertexArray(array VertexArray) {
	f.uints[0] = C.GLuint(array.V)
	C.glDeleteVertexArrays(&f.f, 1, &f.uints[0])
}

func (f *Functions) DetachShader(p Program, s Shader) {
	C.glDetachShader(&f.f, C.GLuint(p.V), C.GLuint(s.V))
}

func (f *Functions) DisableVertexAttribArray(a Attrib) {
	C.glDisableVertexAttribArray(&f.f, C.GLuint(a))
}

func (f *Functions) DrawArrays(mode Enum, first int, count int) {
	C.glDrawArrays(&f.f, C.GLenum(mode), C.GLint(first), C.GLsizei(count))
}

func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	C.glDrawElements(&f.f, C.GLenum(mode), C.GLsizei(count), C.GLenum(ty), C.uintptr_t(offset))
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	C.glEnableVertexAttribArray(&f.f, C.GLuint(a))
}

func (f *Functions) Finish() {
	C.glFinish(&f.f)
}

func (f *Functions) Flush() {
	C.glFlush(&f.f)
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	C.glFramebufferTexture2D(&f.f, C.GLenum(target), C.GLenum(attachment), C.GLenum(texTarget), C.GLuint(t.V), C.GLint(level))
}

func (f *Functions) GetError() Enum {
	return Enum(C.glGetError(&f.f))
}

func (f *Functions) GetFloat4(pname Enum) [4]float32 {
	C.glGetFloatv(&f.f, C.GLenum(pname), &f.floats[0])
	var r [4]float32
	for i := range r {
		r[i] = float32(f.floats[i])
	}
	return r
}

func (f *Functions) GetInteger4(pname Enum) [4]int {
	C.glGetIntegerv(&f.f, C.GLenum(pname), &f.ints[0])
	var r [4]int
	for i := range r {
		r[i] = int(f.ints[i])
	}
	return r
}

func (f *Functions) GetInteger(pname Enum) int {
	C.glGetIntegerv(&f.f, C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetProgrami(p Program, pname Enum) int {
	C.glGetProgramiv(&f.f, C.GLuint(p.V), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

// GetProgramInfoLog fills buf with the program info log. The length
// actually written is discarded.
func (f *Functions) GetProgramInfoLog(p Program, buf []byte) {
	if len(buf) == 0 {
		return
	}
	C.glGetProgramInfoLog(&f.f, C.GLuint(p.V), C.GLsizei(len(buf)), (*C.GLchar)(unsafe.Pointer(&buf[0])))
}

func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	C.glGetShaderiv(&f.f, C.GLuint(s.V), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

// GetShaderInfoLog fills buf with the shader info log. The length
// actually written is discarded.
func (f *Functions) GetShaderInfoLog(s Shader, buf []byte) {
	if len(buf) == 0 {
		return
	}
	C.glGetShaderInfoLog(&f.f, C.GLuint(s.V), C.GLsizei(len(buf)), (*C.GLchar)(unsafe.Pointer(&buf[0])))
}

func (f *Functions) GetString(pname Enum) string {
	str := C.glGetString(&f.f, C.GLenum(pname))
	if str == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(str)))
}

func (f *Functions) GetTexParameteri(target, pname Enum) int {
	C.glGetTexParameteriv(&f.f, C.GLenum(target), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return Uniform{int(C.glGetUniformLocation(&f.f, C.GLuint(p.V), cname))}
}

func (f *Functions) GetVertexAttrib(index int, pname Enum) int {
	C.glGetVertexAttribiv(&f.f, C.GLuint(index), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) LinkProgram(p Program) {
	C.glLinkProgram(&f.f, C.GLuint(p.V))
}

func (f *Functions) PixelStorei(pname Enum, param int) {
	C.glPixelStorei(&f.f, C.GLenum(pname), C.GLint(param))
}

func (f *Functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	C.glReadPixels(&f.f, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height), C.GLenum(format), C.GLenum(ty), p)
}

func (f *Functions) ShaderSource(s Shader, src string) {
	csrc := C.CString(src)
	defer C.free(unsafe.Pointer(csrc))
	strlen := C.GLint(len(src))
	C.glShaderSource(&f.f, C.GLuint(s.V), 1, &csrc, &strlen)
}

func (f *Functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	C.glTexImage2D(&f.f, C.GLenum(target), C.GLint(level), C.GLint(internalFormat), C.GLsizei(width), C.GLsizei(height), 0, C.GLenum(format), C.GLenum(ty), p)
}

func (f *Functions) TexParameteri(target, pname Enum, param int) {
	C.glTexParameteri(&f.f, C.GLenum(target), C.GLenum(pname), C.GLint(param))
}

func (f *Functions) Uniform1f(dst Uniform, v float32) {
	C.glUniform1f(&f.f, C.GLint(dst.V), C.GLfloat(v))
}

func (f *Functions) Uniform1i(dst Uniform, v int) {
	C.glUniform1i(&f.f, C.GLint(dst.V), C.GLint(v))
}

func (f *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	C.glUniform2f(&f.f, C.GLint(dst.V), C.GLfloat(v0), C.GLfloat(v1))
}

func (f *Functions) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	C.glUniform3f(&f.f, C.GLint(dst.V), C.GLfloat(v0), C.GLfloat(v1), C.GLfloat(v2))
}

func (f *Functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	C.glUniform4f(&f.f, C.GLint(dst.V), C.GLfloat(v0), C.GLfloat(v1), C.GLfloat(v2), C.GLfloat(v3))
}

// UniformMatrix4f uploads one column-major 4x4 matrix.
func (f *Functions) UniformMatrix4f(dst Uniform, m [16]float32) {
	for i, v := range m {
		f.floats[i] = C.GLfloat(v)
	}
	C.glUniformMatrix4fv(&f.f, C.GLint(dst.V), 1, FALSE, &f.floats[0])
}

func (f *Functions) UseProgram(p Program) {
	C.glUseProgram(&f.f, C.GLuint(p.V))
}

func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride int, offset int) {
	var n C.GLboolean = FALSE
	if normalized {
		n = TRUE
	}
	C.glVertexAttribPointer(&f.f, C.GLuint(dst), C.GLint(size), C.GLenum(ty), n, C.GLsizei(stride), C.uintptr_t(offset))
}

func (f *Functions) Viewport(x int, y int, width int, height int) {
	C.glViewport(&f.f, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
}
