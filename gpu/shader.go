// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"gioui.org/shader"

	"github.com/glwrap/glwrap/internal/gl"
	"github.com/glwrap/glwrap/internal/unsafe"
)

// ShaderStage selects the pipeline stage of a shader object.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageGeometry
	StageCompute
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

func (s ShaderStage) glEnum() (gl.Enum, bool) {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER, true
	case StageFragment:
		return gl.FRAGMENT_SHADER, true
	case StageGeometry:
		return gl.GEOMETRY_SHADER, true
	case StageCompute:
		return gl.COMPUTE_SHADER, true
	default:
		return 0, false
	}
}

// Shader is a compiled shader object.
type Shader struct {
	ctx   *Context
	obj   gl.Shader
	stage ShaderStage
}

// NewShader compiles src for stage. The source is handed to the driver
// verbatim. A compilation failure deletes the shader object and returns
// a *CompileError with the driver log.
func (c *Context) NewShader(stage ShaderStage, src string) (*Shader, error) {
	ty, ok := stage.glEnum()
	if !ok {
		return nil, argErr("NewShader", "unknown shader stage %d", stage)
	}
	f := c.funcs
	obj := f.CreateShader(ty)
	if !obj.Valid() {
		return nil, c.allocFailed(ObjectShader)
	}
	f.ShaderSource(obj, src)
	f.CompileShader(obj)
	// The status is the only failure signal; the log may be non-empty for
	// successful compiles and empty for failed ones.
	if f.GetShaderi(obj, gl.COMPILE_STATUS) == gl.FALSE {
		log := infoLog(f.GetShaderi(obj, gl.INFO_LOG_LENGTH), func(buf []byte) {
			f.GetShaderInfoLog(obj, buf)
		})
		f.DeleteShader(obj)
		if log == "" {
			log = "compilation failed without a driver log"
		}
		c.logger().Warn("gpu: shader compilation failed", "stage", stage.String(), "lines", strings.Count(log, "\n")+1)
		return nil, &CompileError{Stage: stage, Log: log}
	}
	c.logger().Debug("gpu: shader compiled", "stage", stage.String(), "handle", obj.V)
	return &Shader{ctx: c, obj: obj, stage: stage}, nil
}

// NewShaderFromFile reads UTF-8 source text from path and compiles it.
// Read failures are reported as *IOError.
func (c *Context) NewShaderFromFile(stage ShaderStage, path string) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return c.newShaderFromBytes(stage, path, src)
}

// NewShaderFromFS is like NewShaderFromFile but reads name from fsys.
func (c *Context) NewShaderFromFS(stage ShaderStage, fsys fs.FS, name string) (*Shader, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &IOError{Path: name, Err: err}
	}
	return c.newShaderFromBytes(stage, name, src)
}

func (c *Context) newShaderFromBytes(stage ShaderStage, path string, src []byte) (*Shader, error) {
	if !utf8.Valid(src) {
		return nil, &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	return c.NewShader(stage, string(src))
}

// NewShaderFromSources compiles the GLSL variant of src that matches the
// context: GLSL 1.50 on desktop OpenGL 3.2 and newer when present, GLSL
// 1.00 ES otherwise.
func (c *Context) NewShaderFromSources(stage ShaderStage, src shader.Sources) (*Shader, error) {
	glsl := c.pickGLSL(src)
	if glsl == "" {
		return nil, argErr("NewShaderFromSources", "%q has no GLSL variant for OpenGL %d.%d", src.Name, c.glver[0], c.glver[1])
	}
	return c.NewShader(stage, glsl)
}

func (c *Context) pickGLSL(src shader.Sources) string {
	if !c.gles && (c.glver[0] >= 4 || c.glver[0] == 3 && c.glver[1] >= 2) && src.GLSL150 != "" {
		return src.GLSL150
	}
	return src.GLSL100ES
}

// Handle returns the driver name of the shader, or 0 after Release.
func (s *Shader) Handle() uint {
	if s == nil {
		return 0
	}
	return s.obj.V
}

// Stage returns the stage the shader was created for.
func (s *Shader) Stage() ShaderStage {
	return s.stage
}

// Release deletes the shader object. Programs already linked with it
// keep working. Release is a no-op on a released shader.
func (s *Shader) Release() {
	if s == nil || !s.obj.Valid() {
		return
	}
	s.ctx.funcs.DeleteShader(s.obj)
	s.ctx.logger().Debug("gpu: shader released", "handle", s.obj.V)
	s.obj = gl.Shader{}
}

// infoLog runs the two step log protocol: n is the length reported by the
// driver including the terminating NUL, fill copies the log into buf.
func infoLog(n int, fill func(buf []byte)) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	fill(buf)
	log := unsafe.GoString(buf)
	return strings.TrimSpace(strings.ToValidUTF8(log, "\uFFFD"))
}
