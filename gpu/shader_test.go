// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glwrap/glwrap/internal/gl"
)

const (
	testVert = `#version 330 core
layout(location = 0) in vec3 pos;
uniform vec2 offset;
void main() {
	gl_Position = vec4(pos.xy + offset, pos.z, 1.0);
}
`
	testFrag = `#version 330 core
uniform vec3 tint;
out vec4 color;
void main() {
	color = vec4(tint, 1.0);
}
`
	testComp = `#version 430
layout(local_size_x = 1) in;
void main() {}
`
)

func TestNewShader(t *testing.T) {
	stages := []struct {
		stage ShaderStage
		ty    gl.Enum
	}{
		{StageVertex, gl.VERTEX_SHADER},
		{StageFragment, gl.FRAGMENT_SHADER},
		{StageGeometry, gl.GEOMETRY_SHADER},
		{StageCompute, gl.COMPUTE_SHADER},
	}
	for _, tc := range stages {
		t.Run(tc.stage.String(), func(t *testing.T) {
			c, f := newTestContext(t)
			s, err := c.NewShader(tc.stage, testVert)
			require.NoError(t, err)
			require.NotZero(t, s.Handle())
			assert.Equal(t, tc.stage, s.Stage())
			sh := f.shaders[s.Handle()]
			assert.Equal(t, tc.ty, sh.ty)
			assert.Equal(t, testVert, sh.src, "source must be passed verbatim")
			assert.Zero(t, f.calls["GetShaderInfoLog"], "no log is fetched on success")
		})
	}
}

func TestNewShaderWarningIsSuccess(t *testing.T) {
	c, f := newTestContext(t)
	s, err := c.NewShader(StageFragment, "#warning\n"+testFrag)
	require.NoError(t, err)
	assert.NotEmpty(t, f.shaders[s.Handle()].log)
}

func TestCompileError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		log  string
		msg  string
	}{
		{
			name: "empty",
			src:  "",
			log:  "0:1(1): error: syntax error, unexpected end of file",
		},
		{
			name: "directive",
			src:  "#error bad token\nvoid main() {}",
			log:  "0:1(1): error: bad token",
		},
		{
			name: "multiline",
			src:  "void main() {\n#error first\n#error second\n}",
			log:  "0:2(1): error: first\n0:3(1): error: second",
			msg:  "gpu: vertex shader compilation failed: 0:2(1): error: first (...)",
		},
		{
			name: "no main",
			src:  "float x;",
			log:  "0:1(1): error: no main function defined",
		},
		{
			name: "no log",
			src:  "#fail-silently\nvoid main() {}",
			log:  "compilation failed without a driver log",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, f := newTestContext(t)
			s, err := c.NewShader(StageVertex, tc.src)
			require.Error(t, err)
			assert.Nil(t, s)
			var cerr *CompileError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, StageVertex, cerr.Stage)
			assert.Equal(t, tc.log, cerr.Log)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, err.Error())
			}
			assert.Zero(t, f.live(), "failed shader must be deleted")
			assert.Equal(t, 1, f.calls["GetShaderi(0x8b81)"])
		})
	}
}

func TestNewShaderInvalidStage(t *testing.T) {
	c, f := newTestContext(t)
	_, err := c.NewShader(ShaderStage(42), testVert)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, f.calls["CreateShader"])
}

func TestNewShaderAllocationFailure(t *testing.T) {
	c, f := newTestContext(t)
	f.failAlloc[ObjectShader] = true
	_, err := c.NewShader(StageVertex, testVert)
	require.ErrorIs(t, err, ErrAllocation)
	var aerr *AllocationError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, ObjectShader, aerr.Object)
	assert.Equal(t, "gpu: driver returned no shader object", err.Error())
}

func TestNewShaderFromFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.vert")
	require.NoError(t, os.WriteFile(good, []byte(testVert), 0o644))
	bad := filepath.Join(dir, "bad.vert")
	require.NoError(t, os.WriteFile(bad, []byte{'v', 0xff, 0xfe}, 0o644))

	c, f := newTestContext(t)
	s, err := c.NewShaderFromFile(StageVertex, good)
	require.NoError(t, err)
	assert.Equal(t, testVert, f.shaders[s.Handle()].src)

	_, err = c.NewShaderFromFile(StageVertex, filepath.Join(dir, "missing.vert"))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var cerr *CompileError
	assert.False(t, errors.As(err, &cerr), "read failures are not compile errors")

	_, err = c.NewShaderFromFile(StageVertex, bad)
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, bad, ioErr.Path)
}

func TestNewShaderFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/quad.frag": {Data: []byte(testFrag)},
	}
	c, _ := newTestContext(t)
	s, err := c.NewShaderFromFS(StageFragment, fsys, "shaders/quad.frag")
	require.NoError(t, err)
	assert.Equal(t, StageFragment, s.Stage())

	_, err = c.NewShaderFromFS(StageFragment, fsys, "shaders/missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewShaderFromSources(t *testing.T) {
	src := shader.Sources{
		Name:      "quad.vert",
		GLSL100ES: "#version 100\nvoid main() {}",
		GLSL150:   "#version 150\nvoid main() {}",
	}
	tests := []struct {
		version string
		want    string
	}{
		{"3.3 (Core Profile) Mesa 23.2.1", src.GLSL150},
		{"4.6.0 NVIDIA 535.54", src.GLSL150},
		{"3.1 Mesa 23.2.1", src.GLSL100ES},
		{"OpenGL ES 3.2 Mesa 23.2.1", src.GLSL100ES},
	}
	for _, tc := range tests {
		t.Run(tc.version, func(t *testing.T) {
			f := newFakeGL()
			f.version = tc.version
			c := newTestContextWith(t, f)
			s, err := c.NewShaderFromSources(StageVertex, src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.shaders[s.Handle()].src)
		})
	}

	t.Run("desktop only variant missing", func(t *testing.T) {
		c, f := newTestContext(t)
		s, err := c.NewShaderFromSources(StageVertex, shader.Sources{GLSL100ES: src.GLSL100ES})
		require.NoError(t, err)
		assert.Equal(t, src.GLSL100ES, f.shaders[s.Handle()].src)
	})

	t.Run("no variant", func(t *testing.T) {
		c, _ := newTestContext(t)
		_, err := c.NewShaderFromSources(StageVertex, shader.Sources{Name: "empty"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestShaderRelease(t *testing.T) {
	c, f := newTestContext(t)
	s, err := c.NewShader(StageVertex, testVert)
	require.NoError(t, err)
	s.Release()
	s.Release()
	assert.Equal(t, 1, f.calls["DeleteShader"])
	assert.Zero(t, s.Handle())

	var nilShader *Shader
	assert.NotPanics(t, nilShader.Release)
	assert.Zero(t, nilShader.Handle())
}

func TestInfoLog(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"nul terminated", "error\x00garbage", "error"},
		{"trailing newline", "0:1: error\n\x00", "0:1: error"},
		{"invalid utf8", "bad \xff byte\x00", "bad � byte"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fills := 0
			got := infoLog(len(tc.raw), func(buf []byte) {
				fills++
				copy(buf, tc.raw)
			})
			assert.Equal(t, tc.want, got)
			if tc.raw != "" {
				assert.Equal(t, 1, fills)
			}
		})
	}
}

func TestShaderStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "compute", StageCompute.String())
	assert.Equal(t, "unknown", ShaderStage(9).String())
}
