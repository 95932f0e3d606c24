// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/glwrap/glwrap/gpu"
)

// Interleaved position and texture coordinates of a unit quad.
var (
	quadVertices = []float32{
		-0.5, -0.5, 0, 0,
		+0.5, -0.5, 1, 0,
		+0.5, +0.5, 1, 1,
		-0.5, +0.5, 0, 1,
	}
	quadIndices = []uint16{0, 1, 2, 2, 3, 0}
)

const (
	attribPos = 0
	attribUV  = 1
	// quadStride is the byte size of one vertex in quadVertices.
	quadStride = 4 * 4
)

// scene owns the objects drawn each frame.
type scene struct {
	ctx *gpu.Context
	cfg *Config
	log *slog.Logger

	objs gpu.Scope
	prog *gpu.Program
	vao  *gpu.VertexArray
	tex  *gpu.Texture
}

func newScene(ctx *gpu.Context, cfg *Config, log *slog.Logger) (*scene, error) {
	s := &scene{ctx: ctx, cfg: cfg, log: log}
	if err := s.init(); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

func (s *scene) init() error {
	prog, err := s.loadProgram()
	if err != nil {
		return err
	}
	s.prog = prog

	vbo, err := s.ctx.NewBuffer()
	if err != nil {
		return err
	}
	s.objs.Add(vbo)
	if err := gpu.SetBufferData(vbo, gpu.ArrayBuffer, gpu.StaticDraw, quadVertices); err != nil {
		return err
	}
	ibo, err := s.ctx.NewBuffer()
	if err != nil {
		return err
	}
	s.objs.Add(ibo)
	vao, err := s.ctx.NewVertexArray()
	if err != nil {
		return err
	}
	s.vao = gpu.Track(&s.objs, vao)
	for _, d := range []gpu.AttributeDescriptor{
		{Index: attribPos, Components: 2, Type: gpu.AttribFloat32, Stride: quadStride},
		{Index: attribUV, Components: 2, Type: gpu.AttribFloat32, Stride: quadStride, Offset: 2 * 4},
	} {
		if err := vao.DescribeAttributeLayout(vbo, d); err != nil {
			return err
		}
	}
	// The element buffer binding is recorded in the vertex array.
	vao.Bind()
	if err := gpu.SetBufferData(ibo, gpu.ElementArrayBuffer, gpu.StaticDraw, quadIndices); err != nil {
		return err
	}

	tex, err := s.loadTexture()
	if err != nil {
		return err
	}
	s.tex = gpu.Track(&s.objs, tex)
	return nil
}

func (s *scene) loadTexture() (*gpu.Texture, error) {
	var tex *gpu.Texture
	if p := s.cfg.Texture.Path; p != "" {
		t, err := s.ctx.NewTextureFromFile(p)
		if err != nil {
			return nil, err
		}
		tex = t
	} else {
		t, err := s.ctx.NewTexture()
		if err != nil {
			return nil, err
		}
		if err := t.Upload2D(checkerboard(64, 8)); err != nil {
			t.Release()
			return nil, err
		}
		tex = t
	}
	filter, _ := parseFilter(s.cfg.Texture.Filter)
	wrap, _ := parseWrap(s.cfg.Texture.Wrap)
	if err := tex.SetFilter(filter, filter); err != nil {
		tex.Release()
		return nil, err
	}
	if err := tex.SetWrap(wrap, wrap); err != nil {
		tex.Release()
		return nil, err
	}
	return tex, nil
}

// loadProgram compiles and links the configured shaders.
func (s *scene) loadProgram() (*gpu.Program, error) {
	var objs gpu.Scope
	defer objs.Release()
	vs, err := s.compile(gpu.StageVertex, s.cfg.Shader.Vertex, s.cfg.Shader.VertexEntry)
	if err != nil {
		return nil, err
	}
	objs.Add(vs)
	fs, err := s.compile(gpu.StageFragment, s.cfg.Shader.Fragment, s.cfg.Shader.FragmentEntry)
	if err != nil {
		return nil, err
	}
	objs.Add(fs)
	p, err := s.ctx.NewProgram()
	if err != nil {
		return nil, err
	}
	objs.Add(p)
	p.Attach(vs, fs)
	// Sources without explicit locations get the quad layout.
	if err := p.BindAttribLocation(attribPos, "pos"); err != nil {
		return nil, err
	}
	if err := p.BindAttribLocation(attribUV, "uv"); err != nil {
		return nil, err
	}
	if err := p.Link(); err != nil {
		return nil, err
	}
	p.Detach(vs, fs)
	objs.Keep(p)
	return p, nil
}

func (s *scene) compile(stage gpu.ShaderStage, path, entry string) (*gpu.Shader, error) {
	if s.cfg.Shader.Language == "glsl" {
		return s.ctx.NewShaderFromFile(stage, path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &gpu.IOError{Path: path, Err: err}
	}
	sh, err := s.ctx.NewShaderFromWGSL(stage, string(src), entry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sh, nil
}

// reload replaces the program with a fresh build of the shader files. On
// failure the current program stays in use.
func (s *scene) reload() {
	p, err := s.loadProgram()
	if err != nil {
		s.log.Error("glview: shader reload failed", "err", err)
		return
	}
	s.prog.Release()
	s.prog = p
	s.log.Info("glview: shaders reloaded")
}

// transform returns the model-view-projection matrix at time t seconds
// for a framebuffer of the given size.
func (s *scene) transform(width, height int, t float32) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	proj := mgl32.Ortho2D(-aspect, aspect, -1, 1)
	return proj.Mul4(mgl32.HomogRotate3DZ(t * s.cfg.Uniforms.Spin))
}

func (s *scene) draw(width, height int, t float32) error {
	c := s.ctx
	col := s.cfg.ClearColor
	c.Viewport(0, 0, width, height)
	c.SetClearColor(col[0], col[1], col[2], col[3])
	c.Clear()

	p := s.prog
	p.Use()
	if err := s.tex.Bind(0); err != nil {
		return err
	}
	p.SetInt("tex", 0)
	p.SetMat4("mvp", s.transform(width, height, t))
	if err := p.SetVec3("tint", s.cfg.Uniforms.Tint); err != nil {
		return err
	}
	if err := p.SetVec2("offset", s.cfg.Uniforms.Offset); err != nil {
		return err
	}
	s.vao.Bind()
	return c.DrawElements(gpu.Triangles, len(quadIndices), 0)
}

func (s *scene) Release() {
	if s.prog != nil {
		s.prog.Release()
		s.prog = nil
	}
	s.objs.Release()
}

// checkerboard returns a size×size grey checkerboard with square cells of
// the given size.
func checkerboard(size, cell int) gpu.PixelBuffer {
	pb := gpu.PixelBuffer{Width: size, Height: size, Pix: make([]byte, size*size*4)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(0x40)
			if (x/cell+y/cell)%2 == 0 {
				v = 0xc0
			}
			i := (y*size + x) * 4
			pb.Pix[i+0] = v
			pb.Pix[i+1] = v
			pb.Pix[i+2] = v
			pb.Pix[i+3] = 0xff
		}
	}
	return pb
}
