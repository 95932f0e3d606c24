// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/glwrap/glwrap/gpu"
)

// Config is the glview configuration file.
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	ES         bool       `toml:"es"`
	VSync      bool       `toml:"vsync"`
	HotReload  bool       `toml:"hot_reload"`
	ClearColor [4]float32 `toml:"clear_color"`

	Shader   ShaderConfig   `toml:"shader"`
	Texture  TextureConfig  `toml:"texture"`
	Uniforms UniformsConfig `toml:"uniforms"`
}

type ShaderConfig struct {
	// Language is "glsl" or "wgsl".
	Language      string `toml:"language"`
	Vertex        string `toml:"vertex"`
	Fragment      string `toml:"fragment"`
	VertexEntry   string `toml:"vertex_entry"`
	FragmentEntry string `toml:"fragment_entry"`
}

type TextureConfig struct {
	// Path of an image file. Empty selects a generated checkerboard.
	Path   string `toml:"path"`
	Filter string `toml:"filter"`
	Wrap   string `toml:"wrap"`
}

type UniformsConfig struct {
	Tint   []float32 `toml:"tint"`
	Offset []float32 `toml:"offset"`
	// Spin is the quad rotation speed in radians per second.
	Spin float32 `toml:"spin"`
}

func defaultConfig() Config {
	return Config{
		Title:      "glview",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: [4]float32{0.1, 0.1, 0.12, 1},
		Shader: ShaderConfig{
			Language: "glsl",
		},
		Texture: TextureConfig{
			Filter: "linear",
			Wrap:   "repeat",
		},
		Uniforms: UniformsConfig{
			Tint:   []float32{1, 1, 1},
			Offset: []float32{0, 0},
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. Relative file
// names in the configuration are resolved against the directory of path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg := defaultConfig()
	d := toml.NewDecoder(f).DisallowUnknownFields()
	if err := d.Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%s: %s", path, serr.String())
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	switch c.Shader.Language {
	case "glsl", "wgsl":
	default:
		return fmt.Errorf("unknown shader language %q", c.Shader.Language)
	}
	if c.Shader.Vertex == "" || c.Shader.Fragment == "" {
		return errors.New("shader.vertex and shader.fragment are required")
	}
	if _, err := parseFilter(c.Texture.Filter); err != nil {
		return err
	}
	if _, err := parseWrap(c.Texture.Wrap); err != nil {
		return err
	}
	if n := len(c.Uniforms.Tint); n != 3 {
		return fmt.Errorf("uniforms.tint has %d components, want 3", n)
	}
	if n := len(c.Uniforms.Offset); n != 2 {
		return fmt.Errorf("uniforms.offset has %d components, want 2", n)
	}
	return nil
}

func (c *Config) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Shader.Vertex = abs(c.Shader.Vertex)
	c.Shader.Fragment = abs(c.Shader.Fragment)
	c.Texture.Path = abs(c.Texture.Path)
}

// shaderFiles returns the distinct shader source files.
func (c *Config) shaderFiles() []string {
	if c.Shader.Vertex == c.Shader.Fragment {
		return []string{c.Shader.Vertex}
	}
	return []string{c.Shader.Vertex, c.Shader.Fragment}
}

func parseFilter(s string) (gpu.Filter, error) {
	switch s {
	case "nearest":
		return gpu.FilterNearest, nil
	case "linear":
		return gpu.FilterLinear, nil
	}
	return 0, fmt.Errorf("unknown texture filter %q", s)
}

func parseWrap(s string) (gpu.Wrap, error) {
	switch s {
	case "repeat":
		return gpu.WrapRepeat, nil
	case "clamp":
		return gpu.WrapClampToEdge, nil
	case "mirror":
		return gpu.WrapMirroredRepeat, nil
	}
	return 0, fmt.Errorf("unknown texture wrap %q", s)
}
