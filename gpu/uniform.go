// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/glwrap/glwrap/internal/gl"
)

// Location is a uniform location in a linked program.
type Location int

// NoLocation is the location of uniforms that do not exist or were
// optimized out by the driver. Writes to it are ignored.
const NoLocation Location = -1

func (l Location) uniform() gl.Uniform {
	return gl.Uniform{V: int(l)}
}

// UniformLocation looks up a uniform by name. It returns NoLocation when
// the program has no active uniform of that name. Lookups are cached until
// the next Link.
func (p *Program) UniformLocation(name string) Location {
	if l, ok := p.locs[name]; ok {
		return l
	}
	if p.state != ProgramLinked {
		return NoLocation
	}
	l := Location(p.ctx.funcs.GetUniformLocation(p.obj, name).V)
	if l < 0 {
		l = NoLocation
	}
	if p.locs == nil {
		p.locs = make(map[string]Location)
	}
	p.locs[name] = l
	return l
}

// SetFloat writes a float uniform by name.
func (p *Program) SetFloat(name string, v float32) {
	p.SetFloatAt(p.UniformLocation(name), v)
}

// SetFloatAt writes a float uniform.
func (p *Program) SetFloatAt(l Location, v float32) {
	if l == NoLocation {
		return
	}
	p.Use()
	p.ctx.funcs.Uniform1f(l.uniform(), v)
}

// SetInt writes an int or sampler uniform by name.
func (p *Program) SetInt(name string, v int) {
	p.SetIntAt(p.UniformLocation(name), v)
}

// SetIntAt writes an int or sampler uniform.
func (p *Program) SetIntAt(l Location, v int) {
	if l == NoLocation {
		return
	}
	p.Use()
	p.ctx.funcs.Uniform1i(l.uniform(), v)
}

// SetVec2 writes the first two elements of data to a vec2 uniform. data
// shorter than two elements is an error.
func (p *Program) SetVec2(name string, data []float32) error {
	if len(data) < 2 {
		return argErr("SetVec2", "%d elements for a vec2", len(data))
	}
	return p.SetVec2At(p.UniformLocation(name), data)
}

// SetVec2At is SetVec2 for a resolved location.
func (p *Program) SetVec2At(l Location, data []float32) error {
	if len(data) < 2 {
		return argErr("SetVec2", "%d elements for a vec2", len(data))
	}
	if l == NoLocation {
		return nil
	}
	p.Use()
	p.ctx.funcs.Uniform2f(l.uniform(), data[0], data[1])
	return p.ctx.check("SetVec2")
}

// SetVec3 writes the first three elements of data to a vec3 uniform.
func (p *Program) SetVec3(name string, data []float32) error {
	if len(data) < 3 {
		return argErr("SetVec3", "%d elements for a vec3", len(data))
	}
	return p.SetVec3At(p.UniformLocation(name), data)
}

// SetVec3At is SetVec3 for a resolved location.
func (p *Program) SetVec3At(l Location, data []float32) error {
	if len(data) < 3 {
		return argErr("SetVec3", "%d elements for a vec3", len(data))
	}
	if l == NoLocation {
		return nil
	}
	p.Use()
	p.ctx.funcs.Uniform3f(l.uniform(), data[0], data[1], data[2])
	return p.ctx.check("SetVec3")
}

// SetVec4 writes a vec4 uniform by name.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	l := p.UniformLocation(name)
	if l == NoLocation {
		return
	}
	p.Use()
	p.ctx.funcs.Uniform4f(l.uniform(), v[0], v[1], v[2], v[3])
}

// SetMat4 writes a mat4 uniform by name. mgl32 matrices are column major,
// matching the layout the driver expects.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	l := p.UniformLocation(name)
	if l == NoLocation {
		return
	}
	p.Use()
	p.ctx.funcs.UniformMatrix4f(l.uniform(), [16]float32(m))
}
