// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"strings"

	"gioui.org/shader"

	"github.com/glwrap/glwrap/internal/gl"
)

// ProgramState tracks a program through link attempts.
type ProgramState uint8

const (
	ProgramCreated ProgramState = iota
	ProgramLinked
	ProgramLinkFailed
	ProgramReleased
)

func (s ProgramState) String() string {
	switch s {
	case ProgramCreated:
		return "created"
	case ProgramLinked:
		return "linked"
	case ProgramLinkFailed:
		return "link failed"
	case ProgramReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Program is a program object combining shader stages.
type Program struct {
	ctx   *Context
	obj   gl.Program
	state ProgramState
	// locs caches uniform locations by name. It is reset by Link.
	locs map[string]Location
}

// NewProgram allocates an empty program object.
func (c *Context) NewProgram() (*Program, error) {
	obj := c.funcs.CreateProgram()
	if !obj.Valid() {
		return nil, c.allocFailed(ObjectProgram)
	}
	c.logger().Debug("gpu: program created", "handle", obj.V)
	return &Program{ctx: c, obj: obj}, nil
}

// LinkProgram creates a program from shaders, links it and detaches the
// shaders so they may be released independently. On failure the program
// is deleted.
func (c *Context) LinkProgram(shaders ...*Shader) (*Program, error) {
	p, err := c.NewProgram()
	if err != nil {
		return nil, err
	}
	p.Attach(shaders...)
	if err := p.Link(); err != nil {
		p.Release()
		return nil, err
	}
	p.Detach(shaders...)
	return p, nil
}

// Attach attaches shaders in order. Attaching a shader twice is a driver
// error and is not checked.
func (p *Program) Attach(shaders ...*Shader) {
	for _, s := range shaders {
		p.ctx.funcs.AttachShader(p.obj, s.obj)
	}
}

// Detach detaches shaders in order.
func (p *Program) Detach(shaders ...*Shader) {
	for _, s := range shaders {
		p.ctx.funcs.DetachShader(p.obj, s.obj)
	}
}

// BindAttribLocation assigns a vertex input name to an attribute index.
// It takes effect at the next Link.
func (p *Program) BindAttribLocation(index int, name string) error {
	if index < 0 {
		return argErr("BindAttribLocation", "negative attribute index %d", index)
	}
	p.ctx.funcs.BindAttribLocation(p.obj, gl.Attrib(index), name)
	return nil
}

// BindInputs binds the reflected vertex inputs of src to their locations.
// Call it before Link.
func (p *Program) BindInputs(src shader.Sources) error {
	for _, inp := range src.Inputs {
		if err := p.BindAttribLocation(inp.Location, inp.Name); err != nil {
			return err
		}
	}
	return nil
}

// Link links the attached shaders. A failure returns a *LinkError with
// the driver log; the program may then be re-attached and linked again.
func (p *Program) Link() error {
	if p.state == ProgramReleased {
		return argErr("Link", "program is released")
	}
	f := p.ctx.funcs
	f.LinkProgram(p.obj)
	p.locs = nil
	if f.GetProgrami(p.obj, gl.LINK_STATUS) == gl.FALSE {
		log := infoLog(f.GetProgrami(p.obj, gl.INFO_LOG_LENGTH), func(buf []byte) {
			f.GetProgramInfoLog(p.obj, buf)
		})
		if log == "" {
			log = "link failed without a driver log"
		}
		p.state = ProgramLinkFailed
		p.ctx.logger().Warn("gpu: program link failed", "handle", p.obj.V, "lines", strings.Count(log, "\n")+1)
		return &LinkError{Log: log}
	}
	p.state = ProgramLinked
	p.ctx.logger().Debug("gpu: program linked", "handle", p.obj.V)
	return nil
}

// Use makes the program current. The program is not validated; using an
// unlinked program is left to the driver.
func (p *Program) Use() {
	p.ctx.state.useProgram(p.ctx.funcs, p.obj)
}

// State returns the link state of the program.
func (p *Program) State() ProgramState {
	return p.state
}

// Handle returns the driver name of the program, or 0 after Release.
func (p *Program) Handle() uint {
	if p == nil {
		return 0
	}
	return p.obj.V
}

// Release deletes the program. Release is a no-op on a released program.
func (p *Program) Release() {
	if p == nil || p.state == ProgramReleased {
		return
	}
	p.ctx.state.deleteProgram(p.ctx.funcs, p.obj)
	p.ctx.logger().Debug("gpu: program released", "handle", p.obj.V)
	p.obj = gl.Program{}
	p.state = ProgramReleased
	p.locs = nil
}
