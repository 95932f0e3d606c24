// SPDX-License-Identifier: Unlicense OR MIT

package gpu

// ObjectKind names a category of driver objects. Handles are unique only
// within their kind.
type ObjectKind uint8

const (
	ObjectBuffer ObjectKind = iota
	ObjectVertexArray
	ObjectTexture
	ObjectShader
	ObjectProgram
	ObjectFramebuffer
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectBuffer:
		return "buffer"
	case ObjectVertexArray:
		return "vertex array"
	case ObjectTexture:
		return "texture"
	case ObjectShader:
		return "shader"
	case ObjectProgram:
		return "program"
	case ObjectFramebuffer:
		return "framebuffer"
	default:
		panic("unknown object kind")
	}
}

// Releaser is implemented by every object wrapper.
type Releaser interface {
	Release()
}

// Scope collects objects for release in one call, usually deferred. It
// is an opt-in convenience; objects not added to a scope live until their
// owner releases them.
//
//	var sc gpu.Scope
//	defer sc.Release()
//	vs, err := ctx.NewShader(gpu.StageVertex, src)
//	if err != nil {
//		return err
//	}
//	sc.Add(vs)
type Scope struct {
	objs []Releaser
}

// Add registers objects for release. Nil values are ignored.
func (s *Scope) Add(objs ...Releaser) {
	for _, o := range objs {
		if o != nil {
			s.objs = append(s.objs, o)
		}
	}
}

// Keep removes o from the scope so that it survives Release. It is used
// to hand an object to a longer lived owner once setup succeeded.
func (s *Scope) Keep(o Releaser) {
	for i, o2 := range s.objs {
		if o2 == o {
			s.objs = append(s.objs[:i], s.objs[i+1:]...)
			return
		}
	}
}

// Release releases the registered objects in reverse order of
// registration and empties the scope.
func (s *Scope) Release() {
	for i := len(s.objs) - 1; i >= 0; i-- {
		s.objs[i].Release()
	}
	s.objs = nil
}

// Track adds v to s and returns it.
func Track[T Releaser](s *Scope, v T) T {
	s.Add(v)
	return v
}
