// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Object      struct{ V uint }
	Buffer      Object
	Framebuffer Object
	Program     Object
	Shader      Object
	Texture     Object
	Uniform     struct{ V int }
	VertexArray Object
)

func (o Object) valid() bool {
	return o.V != 0
}

func (b Buffer) Valid() bool {
	return Object(b).valid()
}

func (u Framebuffer) Valid() bool {
	return Object(u).valid()
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (p Program) Valid() bool {
	return Object(p).valid()
}

func (s Shader) Valid() bool {
	return Object(s).valid()
}

func (t Texture) Valid() bool {
	return Object(t).valid()
}

func (a VertexArray) Valid() bool {
	return Object(a).valid()
}

func (b Buffer) Equal(b2 Buffer) bool {
	return b == b2
}

func (f Framebuffer) Equal(f2 Framebuffer) bool {
	return f == f2
}

func (p Program) Equal(p2 Program) bool {
	return p == p2
}

func (t Texture) Equal(t2 Texture) bool {
	return t == t2
}

func (a VertexArray) Equal(a2 VertexArray) bool {
	return a == a2
}
