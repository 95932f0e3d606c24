// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glwrap/glwrap/internal/gl"
)

func TestClear(t *testing.T) {
	c, f := newTestContext(t)
	c.SetClearColor(0.1, 0.2, 0.3, 1)
	c.SetClearColor(0.1, 0.2, 0.3, 1)
	c.Clear()
	assert.Equal(t, 1, f.calls["ClearColor"])
	assert.Equal(t, [][4]float32{{0.1, 0.2, 0.3, 1}}, f.clears)
}

func TestViewport(t *testing.T) {
	c, f := newTestContext(t)
	// The fake starts with a 640x480 viewport.
	c.Viewport(0, 0, 640, 480)
	assert.Zero(t, f.calls["Viewport"])
	c.Viewport(0, 0, 320, 240)
	assert.Equal(t, [4]int{0, 0, 320, 240}, f.viewport)
}

func TestDrawArrays(t *testing.T) {
	c, f := newTestContext(t, WithErrorChecks(true))
	vs, fs := compileTestShaders(t, c)
	p, err := c.LinkProgram(vs, fs)
	require.NoError(t, err)
	vao, err := c.NewVertexArray()
	require.NoError(t, err)

	p.Use()
	vao.Bind()
	require.NoError(t, c.DrawArrays(Triangles, 0, 3))
	require.NoError(t, c.DrawArrays(TriangleStrip, 2, 4))
	assert.Equal(t, []fakeDraw{
		{mode: gl.TRIANGLES, first: 0, count: 3, prog: p.Handle(), vao: vao.Handle()},
		{mode: gl.TRIANGLE_STRIP, first: 2, count: 4, prog: p.Handle(), vao: vao.Handle()},
	}, f.draws)
}

func TestDrawArraysInvalid(t *testing.T) {
	c, f := newTestContext(t)
	assert.ErrorIs(t, c.DrawArrays(Triangles, -1, 3), ErrInvalidArgument)
	assert.ErrorIs(t, c.DrawArrays(Triangles, 0, -3), ErrInvalidArgument)
	assert.ErrorIs(t, c.DrawArrays(Mode(99), 0, 3), ErrInvalidArgument)
	assert.Zero(t, f.calls["DrawArrays"])
}

func TestDrawWithoutProgram(t *testing.T) {
	c, _ := newTestContext(t, WithErrorChecks(true))
	err := c.DrawArrays(Points, 0, 1)
	var derr *DriverError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, uint(gl.INVALID_OPERATION), derr.Code)
	assert.Equal(t, "gpu: DrawArrays: GL_INVALID_OPERATION", err.Error())

	c2, _ := newTestContext(t)
	assert.NoError(t, c2.DrawArrays(Points, 0, 1), "checks are off by default")
	assert.Error(t, c2.Err())
	assert.NoError(t, c2.Err())
}

func TestDrawElements(t *testing.T) {
	c, f := newTestContext(t, WithErrorChecks(true))
	vs, fs := compileTestShaders(t, c)
	p, err := c.LinkProgram(vs, fs)
	require.NoError(t, err)
	vao, err := c.NewVertexArray()
	require.NoError(t, err)
	idx, err := c.NewBuffer()
	require.NoError(t, err)

	p.Use()
	vao.Bind()
	require.NoError(t, SetBufferData(idx, ElementArrayBuffer, StaticDraw, []uint16{0, 1, 2, 2, 3, 0}))
	require.NoError(t, c.DrawElements(Triangles, 6, 0))
	require.Len(t, f.draws, 1)
	assert.True(t, f.draws[0].indexed)
	assert.Equal(t, 6, f.draws[0].count)

	assert.ErrorIs(t, c.DrawElements(Triangles, -1, 0), ErrInvalidArgument)
	assert.ErrorIs(t, c.DrawElements(Triangles, 3, -2), ErrInvalidArgument)
}

func TestFinish(t *testing.T) {
	c, f := newTestContext(t)
	c.Finish()
	assert.Equal(t, 1, f.calls["Finish"])
}
