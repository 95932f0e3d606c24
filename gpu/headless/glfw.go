// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// worker runs functions on one locked OS thread.
var worker struct {
	once  sync.Once
	funcs chan func()
	// users counts live GLFW windows. It is only accessed from the
	// worker thread.
	users int
}

func run(f func() error) error {
	worker.once.Do(func() {
		worker.funcs = make(chan func())
		go func() {
			runtime.LockOSThread()
			for f := range worker.funcs {
				f()
			}
		}()
	})
	errCh := make(chan error, 1)
	worker.funcs <- func() {
		errCh <- f()
	}
	return <-errCh
}

type glfwContext struct {
	win *glfw.Window
}

func newGLFWContext(width, height int, api API, major, minor int) (*glfwContext, error) {
	c := new(glfwContext)
	err := run(func() error {
		if worker.users == 0 {
			if err := glfw.Init(); err != nil {
				return fmt.Errorf("headless: %w", err)
			}
		}
		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.Visible, glfw.False)
		glfw.WindowHint(glfw.ContextVersionMajor, major)
		glfw.WindowHint(glfw.ContextVersionMinor, minor)
		switch api {
		case OpenGLES:
			glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
			glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
		default:
			glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
		win, err := glfw.CreateWindow(width, height, "headless", nil, nil)
		if err != nil {
			if worker.users == 0 {
				glfw.Terminate()
			}
			return fmt.Errorf("headless: %s %d.%d context: %w", api, major, minor, err)
		}
		worker.users++
		c.win = win
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// MakeCurrent must run on the worker thread.
func (c *glfwContext) MakeCurrent() error {
	c.win.MakeContextCurrent()
	return nil
}

// ReleaseCurrent must run on the worker thread.
func (c *glfwContext) ReleaseCurrent() {
	glfw.DetachCurrentContext()
}

func (c *glfwContext) Release() {
	run(func() error {
		c.win.Destroy()
		c.win = nil
		worker.users--
		if worker.users == 0 {
			glfw.Terminate()
		}
		return nil
	})
}
