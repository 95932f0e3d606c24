// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glwrap/glwrap/gpu"
)

var (
	configFile = flag.String("config", "glview.toml", "configuration file")
	verbose    = flag.Bool("v", false, "log debug messages")
	frameCount = flag.Int("frames", 0, "exit after rendering this many frames; 0 runs until the window closes")
)

func init() {
	// GLFW and the OpenGL threading model require the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "glview: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gpu.SetLogger(log)

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	setContextHints(cfg.ES)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	var opts []gpu.Option
	if cfg.ES {
		opts = append(opts, gpu.WithES())
	}
	ctx, err := gpu.NewContext(opts...)
	if err != nil {
		return err
	}

	sc, err := newScene(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer sc.Release()

	var reload <-chan struct{}
	if cfg.HotReload {
		w, err := newWatcher(log, cfg.shaderFiles()...)
		if err != nil {
			return fmt.Errorf("watch shaders: %w", err)
		}
		defer w.Close()
		reload = w.Reload()
	}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	start := glfw.GetTime()
	for frame := 0; !window.ShouldClose(); frame++ {
		glfw.PollEvents()
		select {
		case <-reload:
			sc.reload()
		default:
		}
		width, height := window.GetFramebufferSize()
		if err := sc.draw(width, height, float32(glfw.GetTime()-start)); err != nil {
			return err
		}
		window.SwapBuffers()
		if n := *frameCount; n > 0 && frame+1 >= n {
			break
		}
	}
	return ctx.Err()
}

func setContextHints(es bool) {
	glfw.DefaultWindowHints()
	if es {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
		return
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
}
