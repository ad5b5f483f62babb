// Example scrolls a large virtualized grid of colored tiles in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -items 1000000 -horizontal -v
//
// Only the tiles near the visible window are mounted; scroll with the mouse
// wheel, arrow keys, PageUp/PageDown and Home/End.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/repeat"
	"github.com/go-theft-auto/repeat/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "repeat example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	items := flag.Int("items", 100000, "number of tiles")
	horizontal := flag.Bool("horizontal", false, "scroll horizontally")
	verbose := flag.Bool("v", false, "log every render")
	flag.Parse()

	repeat.SetVerbose(*verbose)

	if err := run(*items, *horizontal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tileSizes returns sizes that vary enough to exercise row packing.
func tileSizes(n int) []repeat.Size {
	sizes := make([]repeat.Size, n)
	for i := range sizes {
		sizes[i] = repeat.Size{
			Width:  float32(80 + (i*37)%120),
			Height: float32(60 + (i*53)%80),
		}
	}
	return sizes
}

func run(items int, horizontal bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("repeat renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	layer := repeat.NewLayer()
	src, err := repeat.NewSource(tileSizes(items), layer,
		func(s repeat.Size, _ int) repeat.Size { return s },
		repeat.NewSwatch)
	if err != nil {
		return err
	}

	viewOpts := []repeat.ScrollViewOption{repeat.WithClientSize(float32(fbw), float32(fbh))}
	if horizontal {
		viewOpts = append(viewOpts, repeat.ScrollingX())
	}
	view := repeat.NewScrollView(viewOpts...)

	m, err := repeat.NewManager(src, view)
	if err != nil {
		return err
	}
	defer m.Destroy()

	sched := repeat.NewScheduler(m, view)
	view.OnResize(sched.PostResize)
	src.OnChange(sched.PostResize)
	m.Resize()

	screen := repeat.NewScreen(renderer, layer, view, repeat.WithStyle(repeat.GTAStyle()))

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		if sz := view.ClientSize(); sz.Width != float32(w) || sz.Height != float32(h) {
			screen.Resize(w, h)
			view.SetClientSize(float32(w), float32(h))
		}
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		view.HandleInput(input)
		sched.Frame()

		if err := screen.Render(); err != nil {
			return fmt.Errorf("repeat render: %w", err)
		}

		inputAdapter.EndFrame()
		window.SwapBuffers()
	}

	return nil
}
