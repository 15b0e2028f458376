// Example initializes a shading context on a GLFW window, builds the
// "tint" shader from ./example/data and draws a full-window quad with it.
//
//	devbox shell
//	go run ./example/
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shading"
	"github.com/go-theft-auto/shading/backend/opengl"
	"github.com/go-theft-auto/shading/quest"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shading example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	files, err := quest.New(os.DirFS("example/data"))
	if err != nil {
		return err
	}

	dev := opengl.NewDevice(opengl.DeviceConfig{
		Width:  windowWidth,
		Height: windowHeight,
		Title:  windowTitle,
	})
	sc := shading.New(dev, []shading.Backend{
		opengl.NewGLSLBackend(files),
		opengl.NewFixed2DBackend(files),
	}, shading.WithLogger(slog.Default()))
	defer sc.Quit()

	if err := sc.Initialize(); err != nil {
		return fmt.Errorf("shading: %w", err)
	}

	shader, err := sc.CreateShader("tint")
	if err != nil {
		return err
	}
	defer shader.Delete()

	window := dev.Window()
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Bind(w, h)
		shader.SetUniform1f("tint_amount", float32(0.5+0.5*math.Sin(glfw.GetTime())))
		drawQuad(float32(w), float32(h))
		shader.Unbind()

		window.SwapBuffers()
	}

	return nil
}

// drawQuad submits a textured quad in immediate mode, which both backends
// accept on a compatibility context.
func drawQuad(w, h float32) {
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(w, 0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(w, h)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0, h)
	gl.End()
}
