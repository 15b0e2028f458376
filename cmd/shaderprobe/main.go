// Command shaderprobe reports which shader backend the local driver
// supports and tries to build the given quest shaders with it.
//
// Usage:
//
//	shaderprobe --quest ./data crt scale2x
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli/v2"

	"github.com/go-theft-auto/shading"
	"github.com/go-theft-auto/shading/backend/opengl"
	"github.com/go-theft-auto/shading/quest"
)

// Exit codes.
const (
	exitInitFailed   = 1
	exitShaderFailed = 2
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "shaderprobe",
		Usage:     "probe shader backends and build quest shaders",
		ArgsUsage: "[shader-id...]",
		Flags: []cli.Flag{
			configFlag,
			questFlag,
			widthFlag,
			heightFlag,
			noAccelFlag,
			verboseFlag,
		},
		Action: probe,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInitFailed)
	}
}

func probe(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	files, err := quest.New(os.DirFS(cfg.Quest))
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return cli.Exit(fmt.Sprintf("glfw init: %v", err), exitInitFailed)
	}
	defer glfw.Terminate()

	dev := opengl.NewDevice(opengl.DeviceConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  "shaderprobe",
		Hidden: true,
	})

	opts := []shading.Option{shading.WithLogger(logger)}
	if !cfg.Acceleration {
		opts = append(opts, shading.WithoutAcceleration())
	}
	sc := shading.New(dev, []shading.Backend{
		opengl.NewGLSLBackend(files),
		opengl.NewFixed2DBackend(files),
	}, opts...)
	defer sc.Quit()

	initErr := sc.Initialize()

	r := report{Info: sc.DriverInfo(), Accelerated: sc.Accelerated()}
	if b := sc.Backend(); b != nil {
		r.Backend = b.Name()
	}
	if initErr == nil {
		for _, id := range ctx.Args().Slice() {
			r.Shaders = append(r.Shaders, build(sc, id))
		}
	}
	writeReport(ctx.App.Writer, r)

	switch {
	case initErr != nil:
		return cli.Exit(initErr.Error(), exitInitFailed)
	case r.failed() > 0:
		return cli.Exit(fmt.Sprintf("%d of %d shaders failed", r.failed(), len(r.Shaders)), exitShaderFailed)
	}
	return nil
}

func build(sc *shading.Context, id string) shaderResult {
	s, err := sc.CreateShader(id)
	if err != nil {
		return shaderResult{ID: id, Err: err}
	}
	defer s.Delete()
	return shaderResult{ID: id, Name: s.Name(), Scale: s.ScalingFactor()}
}
