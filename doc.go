/*
Package shading selects a GPU shader backend for a 2D engine, owns the GL
context that backend renders with, and builds shader objects by name.

# Overview

A Context is created with the window subsystem that can make GL contexts and
an ordered list of backends. Initialize creates the context, applies the
fixed render state and probes the backends in order; the first one that
initializes is kept for the lifetime of the Context. CreateShader then
builds shaders through that backend.

# Quick Start

	dev := opengl.NewDevice(opengl.DeviceConfig{Width: 640, Height: 480, Title: "game"})
	files, _ := quest.New(os.DirFS("data"))

	sc := shading.New(dev, []shading.Backend{
	    opengl.NewGLSLBackend(files),
	    opengl.NewFixed2DBackend(files),
	}, shading.WithLogger(slog.Default()))
	defer sc.Quit()

	if err := sc.Initialize(); err != nil {
	    // no usable backend: run without shaders or abort startup
	}

	s, err := sc.CreateShader("scale2x")
	if err != nil {
	    // the shader failed to build; nothing to release
	}
	defer s.Delete()

# Backend priority

Backends are probed in the order they are passed to New. Put accelerated
backends first. WithoutAcceleration makes Initialize skip every backend
whose Accelerated method reports true.

# Threading

A Context is not safe for concurrent use. All calls must happen on the
thread that owns the GL context, usually the main thread locked with
runtime.LockOSThread.
*/
package shading
