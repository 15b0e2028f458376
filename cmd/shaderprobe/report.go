package main

import (
	"fmt"
	"io"

	"github.com/go-theft-auto/shading"
)

type shaderResult struct {
	ID    string
	Name  string
	Scale float64
	Err   error
}

type report struct {
	Info        shading.DriverInfo
	Backend     string
	Accelerated bool
	Shaders     []shaderResult
}

// failed counts shaders that could not be created.
func (r report) failed() int {
	n := 0
	for _, s := range r.Shaders {
		if s.Err != nil {
			n++
		}
	}
	return n
}

func writeReport(w io.Writer, r report) {
	fmt.Fprintf(w, "OpenGL:           %s\n", r.Info.Version)
	fmt.Fprintf(w, "Vendor:           %s\n", r.Info.Vendor)
	fmt.Fprintf(w, "Renderer:         %s\n", r.Info.Renderer)
	fmt.Fprintf(w, "Shading language: %s\n", r.Info.ShadingLanguage)

	backend := r.Backend
	if backend == "" {
		backend = "none"
	}
	fmt.Fprintf(w, "Backend:          %s (accelerated: %t)\n", backend, r.Accelerated)

	for _, s := range r.Shaders {
		if s.Err != nil {
			fmt.Fprintf(w, "  FAIL %s: %v\n", s.ID, s.Err)
			continue
		}
		fmt.Fprintf(w, "  ok   %s %q x%g\n", s.ID, s.Name, s.Scale)
	}
}
