// Package glcaps interprets GL driver strings and error codes without
// calling into GL.
package glcaps

import (
	"errors"
	"fmt"
	"strings"
)

// Version is a major.minor pair.
type Version [2]int

// AtLeast reports whether v >= major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v[0] > major || (v[0] == major && v[1] >= minor)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v[0], v[1])
}

// ParseGLVersion parses a GL_VERSION string. It reports whether the
// context is OpenGL ES.
func ParseGLVersion(glVer string) (ver Version, es bool, err error) {
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "OpenGL ES-%2s %d.%d", new(string), &ver[0], &ver[1]); err == nil {
		// OpenGL ES 1.x profiles: "OpenGL ES-CM 1.1".
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, false, nil
	}
	return ver, false, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// ParseGLSLVersion parses a GL_SHADING_LANGUAGE_VERSION string.
func ParseGLSLVersion(slVer string) (Version, error) {
	var ver Version
	if _, err := fmt.Sscanf(slVer, "OpenGL ES GLSL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(slVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse shading language version (%s)", slVer)
}

// Extensions splits a GL_EXTENSIONS string.
func Extensions(s string) []string {
	return strings.Fields(s)
}

// HasExtension reports whether ext is listed in exts.
func HasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// arbShaderExtensions expose GLSL programs on pre-2.0 drivers.
var arbShaderExtensions = []string{
	"GL_ARB_shader_objects",
	"GL_ARB_vertex_shader",
	"GL_ARB_fragment_shader",
}

// ErrUnsupported is wrapped by every capability check failure.
var ErrUnsupported = errors.New("unsupported by driver")

// CheckGLSL reports whether a driver can run GLSL 1.10 programs, either
// as core GL 2.0 or through the ARB shader object extensions.
func CheckGLSL(glVer, slVer string, exts []string) error {
	ver, es, err := ParseGLVersion(glVer)
	if err != nil {
		return err
	}
	switch {
	case es && !ver.AtLeast(2, 0):
		return fmt.Errorf("%w: OpenGL ES %s has no shaders", ErrUnsupported, ver)
	case !es && !ver.AtLeast(2, 0):
		for _, ext := range arbShaderExtensions {
			if !HasExtension(exts, ext) {
				return fmt.Errorf("%w: OpenGL %s without %s", ErrUnsupported, ver, ext)
			}
		}
	}

	if slVer == "" {
		return fmt.Errorf("%w: no shading language version", ErrUnsupported)
	}
	sl, err := ParseGLSLVersion(slVer)
	if err != nil {
		return err
	}
	if !es && !sl.AtLeast(1, 10) {
		return fmt.Errorf("%w: GLSL %s", ErrUnsupported, sl)
	}
	return nil
}

// CheckFixed2D reports whether a driver can draw textured 2D quads with the
// fixed-function pipeline.
func CheckFixed2D(glVer string, maxTextureSize int32) error {
	ver, es, err := ParseGLVersion(glVer)
	if err != nil {
		return err
	}
	if es && ver.AtLeast(2, 0) {
		return fmt.Errorf("%w: OpenGL ES %s has no fixed-function pipeline", ErrUnsupported, ver)
	}
	if !es && !ver.AtLeast(1, 1) {
		return fmt.Errorf("%w: OpenGL %s", ErrUnsupported, ver)
	}
	if maxTextureSize <= 0 {
		return fmt.Errorf("%w: no texture support", ErrUnsupported)
	}
	return nil
}
