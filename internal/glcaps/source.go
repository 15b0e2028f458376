package glcaps

import (
	"strings"

	"github.com/go-theft-auto/shading"
)

// NulTerminated appends the NUL byte gl.Strs and gl.Str expect.
func NulTerminated(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// InfoLog converts a shader or program info log buffer to a message.
func InfoLog(b []byte) string {
	return strings.TrimSpace(strings.TrimRight(string(b), "\x00"))
}

// Depth comparison enums from the GL headers.
const (
	glNever    = 0x0200
	glLess     = 0x0201
	glEqual    = 0x0202
	glLEqual   = 0x0203
	glGreater  = 0x0204
	glNotEqual = 0x0205
	glGEqual   = 0x0206
	glAlways   = 0x0207
)

// DepthFunc returns the glDepthFunc enum for fn. Unknown values map to
// GL_LESS.
func DepthFunc(fn shading.DepthFunc) uint32 {
	switch fn {
	case shading.DepthNever:
		return glNever
	case shading.DepthEqual:
		return glEqual
	case shading.DepthLessEqual:
		return glLEqual
	case shading.DepthGreater:
		return glGreater
	case shading.DepthNotEqual:
		return glNotEqual
	case shading.DepthGreaterEqual:
		return glGEqual
	case shading.DepthAlways:
		return glAlways
	default:
		return glLess
	}
}
