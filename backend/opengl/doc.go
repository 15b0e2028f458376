// Package opengl provides OpenGL 2.1 shader backends and a GLFW window
// subsystem for the shading package.
//
// GLSLBackend is the accelerated path: it compiles quest shaders into GLSL
// programs. Fixed2DBackend is the fallback for drivers without shader
// support and renders through the fixed-function pipeline.
//
// glfw.Init must be called before Device.CreateContext, and every call in
// this package must happen on the thread that owns the context.
package opengl
