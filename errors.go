package shading

import "errors"

var (
	// ErrContextCreation is returned by Initialize when the window
	// subsystem cannot create a GL context.
	ErrContextCreation = errors.New("shading: unable to create OpenGL context")

	// ErrNoBackend is returned by Initialize when no backend probes
	// successfully.
	ErrNoBackend = errors.New("shading: no supported shader backend")

	// ErrAlreadyInitialized is returned by Initialize when the Context
	// already holds a GL context.
	ErrAlreadyInitialized = errors.New("shading: already initialized")

	// ErrNotInitialized is returned by CreateShader before a successful
	// Initialize.
	ErrNotInitialized = errors.New("shading: not initialized")

	// ErrEmptyShaderID is returned by CreateShader for an empty id.
	ErrEmptyShaderID = errors.New("shading: empty shader id")

	// ErrShaderCreation wraps every shader construction failure.
	ErrShaderCreation = errors.New("shading: can't create shader")
)
