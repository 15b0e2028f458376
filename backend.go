package shading

// Backend builds shaders for one GPU capability level.
type Backend interface {
	// Name identifies the backend in logs (e.g. "glsl", "fixed2d").
	Name() string

	// Accelerated reports whether the backend runs programmable shaders.
	Accelerated() bool

	// Init probes the current GL context. A nil error means the backend
	// can build shaders on it.
	Init() error

	// NewShader builds the shader identified by id.
	// A non-nil shader may be returned together with an error when
	// construction failed half way; the caller deletes it.
	NewShader(id string) (Shader, error)
}

// Shader is a shader object built by a Backend.
// The caller owns it and must call Delete when done.
type Shader interface {
	// ID returns the identifier the shader was created from.
	ID() string

	// Name returns the display name of the shader.
	Name() string

	// ScalingFactor returns how much the shader enlarges its input.
	ScalingFactor() float64

	// Bind makes the shader current for a target of the given size.
	Bind(width, height int)

	// Unbind restores the default pipeline.
	Unbind()

	SetUniform1f(name string, v float32)
	SetUniform1i(name string, v int32)

	// Delete releases GPU resources. Safe to call more than once.
	Delete()
}
