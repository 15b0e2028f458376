package opengl

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shading"
	"github.com/go-theft-auto/shading/internal/glcaps"
	"github.com/go-theft-auto/shading/quest"
)

// Fixed2DBackend draws through the fixed-function pipeline. Quest shaders
// still have to exist, but their GLSL sources are not compiled.
type Fixed2DBackend struct {
	source ShaderSource
}

var _ shading.Backend = (*Fixed2DBackend)(nil)

// NewFixed2DBackend creates the fallback backend.
func NewFixed2DBackend(source ShaderSource) *Fixed2DBackend {
	return &Fixed2DBackend{source: source}
}

func (b *Fixed2DBackend) Name() string      { return "fixed2d" }
func (b *Fixed2DBackend) Accelerated() bool { return false }

// Init checks that the current context can texture 2D quads.
func (b *Fixed2DBackend) Init() error {
	var maxTextureSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTextureSize)
	return glcaps.CheckFixed2D(glString(gl.VERSION), maxTextureSize)
}

func (b *Fixed2DBackend) NewShader(id string) (shading.Shader, error) {
	data, err := b.source.Shader(id)
	if err != nil {
		return nil, err
	}
	return &Fixed2DShader{data: data}, nil
}

// Fixed2DShader sets up fixed-function 2D texturing. Uniforms are ignored.
type Fixed2DShader struct {
	data  *quest.ShaderData
	bound bool
}

func (s *Fixed2DShader) ID() string             { return s.data.ID }
func (s *Fixed2DShader) Name() string           { return s.data.Name }
func (s *Fixed2DShader) ScalingFactor() float64 { return s.data.ScalingFactor }

// Bind saves the matrices and texture state, then loads a top-left origin
// orthographic projection and enables modulated texturing.
func (s *Fixed2DShader) Bind(width, height int) {
	if s.bound {
		return
	}
	gl.PushAttrib(gl.ENABLE_BIT | gl.TEXTURE_BIT)

	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadMatrixf(&proj[0])

	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Enable(gl.TEXTURE_2D)
	gl.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.MODULATE)
	s.bound = true
}

// Unbind restores the state saved by Bind.
func (s *Fixed2DShader) Unbind() {
	if !s.bound {
		return
	}
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopAttrib()
	s.bound = false
}

func (s *Fixed2DShader) SetUniform1f(string, float32) {}
func (s *Fixed2DShader) SetUniform1i(string, int32)   {}

// Delete unbinds the shader if needed; there are no GL objects to free.
func (s *Fixed2DShader) Delete() {
	s.Unbind()
}
