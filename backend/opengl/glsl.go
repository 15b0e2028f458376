package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/shading"
	"github.com/go-theft-auto/shading/internal/glcaps"
	"github.com/go-theft-auto/shading/quest"
)

// ShaderSource resolves shader ids to sources. *quest.Files implements it.
type ShaderSource interface {
	Shader(id string) (*quest.ShaderData, error)
}

// Uniforms set by GLSLShader.Bind.
const (
	ProjectionUniform = "sol_projection"
	TextureUniform    = "sol_texture"
	InputSizeUniform  = "sol_input_size"
)

// defaultVertexSource is used when a quest shader has no vertex stage.
const defaultVertexSource = `
#version 110
uniform mat4 sol_projection;
varying vec2 sol_vtex_coord;

void main() {
    gl_Position = sol_projection * gl_Vertex;
    sol_vtex_coord = gl_MultiTexCoord0.xy;
}
`

// GLSLBackend builds GLSL programs from quest shader sources.
type GLSLBackend struct {
	source ShaderSource
}

var _ shading.Backend = (*GLSLBackend)(nil)

// NewGLSLBackend creates a GLSL backend reading sources from source.
func NewGLSLBackend(source ShaderSource) *GLSLBackend {
	return &GLSLBackend{source: source}
}

func (b *GLSLBackend) Name() string      { return "glsl" }
func (b *GLSLBackend) Accelerated() bool { return true }

// Init checks that the current context runs GLSL 1.10 programs.
func (b *GLSLBackend) Init() error {
	return glcaps.CheckGLSL(
		glString(gl.VERSION),
		glString(gl.SHADING_LANGUAGE_VERSION),
		glExtensions(),
	)
}

// NewShader compiles and links the quest shader id.
func (b *GLSLBackend) NewShader(id string) (shading.Shader, error) {
	data, err := b.source.Shader(id)
	if err != nil {
		return nil, err
	}

	vertexSource := data.VertexSource
	if vertexSource == "" {
		vertexSource = defaultVertexSource
	}

	program, err := linkProgram(vertexSource, data.FragmentSource)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", id, err)
	}

	s := &GLSLShader{
		data:     data,
		program:  program,
		uniforms: make(map[string]int32),
	}

	gl.UseProgram(program)
	s.setUniform1i(TextureUniform, 0)
	gl.UseProgram(0)

	return s, nil
}

// GLSLShader is a linked GLSL program.
type GLSLShader struct {
	data    *quest.ShaderData
	program uint32

	// uniforms caches locations, -1 for unknown names.
	uniforms map[string]int32
}

func (s *GLSLShader) ID() string             { return s.data.ID }
func (s *GLSLShader) Name() string           { return s.data.Name }
func (s *GLSLShader) ScalingFactor() float64 { return s.data.ScalingFactor }

// Program returns the GL program name, 0 after Delete.
func (s *GLSLShader) Program() uint32 {
	return s.program
}

// Bind uses the program with a top-left origin orthographic projection
// covering width x height.
func (s *GLSLShader) Bind(width, height int) {
	if s.program == 0 {
		return
	}
	gl.UseProgram(s.program)

	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	if loc := s.location(ProjectionUniform); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &proj[0])
	}
	if loc := s.location(InputSizeUniform); loc >= 0 {
		gl.Uniform2f(loc, float32(width), float32(height))
	}
}

func (s *GLSLShader) Unbind() {
	gl.UseProgram(0)
}

// SetUniform1f sets a float uniform of the bound program.
func (s *GLSLShader) SetUniform1f(name string, v float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetUniform1i sets an int or sampler uniform of the bound program.
func (s *GLSLShader) SetUniform1i(name string, v int32) {
	s.setUniform1i(name, v)
}

func (s *GLSLShader) setUniform1i(name string, v int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (s *GLSLShader) Delete() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func (s *GLSLShader) location(name string) int32 {
	if s.program == 0 {
		return -1
	}
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}
