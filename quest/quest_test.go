package quest_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-theft-auto/shading/quest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"shaders/crt.toml": {Data: []byte(`
name = "CRT"
vertex = "crt.vert"
fragment = "crt.frag"
scaling_factor = 2.0
`)},
		"shaders/crt.vert": {Data: []byte("void main() {}")},
		"shaders/crt.frag": {Data: []byte("void main() { gl_FragColor = vec4(1.0); }")},

		"shaders/plain.toml": {Data: []byte(`fragment = "plain.frag"`)},
		"shaders/plain.frag": {Data: []byte("void main() {}")},

		"shaders/nofrag.toml":   {Data: []byte(`name = "x"`)},
		"shaders/unknown.toml":  {Data: []byte("fragment = \"plain.frag\"\nshader = 1\n")},
		"shaders/escape.toml":   {Data: []byte(`fragment = "../secret.frag"`)},
		"shaders/missing.toml":  {Data: []byte(`fragment = "gone.frag"`)},
		"shaders/badscale.toml": {Data: []byte("fragment = \"plain.frag\"\nscaling_factor = 0.0\n")},
		"shaders/broken.toml":   {Data: []byte(`fragment = `)},
		"secret.frag":           {Data: []byte("void main() {}")},
	}
}

func TestShader(t *testing.T) {
	files, err := quest.New(testFS())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	s, err := files.Shader("crt")
	if err != nil {
		t.Fatalf("Shader() error: %v", err)
	}
	if s.ID != "crt" || s.Name != "CRT" {
		t.Errorf("id/name = %q/%q", s.ID, s.Name)
	}
	if s.ScalingFactor != 2 {
		t.Errorf("ScalingFactor = %v, want 2", s.ScalingFactor)
	}
	if s.VertexSource != "void main() {}" {
		t.Errorf("VertexSource = %q", s.VertexSource)
	}
	if !strings.Contains(s.FragmentSource, "gl_FragColor") {
		t.Errorf("FragmentSource = %q", s.FragmentSource)
	}
}

func TestShaderDefaults(t *testing.T) {
	files, err := quest.New(testFS())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	s, err := files.Shader("plain")
	if err != nil {
		t.Fatalf("Shader() error: %v", err)
	}
	if s.Name != "plain" {
		t.Errorf("Name = %q, want id", s.Name)
	}
	if s.ScalingFactor != 1 {
		t.Errorf("ScalingFactor = %v, want 1", s.ScalingFactor)
	}
	if s.VertexSource != "" {
		t.Errorf("VertexSource = %q, want empty", s.VertexSource)
	}
}

func TestShaderErrors(t *testing.T) {
	files, err := quest.New(testFS())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		id      string
		wantErr error
		wantMsg string
	}{
		{id: "", wantErr: quest.ErrInvalidID},
		{id: "../crt", wantErr: quest.ErrInvalidID},
		{id: "nope", wantErr: quest.ErrShaderNotFound},
		{id: "nofrag", wantMsg: "missing fragment shader"},
		{id: "unknown", wantMsg: "unknown key"},
		{id: "escape", wantMsg: "invalid source path"},
		{id: "missing", wantMsg: "read source"},
		{id: "badscale", wantMsg: "scaling_factor"},
		{id: "broken", wantMsg: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := files.Shader(tt.id)
			if err == nil {
				t.Fatalf("expected error, got %+v", s)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in error, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestShaderCache(t *testing.T) {
	fsys := testFS()
	files, err := quest.New(fsys, quest.WithCacheSize(4))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	first, err := files.Shader("plain")
	if err != nil {
		t.Fatalf("Shader() error: %v", err)
	}

	// Cached data survives changes on disk until Forget.
	fsys["shaders/plain.frag"] = &fstest.MapFile{Data: []byte("changed")}
	second, err := files.Shader("plain")
	if err != nil {
		t.Fatalf("Shader() error: %v", err)
	}
	if first != second {
		t.Error("expected cached shader data")
	}

	files.Forget()
	third, err := files.Shader("plain")
	if err != nil {
		t.Fatalf("Shader() error: %v", err)
	}
	if third.FragmentSource != "changed" {
		t.Errorf("FragmentSource = %q after Forget", third.FragmentSource)
	}
}

func TestNewInvalidCacheSize(t *testing.T) {
	if _, err := quest.New(testFS(), quest.WithCacheSize(0)); err == nil {
		t.Error("expected error for cache size 0")
	}
}
