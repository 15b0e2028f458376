// Package quest locates shader resources inside a quest data tree.
//
// A shader with id "crt" is described by shaders/crt.toml:
//
//	name = "CRT"
//	vertex = "crt.vert"     # optional
//	fragment = "crt.frag"
//	scaling_factor = 2.0    # optional, defaults to 1
//
// Source paths are relative to the shaders directory.
package quest

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	lru "github.com/hashicorp/golang-lru"
)

// ShaderDir is the quest directory holding shader descriptors and sources.
const ShaderDir = "shaders"

const defaultCacheSize = 32

var (
	// ErrShaderNotFound is returned when a shader descriptor does not exist.
	ErrShaderNotFound = errors.New("quest: shader not found")

	// ErrInvalidID is returned for ids that are not valid quest paths.
	ErrInvalidID = errors.New("quest: invalid shader id")
)

// ShaderData is a resolved shader resource.
type ShaderData struct {
	ID            string
	Name          string
	VertexFile    string
	FragmentFile  string
	ScalingFactor float64

	// VertexSource is empty when the descriptor names no vertex shader.
	VertexSource   string
	FragmentSource string
}

// descriptor mirrors shaders/<id>.toml.
type descriptor struct {
	Name          string   `toml:"name"`
	Vertex        string   `toml:"vertex"`
	Fragment      string   `toml:"fragment"`
	ScalingFactor *float64 `toml:"scaling_factor"`
}

// Files resolves shader resources from a quest file system.
type Files struct {
	fsys      fs.FS
	cacheSize int
	cache     *lru.Cache
}

// Option configures Files.
type Option func(*Files)

// WithCacheSize sets how many resolved shaders are kept in memory.
func WithCacheSize(n int) Option {
	return func(f *Files) { f.cacheSize = n }
}

// New returns Files reading from fsys, typically os.DirFS(questDir).
func New(fsys fs.FS, opts ...Option) (*Files, error) {
	f := &Files{
		fsys:      fsys,
		cacheSize: defaultCacheSize,
	}

	for _, opt := range opts {
		opt(f)
	}

	cache, err := lru.New(f.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("quest: shader cache: %w", err)
	}
	f.cache = cache

	return f, nil
}

// Shader resolves the shader identified by id.
// The returned data is shared with the cache and must not be modified.
func (f *Files) Shader(id string) (*ShaderData, error) {
	if v, ok := f.cache.Get(id); ok {
		return v.(*ShaderData), nil
	}

	data, err := f.load(id)
	if err != nil {
		return nil, err
	}
	f.cache.Add(id, data)
	return data, nil
}

// Forget drops every cached shader so the next lookup rereads the files.
func (f *Files) Forget() {
	f.cache.Purge()
}

func (f *Files) load(id string) (*ShaderData, error) {
	if id == "" || !fs.ValidPath(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	descPath := path.Join(ShaderDir, id+".toml")
	b, err := fs.ReadFile(f.fsys, descPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrShaderNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("quest: read %s: %w", descPath, err)
	}

	var d descriptor
	md, err := toml.Decode(string(b), &d)
	if err != nil {
		return nil, fmt.Errorf("quest: parse %s: %w", descPath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("quest: %s: unknown key %q", descPath, undecoded[0].String())
	}
	if d.Fragment == "" {
		return nil, fmt.Errorf("quest: %s: missing fragment shader", descPath)
	}

	data := &ShaderData{
		ID:            id,
		Name:          d.Name,
		VertexFile:    d.Vertex,
		FragmentFile:  d.Fragment,
		ScalingFactor: 1,
	}
	if data.Name == "" {
		data.Name = id
	}
	if d.ScalingFactor != nil {
		if *d.ScalingFactor <= 0 {
			return nil, fmt.Errorf("quest: %s: scaling_factor must be positive", descPath)
		}
		data.ScalingFactor = *d.ScalingFactor
	}

	if data.FragmentSource, err = f.readSource(descPath, d.Fragment); err != nil {
		return nil, err
	}
	if d.Vertex != "" {
		if data.VertexSource, err = f.readSource(descPath, d.Vertex); err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (f *Files) readSource(descPath, name string) (string, error) {
	p := path.Join(ShaderDir, name)
	if !strings.HasPrefix(p, ShaderDir+"/") {
		return "", fmt.Errorf("quest: %s: invalid source path %q", descPath, name)
	}
	b, err := fs.ReadFile(f.fsys, p)
	if err != nil {
		return "", fmt.Errorf("quest: %s: read source: %w", descPath, err)
	}
	return string(b), nil
}
