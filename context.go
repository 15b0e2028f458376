package shading

import (
	"errors"
	"fmt"
	"log/slog"
)

// maxPendingErrors bounds clearErrors; GL keeps one flag per error kind.
const maxPendingErrors = 16

var errNoWindow = errors.New("no window subsystem")

// Context owns the GL rendering context and the shader backend chosen for
// it. Create one with New; the zero value is not usable.
type Context struct {
	window   Window
	backends []Backend
	log      *slog.Logger

	noAccel   bool
	depthFunc DepthFunc

	glctx       GLContext
	info        DriverInfo
	backend     Backend
	accelerated bool
}

// New creates a Context that will create its GL context through window and
// probe backends in the given order. A nil window makes Initialize fail
// with ErrContextCreation.
func New(window Window, backends []Backend, opts ...Option) *Context {
	c := &Context{
		window:    window,
		backends:  backends,
		log:       newNopLogger(),
		depthFunc: DepthLess,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Initialize creates the GL context, sets up fixed render state and selects
// the first backend that initializes.
//
// On ErrNoBackend the GL context is kept; call Quit to release it.
func (c *Context) Initialize() error {
	if c.glctx != nil {
		return ErrAlreadyInitialized
	}
	if c.window == nil {
		c.log.Warn("unable to create OpenGL context", "err", errNoWindow)
		return fmt.Errorf("%w: %w", ErrContextCreation, errNoWindow)
	}

	glctx, err := c.window.CreateContext()
	if err != nil {
		c.log.Warn("unable to create OpenGL context", "err", err)
		return fmt.Errorf("%w: %w", ErrContextCreation, err)
	}
	c.glctx = glctx

	c.info = c.window.DriverInfo()
	c.log.Info("OpenGL", "version", c.info.Version)
	c.log.Info("OpenGL vendor", "vendor", c.info.Vendor)
	c.log.Info("OpenGL renderer", "renderer", c.info.Renderer)
	c.log.Info("OpenGL shading language", "version", c.info.ShadingLanguage)

	c.window.SetDepthTest(c.depthFunc)

	// Late swap tearing first, classic vsync otherwise.
	if err := c.window.SetSwapInterval(SwapAdaptive); err != nil {
		c.log.Warn("adaptive sync unavailable, using vsync", "err", err)
		if err := c.window.SetSwapInterval(SwapVSync); err != nil {
			c.log.Warn("unable to set swap interval", "err", err)
		}
	}

	var probeErrs []error
	for _, b := range c.backends {
		if b.Accelerated() && c.noAccel {
			c.log.Debug("skipping accelerated backend", "backend", b.Name())
			continue
		}
		if err := b.Init(); err != nil {
			c.log.Debug("backend unsupported", "backend", b.Name(), "err", err)
			probeErrs = append(probeErrs, fmt.Errorf("%s: %w", b.Name(), err))
			continue
		}
		c.backend = b
		c.accelerated = b.Accelerated()
		c.log.Info("shader backend selected", "backend", b.Name(), "accelerated", c.accelerated)
		c.clearErrors()
		return nil
	}

	if len(probeErrs) == 0 {
		return ErrNoBackend
	}
	return fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(probeErrs...))
}

// Quit releases the GL context. It is a no-op when no context was created
// and may be called more than once.
func (c *Context) Quit() {
	if c.glctx == nil {
		return
	}
	c.glctx.Destroy()
	c.glctx = nil
	c.backend = nil
	c.accelerated = false
}

// CreateShader builds the shader named id with the selected backend.
// It returns either a shader that was built without any GL error, or nil
// and an error wrapping ErrShaderCreation.
func (c *Context) CreateShader(id string) (Shader, error) {
	if id == "" {
		return nil, ErrEmptyShaderID
	}
	if c.backend == nil {
		return nil, ErrNotInitialized
	}

	s, err := c.backend.NewShader(id)
	if glErr := c.window.Error(); glErr != nil {
		err = errors.Join(err, glErr)
	}
	if err != nil {
		if s != nil {
			s.Delete()
		}
		c.log.Error("can't create shader", "id", id, "err", err)
		return nil, fmt.Errorf("%w %q: %w", ErrShaderCreation, id, err)
	}

	return s, nil
}

// clearErrors drops GL errors raised while probing (e.g. querying the
// shading language on GL 1.x) so CreateShader only sees its own.
func (c *Context) clearErrors() {
	for i := 0; i < maxPendingErrors; i++ {
		err := c.window.Error()
		if err == nil {
			return
		}
		c.log.Debug("discarding GL error left by initialization", "err", err)
	}
}

// Backend returns the selected backend, or nil before a successful
// Initialize.
func (c *Context) Backend() Backend {
	return c.backend
}

// Accelerated reports whether the selected backend is the accelerated one.
func (c *Context) Accelerated() bool {
	return c.accelerated
}

// DriverInfo returns the driver strings queried by Initialize.
func (c *Context) DriverInfo() DriverInfo {
	return c.info
}
