package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shading"
	"github.com/go-theft-auto/shading/internal/glcaps"
)

// ErrSwapIntervalUnsupported is returned by SetSwapInterval for adaptive
// sync on drivers without swap_control_tear.
var ErrSwapIntervalUnsupported = errors.New("opengl: swap interval unsupported")

// Error is a pending GL error returned by Device.Error.
type Error = glcaps.Error

// DeviceConfig describes the window that carries the GL context.
type DeviceConfig struct {
	Width, Height int
	Title         string

	// Hidden creates the window invisible (headless probing).
	Hidden bool

	// Share is a window whose GL objects the new context shares.
	Share *glfw.Window

	// ContextVersionMajor and ContextVersionMinor request a context
	// version. Zero means 2.1 with a compatibility profile.
	ContextVersionMajor int
	ContextVersionMinor int
}

// Device is a shading.Window backed by a GLFW window.
type Device struct {
	cfg    DeviceConfig
	window *glfw.Window
}

var _ shading.Window = (*Device)(nil)

// NewDevice creates a device. No window exists until CreateContext.
func NewDevice(cfg DeviceConfig) *Device {
	if cfg.ContextVersionMajor == 0 {
		cfg.ContextVersionMajor, cfg.ContextVersionMinor = 2, 1
	}
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	return &Device{cfg: cfg}
}

// Window returns the GLFW window, or nil before CreateContext.
func (d *Device) Window() *glfw.Window {
	return d.window
}

// CreateContext opens a double-buffered window sharing objects with
// cfg.Share, makes its context current and loads GL entry points.
func (d *Device) CreateContext() (shading.GLContext, error) {
	if d.window != nil {
		return nil, errors.New("opengl: context already created")
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, d.cfg.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, d.cfg.ContextVersionMinor)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if d.cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(d.cfg.Width, d.cfg.Height, d.cfg.Title, nil, d.cfg.Share)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.DetachCurrentContext()
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	d.window = window
	return &glContext{device: d}, nil
}

// DriverInfo queries the driver identification strings.
func (d *Device) DriverInfo() shading.DriverInfo {
	return shading.DriverInfo{
		Version:         glString(gl.VERSION),
		Vendor:          glString(gl.VENDOR),
		Renderer:        glString(gl.RENDERER),
		ShadingLanguage: glString(gl.SHADING_LANGUAGE_VERSION),
	}
}

// SetDepthTest enables depth testing with fn.
func (d *Device) SetDepthTest(fn shading.DepthFunc) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(glcaps.DepthFunc(fn))
}

// SetSwapInterval sets the buffer swap interval of the current context.
// Negative intervals need swap_control_tear.
func (d *Device) SetSwapInterval(interval int) error {
	if interval < 0 && !adaptiveSyncSupported() {
		return ErrSwapIntervalUnsupported
	}
	glfw.SwapInterval(interval)
	return nil
}

// Error reads every pending GL error flag. The result wraps one Error per
// flag, or is nil.
func (d *Device) Error() error {
	return glcaps.DrainErrors(gl.GetError)
}

// glContext destroys the device window, which owns the context.
type glContext struct {
	device *Device
}

func (c *glContext) Destroy() {
	d := c.device
	if d.window == nil {
		return
	}
	if glfw.GetCurrentContext() == d.window {
		glfw.DetachCurrentContext()
	}
	d.window.Destroy()
	d.window = nil
}

func adaptiveSyncSupported() bool {
	return glfw.ExtensionSupported("WGL_EXT_swap_control_tear") ||
		glfw.ExtensionSupported("GLX_EXT_swap_control_tear")
}

// glString is gl.GetString with a nil guard; drivers return NULL for
// names they do not know (e.g. the shading language on GL 1.x).
func glString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func glExtensions() []string {
	return glcaps.Extensions(glString(gl.EXTENSIONS))
}
