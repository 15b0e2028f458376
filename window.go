package shading

// DepthFunc is a depth buffer comparison.
type DepthFunc int

const (
	DepthNever DepthFunc = iota
	DepthLess
	DepthEqual
	DepthLessEqual
	DepthGreater
	DepthNotEqual
	DepthGreaterEqual
	DepthAlways
)

// Swap intervals passed to Window.SetSwapInterval.
const (
	SwapImmediate = 0
	SwapVSync     = 1
	// SwapAdaptive syncs to vblank unless a frame is late ("late swap
	// tearing").
	SwapAdaptive  = -1
)

// DriverInfo holds the GL driver identification strings.
type DriverInfo struct {
	Version         string
	Vendor          string
	Renderer        string
	ShadingLanguage string
}

// GLContext is the handle of a GL rendering context.
type GLContext interface {
	// Destroy releases the context. It must not be used afterwards.
	Destroy()
}

// Window is the window subsystem a Context creates its GL context with.
// Every method except CreateContext assumes the created context is current.
type Window interface {
	// CreateContext creates a shared, double-buffered context and makes
	// it current.
	CreateContext() (GLContext, error)

	DriverInfo() DriverInfo

	// SetDepthTest enables depth testing with the given comparison.
	SetDepthTest(fn DepthFunc)

	// SetSwapInterval returns an error when the interval is unsupported.
	SetSwapInterval(interval int) error

	// Error returns the pending GL error, or nil.
	Error() error
}
