package shading

import "log/slog"

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for driver diagnostics and failures.
// By default a Context logs nothing. A nil logger keeps it silent.
//
// Levels used:
//   - [slog.LevelDebug]: backend probe failures
//   - [slog.LevelInfo]: driver strings, selected backend
//   - [slog.LevelWarn]: context creation failure, swap interval fallback
//   - [slog.LevelError]: shader creation failures
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l == nil {
			l = newNopLogger()
		}
		c.log = l
	}
}

// WithoutAcceleration makes Initialize skip accelerated backends, forcing
// the fallback path.
func WithoutAcceleration() Option {
	return func(c *Context) { c.noAccel = true }
}

// WithDepthFunc overrides the depth comparison set by Initialize.
// The default is DepthLess.
func WithDepthFunc(fn DepthFunc) Option {
	return func(c *Context) { c.depthFunc = fn }
}
