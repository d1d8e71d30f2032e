package renderer

import "fmt"

// Logger receives progress and diagnostic output from the renderer. It
// mirrors the core package's logging seam so callers (CLI, tests) can
// redirect or silence it without touching the render loop.
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger writes to stdout.
type DefaultLogger struct{}

// NewDefaultLogger creates a Logger that writes to stdout.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NopLogger discards everything written to it.
type NopLogger struct{}

// NewNopLogger creates a Logger that discards all output.
func NewNopLogger() Logger {
	return &NopLogger{}
}

func (l *NopLogger) Printf(format string, args ...interface{}) {}
