// Package joss provides the public API for the joss interpreter.
package joss

import (
	"io"

	"nickandperla.net/joss/internal/eval"
)

// Option configures a Runtime.
type Option func(*Runtime)

// OutputWriter receives produced text (for Type).
type OutputWriter = eval.OutputWriter

// WithOutputWriter sets the output sink.
func WithOutputWriter(writer OutputWriter) Option {
	return func(r *Runtime) {
		r.outputWriter = writer
	}
}

// WithOutput sets an io.Writer as the output sink.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.outputWriter = func(text string) error {
			_, err := w.Write([]byte(text))
			return err
		}
	}
}

// WithPrelude sets a custom prelude source to be loaded on startup.
// If not set, DefaultPrelude is used.
func WithPrelude(source string) Option {
	return func(r *Runtime) {
		r.prelude = source
	}
}

// WithNoPrelude disables loading the default prelude.
func WithNoPrelude() Option {
	return func(r *Runtime) {
		r.noPrelude = true
	}
}
