package joss

import (
	"bufio"
	"io"
	"os"
	"strings"

	"nickandperla.net/joss/internal/eval"
)

// Runtime is the joss interpreter runtime: one session environment plus the
// configured output sink.
type Runtime struct {
	evaluator    *eval.Evaluator
	outputWriter eval.OutputWriter
	prelude      string // custom prelude source (if empty, uses DefaultPrelude)
	noPrelude    bool
}

// New creates a new joss runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}

	evalOpts := []eval.Option{}
	if r.outputWriter != nil {
		evalOpts = append(evalOpts, eval.WithOutputWriter(r.outputWriter))
	}
	r.evaluator = eval.New(evalOpts...)

	if !r.noPrelude {
		prelude := r.prelude
		if prelude == "" {
			prelude = DefaultPrelude
		}
		// Prelude definitions are ordinary lines; a broken custom prelude
		// surfaces on first use, not here.
		for _, line := range strings.Split(prelude, "\n") {
			r.evaluator.Eval(line)
		}
	}

	return r
}

// Eval evaluates one joss line against the session environment.
func (r *Runtime) Eval(line string) error {
	return r.evaluator.Eval(line)
}

// EvalReader evaluates joss lines from a reader, stopping at the first
// error.
func (r *Runtime) EvalReader(reader io.Reader) error {
	return r.evaluator.EvalReader(reader)
}

// EvalFile evaluates a joss file.
func (r *Runtime) EvalFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.EvalReader(bufio.NewReader(f))
}
