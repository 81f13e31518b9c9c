package joss

import (
	"strings"
	"testing"
)

func newTestRuntime(opts ...Option) (*Runtime, *strings.Builder) {
	var output strings.Builder
	opts = append(opts, WithOutput(&output))
	return New(opts...), &output
}

func TestRuntimeEval(t *testing.T) {
	r, out := newTestRuntime()
	for _, line := range []string{"Set x = 3.", "Type x*x."} {
		if err := r.Eval(line); err != nil {
			t.Fatalf("eval %q: %v", line, err)
		}
	}
	if out.String() != "9\n" {
		t.Errorf("got %q, want \"9\\n\"", out.String())
	}
}

func TestPreludeDefinitions(t *testing.T) {
	r, out := newTestRuntime()
	for _, line := range []string{"Type sq(5).", "Type min(2,7), max(2,7).", "Type sgn(-4)."} {
		if err := r.Eval(line); err != nil {
			t.Fatalf("eval %q: %v", line, err)
		}
	}
	if out.String() != "25\n2\n7\n-1\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestNoPreludeOption(t *testing.T) {
	r, _ := newTestRuntime(WithNoPrelude())
	if err := r.Eval("Type sq(5)."); err == nil {
		t.Error("sq should be undefined without the prelude")
	}
}

func TestCustomPrelude(t *testing.T) {
	r, out := newTestRuntime(WithPrelude("Let double(x) = x + x."))
	if err := r.Eval("Type double(21)."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "42\n" {
		t.Errorf("got %q, want \"42\\n\"", out.String())
	}
}

func TestPreludeCanBeShadowed(t *testing.T) {
	r, out := newTestRuntime()
	for _, line := range []string{"Set pi = 3.", "Type pi."} {
		if err := r.Eval(line); err != nil {
			t.Fatalf("eval %q: %v", line, err)
		}
	}
	if out.String() != "3\n" {
		t.Errorf("got %q, want \"3\\n\"", out.String())
	}
}

func TestEvalReaderStopsOnError(t *testing.T) {
	r, out := newTestRuntime()
	src := "Type 1.\nType nosuch.\nType 2.\n"
	if err := r.EvalReader(strings.NewReader(src)); err == nil {
		t.Fatal("expected error")
	}
	if out.String() != "1\n" {
		t.Errorf("got %q, want \"1\\n\"", out.String())
	}
}
