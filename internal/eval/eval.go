// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the joss evaluator: a tree walk over parsed
// commands against a mutable session environment.
package eval

import (
	"bufio"
	"fmt"
	"io"

	"nickandperla.net/joss/internal/ast"
	"nickandperla.net/joss/internal/parser"
)

// OutputWriter writes produced text (for Type).
type OutputWriter func(text string) error

// Evaluator interprets joss lines against one long-lived environment.
// Evaluation is fully synchronous; each line runs to completion or to an
// error before the next is processed.
type Evaluator struct {
	env          *Environment
	outputWriter OutputWriter
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithOutputWriter sets the output sink for Type.
func WithOutputWriter(w OutputWriter) Option {
	return func(e *Evaluator) { e.outputWriter = w }
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		env: NewEnvironment(),
		outputWriter: func(text string) error {
			fmt.Print(text)
			return nil
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Env returns the evaluator's environment.
func (e *Evaluator) Env() *Environment {
	return e.env
}

// Eval evaluates one input line: parse it, then either store it under its
// part.step label or execute it immediately. An error aborts the line but
// leaves all environment mutations and output made before the error point.
func (e *Evaluator) Eval(line string) error {
	cmd, stored, err := parser.ParseLine(line)
	if err != nil {
		return err
	}
	if stored != nil {
		e.env.Program().SetStep(stored.Part, stored.Step, stored.Command)
		return nil
	}
	return e.execCommand(cmd)
}

// EvalReader evaluates input line by line, stopping at the first error.
func (e *Evaluator) EvalReader(r io.Reader) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if err := e.Eval(scan.Text()); err != nil {
			return err
		}
	}
	return scan.Err()
}

func (e *Evaluator) execCommand(cmd ast.Command) error {
	if cmd.If != nil {
		v, err := e.evalExpr(cmd.If, nil)
		if err != nil {
			return err
		}
		ok, err := toBool(v)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	switch verb := cmd.Verb.(type) {
	case ast.NoOp:
		return nil
	case ast.Type:
		return e.execType(verb)
	case ast.Set:
		return e.execSet(verb)
	case ast.Let:
		e.env.DefineFunc(verb.Name, &Func{Name: verb.Name, Params: verb.Params, Body: verb.Body})
		return nil
	case ast.Do:
		return e.execDo(verb)
	}
	return valueErrf("unknown verb %T", cmd.Verb)
}

func (e *Evaluator) execType(t ast.Type) error {
	for _, arg := range t.Args {
		text := arg.Literal
		if arg.Expr != nil {
			v, err := e.evalExpr(arg.Expr, nil)
			if err != nil {
				return err
			}
			if v.Kind == KindFunc || v.Kind == KindArray {
				return valueErrf("cannot type %s", v.Text())
			}
			text = v.Text()
		}
		if err := e.outputWriter(text + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execSet(s ast.Set) error {
	v, err := e.evalExpr(s.Expr, nil)
	if err != nil {
		return err
	}
	if s.Target.Indices == nil {
		e.env.SetScalar(s.Target.Name, v)
		return nil
	}
	indices, err := e.evalIndices(s.Target.Indices, nil)
	if err != nil {
		return err
	}
	e.env.SetElement(s.Target.Name, indices, v)
	return nil
}

// execDo runs the targeted unit (one step or a whole part), repeated by the
// times count or once per range value for the for binding.
func (e *Evaluator) execDo(d ast.Do) error {
	run := func() error {
		if d.HasStep {
			cmd, err := e.env.Program().GetStep(d.Part, d.Step)
			if err != nil {
				return err
			}
			return e.execCommand(cmd)
		}
		steps := e.env.Program().PartSteps(d.Part)
		if len(steps) == 0 {
			return bindingErrf("part %d has no steps", d.Part)
		}
		for _, s := range steps {
			if err := e.execCommand(s.Command()); err != nil {
				return err
			}
		}
		return nil
	}

	switch {
	case d.Times != nil:
		v, err := e.evalExpr(d.Times, nil)
		if err != nil {
			return err
		}
		n, err := toNumber(v)
		if err != nil {
			return err
		}
		for i := 0; i < int(n); i++ {
			if err := run(); err != nil {
				return err
			}
		}
	case d.ForVar != "":
		it := e.newRangeIter(d.ForRng, nil)
		for {
			v, ok, err := it.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			e.env.SetScalar(d.ForVar, NumberValue(v))
			if err := run(); err != nil {
				return err
			}
		}
	default:
		return run()
	}
	return nil
}

// scope is the call-local overlay holding a function invocation's argument
// bindings. It is checked before the environment and never mutated after
// the call starts.
type scope struct {
	vars map[string]Value
}

func (e *Evaluator) evalExpr(x ast.Expr, sc *scope) (Value, error) {
	switch x := x.(type) {
	case ast.Number:
		return NumberValue(x.Value), nil
	case ast.Variable:
		return e.evalVariable(x, sc)
	case ast.Binary:
		return e.evalBinary(x, sc)
	case ast.Conditional:
		return e.evalConditional(x, sc)
	}
	return Value{}, valueErrf("unknown expression %T", x)
}

func (e *Evaluator) evalBinary(b ast.Binary, sc *scope) (Value, error) {
	lhs, err := e.evalExpr(b.LHS, sc)
	if err != nil {
		return Value{}, err
	}
	rhs, err := e.evalExpr(b.RHS, sc)
	if err != nil {
		return Value{}, err
	}

	switch b.Op {
	// Both word operators compute conjunction; the or/and distinction is
	// spelling only. See DESIGN.md.
	case "or", "and":
		l, err := toBool(lhs)
		if err != nil {
			return Value{}, err
		}
		r, err := toBool(rhs)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(l && r), nil

	case "=":
		return BoolValue(valueEqual(lhs, rhs)), nil
	case "!=":
		return BoolValue(!valueEqual(lhs, rhs)), nil
	}

	l, err := toNumber(lhs)
	if err != nil {
		return Value{}, err
	}
	r, err := toNumber(rhs)
	if err != nil {
		return Value{}, err
	}
	switch b.Op {
	case "<":
		return BoolValue(l < r), nil
	case "<=":
		return BoolValue(l <= r), nil
	case ">":
		return BoolValue(l > r), nil
	case ">=":
		return BoolValue(l >= r), nil
	case "+":
		return NumberValue(l + r), nil
	case "-":
		return NumberValue(l - r), nil
	case "*":
		return NumberValue(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, valueErrf("division by zero")
		}
		return NumberValue(l / r), nil
	}
	return Value{}, valueErrf("unknown operator %q", b.Op)
}

// evalConditional returns the result paired with the first truthy condition
// in source order, or the default when none match.
func (e *Evaluator) evalConditional(c ast.Conditional, sc *scope) (Value, error) {
	for _, arm := range c.Arms {
		v, err := e.evalExpr(arm.Cond, sc)
		if err != nil {
			return Value{}, err
		}
		ok, err := toBool(v)
		if err != nil {
			return Value{}, err
		}
		if ok {
			return e.evalExpr(arm.Result, sc)
		}
	}
	return e.evalExpr(c.Default, sc)
}

// evalVariable resolves a name reference. The call-local scope wins over the
// environment; what the name is bound to decides whether an index list means
// an array read or a function call. A bare reference to an array or function
// is a lookup, not a call.
func (e *Evaluator) evalVariable(v ast.Variable, sc *scope) (Value, error) {
	if sc != nil {
		if val, ok := sc.vars[v.Name]; ok {
			if v.Indices == nil {
				return val, nil
			}
			if val.Kind == KindFunc {
				return e.callFunc(val.Fn, v.Indices, sc)
			}
			if val.Kind == KindArray {
				indices, err := e.evalIndices(v.Indices, sc)
				if err != nil {
					return Value{}, err
				}
				return val.Arr.Get(indices)
			}
			return Value{}, bindingErrf("%q is not an array or function", v.Name)
		}
	}

	b, ok := e.env.lookup(v.Name)
	if !ok {
		return Value{}, bindingErrf("%q is not defined", v.Name)
	}

	switch b.kind {
	case bindScalar:
		if v.Indices != nil {
			return Value{}, bindingErrf("%q is not an array or function", v.Name)
		}
		return b.scalar, nil

	case bindArray:
		if v.Indices == nil {
			return ArrayValue(b.arr), nil
		}
		indices, err := e.evalIndices(v.Indices, sc)
		if err != nil {
			return Value{}, err
		}
		return b.arr.Get(indices)

	case bindFunc:
		if v.Indices == nil {
			return FuncValue(b.fn), nil
		}
		return e.callFunc(b.fn, v.Indices, sc)
	}
	return Value{}, bindingErrf("%q is not defined", v.Name)
}

// callFunc invokes a callable with the evaluated arguments. A user function
// body runs under a fresh scope holding only the formal arguments; globals
// stay visible through the environment for anything not shadowed.
func (e *Evaluator) callFunc(fn *Func, argExprs []ast.Expr, sc *scope) (Value, error) {
	args := make([]Value, len(argExprs))
	for i, ax := range argExprs {
		v, err := e.evalExpr(ax, sc)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	if fn.Builtin != nil {
		if len(args) != fn.Arity {
			return Value{}, arityErrf("%s takes %d arguments, got %d", fn.Name, fn.Arity, len(args))
		}
		return fn.Builtin(args)
	}

	if len(args) != len(fn.Params) {
		return Value{}, arityErrf("%s takes %d arguments, got %d", fn.Name, len(fn.Params), len(args))
	}
	call := &scope{vars: make(map[string]Value, len(args))}
	for i, p := range fn.Params {
		call.vars[p] = args[i]
	}
	return e.evalExpr(fn.Body, call)
}

func (e *Evaluator) evalIndices(exprs []ast.Expr, sc *scope) ([]float64, error) {
	indices := make([]float64, len(exprs))
	for i, x := range exprs {
		v, err := e.evalExpr(x, sc)
		if err != nil {
			return nil, err
		}
		n, err := toNumber(v)
		if err != nil {
			return nil, err
		}
		indices[i] = n
	}
	return indices, nil
}
