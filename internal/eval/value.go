// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"strconv"
	"strings"

	"nickandperla.net/joss/internal/ast"
)

// Kind tags a runtime value.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindFunc  // built-in or Let-defined function
	KindArray // reference to an array; indexing happens at the name site
)

// Value is the tagged runtime value. Coercion happens only through toNumber
// and toBool at the operators that require it, never implicitly.
type Value struct {
	Kind Kind
	Num  float64
	Bool bool
	Fn   *Func
	Arr  *Array
}

// NumberValue wraps a float64.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// FuncValue wraps a callable.
func FuncValue(fn *Func) Value { return Value{Kind: KindFunc, Fn: fn} }

// ArrayValue wraps an array reference.
func ArrayValue(a *Array) Value { return Value{Kind: KindArray, Arr: a} }

// Text renders a value the way Type prints it.
func (v Value) Text() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindFunc:
		return "<function " + v.Fn.Name + ">"
	}
	return "<array>"
}

// toNumber coerces to a number: numbers pass through, booleans map to 1/0.
func toNumber(v Value) (float64, error) {
	switch v.Kind {
	case KindNumber:
		return v.Num, nil
	case KindBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	}
	return 0, valueErrf("%s is not a number", v.Text())
}

// toBool coerces to a boolean: booleans pass through, numbers are truthy
// when nonzero.
func toBool(v Value) (bool, error) {
	switch v.Kind {
	case KindBool:
		return v.Bool, nil
	case KindNumber:
		return v.Num != 0, nil
	}
	return false, valueErrf("%s is not a boolean", v.Text())
}

// valueEqual is non-coercing equality: values of different kinds are never
// equal, callables compare by identity.
func valueEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.Num == b.Num
	case KindBool:
		return a.Bool == b.Bool
	case KindFunc:
		return a.Fn == b.Fn
	}
	return a.Arr == b.Arr
}

// Func is a callable: either a built-in with a native implementation or a
// Let-defined function with formal parameters and a body expression.
type Func struct {
	Name    string
	Params  []string
	Body    ast.Expr
	Builtin func(args []Value) (Value, error)
	Arity   int // builtin arity; user functions use len(Params)
}

// Array maps an index tuple to values. The arity is fixed by the first
// write; writing with a different arity clears all prior entries. A sparse
// array reads unset indices as zero, a strict one fails.
type Array struct {
	Arity  int
	Sparse bool
	elems  map[string]Value
}

func newArray(arity int) *Array {
	return &Array{Arity: arity, elems: make(map[string]Value)}
}

func indexKey(indices []float64) string {
	parts := make([]string, len(indices))
	for i, ix := range indices {
		parts[i] = strconv.FormatFloat(ix, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Get reads an element. Wrong dimensionality is an arity error; a missing
// index reads as zero only for sparse arrays.
func (a *Array) Get(indices []float64) (Value, error) {
	if len(indices) != a.Arity {
		return Value{}, arityErrf("array indexed with %d subscripts, has %d", len(indices), a.Arity)
	}
	if v, ok := a.elems[indexKey(indices)]; ok {
		return v, nil
	}
	if a.Sparse {
		return NumberValue(0), nil
	}
	return Value{}, arrayMissErrf("no element at (%s)", indexKey(indices))
}

// Set writes an element, resetting the array when the dimensionality
// changes.
func (a *Array) Set(indices []float64, v Value) {
	if len(indices) != a.Arity {
		a.Arity = len(indices)
		a.elems = make(map[string]Value)
	}
	a.elems[indexKey(indices)] = v
}

// Len returns the number of set elements.
func (a *Array) Len() int {
	return len(a.elems)
}
