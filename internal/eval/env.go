// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

// bindKind tags what a name is currently bound to. A name is exactly one of
// scalar, array, or function at a time; rebinding to another kind drops the
// previous binding entirely.
type bindKind int

const (
	bindScalar bindKind = iota
	bindArray
	bindFunc
)

type binding struct {
	kind   bindKind
	scalar Value
	arr    *Array
	fn     *Func
}

// Environment holds one session's variables, arrays, functions, and stored
// program. It is created once per session and mutated in place; nothing is
// destroyed except by rebinding a name.
type Environment struct {
	names   map[string]*binding
	program *Program
}

// NewEnvironment creates an empty environment with the built-in functions
// registered.
func NewEnvironment() *Environment {
	env := &Environment{
		names:   make(map[string]*binding),
		program: NewProgram(),
	}
	registerBuiltins(env)
	return env
}

// Program returns the session's stored-command table.
func (env *Environment) Program() *Program {
	return env.program
}

// SetScalar binds a name to a scalar value, clearing any array or function
// previously bound to it.
func (env *Environment) SetScalar(name string, v Value) {
	env.names[name] = &binding{kind: bindScalar, scalar: v}
}

// SetElement writes one array element, creating the array on first write.
// A scalar or function binding under the name is replaced by the array.
func (env *Environment) SetElement(name string, indices []float64, v Value) {
	b, ok := env.names[name]
	if !ok || b.kind != bindArray {
		b = &binding{kind: bindArray, arr: newArray(len(indices))}
		env.names[name] = b
	}
	b.arr.Set(indices, v)
}

// DefineFunc binds a name to a callable, clearing any scalar or array
// previously bound to it.
func (env *Environment) DefineFunc(name string, fn *Func) {
	env.names[name] = &binding{kind: bindFunc, fn: fn}
}

func (env *Environment) lookup(name string) (*binding, bool) {
	b, ok := env.names[name]
	return b, ok
}
