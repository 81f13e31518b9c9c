// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "math"

// Standard function set. ip/fp are the JOSS integer-part and fraction-part
// functions. Like any other binding, a built-in can be shadowed by Set or
// Let under the same name.
func registerBuiltins(env *Environment) {
	unary := map[string]func(float64) float64{
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
		"log":  math.Log,
		"exp":  math.Exp,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"ip":   math.Trunc,
		"fp":   func(x float64) float64 { return x - math.Trunc(x) },
	}
	for name, fn := range unary {
		env.DefineFunc(name, newUnaryBuiltin(name, fn))
	}
}

func newUnaryBuiltin(name string, fn func(float64) float64) *Func {
	return &Func{
		Name:  name,
		Arity: 1,
		Builtin: func(args []Value) (Value, error) {
			x, err := toNumber(args[0])
			if err != nil {
				return Value{}, err
			}
			return NumberValue(fn(x)), nil
		},
	}
}
