// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "fmt"

// ErrKind classifies a runtime evaluation failure. Every kind is fatal to
// the current command only; the session and its environment survive.
type ErrKind int

const (
	// ErrBinding is a reference to an undefined name, or use of a name as
	// a kind it is not bound to.
	ErrBinding ErrKind = iota
	// ErrArity is an array indexed with the wrong dimensionality or a
	// function called with the wrong argument count.
	ErrArity
	// ErrArrayMiss is a strict array read at an unset index.
	ErrArrayMiss
	// ErrValue is a value misuse: coercing a callable, dividing by zero.
	ErrValue
)

// String returns the string representation of an error kind.
func (k ErrKind) String() string {
	switch k {
	case ErrBinding:
		return "binding error"
	case ErrArity:
		return "arity error"
	case ErrArrayMiss:
		return "array error"
	case ErrValue:
		return "value error"
	}
	return "error"
}

// Error is a runtime evaluation error: a kind plus a context string.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func bindingErrf(format string, args ...any) error {
	return &Error{Kind: ErrBinding, Msg: fmt.Sprintf(format, args...)}
}

func arityErrf(format string, args ...any) error {
	return &Error{Kind: ErrArity, Msg: fmt.Sprintf(format, args...)}
}

func arrayMissErrf(format string, args ...any) error {
	return &Error{Kind: ErrArrayMiss, Msg: fmt.Sprintf(format, args...)}
}

func valueErrf(format string, args ...any) error {
	return &Error{Kind: ErrValue, Msg: fmt.Sprintf(format, args...)}
}
