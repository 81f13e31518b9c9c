// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package ast defines the joss expression, verb, and command node kinds.
package ast

import (
	"strconv"
	"strings"
)

// Expr is the interface all expression nodes implement.
type Expr interface {
	// String returns a source-like rendering of the expression.
	String() string
	exprNode()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
func (Number) exprNode() {}

// Variable is a name reference with an optional index list. One node covers
// plain variables, array reads, and function calls; which it is gets decided
// at evaluation time by what the name is bound to.
type Variable struct {
	Name    string
	Indices []Expr // nil for a bare reference
}

func (v Variable) String() string {
	if v.Indices == nil {
		return v.Name
	}
	parts := make([]string, len(v.Indices))
	for i, ix := range v.Indices {
		parts[i] = ix.String()
	}
	return v.Name + "(" + strings.Join(parts, ",") + ")"
}
func (Variable) exprNode() {}

// Binary applies an operator to two operands.
type Binary struct {
	Op  string
	LHS Expr
	RHS Expr
}

func (b Binary) String() string {
	return b.LHS.String() + b.Op + b.RHS.String()
}
func (Binary) exprNode() {}

// Arm is one condition/result pair of a Conditional.
type Arm struct {
	Cond   Expr
	Result Expr
}

// Conditional is the multi-way selector (c1:r1; c2:r2; ...; default).
// The first truthy condition in source order selects its result; when none
// match the default is evaluated.
type Conditional struct {
	Arms    []Arm
	Default Expr
}

func (c Conditional) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for _, arm := range c.Arms {
		sb.WriteString(arm.Cond.String())
		sb.WriteString(":")
		sb.WriteString(arm.Result.String())
		sb.WriteString("; ")
	}
	sb.WriteString(c.Default.String())
	sb.WriteString(")")
	return sb.String()
}
func (Conditional) exprNode() {}

// RangeTerm is one comma-separated term of a value range: either a singleton
// expression (Step and End nil) or a start(step)end arithmetic progression.
type RangeTerm struct {
	Start Expr
	Step  Expr // nil for a singleton
	End   Expr // nil for a singleton
}

// Range is a sequence of range terms, generated lazily left to right.
type Range struct {
	Terms []RangeTerm
}

func (r Range) String() string {
	parts := make([]string, len(r.Terms))
	for i, t := range r.Terms {
		if t.Step == nil {
			parts[i] = t.Start.String()
		} else {
			parts[i] = t.Start.String() + "(" + t.Step.String() + ")" + t.End.String()
		}
	}
	return strings.Join(parts, ",")
}

// StringExpr is one Type operand: a quoted literal or a numeric expression
// rendered to text.
type StringExpr struct {
	Literal string
	Expr    Expr // nil when Literal is set
}

func (s StringExpr) String() string {
	if s.Expr == nil {
		return `"` + s.Literal + `"`
	}
	return s.Expr.String()
}

// Verb is the interface all statement kinds implement.
type Verb interface {
	verbNode()
	String() string
}

// NoOp is the verb of a comment line; executing it does nothing.
type NoOp struct{}

func (NoOp) verbNode()      {}
func (NoOp) String() string { return "" }

// Type outputs each operand on its own line.
type Type struct {
	Args []StringExpr
}

func (Type) verbNode() {}
func (t Type) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return "Type " + strings.Join(parts, ", ")
}

// Set assigns an expression result to a scalar or array element.
type Set struct {
	Target Variable
	Expr   Expr
}

func (Set) verbNode() {}
func (s Set) String() string {
	return "Set " + s.Target.String() + " = " + s.Expr.String()
}

// Let defines a function value under a name.
type Let struct {
	Name   string
	Params []string
	Body   Expr
}

func (Let) verbNode() {}
func (l Let) String() string {
	if len(l.Params) == 0 {
		return "Let " + l.Name + " = " + l.Body.String()
	}
	return "Let " + l.Name + "(" + strings.Join(l.Params, ",") + ") = " + l.Body.String()
}

// Do runs a stored step or a whole part, optionally repeated by a times
// count or iterated by a for range. Times and For are mutually exclusive.
type Do struct {
	Part    int
	Step    float64 // full step label value, e.g. 1.1
	HasStep bool    // false means the whole part
	Times   Expr    // nil unless ", N times" was given
	ForVar  string  // empty unless "for v = range" was given
	ForRng  *Range
}

func (Do) verbNode() {}
func (d Do) String() string {
	var sb strings.Builder
	if d.HasStep {
		sb.WriteString("Do step ")
		sb.WriteString(strconv.FormatFloat(d.Step, 'f', -1, 64))
	} else {
		sb.WriteString("Do part ")
		sb.WriteString(strconv.Itoa(d.Part))
	}
	if d.Times != nil {
		sb.WriteString(", ")
		sb.WriteString(d.Times.String())
		sb.WriteString(" times")
	}
	if d.ForVar != "" {
		sb.WriteString(" for ")
		sb.WriteString(d.ForVar)
		sb.WriteString(" = ")
		sb.WriteString(d.ForRng.String())
	}
	return sb.String()
}

// Command is a verb with an optional if guard. The verb executes only when
// the guard is absent or evaluates truthy.
type Command struct {
	Verb Verb
	If   Expr // nil when unguarded
}

func (c Command) String() string {
	s := c.Verb.String()
	if c.If != nil {
		s += " if " + c.If.String()
	}
	return s + "."
}

// StoredCommand registers a command under a part.step label instead of
// executing it.
type StoredCommand struct {
	Part    int
	Step    float64 // full label value
	Command Command
}

func (s StoredCommand) String() string {
	return strconv.FormatFloat(s.Step, 'f', -1, 64) + " " + s.Command.String()
}
