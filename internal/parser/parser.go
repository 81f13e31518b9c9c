// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser turns one tokenized joss line into an executable unit:
// a command to run now, or a part.step command to store for Do.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"nickandperla.net/joss/internal/ast"
	"nickandperla.net/joss/internal/scanner"
	"nickandperla.net/joss/internal/token"
)

// SyntaxError is any malformed-input failure: unexpected token, unmatched
// bracket, missing terminating period, bad part.step label, bad range.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

func errf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Binary operator precedence, low to high. or/and sit below comparison,
// equality below ordering, additive below multiplicative.
var precedence = map[string]int{
	"or": 0, "and": 1,
	"=": 2, "!=": 2,
	"<": 3, ">": 3, "<=": 3, ">=": 3,
	"+": 4, "-": 4,
	"/": 5, "*": 5,
}

// Parser consumes tokens from a single-line scanner.
type Parser struct {
	s *scanner.Scanner
}

// New creates a Parser over a line scanner.
func New(s *scanner.Scanner) *Parser {
	return &Parser{s: s}
}

// ParseLine parses one raw input line. The returned StoredCommand is non-nil
// when the line begins with a part.step label; otherwise the Command is the
// unit to execute. A comment line parses to a NoOp command.
func ParseLine(line string) (ast.Command, *ast.StoredCommand, error) {
	p := New(scanner.New(line))

	if p.s.Peek().Tok == token.EOF {
		return ast.Command{Verb: ast.NoOp{}}, nil, nil
	}

	if p.s.Peek().Tok == token.NUMBER {
		label := p.s.Next()
		part, step, err := splitLabel(label.Text)
		if err != nil {
			return ast.Command{}, nil, err
		}
		cmd, err := p.ParseCommand()
		if err != nil {
			return ast.Command{}, nil, err
		}
		return ast.Command{}, &ast.StoredCommand{Part: part, Step: step, Command: cmd}, nil
	}

	cmd, err := p.ParseCommand()
	if err != nil {
		return ast.Command{}, nil, err
	}
	return cmd, nil, nil
}

// ParseCommand parses verb, optional if guard, and the terminating period.
func (p *Parser) ParseCommand() (ast.Command, error) {
	verb, err := p.parseVerb()
	if err != nil {
		return ast.Command{}, err
	}

	cmd := ast.Command{Verb: verb}
	if it := p.s.Peek(); it.Tok == token.VERB && it.Text == "if" {
		p.s.Next()
		guard, err := p.ParseExpr()
		if err != nil {
			return ast.Command{}, err
		}
		cmd.If = guard
	}

	if it := p.s.Next(); it.Tok != token.PERIOD {
		return ast.Command{}, errf("expected '.' to end command, got %s %q", it.Tok, it.Text)
	}
	if it := p.s.Next(); it.Tok != token.EOF {
		return ast.Command{}, errf("unexpected %s %q after '.'", it.Tok, it.Text)
	}
	return cmd, nil
}

func (p *Parser) parseVerb() (ast.Verb, error) {
	it := p.s.Next()
	if it.Tok != token.VERB {
		return nil, errf("expected verb, got %s %q", it.Tok, it.Text)
	}

	switch it.Text {
	case "Type":
		return p.parseType()
	case "Set":
		return p.parseSet()
	case "Let":
		return p.parseLet()
	case "Do":
		return p.parseDo()
	}
	return nil, errf("unexpected keyword %q", it.Text)
}

func (p *Parser) parseType() (ast.Verb, error) {
	var args []ast.StringExpr
	for {
		arg, err := p.parseStringExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.s.Peek().Tok != token.COMMA {
			break
		}
		p.s.Next()
	}
	return ast.Type{Args: args}, nil
}

func (p *Parser) parseStringExpr() (ast.StringExpr, error) {
	if p.s.Peek().Tok == token.STRING {
		return ast.StringExpr{Literal: p.s.Next().Text}, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return ast.StringExpr{}, err
	}
	return ast.StringExpr{Expr: e}, nil
}

func (p *Parser) parseSet() (ast.Verb, error) {
	target, err := p.parseVariableRef()
	if err != nil {
		return nil, err
	}
	if it := p.s.Next(); it.Tok != token.OPERATOR || it.Text != "=" {
		return nil, errf("expected '=' in Set, got %q", it.Text)
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return ast.Set{Target: target, Expr: e}, nil
}

func (p *Parser) parseLet() (ast.Verb, error) {
	name := p.s.Next()
	if name.Tok != token.NAME {
		return nil, errf("expected function name after Let, got %q", name.Text)
	}

	var params []string
	if p.s.Peek().Tok == token.OPEN {
		open := p.s.Next()
		for {
			param := p.s.Next()
			if param.Tok != token.NAME {
				return nil, errf("expected parameter name, got %q", param.Text)
			}
			params = append(params, param.Text)
			it := p.s.Next()
			if it.Tok == token.COMMA {
				continue
			}
			if it.Tok == token.CLOSE {
				if it.Text != token.MatchingClose(open.Text) {
					return nil, errf("mismatched bracket: %q closed by %q", open.Text, it.Text)
				}
				break
			}
			return nil, errf("expected ',' or close bracket in parameter list, got %q", it.Text)
		}
	}

	if it := p.s.Next(); it.Tok != token.OPERATOR || it.Text != "=" {
		return nil, errf("expected '=' in Let, got %q", it.Text)
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return ast.Let{Name: name.Text, Params: params, Body: body}, nil
}

func (p *Parser) parseDo() (ast.Verb, error) {
	kind := p.s.Next()
	if kind.Tok != token.VERB || (kind.Text != "part" && kind.Text != "step") {
		return nil, errf("expected 'part' or 'step' after Do, got %q", kind.Text)
	}

	label := p.s.Next()
	if label.Tok != token.NUMBER {
		return nil, errf("expected %s number after Do, got %q", kind.Text, label.Text)
	}

	d := ast.Do{}
	if kind.Text == "step" {
		part, step, err := splitLabel(label.Text)
		if err != nil {
			return nil, err
		}
		d.Part, d.Step, d.HasStep = part, step, true
	} else {
		part, err := strconv.Atoi(label.Text)
		if err != nil {
			return nil, errf("malformed part number %q", label.Text)
		}
		d.Part = part
	}

	// Modifiers are mutually exclusive: ", N times" or "for v = range".
	switch it := p.s.Peek(); {
	case it.Tok == token.COMMA:
		p.s.Next()
		count, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if it := p.s.Next(); it.Tok != token.VERB || it.Text != "times" {
			return nil, errf("expected 'times' after repeat count, got %q", it.Text)
		}
		d.Times = count
	case it.Tok == token.VERB && it.Text == "for":
		p.s.Next()
		v := p.s.Next()
		if v.Tok != token.NAME {
			return nil, errf("expected variable name after 'for', got %q", v.Text)
		}
		if it := p.s.Next(); it.Tok != token.OPERATOR || it.Text != "=" {
			return nil, errf("expected '=' after for variable, got %q", it.Text)
		}
		rng, err := p.ParseRange(token.PERIOD)
		if err != nil {
			return nil, err
		}
		d.ForVar, d.ForRng = v.Text, rng
	}
	return d, nil
}

// ParseRange parses a comma-separated value range. Each term is a single
// expression or a start(step)end progression. The caller names the token
// expected to follow the range; it is left unconsumed.
func (p *Parser) ParseRange(end token.Token) (*ast.Range, error) {
	var terms []ast.RangeTerm
	for {
		start, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		term := ast.RangeTerm{Start: start}
		if p.s.Peek().Tok == token.OPEN {
			open := p.s.Next()
			step, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectClose(open); err != nil {
				return nil, err
			}
			stop, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			term.Step, term.End = step, stop
		}
		terms = append(terms, term)
		if p.s.Peek().Tok != token.COMMA {
			break
		}
		p.s.Next()
	}
	if it := p.s.Peek(); it.Tok != end {
		return nil, errf("expected %s after range, got %q", end, it.Text)
	}
	return &ast.Range{Terms: terms}, nil
}

// ParseExpr parses an expression, consuming tokens greedily until a token
// that cannot continue it.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.parseBinary(0)
}

// parseBinary is standard precedence climbing: fold operators at or above
// min, recursing one level tighter for the right-hand side so same-tier
// operators group left-associatively.
func (p *Parser) parseBinary(min int) (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		it := p.s.Peek()
		if it.Tok != token.OPERATOR {
			break
		}
		prec, ok := precedence[it.Text]
		if !ok || prec < min {
			break
		}
		p.s.Next()
		rhs, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary{Op: it.Text, LHS: lhs, RHS: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	it := p.s.Peek()
	switch {
	case it.Tok == token.NUMBER:
		p.s.Next()
		v, err := strconv.ParseFloat(it.Text, 64)
		if err != nil {
			return nil, errf("malformed number %q", it.Text)
		}
		return ast.Number{Value: v}, nil

	case it.Tok == token.OPERATOR && it.Text == "-":
		p.s.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Binary{Op: "-", LHS: ast.Number{}, RHS: operand}, nil

	case it.Tok == token.NAME:
		v, err := p.parseVariableRef()
		if err != nil {
			return nil, err
		}
		return v, nil

	case it.Tok == token.OPEN:
		return p.parseGroup()
	}
	return nil, errf("expected expression, got %s %q", it.Tok, it.Text)
}

// parseGroup parses a bracketed sub-expression. When the first expression is
// followed by ':' the group is reinterpreted as a conditional selector.
func (p *Parser) parseGroup() (ast.Expr, error) {
	open := p.s.Next()
	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.s.Peek().Tok != token.COLON {
		if err := p.expectClose(open); err != nil {
			return nil, err
		}
		return first, nil
	}

	cond := first
	var arms []ast.Arm
	for {
		p.s.Next() // ':'
		result, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.Arm{Cond: cond, Result: result})

		if it := p.s.Next(); it.Tok != token.SEMICOLON {
			return nil, errf("expected ';' in conditional, got %q", it.Text)
		}
		next, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.s.Peek().Tok == token.COLON {
			cond = next
			continue
		}
		if err := p.expectClose(open); err != nil {
			return nil, err
		}
		return ast.Conditional{Arms: arms, Default: next}, nil
	}
}

// parseVariableRef parses a name with an optional bracketed index list.
func (p *Parser) parseVariableRef() (ast.Variable, error) {
	name := p.s.Next()
	if name.Tok != token.NAME {
		return ast.Variable{}, errf("expected name, got %s %q", name.Tok, name.Text)
	}
	v := ast.Variable{Name: name.Text}
	if p.s.Peek().Tok != token.OPEN {
		return v, nil
	}

	open := p.s.Next()
	for {
		ix, err := p.ParseExpr()
		if err != nil {
			return ast.Variable{}, err
		}
		v.Indices = append(v.Indices, ix)
		it := p.s.Next()
		if it.Tok == token.COMMA {
			continue
		}
		if it.Tok == token.CLOSE {
			if it.Text != token.MatchingClose(open.Text) {
				return ast.Variable{}, errf("mismatched bracket: %q closed by %q", open.Text, it.Text)
			}
			return v, nil
		}
		return ast.Variable{}, errf("expected ',' or close bracket in index list, got %q", it.Text)
	}
}

func (p *Parser) expectClose(open scanner.Item) error {
	it := p.s.Next()
	if it.Tok != token.CLOSE {
		return errf("expected close bracket for %q, got %q", open.Text, it.Text)
	}
	if it.Text != token.MatchingClose(open.Text) {
		return errf("mismatched bracket: %q closed by %q", open.Text, it.Text)
	}
	return nil
}

// splitLabel parses a part.step label like "1.15" into its part number and
// full numeric step value.
func splitLabel(text string) (int, float64, error) {
	dot := strings.IndexByte(text, '.')
	if dot <= 0 || dot == len(text)-1 {
		return 0, 0, errf("malformed part.step label %q", text)
	}
	part, err := strconv.Atoi(text[:dot])
	if err != nil {
		return 0, 0, errf("malformed part number in label %q", text)
	}
	step, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, 0, errf("malformed step in label %q", text)
	}
	return part, step, nil
}
