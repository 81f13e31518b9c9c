// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines joss token kinds and keyword classification.
package token

import "strings"

// Token represents a joss token kind.
type Token int

const (
	EOF Token = iota
	VERB      // keyword word: Type, Set, Let, Do, part, step, if, times, for
	NAME      // variable, array, or function name
	NUMBER    // numeric literal, possibly with a fractional part
	OPERATOR  // + - * / = != < <= > >= or and
	STRING    // quoted literal, quotes stripped
	OPEN      // ( or [
	CLOSE     // ) or ]
	COMMA
	SEMICOLON
	COLON
	PERIOD
	OTHER // anything unrecognized; surfaces as a parse error downstream
)

// String returns the string representation of a token kind.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case VERB:
		return "VERB"
	case NAME:
		return "NAME"
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case STRING:
		return "STRING"
	case OPEN:
		return "OPEN"
	case CLOSE:
		return "CLOSE"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case COLON:
		return "COLON"
	case PERIOD:
		return "PERIOD"
	case OTHER:
		return "OTHER"
	}
	return "UNKNOWN"
}

// Keywords recognized by the command parser, matched case-insensitively.
// The canonical spelling is what the parser compares against.
var keywords = map[string]string{
	"type":  "Type",
	"set":   "Set",
	"let":   "Let",
	"do":    "Do",
	"part":  "part",
	"step":  "step",
	"if":    "if",
	"times": "times",
	"for":   "for",
}

// Word operators lex as OPERATOR, not VERB.
var wordOperators = map[string]string{
	"or":  "or",
	"and": "and",
}

// Classify returns the token kind for a bare word along with its canonical
// spelling. Unknown words are names and keep their spelling.
func Classify(word string) (Token, string) {
	lower := strings.ToLower(word)
	if canon, ok := keywords[lower]; ok {
		return VERB, canon
	}
	if canon, ok := wordOperators[lower]; ok {
		return OPERATOR, canon
	}
	return NAME, word
}

// IsOperatorRune returns true if the rune can start a symbolic operator.
func IsOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '<', '>', '!':
		return true
	}
	return false
}

// MatchingClose returns the close bracket pairing an open bracket.
func MatchingClose(open string) string {
	if open == "[" {
		return "]"
	}
	return ")"
}
