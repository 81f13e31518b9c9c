// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner tokenizes a single joss input line.
package scanner

import (
	"strings"
	"unicode"

	"nickandperla.net/joss/internal/token"
)

// Item represents a scanned token with its text.
type Item struct {
	Tok  token.Token
	Text string
}

// Scanner produces tokens lazily from one line of input with single-token
// lookahead. A fresh Scanner is made per line; there is no cross-line state.
type Scanner struct {
	line   []rune
	pos    int
	peeked *Item
	done   bool // comment line, yields EOF immediately
}

// New creates a Scanner for one input line. An empty line, or a line that
// starts or ends with '*', is a comment and yields no tokens.
func New(line string) *Scanner {
	trimmed := strings.TrimSpace(line)
	s := &Scanner{line: []rune(line)}
	if trimmed == "" || strings.HasPrefix(trimmed, "*") || strings.HasSuffix(trimmed, "*") {
		s.done = true
	}
	return s
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() Item {
	if s.peeked == nil {
		item := s.scan()
		s.peeked = &item
	}
	return *s.peeked
}

// Next returns the next token from the line.
func (s *Scanner) Next() Item {
	if s.peeked != nil {
		item := *s.peeked
		s.peeked = nil
		return item
	}
	return s.scan()
}

func (s *Scanner) scan() Item {
	if s.done {
		return Item{Tok: token.EOF}
	}

	for s.pos < len(s.line) && unicode.IsSpace(s.line[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.line) {
		return Item{Tok: token.EOF}
	}

	r := s.line[s.pos]
	switch {
	case r == '"':
		return s.scanString()
	case unicode.IsDigit(r):
		return s.scanNumber()
	case unicode.IsLetter(r) || r == '_':
		return s.scanWord()
	case token.IsOperatorRune(r):
		return s.scanOperator()
	}

	s.pos++
	switch r {
	case '(', '[':
		return Item{Tok: token.OPEN, Text: string(r)}
	case ')', ']':
		return Item{Tok: token.CLOSE, Text: string(r)}
	case ',':
		return Item{Tok: token.COMMA, Text: ","}
	case ';':
		return Item{Tok: token.SEMICOLON, Text: ";"}
	case ':':
		return Item{Tok: token.COLON, Text: ":"}
	case '.':
		return Item{Tok: token.PERIOD, Text: "."}
	}
	return Item{Tok: token.OTHER, Text: string(r)}
}

// scanString matches greedily to the last '"' on the line. A literal may
// therefore contain quotes; there is no escape syntax.
func (s *Scanner) scanString() Item {
	start := s.pos + 1
	rest := string(s.line[start:])
	end := strings.LastIndexByte(rest, '"')
	if end < 0 {
		// No closing quote: the rest of the line is the literal.
		s.pos = len(s.line)
		return Item{Tok: token.STRING, Text: rest}
	}
	s.pos = start + len([]rune(rest[:end])) + 1
	return Item{Tok: token.STRING, Text: rest[:end]}
}

// scanNumber consumes digits with an optional fractional part. A '.' is part
// of the number only when a digit follows it, so "1." lexes as NUMBER then
// PERIOD while "1.1" is a single NUMBER.
func (s *Scanner) scanNumber() Item {
	start := s.pos
	for s.pos < len(s.line) && unicode.IsDigit(s.line[s.pos]) {
		s.pos++
	}
	if s.pos+1 < len(s.line) && s.line[s.pos] == '.' && unicode.IsDigit(s.line[s.pos+1]) {
		s.pos++
		for s.pos < len(s.line) && unicode.IsDigit(s.line[s.pos]) {
			s.pos++
		}
	}
	return Item{Tok: token.NUMBER, Text: string(s.line[start:s.pos])}
}

func (s *Scanner) scanWord() Item {
	start := s.pos
	for s.pos < len(s.line) && isWordRune(s.line[s.pos]) {
		s.pos++
	}
	kind, canon := token.Classify(string(s.line[start:s.pos]))
	return Item{Tok: kind, Text: canon}
}

// scanOperator performs longest-match over the symbolic operators, so "<="
// wins over "<". A lone '!' has no meaning and falls into OTHER.
func (s *Scanner) scanOperator() Item {
	r := s.line[s.pos]
	s.pos++
	if (r == '<' || r == '>' || r == '!') && s.pos < len(s.line) && s.line[s.pos] == '=' {
		s.pos++
		return Item{Tok: token.OPERATOR, Text: string(r) + "="}
	}
	if r == '!' {
		return Item{Tok: token.OTHER, Text: "!"}
	}
	return Item{Tok: token.OPERATOR, Text: string(r)}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
