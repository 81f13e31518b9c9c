package scanner

import (
	"testing"

	"nickandperla.net/joss/internal/token"
)

func collect(line string) []Item {
	s := New(line)
	var items []Item
	for {
		it := s.Next()
		items = append(items, it)
		if it.Tok == token.EOF {
			return items
		}
	}
}

func TestSetLine(t *testing.T) {
	items := collect("Set x = 3.")
	want := []Item{
		{token.VERB, "Set"},
		{token.NAME, "x"},
		{token.OPERATOR, "="},
		{token.NUMBER, "3"},
		{token.PERIOD, "."},
		{token.EOF, ""},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %v", len(items), len(want), items)
	}
	for i, it := range items {
		if it != want[i] {
			t.Errorf("item %d: got %v %q, want %v %q", i, it.Tok, it.Text, want[i].Tok, want[i].Text)
		}
	}
}

func TestCommentLines(t *testing.T) {
	for _, line := range []string{"", "   ", "* a remark", "a remark *", "  * spaced *  "} {
		s := New(line)
		if it := s.Next(); it.Tok != token.EOF {
			t.Errorf("line %q: got %v %q, want EOF", line, it.Tok, it.Text)
		}
	}
}

func TestNumberThenPeriod(t *testing.T) {
	items := collect("1.")
	if items[0].Tok != token.NUMBER || items[0].Text != "1" {
		t.Errorf("got %v %q, want NUMBER \"1\"", items[0].Tok, items[0].Text)
	}
	if items[1].Tok != token.PERIOD {
		t.Errorf("got %v, want PERIOD", items[1].Tok)
	}
}

func TestStepLabelIsOneNumber(t *testing.T) {
	items := collect("1.15 Type x.")
	if items[0].Tok != token.NUMBER || items[0].Text != "1.15" {
		t.Errorf("got %v %q, want NUMBER \"1.15\"", items[0].Tok, items[0].Text)
	}
}

func TestGreedyString(t *testing.T) {
	// A string literal runs to the last quote on the line, so internal
	// quotes survive without any escape syntax.
	items := collect(`Type "a "quoted" word".`)
	if items[1].Tok != token.STRING || items[1].Text != `a "quoted" word` {
		t.Errorf("got %v %q", items[1].Tok, items[1].Text)
	}
	if items[2].Tok != token.PERIOD {
		t.Errorf("got %v after string, want PERIOD", items[2].Tok)
	}
}

func TestTwoCharOperators(t *testing.T) {
	items := collect("x <= y != z >= w")
	ops := []string{"<=", "!=", ">="}
	n := 0
	for _, it := range items {
		if it.Tok == token.OPERATOR {
			if it.Text != ops[n] {
				t.Errorf("operator %d: got %q, want %q", n, it.Text, ops[n])
			}
			n++
		}
	}
	if n != len(ops) {
		t.Errorf("got %d operators, want %d", n, len(ops))
	}
}

func TestWordOperatorsAndKeywords(t *testing.T) {
	items := collect("Type x or y if z.")
	if items[0].Tok != token.VERB || items[0].Text != "Type" {
		t.Errorf("got %v %q, want VERB Type", items[0].Tok, items[0].Text)
	}
	if items[2].Tok != token.OPERATOR || items[2].Text != "or" {
		t.Errorf("got %v %q, want OPERATOR or", items[2].Tok, items[2].Text)
	}
	if items[4].Tok != token.VERB || items[4].Text != "if" {
		t.Errorf("got %v %q, want VERB if", items[4].Tok, items[4].Text)
	}
}

func TestKeywordCaseInsensitive(t *testing.T) {
	items := collect("TYPE x.")
	if items[0].Tok != token.VERB || items[0].Text != "Type" {
		t.Errorf("got %v %q, want canonical VERB Type", items[0].Tok, items[0].Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New("Set x = 1.")
	if it := s.Peek(); it.Text != "Set" {
		t.Fatalf("peek got %q", it.Text)
	}
	if it := s.Peek(); it.Text != "Set" {
		t.Fatalf("second peek got %q", it.Text)
	}
	if it := s.Next(); it.Text != "Set" {
		t.Fatalf("next got %q", it.Text)
	}
	if it := s.Next(); it.Text != "x" {
		t.Fatalf("next got %q", it.Text)
	}
}

func TestUnmatchedRuneIsOther(t *testing.T) {
	// No lexical errors: strange characters fall into OTHER and surface
	// as parse errors downstream.
	items := collect("Set x = 3 # 4.")
	found := false
	for _, it := range items {
		if it.Tok == token.OTHER && it.Text == "#" {
			found = true
		}
	}
	if !found {
		t.Errorf("no OTHER token in %v", items)
	}
}

func TestBrackets(t *testing.T) {
	items := collect("a[1, 2]")
	want := []Item{
		{token.NAME, "a"},
		{token.OPEN, "["},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.NUMBER, "2"},
		{token.CLOSE, "]"},
		{token.EOF, ""},
	}
	for i, it := range items {
		if it != want[i] {
			t.Errorf("item %d: got %v %q, want %v %q", i, it.Tok, it.Text, want[i].Tok, want[i].Text)
		}
	}
}
