package eval

import (
	"testing"

	"nickandperla.net/joss/internal/ast"
)

func typeCmd(text string) ast.Command {
	return ast.Command{Verb: ast.Type{Args: []ast.StringExpr{{Literal: text}}}}
}

func TestProgramOrderIsNumeric(t *testing.T) {
	p := NewProgram()
	// Registration order deliberately scrambled.
	p.SetStep(1, 1.2, typeCmd("c"))
	p.SetStep(1, 1.1, typeCmd("a"))
	p.SetStep(1, 1.15, typeCmd("b"))
	p.SetStep(1, 1.05, typeCmd("first"))

	var got []float64
	for _, s := range p.PartSteps(1) {
		got = append(got, s.Label())
	}
	want := []float64{1.05, 1.1, 1.15, 1.2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestProgramReplaceKeepsPosition(t *testing.T) {
	p := NewProgram()
	p.SetStep(1, 1.1, typeCmd("a"))
	p.SetStep(1, 1.2, typeCmd("b"))
	p.SetStep(1, 1.1, typeCmd("A"))

	steps := p.PartSteps(1)
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	verb := steps[0].Command().Verb.(ast.Type)
	if verb.Args[0].Literal != "A" {
		t.Errorf("step 1.1: got %q, want replaced content", verb.Args[0].Literal)
	}
}

func TestProgramPartsAreIndependent(t *testing.T) {
	p := NewProgram()
	p.SetStep(1, 1.1, typeCmd("a"))
	p.SetStep(2, 2.1, typeCmd("b"))

	if n := len(p.PartSteps(1)); n != 1 {
		t.Errorf("part 1: got %d steps, want 1", n)
	}
	if n := len(p.PartSteps(2)); n != 1 {
		t.Errorf("part 2: got %d steps, want 1", n)
	}
	if p.PartSteps(3) != nil {
		t.Error("part 3 should have no steps")
	}
}

func TestGetStep(t *testing.T) {
	p := NewProgram()
	p.SetStep(1, 1.1, typeCmd("a"))

	if _, err := p.GetStep(1, 1.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.GetStep(1, 1.2); err == nil {
		t.Fatal("expected undefined-step error")
	}
	if _, err := p.GetStep(4, 1.1); err == nil {
		t.Fatal("expected undefined-step error for missing part")
	}
}
