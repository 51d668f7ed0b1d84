package ast

import "testing"

func TestEval(t *testing.T) {
	tests := []struct {
		name       string
		formula    *Node
		assignment map[string]bool
		expected   bool
	}{
		{"var true", Var("p"), map[string]bool{"p": true}, true},
		{"var false", Var("p"), map[string]bool{"p": false}, false},
		{"not", Not(Var("p")), map[string]bool{"p": false}, true},
		{"and both true", And(Var("p"), Var("q")), map[string]bool{"p": true, "q": true}, true},
		{"and one false", And(Var("p"), Var("q")), map[string]bool{"p": true, "q": false}, false},
		{"or one true", Or(Var("p"), Var("q")), map[string]bool{"p": false, "q": true}, true},
		{"or both false", Or(Var("p"), Var("q")), map[string]bool{"p": false, "q": false}, false},
		{"implies false antecedent", Implies(Var("p"), Var("q")), map[string]bool{"p": false, "q": false}, true},
		{"implies true antecedent false consequent", Implies(Var("p"), Var("q")), map[string]bool{"p": true, "q": false}, false},
		{"paren transparent", Paren(Var("p")), map[string]bool{"p": true}, true},
		{"empty is vacuously true", Empty(), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.formula, tt.assignment)
			if err != nil {
				t.Fatalf("Eval returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Eval(%s) = %v, want %v", tt.formula, got, tt.expected)
			}
		})
	}
}

func TestEvalUnassignedVariable(t *testing.T) {
	_, err := Eval(Var("p"), map[string]bool{})
	if err == nil {
		t.Fatal("expected error for unassigned variable, got nil")
	}
}

func TestClone(t *testing.T) {
	orig := And(Var("p"), Not(Var("q")))
	clone := Clone(orig)

	if !Equal(orig, clone) {
		t.Fatalf("clone not equal to original: %s vs %s", orig, clone)
	}

	// Mutating the clone must not affect the original: Clone owns
	// fresh nodes all the way down.
	clone.Children[0].Name = "r"
	if orig.Children[0].Name == "r" {
		t.Fatal("mutating clone affected original: Clone did not deep-copy")
	}
}

func TestEqual(t *testing.T) {
	a := Or(Var("p"), And(Var("q"), Not(Var("r"))))
	b := Or(Var("p"), And(Var("q"), Not(Var("r"))))
	c := Or(Var("p"), And(Var("q"), Var("r")))

	if !Equal(a, b) {
		t.Errorf("expected %s to equal %s", a, b)
	}
	if Equal(a, c) {
		t.Errorf("expected %s to not equal %s", a, c)
	}
	if !Equal(nil, nil) {
		t.Error("expected two Empty formulas to be equal")
	}
	if Equal(a, nil) {
		t.Error("expected non-empty formula to not equal Empty")
	}
}

func TestVariables(t *testing.T) {
	f := Implies(And(Var("p"), Var("q")), Or(Var("p"), Var("r")))
	got := Variables(f)
	want := []string{"p", "q", "r"}

	if len(got) != len(want) {
		t.Fatalf("Variables(%s) = %v, want %v", f, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Variables(%s)[%d] = %s, want %s", f, i, got[i], want[i])
		}
	}
}

func TestString(t *testing.T) {
	f := Implies(Not(Var("p")), And(Var("q"), Var("r")))
	got := f.String()
	want := "(NOT p IMPLIES (q AND r))"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLaTeX(t *testing.T) {
	f := Or(Var("p"), Not(Var("q")))
	got := f.LaTeX()
	want := `(p \vee \neg q)`
	if got != want {
		t.Errorf("LaTeX() = %q, want %q", got, want)
	}
}

func TestEmpty(t *testing.T) {
	if !IsEmpty(Empty()) {
		t.Error("Empty() should be recognized by IsEmpty")
	}
	if IsEmpty(Var("p")) {
		t.Error("Var(\"p\") should not be recognized as Empty")
	}
}
