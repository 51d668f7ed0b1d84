// Package cnf is the flat clause/literal representation conjunctive
// normal form is lowered to, plus three-valued evaluation under a
// partial assignment.
package cnf

import (
	"strings"

	"github.com/marselester/propsat/assign"
	"github.com/marselester/propsat/ast"
	"github.com/marselester/propsat/core"
)

// Literal is a variable or its negation.
type Literal struct {
	Var     string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "NOT " + l.Var
	}
	return l.Var
}

// Value returns the literal's truth value under assignment a, or
// assign.Unassigned if its variable has no value yet.
func (l Literal) Value(a *assign.Assignment) assign.Value {
	v := a.Get(l.Var)
	if v == assign.Unassigned {
		return assign.Unassigned
	}
	if l.Negated {
		if v == assign.True {
			return assign.False
		}
		return assign.True
	}
	return v
}

// Clause is a disjunction of literals. Order is irrelevant to
// semantics but preserved as produced by flattening.
type Clause []Literal

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// Eval evaluates c under a: 1 if satisfied, 0 if falsified, -1 if
// undetermined (spec §4.C).
func (c Clause) Eval(a *assign.Assignment) int {
	unassignedCount := 0
	for _, l := range c {
		switch l.Value(a) {
		case assign.True:
			return 1
		case assign.Unassigned:
			unassignedCount++
		}
	}
	if unassignedCount == 0 {
		return 0
	}
	return -1
}

// CNF is a conjunction of clauses. An empty CNF denotes the tautology
// (trivially satisfiable); an empty clause inside a CNF denotes the
// immediate contradiction.
type CNF []Clause

func (cn CNF) String() string {
	parts := make([]string, len(cn))
	for i, c := range cn {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}

// Eval evaluates cn under a: 0 if any clause is falsified, 1 if every
// clause is satisfied, -1 otherwise.
func (cn CNF) Eval(a *assign.Assignment) int {
	allSatisfied := true
	for _, c := range cn {
		switch c.Eval(a) {
		case 0:
			return 0
		case -1:
			allSatisfied = false
		}
	}
	if allSatisfied {
		return 1
	}
	return -1
}

// FromAST flattens an AST already in CNF shape (as produced by
// normalize.Normalize) into a CNF value. Each outermost And-connected
// subtree becomes a clause collection; each Or-connected subtree
// yields one clause, flattened left-first.
func FromAST(n *ast.Node) (CNF, error) {
	if ast.IsEmpty(n) {
		return CNF{}, nil
	}

	switch n.Kind {
	case ast.KindAnd:
		left, err := FromAST(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := FromAST(n.Children[1])
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil

	case ast.KindOr:
		var clause Clause
		if err := flattenOr(n, &clause); err != nil {
			return nil, err
		}
		return CNF{clause}, nil

	case ast.KindVar, ast.KindNot:
		lit, err := toLiteral(n)
		if err != nil {
			return nil, err
		}
		return CNF{Clause{lit}}, nil

	default:
		return nil, core.Invariant("cnf", "FromAST", "unexpected node kind in a tree that should already be CNF-shaped")
	}
}

func flattenOr(n *ast.Node, clause *Clause) error {
	if n.Kind != ast.KindOr {
		lit, err := toLiteral(n)
		if err != nil {
			return err
		}
		*clause = append(*clause, lit)
		return nil
	}

	if err := flattenOr(n.Children[0], clause); err != nil {
		return err
	}
	return flattenOr(n.Children[1], clause)
}

func toLiteral(n *ast.Node) (Literal, error) {
	switch n.Kind {
	case ast.KindVar:
		return Literal{Var: n.Name}, nil
	case ast.KindNot:
		if n.Children[0].Kind != ast.KindVar {
			return Literal{}, core.Invariant("cnf", "toLiteral", "negation above a non-variable in a tree that should already be CNF-shaped")
		}
		return Literal{Var: n.Children[0].Name, Negated: true}, nil
	default:
		return Literal{}, core.Invariant("cnf", "toLiteral", "expected a literal")
	}
}
