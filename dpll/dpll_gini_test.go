package dpll

import (
	"fmt"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/require"

	"github.com/marselester/propsat/ast"
	"github.com/marselester/propsat/cnf"
	"github.com/marselester/propsat/normalize"
)

// giniVerdict runs an independent, production-grade SAT solver over
// the same CNF and reports whether it found the formula satisfiable.
// This never backs the production Solve path; it exists purely as an
// oracle the table test below cross-checks dpll.Solve against.
func giniVerdict(t *testing.T, c cnf.CNF) bool {
	t.Helper()

	g := gini.New()
	lits := make(map[string]z.Lit)
	varOf := func(name string) z.Lit {
		if l, ok := lits[name]; ok {
			return l
		}
		l := g.Lit()
		lits[name] = l
		return l
	}

	for _, clause := range c {
		for _, lit := range clause {
			m := varOf(lit.Var)
			if lit.Negated {
				m = m.Not()
			}
			g.Add(m)
		}
		g.Add(z.LitNull)
	}

	return g.Solve() == 1
}

// TestSolveAgainstGini cross-checks dpll.Solve's verdict against
// go-air/gini on a fixed set of small hand-written formulas. Both
// solvers consume the same CNF (built by normalize and cnf.FromAST);
// gini's verdict does not depend on dpll or assign.
func TestSolveAgainstGini(t *testing.T) {
	a, b, c, d, e := ast.Var("a"), ast.Var("b"), ast.Var("c"), ast.Var("d"), ast.Var("e")

	formulas := []*ast.Node{
		ast.Or(a, b),
		ast.And(a, ast.Not(a)),
		ast.Implies(a, ast.Or(b, c)),
		ast.And(ast.Or(a, b), ast.And(ast.Or(ast.Not(a), c), ast.Or(ast.Not(b), ast.Not(c)))),
		ast.And(
			ast.And(ast.Or(a, b), ast.Or(ast.Not(a), c)),
			ast.And(ast.Or(ast.Not(b), c), ast.Not(c)),
		),
		ast.Implies(ast.And(a, b), ast.Or(c, d)),
		ast.And(
			ast.Implies(a, b),
			ast.And(ast.Implies(b, c), ast.And(ast.Implies(c, d), ast.And(ast.Implies(d, e), ast.And(a, ast.Not(e))))),
		),
		ast.Or(ast.And(a, b), ast.And(ast.Not(a), ast.Not(b))),
	}

	for i, f := range formulas {
		f := f
		t.Run(fmt.Sprintf("formula-%d", i), func(t *testing.T) {
			normalized, err := normalize.Normalize(f)
			require.NoError(t, err)
			clauses, err := cnf.FromAST(normalized)
			require.NoError(t, err)

			want := giniVerdict(t, clauses)
			got, _ := Solve(clauses)
			require.Equal(t, want, got, "dpll.Solve disagreed with gini for %s", f)
		})
	}
}
