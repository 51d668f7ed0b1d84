// Package dpll implements the Davis-Putnam-Logemann-Loveland decision
// procedure over a flat CNF: unit propagation interleaved with
// chronological backtracking search. Branch variable selection and
// value order are deterministic, so the witness returned for a given
// CNF is reproducible across runs.
package dpll

import (
	"github.com/marselester/propsat/assign"
	"github.com/marselester/propsat/cnf"
)

// Solve decides satisfiability of c starting from the empty
// assignment. When satisfiable, the returned assignment is a complete
// witness for every variable dpll needed to decide.
func Solve(c cnf.CNF) (satisfiable bool, witness *assign.Assignment) {
	return dpll(c, assign.New())
}

// SolveFrom decides satisfiability of c starting from a, which the
// caller retains ownership of: dpll never mutates the assignment
// passed in, only assignments it clones internally while branching.
func SolveFrom(c cnf.CNF, a *assign.Assignment) (satisfiable bool, witness *assign.Assignment) {
	return dpll(c, a.Clone())
}

func dpll(c cnf.CNF, a *assign.Assignment) (bool, *assign.Assignment) {
	for {
		if len(c) == 0 {
			return true, a
		}

		switch c.Eval(a) {
		case 1:
			return true, a
		case 0:
			return false, nil
		}

		progressed, conflict := propagateUnits(c, a)
		if conflict {
			return false, nil
		}
		if !progressed {
			break
		}
	}

	variable := pickUnassigned(c, a)
	if variable == "" {
		// Every clause referenced a variable, and propagation could
		// not decide the CNF, yet no unassigned variable remains to
		// branch on; the CNF's own evaluation above is authoritative.
		return true, a
	}

	for _, value := range [...]bool{true, false} {
		branch := a.Clone()
		branch.Assign(variable, value)
		if sat, result := dpll(c, branch); sat {
			return true, result
		}
	}

	return false, nil
}

// propagateUnits scans every not-yet-satisfied clause once, forcing
// the single unassigned literal of any unit clause. A clause with zero
// unassigned literals that isn't satisfied is a contradiction. Two
// unit clauses forcing the same variable to different values within
// the same scan is also a contradiction, caught before either value is
// folded into a.
func propagateUnits(c cnf.CNF, a *assign.Assignment) (progressed, conflict bool) {
	forced := make(map[string]bool)

	for _, clause := range c {
		if clause.Eval(a) == 1 {
			continue
		}

		var unit *cnf.Literal
		count := 0
		for i := range clause {
			if clause[i].Value(a) == assign.Unassigned {
				count++
				unit = &clause[i]
			}
		}

		if count == 0 {
			return false, true
		}
		if count != 1 {
			continue
		}

		want := !unit.Negated
		if existing, ok := forced[unit.Var]; ok {
			if existing != want {
				return false, true
			}
			continue
		}
		forced[unit.Var] = want
	}

	if len(forced) == 0 {
		return false, false
	}
	for v, val := range forced {
		a.Assign(v, val)
	}
	return true, false
}

// pickUnassigned returns the first unassigned variable encountered
// while scanning clauses and their literals in order, or "" if every
// variable referenced by c is already assigned.
func pickUnassigned(c cnf.CNF, a *assign.Assignment) string {
	for _, clause := range c {
		for _, lit := range clause {
			if !a.IsAssigned(lit.Var) {
				return lit.Var
			}
		}
	}
	return ""
}
