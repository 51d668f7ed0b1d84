// Package propagate implements the linear-time constraint propagator
// (spec component G): a worklist-driven, two-valued constraint fusion
// over a shared formula DAG that decides a restricted class of
// formulas deterministically, and reports when it could not.
package propagate

import "github.com/marselester/propsat/dag"

// Result is the outcome of a propagation run.
type Result struct {
	// Satisfiable is meaningful only when Decided is true.
	Satisfiable bool
	// Witness maps every variable node in the table to the value the
	// run settled on; populated only when Satisfiable and Decided.
	Witness map[string]bool
	// Decided reports whether the run reached a conclusive verdict.
	// A conflict always decides (unsat). A clean drain decides sat
	// only if every And=False / Or=True case encountered was resolved
	// deterministically; if any such case had to be deferred because
	// neither child was yet constrained, Decided is false and the
	// caller should fall back to a complete decision procedure rather
	// than treat "no conflict observed" as sat.
	Decided bool
}

// RunComplete runs propagation from root (the table's caller is
// expected to have lowered its formula into this table) and reports
// whether it reached a conclusive verdict.
func RunComplete(table *dag.Table, root *dag.Node) Result {
	if root == nil {
		// Vacuous truth: an empty formula between the delimiters.
		return Result{Satisfiable: true, Witness: map[string]bool{}, Decided: true}
	}

	worklist := make([]*dag.Node, 0, 16)
	deferred := false

	push := func(n *dag.Node, changed bool) bool {
		if changed {
			worklist = append(worklist, n)
		}
		return changed
	}

	if changed, ok := root.SetConstraint(dag.True); !ok {
		return Result{Decided: true}
	} else {
		push(root, changed)
	}

	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if n.Constraint == dag.Conflict {
			return Result{Decided: true}
		}

		switch n.Kind {
		case dag.KindVar:
			// No children to propagate to.

		case dag.KindNot:
			switch n.Constraint {
			case dag.True:
				if changed, ok := n.Child.SetConstraint(dag.False); !ok {
					return Result{Decided: true}
				} else {
					push(n.Child, changed)
				}
			case dag.False:
				if changed, ok := n.Child.SetConstraint(dag.True); !ok {
					return Result{Decided: true}
				} else {
					push(n.Child, changed)
				}
			}

		case dag.KindAnd:
			switch n.Constraint {
			case dag.True:
				if changed, ok := n.Left.SetConstraint(dag.True); !ok {
					return Result{Decided: true}
				} else {
					push(n.Left, changed)
				}
				if changed, ok := n.Right.SetConstraint(dag.True); !ok {
					return Result{Decided: true}
				} else {
					push(n.Right, changed)
				}
			case dag.False:
				switch {
				case n.Left.Constraint == dag.True:
					if changed, ok := n.Right.SetConstraint(dag.False); !ok {
						return Result{Decided: true}
					} else {
						push(n.Right, changed)
					}
				case n.Right.Constraint == dag.True:
					if changed, ok := n.Left.SetConstraint(dag.False); !ok {
						return Result{Decided: true}
					} else {
						push(n.Left, changed)
					}
				case n.Left.Constraint == dag.False || n.Right.Constraint == dag.False:
					// Already falsified by one side; nothing to force.
				default:
					deferred = true
				}
			}

		case dag.KindOr:
			switch n.Constraint {
			case dag.False:
				if changed, ok := n.Left.SetConstraint(dag.False); !ok {
					return Result{Decided: true}
				} else {
					push(n.Left, changed)
				}
				if changed, ok := n.Right.SetConstraint(dag.False); !ok {
					return Result{Decided: true}
				} else {
					push(n.Right, changed)
				}
			case dag.True:
				switch {
				case n.Left.Constraint == dag.False:
					if changed, ok := n.Right.SetConstraint(dag.True); !ok {
						return Result{Decided: true}
					} else {
						push(n.Right, changed)
					}
				case n.Right.Constraint == dag.False:
					if changed, ok := n.Left.SetConstraint(dag.True); !ok {
						return Result{Decided: true}
					} else {
						push(n.Left, changed)
					}
				case n.Left.Constraint == dag.True || n.Right.Constraint == dag.True:
					// Already satisfied by one side; nothing to force.
				default:
					deferred = true
				}
			}
		}
	}

	if deferred {
		return Result{Decided: false}
	}

	return Result{Satisfiable: true, Witness: extractWitness(table), Decided: true}
}

// extractWitness scans every Var node in the table once propagation
// has drained: constrained variables take their settled value, and
// any variable propagation never touched defaults to true, which is
// sound because the rest of the formula is already satisfied by the
// propagation that did happen.
func extractWitness(table *dag.Table) map[string]bool {
	witness := make(map[string]bool)
	for _, n := range table.Nodes() {
		if n.Kind != dag.KindVar {
			continue
		}
		witness[n.Name] = n.Constraint != dag.False
	}
	return witness
}
