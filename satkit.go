// Package satkit is the driver (component H): it accepts a formula
// AST, picks one of the two solving pipelines, and emits a verdict.
// It also hosts backwards-compatible convenience functions in the
// style of the teacher's root logic.go, so a caller can go straight
// from source text to a verdict without touching the sub-packages.
package satkit

import (
	"github.com/marselester/propsat/ast"
	"github.com/marselester/propsat/cnf"
	"github.com/marselester/propsat/core"
	"github.com/marselester/propsat/dag"
	"github.com/marselester/propsat/dpll"
	"github.com/marselester/propsat/normalize"
	"github.com/marselester/propsat/parser"
	"github.com/marselester/propsat/propagate"
)

// Engine selects which solving pipeline Solve runs. The two pipelines
// are alternative entry points over the same AST; a given call site
// picks one.
type Engine int

const (
	// EngineDPLL normalizes to CNF and runs DPLL search. Complete.
	EngineDPLL Engine = iota
	// EngineLinear lowers to the shared DAG and runs the linear
	// propagator, falling back to EngineDPLL whenever the propagator
	// cannot reach a conclusive verdict on its own.
	EngineLinear
)

func (e Engine) String() string {
	switch e {
	case EngineDPLL:
		return "dpll"
	case EngineLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// VerdictWords is the vocabulary Solve prints. Two presets are
// provided; NO-SOLUTION is shared by both since the alternate
// SAT/UNSAT vocabulary only swaps the satisfiable/unsatisfiable words.
type VerdictWords struct {
	Sat        string
	Unsat      string
	NoSolution string
}

// DefaultVerdictWords matches original_source/main.c's literal output.
var DefaultVerdictWords = VerdictWords{
	Sat:        "SATISFACIBLE",
	Unsat:      "NO-SATISFACIBLE",
	NoSolution: "NO-SOLUTION",
}

// AltVerdictWords is the alternate vocabulary spec.md also sanctions.
var AltVerdictWords = VerdictWords{
	Sat:        "SAT",
	Unsat:      "UNSAT",
	NoSolution: "NO-SOLUTION",
}

// Verdict is the outcome of a Solve call.
type Verdict struct {
	// Satisfiable is false whenever the formula is unsatisfiable or
	// could not be parsed; check Line (or NoSolution) to tell those
	// two cases apart.
	Satisfiable bool
	// NoSolution reports that the input could not be parsed or that
	// an internal invariant was violated; it is not a contradiction
	// between Satisfiable's zero value and a real unsat verdict.
	NoSolution bool
	// Witness is populated only when Satisfiable is true.
	Witness map[string]bool
	// Line is the single line of output: words.Sat, words.Unsat, or
	// words.NoSolution.
	Line string
}

func verdict(words VerdictWords, satisfiable, noSolution bool, witness map[string]bool) *Verdict {
	v := &Verdict{Satisfiable: satisfiable, NoSolution: noSolution, Witness: witness}
	switch {
	case noSolution:
		v.Line = words.NoSolution
	case satisfiable:
		v.Line = words.Sat
	default:
		v.Line = words.Unsat
	}
	return v
}

// Solve parses expr, selects engine, and returns a verdict. A syntax
// error maps straight to NO-SOLUTION, matching original_source's
// process_input: the input never reaches the solving pipeline at all.
// A nil logger is replaced with core.NopLogger.
func Solve(expr string, engine Engine, words VerdictWords, logger core.Logger) *Verdict {
	if logger == nil {
		logger = core.NopLogger{}
	}

	n, err := parser.Parse(expr)
	if err != nil {
		logger.Warnf("syntax error, reporting NO-SOLUTION: %v", err)
		return verdict(words, false, true, nil)
	}
	return SolveAST(n, engine, words, logger)
}

// SolveAST runs the driver over an already-parsed AST, the entry point
// for callers that own their own parser or construct formulas in
// memory; Solve calls it after parsing.
func SolveAST(n *ast.Node, engine Engine, words VerdictWords, logger core.Logger) *Verdict {
	if logger == nil {
		logger = core.NopLogger{}
	}

	if ast.IsEmpty(n) {
		// Empty input between the delimiters is vacuously true.
		return verdict(words, true, false, map[string]bool{})
	}

	if engine == EngineLinear {
		if v, ok := solveLinear(n, words, logger); ok {
			return v
		}
		logger.Debugf("linear propagator left a non-deterministic case open for %s, falling back to dpll", n)
	}
	return solveDPLL(n, words, logger)
}

// dpllSolver adapts dpll.Solve to core.Solver; the formula it expects
// is a cnf.CNF already produced by normalize+cnf.FromAST.
type dpllSolver struct{}

func (dpllSolver) Name() string { return "dpll" }

func (dpllSolver) Solve(formula interface{}) (bool, map[string]bool, error) {
	clauses, ok := formula.(cnf.CNF)
	if !ok {
		return false, nil, core.NewLogicError("satkit", "dpllSolver.Solve", "expected cnf.CNF")
	}
	sat, assignment := dpll.Solve(clauses)
	if !sat {
		return false, nil, nil
	}
	return true, assignment.Bools(), nil
}

// linearInput bundles the table and root a linearSolver needs: the
// table alone cannot recover which node was the formula's root, and
// the root alone cannot be used to extract a witness (spec §4.G
// requires scanning every Var node in the table).
type linearInput struct {
	table *dag.Table
	root  *dag.Node
}

// errLinearUndecided signals the propagator left a non-deterministic
// case unresolved; callers fall back to dpllSolver rather than treat
// it as a real error.
var errLinearUndecided = core.NewLogicError("satkit", "linearSolver.Solve", "propagation did not reach a conclusive verdict")

// linearSolver adapts propagate.RunComplete to core.Solver.
type linearSolver struct{}

func (linearSolver) Name() string { return "linear" }

func (linearSolver) Solve(formula interface{}) (bool, map[string]bool, error) {
	in, ok := formula.(linearInput)
	if !ok {
		return false, nil, core.NewLogicError("satkit", "linearSolver.Solve", "expected linearInput")
	}
	result := propagate.RunComplete(in.table, in.root)
	if !result.Decided {
		return false, nil, errLinearUndecided
	}
	if !result.Satisfiable {
		return false, nil, nil
	}
	return true, result.Witness, nil
}

var _ core.Solver = dpllSolver{}
var _ core.Solver = linearSolver{}

func solveDPLL(n *ast.Node, words VerdictWords, logger core.Logger) *Verdict {
	normalized, err := normalize.Normalize(n)
	if err != nil {
		logger.Warnf("internal invariant violation during normalization, reporting NO-SOLUTION: %v", err)
		return verdict(words, false, true, nil)
	}

	clauses, err := cnf.FromAST(normalized)
	if err != nil {
		logger.Warnf("internal invariant violation during CNF flattening, reporting NO-SOLUTION: %v", err)
		return verdict(words, false, true, nil)
	}

	sat, witness, _ := dpllSolver{}.Solve(clauses)
	return verdict(words, sat, false, witness)
}

// solveLinear runs the linear propagator and reports ok=false when it
// did not reach a conclusive verdict, so the caller can fall back.
func solveLinear(n *ast.Node, words VerdictWords, logger core.Logger) (*Verdict, bool) {
	table := dag.NewTable()
	root, err := table.Lower(n)
	if err != nil {
		logger.Warnf("internal invariant violation during dag lowering, reporting NO-SOLUTION: %v", err)
		return verdict(words, false, true, nil), true
	}

	sat, witness, err := linearSolver{}.Solve(linearInput{table: table, root: root})
	if err == errLinearUndecided {
		return nil, false
	}
	return verdict(words, sat, false, witness), true
}
