// Package normalize converts a formula AST into conjunctive normal
// form: an outer conjunction of disjunctions of literals, reached by
// negation pushdown (NNF) followed by disjunction-over-conjunction
// distribution. It never mutates its input; the returned tree is
// fully and exclusively owned by the caller.
package normalize

import "github.com/marselester/propsat/ast"

// Normalize returns a fresh AST in CNF shape, logically equivalent to
// n over every assignment. The input is left untouched.
func Normalize(n *ast.Node) (*ast.Node, error) {
	nnf, err := toNNF(n)
	if err != nil {
		return nil, err
	}
	return distribute(nnf), nil
}

// IsCNF reports whether n is syntactically in CNF shape: an And of
// Ors of literals (a literal is Var or Not(Var)), with no Implies,
// Paren, or Not above a non-Var. Used by tests to check Normalize's
// output shape, not by the normalizer itself.
func IsCNF(n *ast.Node) bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case ast.KindVar:
		return true
	case ast.KindNot:
		return n.Children[0].Kind == ast.KindVar
	case ast.KindOr:
		return isClauseLiteralOrOr(n.Children[0]) && isClauseLiteralOrOr(n.Children[1])
	case ast.KindAnd:
		return IsCNF(n.Children[0]) && IsCNF(n.Children[1])
	default:
		return false
	}
}

func isClauseLiteralOrOr(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindVar:
		return true
	case ast.KindNot:
		return n.Children[0].Kind == ast.KindVar
	case ast.KindOr:
		return isClauseLiteralOrOr(n.Children[0]) && isClauseLiteralOrOr(n.Children[1])
	default:
		return false
	}
}
