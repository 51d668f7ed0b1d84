package normalize

import (
	"github.com/marselester/propsat/ast"
	"github.com/marselester/propsat/core"
)

// toNNF rewrites n until negations sit only on variables and every
// Implies/Paren has been eliminated. It never mutates n.
func toNNF(n *ast.Node) (*ast.Node, error) {
	if ast.IsEmpty(n) {
		return nil, nil
	}

	switch n.Kind {
	case ast.KindVar:
		return ast.Var(n.Name), nil

	case ast.KindParen:
		return toNNF(n.Children[0])

	case ast.KindNot:
		child, err := toNNF(n.Children[0])
		if err != nil {
			return nil, err
		}
		return negate(child), nil

	case ast.KindAnd:
		left, err := toNNF(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := toNNF(n.Children[1])
		if err != nil {
			return nil, err
		}
		return ast.And(left, right), nil

	case ast.KindOr:
		left, err := toNNF(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := toNNF(n.Children[1])
		if err != nil {
			return nil, err
		}
		return ast.Or(left, right), nil

	case ast.KindImplies:
		left, err := toNNF(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := toNNF(n.Children[1])
		if err != nil {
			return nil, err
		}
		return ast.Or(negate(left), right), nil

	default:
		return nil, core.Invariant("normalize", "toNNF", "unexpected node kind")
	}
}

// negate returns the NNF negation of n, which must already be in NNF
// (only Var, Not(Var), And, Or nodes). This is De Morgan's laws plus
// double-negation collapse, applied once rather than through a second
// pass over an already-wrapped Not node.
func negate(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.KindVar:
		return ast.Not(n)
	case ast.KindNot:
		return n.Children[0]
	case ast.KindAnd:
		return ast.Or(negate(n.Children[0]), negate(n.Children[1]))
	case ast.KindOr:
		return ast.And(negate(n.Children[0]), negate(n.Children[1]))
	default:
		// Implies and Paren cannot appear here: toNNF always produces
		// one of the four cases above before negate is ever called.
		return ast.Not(n)
	}
}
