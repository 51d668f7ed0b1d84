package normalize

import "github.com/marselester/propsat/ast"

// distribute pushes Or beneath And across an NNF tree (only Var,
// Not(Var), And, Or nodes), applied bottom-up until neither
// distribution rule fires anywhere in the tree.
func distribute(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case ast.KindVar, ast.KindNot:
		return n

	case ast.KindAnd:
		return ast.And(distribute(n.Children[0]), distribute(n.Children[1]))

	case ast.KindOr:
		left := distribute(n.Children[0])
		right := distribute(n.Children[1])
		return distributeOr(left, right)

	default:
		return n
	}
}

// distributeOr applies phi OR (psi AND chi) => (phi OR psi) AND (phi OR chi)
// recursively, taking ownership of left and right: whichever side is
// *not* the one being split into two recursive calls is consumed by
// one call and must be deep-cloned for the other. The source this is
// grounded on only clones variables and single-variable negations when
// splitting, which leaves any larger reused subtree aliased in both
// output branches — the deep clone here is the fix.
func distributeOr(left, right *ast.Node) *ast.Node {
	if left.Kind == ast.KindAnd {
		distLeft := distributeOr(left.Children[0], ast.Clone(right))
		distRight := distributeOr(left.Children[1], right)
		return ast.And(distLeft, distRight)
	}

	if right.Kind == ast.KindAnd {
		distLeft := distributeOr(ast.Clone(left), right.Children[0])
		distRight := distributeOr(left, right.Children[1])
		return ast.And(distLeft, distRight)
	}

	return ast.Or(left, right)
}
