// Package dag is the maximally-shared formula DAG (spec component F):
// a hash-consed node table with parent back-edges and a per-node
// constraint lattice, lowered from the formula AST.
package dag

import (
	"github.com/mitchellh/hashstructure"

	"github.com/marselester/propsat/ast"
	"github.com/marselester/propsat/core"
)

// Kind tags the variant of a DAG node. Implies is not a primitive
// here: it is lowered to Or(Not(left), right) during AST→DAG
// conversion, and Paren is transparent, so only four variants remain.
type Kind int

const (
	KindVar Kind = iota
	KindNot
	KindAnd
	KindOr
)

// Constraint is the node's position in the lattice
// Unconstrained ⊏ {True, False} ⊏ Conflict.
type Constraint int

const (
	Unconstrained Constraint = iota
	True
	False
	Conflict
)

func (c Constraint) String() string {
	switch c {
	case Unconstrained:
		return "unconstrained"
	case True:
		return "true"
	case False:
		return "false"
	case Conflict:
		return "conflict"
	default:
		return "invalid"
	}
}

// Node is a single DAG node. Left/Right are populated for KindAnd and
// KindOr, Child for KindNot, Name for KindVar. Parents records every
// node that has this node as a child, collected during construction.
type Node struct {
	Kind       Kind
	Name       string
	Child      *Node
	Left       *Node
	Right      *Node
	Constraint Constraint
	Parents    []*Node

	// id is this node's position in its table, assigned once at
	// intern time. It stands in for pointer identity in fingerprint:
	// hashing a Node's actual pointer fields would walk into the
	// Parents back-edges and loop, since a child's Parents slice
	// holds its own parent right back.
	id int
}

// SetConstraint attempts to move n to constraint c, enforcing the
// lattice: Unconstrained may move to True or False; a node already at
// c is a no-op; a node at the opposite definite value transitions to
// Conflict, which is terminal. changed reports whether the call moved
// n to a different constraint: a new definite value (the case the
// propagator must enqueue) or Conflict; ok reports whether the attempt
// avoided a conflict.
func (n *Node) SetConstraint(c Constraint) (changed, ok bool) {
	if n.Constraint == c {
		return false, true
	}
	if n.Constraint == Unconstrained {
		n.Constraint = c
		return true, true
	}
	n.Constraint = Conflict
	return true, false
}

// fingerprint is the structural key used for hash-consing: two
// candidate nodes with equal fingerprints (and, for the rare hash
// collision, equal shape below) are the same node. Children are
// identified by their table id, not their address, since by
// construction a child is already canonicalized (the lowering walk is
// post-order) and its id is a stable, flat, acyclic stand-in for
// identity that hashstructure can hash directly.
type fingerprint struct {
	Kind  Kind
	Name  string
	Child int
	Left  int
	Right int
}

// noChild marks a fingerprint field whose node pointer is nil.
const noChild = -1

// Table is the node arena: every DAG node belongs to exactly one
// table and is torn down with it. Lookups enforce maximal sharing —
// two nodes are physically identical iff their (type, children,
// var_name) tuples are equal.
type Table struct {
	nodes  []*Node
	byHash map[uint64][]*Node
}

// NewTable returns an empty node table.
func NewTable() *Table {
	return &Table{byHash: make(map[uint64][]*Node)}
}

// Nodes returns every node currently owned by the table, in
// construction order. Used by the propagator to extract a witness by
// scanning all Var nodes once propagation has run.
func (t *Table) Nodes() []*Node {
	return t.nodes
}

func (t *Table) intern(candidate *Node, fp fingerprint) *Node {
	h, err := hashstructure.Hash(fp, hashstructure.FormatV2, nil)
	if err != nil {
		// hashstructure only fails on unsupported types; fingerprint
		// is a flat struct of ints and strings, so this is
		// unreachable in practice. Fall back to bucket 0 rather than
		// panicking.
		h = 0
	}

	for _, existing := range t.byHash[h] {
		if sameShape(existing, candidate) {
			return existing
		}
	}

	candidate.id = len(t.nodes)
	t.nodes = append(t.nodes, candidate)
	t.byHash[h] = append(t.byHash[h], candidate)
	addParent(candidate.Child, candidate)
	addParent(candidate.Left, candidate)
	addParent(candidate.Right, candidate)
	return candidate
}

func sameShape(a, b *Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindVar:
		return a.Name == b.Name
	case KindNot:
		return a.Child == b.Child
	default:
		return a.Left == b.Left && a.Right == b.Right
	}
}

func addParent(child, parent *Node) {
	if child == nil {
		return
	}
	child.Parents = append(child.Parents, parent)
}

// Var returns the table's canonical node for variable name.
func (t *Table) Var(name string) *Node {
	return t.intern(&Node{Kind: KindVar, Name: name}, fingerprint{Kind: KindVar, Name: name, Child: noChild, Left: noChild, Right: noChild})
}

// Not returns the table's canonical negation of child.
func (t *Table) Not(child *Node) *Node {
	return t.intern(&Node{Kind: KindNot, Child: child}, fingerprint{Kind: KindNot, Child: identity(child), Left: noChild, Right: noChild})
}

// And returns the table's canonical conjunction of left and right.
func (t *Table) And(left, right *Node) *Node {
	return t.intern(&Node{Kind: KindAnd, Left: left, Right: right}, fingerprint{Kind: KindAnd, Child: noChild, Left: identity(left), Right: identity(right)})
}

// Or returns the table's canonical disjunction of left and right.
func (t *Table) Or(left, right *Node) *Node {
	return t.intern(&Node{Kind: KindOr, Left: left, Right: right}, fingerprint{Kind: KindOr, Child: noChild, Left: identity(left), Right: identity(right)})
}

func identity(n *Node) int {
	if n == nil {
		return noChild
	}
	return n.id
}

// Lower walks an AST and returns the canonical DAG node for it,
// consulting the table on every step so that structurally identical
// sub-formulas collapse onto one physical node. Implies(p, q) lowers
// to Or(Not(p), q); Paren is transparent.
func (t *Table) Lower(n *ast.Node) (*Node, error) {
	if ast.IsEmpty(n) {
		return nil, nil
	}

	switch n.Kind {
	case ast.KindVar:
		return t.Var(n.Name), nil

	case ast.KindParen:
		return t.Lower(n.Children[0])

	case ast.KindNot:
		child, err := t.Lower(n.Children[0])
		if err != nil {
			return nil, err
		}
		return t.Not(child), nil

	case ast.KindAnd:
		left, err := t.Lower(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := t.Lower(n.Children[1])
		if err != nil {
			return nil, err
		}
		return t.And(left, right), nil

	case ast.KindOr:
		left, err := t.Lower(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := t.Lower(n.Children[1])
		if err != nil {
			return nil, err
		}
		return t.Or(left, right), nil

	case ast.KindImplies:
		left, err := t.Lower(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := t.Lower(n.Children[1])
		if err != nil {
			return nil, err
		}
		return t.Or(t.Not(left), right), nil

	default:
		return nil, core.Invariant("dag", "Lower", "unexpected node kind")
	}
}
