// File: builder.go
//
// Builder is the only way to construct a Graph. Parsers (ioformat) declare
// each node once under its format-native external identifier, wire up
// children/branches by external identifier, then call Build. This follows
// a mutate-then-query discipline: a Builder is single-writer and has no
// locking, and nodes are never mutated again once Build returns.
package graph

import (
	"fmt"
)

// Builder accumulates nodes and edges under external (format-native) node
// identifiers and resolves them to dense NodeIDs.
type Builder struct {
	nodes    []Node
	extToID  map[int]NodeID
	nVars    int
	root     NodeID
	rootSet  bool
	haveMin  bool
	minExt   int
	minExtID NodeID
}

// NewBuilder returns a Builder that will produce a Graph declaring at least
// n_vars variables. n may be raised later with RaiseNVars; it is never
// lowered.
func NewBuilder(nVars int) *Builder {
	return &Builder{
		extToID: make(map[int]NodeID),
		nVars:   nVars,
	}
}

// RaiseNVars increases n_vars to n if n is larger than the current value.
// It never lowers n_vars.
func (b *Builder) RaiseNVars(n int) {
	if n > b.nVars {
		b.nVars = n
	}
}

// declare registers a new node under extID with the given kind, assigning
// it the next dense NodeID. Returns ErrParse if extID was already declared.
func (b *Builder) declare(extID int, kind NodeKind) (NodeID, error) {
	if _, exists := b.extToID[extID]; exists {
		return 0, &ParseError{Msg: fmt.Sprintf("node %d declared more than once", extID)}
	}

	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Kind: kind})
	b.extToID[extID] = id

	// Track the node with the smallest external id seen so far: the d4
	// convention makes it the default root when the format never declares
	// one explicitly.
	if !b.haveMin || extID < b.minExt {
		b.haveMin = true
		b.minExt = extID
		b.minExtID = id
	}

	return id, nil
}

// TrueLeaf declares a true-leaf node under extID.
func (b *Builder) TrueLeaf(extID int) (NodeID, error) { return b.declare(extID, TrueLeaf) }

// FalseLeaf declares a false-leaf node under extID.
func (b *Builder) FalseLeaf(extID int) (NodeID, error) { return b.declare(extID, FalseLeaf) }

// AndNode declares an empty And node under extID; children are attached
// with AddChild.
func (b *Builder) AndNode(extID int) (NodeID, error) { return b.declare(extID, And) }

// OrNode declares an empty Or node under extID; branches are attached with
// AddBranch.
func (b *Builder) OrNode(extID int) (NodeID, error) { return b.declare(extID, Or) }

// Resolve maps an already-declared external id to its dense NodeID.
func (b *Builder) Resolve(extID int) (NodeID, bool) {
	id, ok := b.extToID[extID]

	return id, ok
}

// AddChild appends childExt as the next child of the And node parentExt.
// Returns ErrParse if either id is undeclared or parentExt is not an And.
func (b *Builder) AddChild(parentExt, childExt int) error {
	p, ok := b.extToID[parentExt]
	if !ok {
		return &ParseError{Msg: fmt.Sprintf("edge references undeclared node %d", parentExt)}
	}
	c, ok := b.extToID[childExt]
	if !ok {
		return &ParseError{Msg: fmt.Sprintf("edge references undeclared node %d", childExt)}
	}
	if b.nodes[p].Kind != And {
		return &ParseError{Msg: fmt.Sprintf("node %d is not an And node", parentExt)}
	}
	b.nodes[p].Children = append(b.nodes[p].Children, c)

	return nil
}

// AddBranch appends a branch (labels, childExt) to the Or node parentExt.
// Returns ErrParse if either id is undeclared or parentExt is not an Or.
func (b *Builder) AddBranch(parentExt, childExt int, labels []Literal) error {
	p, ok := b.extToID[parentExt]
	if !ok {
		return &ParseError{Msg: fmt.Sprintf("edge references undeclared node %d", parentExt)}
	}
	c, ok := b.extToID[childExt]
	if !ok {
		return &ParseError{Msg: fmt.Sprintf("edge references undeclared node %d", childExt)}
	}
	if b.nodes[p].Kind != Or {
		return &ParseError{Msg: fmt.Sprintf("node %d is not an Or node", parentExt)}
	}
	b.nodes[p].Branches = append(b.nodes[p].Branches, Branch{Labels: labels, Child: c})

	return nil
}

// SetRoot explicitly designates extID as the root, overriding the
// smallest-external-id default.
func (b *Builder) SetRoot(extID int) error {
	id, ok := b.extToID[extID]
	if !ok {
		return &ParseError{Msg: fmt.Sprintf("root references undeclared node %d", extID)}
	}
	b.root = id
	b.rootSet = true

	return nil
}

// Build finalizes the arena into an immutable Graph. If no root was ever
// set explicitly, the node with the smallest external id becomes the root
// (the d4 convention).
func (b *Builder) Build() (*Graph, error) {
	if len(b.nodes) == 0 {
		return nil, &ParseError{Msg: "graph has no nodes"}
	}

	root := b.root
	if !b.rootSet {
		if !b.haveMin {
			return nil, &ParseError{Msg: "graph has no nodes"}
		}
		root = b.minExtID
	}

	return &Graph{nodes: b.nodes, root: root, nVars: b.nVars}, nil
}
