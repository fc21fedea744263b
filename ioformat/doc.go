// Package ioformat implements the external-collaborator formats: the d4
// text reader, the c2d writer/reader, and a length-prefixed binary
// reader/writer. These are graph.Builder clients, not a new representation
// — every format is translated to or from the same graph.Graph a caller
// would build by hand.
//
// d4's branch labels have no equivalent in c2d's node grammar (L/A/O
// lines only), so WriteC2D performs a real structural translation: each Or
// branch's label literals become their own leaf nodes, wrapped together
// with the branch's original child in a synthetic And — collapsing each
// branch label into a chain. TrueLeaf and FalseLeaf, which c2d has no
// direct line for either, become the empty conjunction ("A 0") and empty
// disjunction ("O 0 0") respectively — standard NNF convention, and the
// only reading consistent with c2d's line grammar never naming a leaf kind
// beyond L.
//
// WriteC2D shares the iterative post-order traversal shape of varset.Build
// (explicit stack, White/Gray/Black coloring) rather than native
// recursion; the readers only scan their input and hand nodes and edges to
// graph.Builder, with no graph traversal of their own.
package ioformat
