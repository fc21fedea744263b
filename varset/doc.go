// Package varset implements the variable-set index: for every node v in a
// graph.Graph, the set of variables appearing anywhere in
// v's subgraph, computed once by a single memoized iterative post-order
// pass (Build) and then queried read-only by every downstream engine.
//
// A Set is a variable-indexed bitset backed by math/big.Int (the pack's own
// idiom for unbounded-width integers, see cuelang-cue/cue/binop.go); bit i
// means "variable i is a member". Set values are immutable: every mutating
// method returns a new Set, so a *big.Int can be shared freely across
// cached Index entries without aliasing surprises.
package varset
