// Package enum implements the two enumeration strategies over a
// Decision-DNNF graph: full-model enumeration via a decision-tree walk, and
// disjoint-partial enumeration.
//
// Both share one recursive walker over the DAG (walk/walkChildren):
// at an Or, each branch extends the path with its labels then descends
// into its child; at an And, children are combined by chained
// continuations so the emitted path is the concatenation of each child's
// contribution — Cartesian product in effect, since partitioning the full
// model set of a decomposable And requires pairing every block of one
// child with every block of the rest. The only difference between the two
// modes is whether ambient free variables (an Or branch's frontier, and the
// graph-wide variables absent from vars(root)) are expanded into explicit
// literal choices (full mode) or left unassigned (disjoint-partial mode,
// trading resolution for size).
//
// Emission is push-style: callers supply a Visitor, and returning an error
// aborts the walk, with the sentinel ErrStop aborting cleanly without
// propagating as a failure. Cancellation is cooperative via
// context.Context, checked between emissions. The walker's
// recursion depth is bounded by the DAG's structural depth, not by the
// (potentially exponential) number of emitted models. Like the
// direct-access descent (which the sampler reuses), and unlike the
// counter's Build pass, enum's tree-shaped recursion is ordinary Go
// recursion rather than an explicit work stack.
package enum
