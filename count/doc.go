// Package count implements the arbitrary-precision model counter, plus the
// lighter existence query ("does a model exist under assumptions").
//
// Count arithmetic never touches a machine word: every count and every
// direct-access index is a *math/big.Int, following the pack's own idiom
// for unbounded-precision values (cuelang-cue/cue/binop.go,
// cuelang-cue/cue/value.go). The recurrence is evaluated by a single
// iterative post-order pass (an explicit work stack, not native recursion)
// and memoized per node id in a Table, which access and sample reuse
// directly for their descents rather than re-deriving per-node weights.
package count
