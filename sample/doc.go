// Package sample implements the uniform model sampler (component G):
// drawing one or more models uniformly at random from the model set of a
// Decision-DNNF graph, optionally under an assumption set.
//
// Sampling reduces to direct access: math/big.Int.Rand already draws a
// uniform index in [0, n) given a *rand.Rand source, so a uniform model
// draw is exactly access.FromTable at a uniformly random index — no
// separate weighted-branch-selection logic is needed, and it shares
// count.Table with Count and Access rather than re-deriving per-node
// weights. The RNG is injected explicitly via WithRand/WithSeed rather than
// drawn from a package-level source, and a nil source is rejected outright:
// ErrNeedRandSource.
//
// WithLexicographic swaps the decode for access's lexicographic order,
// for parity with direct-access's own ordering flag; the draw stays
// uniform under either order since both are bijections over [0, total).
package sample
