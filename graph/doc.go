// Package graph is the arena that owns every node of a compiled
// Decision-DNNF formula.
//
// A Graph is a rooted DAG G = (nodes, root, n_vars) whose internal nodes are
// either decomposable conjunctions (And) or deterministic disjunctions (Or),
// and whose leaves are the constants TrueLeaf/FalseLeaf. Node identifiers are
// dense, arena-indexed integers (NodeID); edges — And children and Or
// branches — are plain NodeID references, so a shared subgraph is stored
// once and referenced by every parent that needs it.
//
// Under the hood:
//
//	Node    — four-way tagged variant {TrueLeaf, FalseLeaf, And, Or}
//	Graph   — arena of Node plus root and n_vars
//	Builder — the only way to mutate a Graph; used by ioformat's parsers
//	Literal — a signed, nonzero variable reference
//
// Once a Builder produces a Graph via Build, the Graph is immutable: every
// query engine in this module (varset, check, count, enum, access, sample)
// treats it as read-only and may be driven concurrently from multiple
// goroutines without coordination, consistent with the single-threaded,
// synchronous-per-query model each engine documents on its own.
package graph
