// Package access implements the direct-access engine (component F):
// retrieving the k-th model of a Decision-DNNF graph, under an optional
// assumption set, without enumerating the models before it.
//
// Structural order descends the DAG directly, using count.Table's per-node
// counts as a mixed-radix system: at an And, k is decomposed across
// children with the last child varying fastest (the same nesting order
// enum's decision-tree walk produces); at an Or, branches are tried in
// builder order and k is reduced by each branch's block size (count of its
// child times 2^(its own free-variable frontier)) until the owning branch
// is found; ambient free variables are decoded bit by bit, negative before
// positive. This mirrors count.Table's recurrence exactly, so structural
// order and model counting never disagree about which index maps to which
// branch.
//
// Lexicographic order instead fixes variables 1..NVars in turn, at each
// step asking count.Counter how many models remain with the variable
// pinned negative; if k falls under that count the variable is fixed
// negative, otherwise k is reduced by it and the variable is fixed
// positive. This is the textbook recursive "counting to indexing" bijection,
// adapted from dense-array indexing to a model space enumerated by
// model-count queries, and needs no separate traversal structure, only the
// model counter it already shares with everything else in this module.
package access
