// File: check.go
package check

import (
	"fmt"

	"github.com/go-dnnf/decdnnf/count"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// Options configures Check. The zero value runs the full contract: the
// cheap structural determinism test, falling back to the semantic
// shared-model test when it is inconclusive.
type Options struct {
	structuralOnly bool
}

// Option mutates Options before Check runs, applied in order.
type Option func(*Options)

// WithStructuralOnly skips the semantic (SAT-based) determinism fallback:
// Or nodes whose branches do not visibly disagree on a label literal's
// polarity are reported invalid rather than further investigated. Useful
// when the caller already trusts the compiler's branch-labeling discipline
// and wants Check to stay linear in graph size.
func WithStructuralOnly() Option {
	return func(o *Options) { o.structuralOnly = true }
}

// Check verifies And decomposability and Or determinism over every node of
// g. Returns the first violation found
// as a *graph.InvalidStructureError (errors.Is(err, graph.ErrInvalidStructure)).
// Acyclicity (invariant 1) is established by varset.Build; Check assumes ix
// was produced by a successful Build.
func Check(g *graph.Graph, ix *varset.Index, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	for id := graph.NodeID(0); int(id) < g.NNodes(); id++ {
		switch g.Kind(id) {
		case graph.And:
			if err := checkDecomposable(g, ix, id); err != nil {
				return err
			}
		case graph.Or:
			if err := checkDeterministic(g, ix, id, o); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkDecomposable verifies that every pair of children of an And node has
// disjoint variable sets.
func checkDecomposable(g *graph.Graph, ix *varset.Index, and graph.NodeID) error {
	children := g.Children(and)
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if !ix.Vars(children[i]).Disjoint(ix.Vars(children[j])) {
				return &graph.InvalidStructureError{
					Node: and,
					Msg: fmt.Sprintf("children %d and %d share a variable (decomposability violated)",
						children[i], children[j]),
				}
			}
		}
	}

	return nil
}

// checkDeterministic verifies that every pair of branches of an Or node is
// mutually unsatisfiable: first the cheap structural test (some label
// variable takes opposite polarity across the pair), falling back to the
// semantic shared-model test unless the caller asked for structural-only
// checking.
func checkDeterministic(g *graph.Graph, ix *varset.Index, or graph.NodeID, o Options) error {
	branches := g.Branches(or)
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			if branchesStructurallyDisjoint(branches[i], branches[j]) {
				continue
			}
			if o.structuralOnly {
				return &graph.InvalidStructureError{
					Node: or,
					Msg:  fmt.Sprintf("branches %d and %d do not structurally disagree on any label", i, j),
				}
			}

			shared, err := count.SharedModel(g, ix, branches[i], branches[j])
			if err != nil {
				return err
			}
			if shared {
				return &graph.InvalidStructureError{
					Node: or,
					Msg:  fmt.Sprintf("branches %d and %d share a satisfying assignment (determinism violated)", i, j),
				}
			}
		}
	}

	return nil
}

// branchesStructurallyDisjoint reports whether bi and bj carry opposite-
// polarity labels on some common variable — the cheap, sufficient (but not
// necessary) determinism witness.
func branchesStructurallyDisjoint(bi, bj graph.Branch) bool {
	for _, li := range bi.Labels {
		for _, lj := range bj.Labels {
			if li.Var() == lj.Var() && li.Positive() != lj.Positive() {
				return true
			}
		}
	}

	return false
}
