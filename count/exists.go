// File: exists.go
//
// Exists and ExistsAt answer "does a model exist" without computing an
// exact count: a boolean short-circuits through And/Or the moment the
// outcome is decided — a small variant of the counter used as the
// checker's semantic fallback for determinism. Free-variable
// bookkeeping is irrelevant here — a branch that contributes k free
// variables is satisfiable iff its child is, regardless of k — so this is
// considerably cheaper than Build's arithmetic.
package count

import (
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// Exists reports whether g has any model consistent with assumptions.
func Exists(g *graph.Graph, assumptions []graph.Literal) (bool, error) {
	return ExistsAt(g, g.Root(), assumptions)
}

// ExistsAt reports whether the subgraph rooted at root has any model
// consistent with assumptions. root need not be g.Root(): check's
// determinism fallback calls this on arbitrary Or-branch children.
func ExistsAt(g *graph.Graph, root graph.NodeID, assumptions []graph.Literal) (bool, error) {
	ra, err := resolveAssumptions(assumptions, g.NVars())
	if err != nil {
		return false, err
	}
	if ra.contradictory {
		return false, nil
	}

	memo := make(map[graph.NodeID]bool, g.NNodes())

	return existsFrom(g, ra, root, memo), nil
}

func existsFrom(g *graph.Graph, ra resolvedAssumptions, v graph.NodeID, memo map[graph.NodeID]bool) bool {
	if sat, ok := memo[v]; ok {
		return sat
	}

	var sat bool
	switch g.Kind(v) {
	case graph.TrueLeaf:
		sat = true
	case graph.FalseLeaf:
		sat = false
	case graph.And:
		sat = true
		for _, c := range g.Children(v) {
			if !existsFrom(g, ra, c, memo) {
				sat = false

				break
			}
		}
	case graph.Or:
		for _, b := range g.Branches(v) {
			if ra.branchContradicted(b.Labels) {
				continue
			}
			if existsFrom(g, ra, b.Child, memo) {
				sat = true

				break
			}
		}
	}

	memo[v] = sat

	return sat
}

// SharedModel reports whether there is an assignment simultaneously
// satisfying branch bi's (labels, child) and branch bj's (labels, child).
// The existence test treats every And below as decomposable; check.Check
// visits nodes in NodeID order, not bottom-up, so the children need not
// have been checked yet when this runs. It
// enumerates the shared frontier — the variables common to both branches —
// brute force, since this path is only reached when the cheap structural
// polarity test was inconclusive, a rare diagnostic case on well-formed
// input. check.Check calls this as the determinism fallback.
func SharedModel(g *graph.Graph, ix *varset.Index, bi, bj graph.Branch) (bool, error) {
	shared := ix.Vars(bi.Child).Union(labelVars(bi.Labels)).
		Intersect(ix.Vars(bj.Child).Union(labelVars(bj.Labels)))
	vars := shared.Vars()

	for mask := 0; mask < 1<<uint(len(vars)); mask++ {
		extra := make([]graph.Literal, 0, len(vars))
		for i, v := range vars {
			extra = append(extra, graph.NewLiteral(v, mask&(1<<uint(i)) != 0))
		}

		li := append(append([]graph.Literal{}, bi.Labels...), extra...)
		lj := append(append([]graph.Literal{}, bj.Labels...), extra...)

		satI, err := ExistsAt(g, bi.Child, li)
		if err != nil {
			return false, err
		}
		if !satI {
			continue
		}
		satJ, err := ExistsAt(g, bj.Child, lj)
		if err != nil {
			return false, err
		}
		if satJ {
			return true, nil
		}
	}

	return false, nil
}

func labelVars(labels []graph.Literal) varset.Set {
	s := varset.Empty()
	for _, lit := range labels {
		s = s.WithVar(lit.Var())
	}

	return s
}
