// File: assumptions.go
package count

import (
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// resolvedAssumptions is the validated, deduplicated form of an assumption
// set: which variables are pinned, to which polarity, and whether the set
// is self-contradictory (e.g. both +v and -v assumed).
type resolvedAssumptions struct {
	vars          varset.Set
	polarity      map[int]bool // var -> required polarity
	contradictory bool
}

// resolveAssumptions validates every literal against n_vars and folds the
// set into a per-variable polarity map. Returns graph.OutOfRangeLiteralError
// for any literal whose variable exceeds n_vars.
func resolveAssumptions(assumptions []graph.Literal, nVars int) (resolvedAssumptions, error) {
	ra := resolvedAssumptions{vars: varset.Empty(), polarity: make(map[int]bool, len(assumptions))}
	for _, lit := range assumptions {
		v := lit.Var()
		if v > nVars {
			return ra, &graph.OutOfRangeLiteralError{Lit: lit, NVars: nVars}
		}
		ra.vars = ra.vars.WithVar(v)
		if want, seen := ra.polarity[v]; seen && want != lit.Positive() {
			ra.contradictory = true
		}
		ra.polarity[v] = lit.Positive()
	}

	return ra, nil
}

// branchContradicted reports whether any label literal of a branch
// conflicts with the assumption set (assumed to the opposite polarity).
func (ra resolvedAssumptions) branchContradicted(labels []graph.Literal) bool {
	for _, lit := range labels {
		if want, seen := ra.polarity[lit.Var()]; seen && want != lit.Positive() {
			return true
		}
	}

	return false
}
