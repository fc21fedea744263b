// File: table.go
//
// Build evaluates the model-count recurrence over every node once,
// producing a Table that both Count and the direct-access/sampler descents
// (access, sample) consume. The traversal is the same explicit-stack
// post-order shape as varset.Build; the only difference is what gets
// computed at each node.
package count

import (
	"math/big"

	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// Table holds one arbitrary-precision count per node (local to the
// recurrence, i.e. before the global free-variable multiplier that applies
// only at the root) plus the bookkeeping access/sample need to repeat the
// same free-variable accounting during a descent.
type Table struct {
	G        *graph.Graph
	IX       *varset.Index
	Counts   []*big.Int // per NodeID, the model-count recurrence value
	Assumed  varset.Set // variables pinned by the assumption set
	Polarity map[int]bool
	// GlobalFree is ambient \ vars(root) \ Assumed: the unconstrained
	// free variables at the top level, feeding the final
	// "multiply by 2^(n_vars - |vars(root)|)" step, adjusted for any of
	// those variables an assumption happens to pin.
	GlobalFree varset.Set
	// Total is Counts[root] << |GlobalFree|, the full model count under
	// the given assumptions.
	Total *big.Int
}

type countFrame struct {
	id  graph.NodeID
	pos int
}

// Build computes the full Table for g under the given assumption set (nil
// or empty means unconditional counting).
func Build(g *graph.Graph, ix *varset.Index, assumptions []graph.Literal) (*Table, error) {
	ra, err := resolveAssumptions(assumptions, g.NVars())
	if err != nil {
		return nil, err
	}

	n := g.NNodes()
	counts := make([]*big.Int, n)

	if ra.contradictory {
		// A self-contradictory assumption set is unsatisfiable regardless
		// of the graph; every count is zero.
		for i := range counts {
			counts[i] = big.NewInt(0)
		}

		return finishTable(g, ix, ra, counts), nil
	}

	done := make([]bool, n)
	var stack []countFrame
	stack = append(stack, countFrame{id: g.Root()})
	visiting := make([]bool, n)
	visiting[g.Root()] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := childrenFor(g, top.id)
		if top.pos < len(kids) {
			child := kids[top.pos]
			top.pos++
			if !done[child] && !visiting[child] {
				visiting[child] = true
				stack = append(stack, countFrame{id: child})
			}

			continue
		}

		counts[top.id] = evalNode(g, ix, ra, top.id, counts)
		done[top.id] = true
		stack = stack[:len(stack)-1]
	}

	return finishTable(g, ix, ra, counts), nil
}

// childrenFor mirrors varset's outEdges: the child references of a node,
// regardless of And/Or, empty for leaves.
func childrenFor(g *graph.Graph, v graph.NodeID) []graph.NodeID {
	switch g.Kind(v) {
	case graph.And:
		return g.Children(v)
	case graph.Or:
		branches := g.Branches(v)
		out := make([]graph.NodeID, len(branches))
		for i, b := range branches {
			out[i] = b.Child
		}

		return out
	default:
		return nil
	}
}

// evalNode applies the model-count recurrence at v, assuming every child's
// count has already been computed.
func evalNode(g *graph.Graph, ix *varset.Index, ra resolvedAssumptions, v graph.NodeID, counts []*big.Int) *big.Int {
	switch g.Kind(v) {
	case graph.TrueLeaf:
		return big.NewInt(1)
	case graph.FalseLeaf:
		return big.NewInt(0)
	case graph.And:
		total := big.NewInt(1)
		for _, c := range g.Children(v) {
			total = new(big.Int).Mul(total, counts[c])
		}

		return total
	case graph.Or:
		total := big.NewInt(0)
		vOr := ix.Vars(v)
		for _, b := range g.Branches(v) {
			if ra.branchContradicted(b.Labels) {
				continue
			}
			labelVars := varset.Empty()
			for _, lit := range b.Labels {
				labelVars = labelVars.WithVar(lit.Var())
			}
			freeAtBranch := vOr.Sub(ix.Vars(b.Child)).Sub(labelVars)
			unconstrained := freeAtBranch.Sub(ra.vars)
			contribution := new(big.Int).Lsh(counts[b.Child], uint(unconstrained.Cardinality()))
			total = new(big.Int).Add(total, contribution)
		}

		return total
	default:
		return big.NewInt(0)
	}
}

func finishTable(g *graph.Graph, ix *varset.Index, ra resolvedAssumptions, counts []*big.Int) *Table {
	globalFree := varset.FullRange(g.NVars()).Sub(ix.Vars(g.Root())).Sub(ra.vars)
	total := new(big.Int).Lsh(counts[g.Root()], uint(globalFree.Cardinality()))

	return &Table{
		G:          g,
		IX:         ix,
		Counts:     counts,
		Assumed:    ra.vars,
		Polarity:   ra.polarity,
		GlobalFree: globalFree,
		Total:      total,
	}
}

// Counter evaluates model counts and existence queries against a fixed
// (Graph, Index) pair, reusing a Table across calls when assumptions are
// empty, so repeated unconditional queries on the same graph share one
// computed Table.
type Counter struct {
	g       *graph.Graph
	ix      *varset.Index
	emptyTb *Table
}

// New returns a Counter over g using the precomputed variable-set index ix.
func New(g *graph.Graph, ix *varset.Index) *Counter {
	return &Counter{g: g, ix: ix}
}

// Table returns the full per-node Table for the given assumption set,
// reusing the cached empty-assumption Table when assumptions is empty.
func (c *Counter) Table(assumptions []graph.Literal) (*Table, error) {
	if len(assumptions) == 0 {
		if c.emptyTb == nil {
			tb, err := Build(c.g, c.ix, nil)
			if err != nil {
				return nil, err
			}
			c.emptyTb = tb
		}

		return c.emptyTb, nil
	}

	return Build(c.g, c.ix, assumptions)
}

// Count returns the model count under assumptions.
func (c *Counter) Count(assumptions []graph.Literal) (*big.Int, error) {
	tb, err := c.Table(assumptions)
	if err != nil {
		return nil, err
	}

	return tb.Total, nil
}
