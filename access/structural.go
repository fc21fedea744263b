// File: structural.go
package access

import (
	"math/big"

	"github.com/go-dnnf/decdnnf/count"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// accessStructural retrieves the k-th model (0-based) in structural order
// from a precomputed count.Table.
func accessStructural(tb *count.Table, k *big.Int) (Model, error) {
	if k.Sign() < 0 || k.Cmp(tb.Total) >= 0 {
		return nil, &graph.IndexOutOfRangeError{Index: new(big.Int).Set(k), Total: tb.Total}
	}

	rootCount := tb.Counts[tb.G.Root()]
	globalMaskIdx, rootLocalIdx := new(big.Int), new(big.Int)
	globalMaskIdx.DivMod(k, rootCount, rootLocalIdx)

	model := freeVarLiterals(tb.GlobalFree.Vars(), globalMaskIdx)
	rest, err := descend(tb, tb.G.Root(), rootLocalIdx)
	if err != nil {
		return nil, err
	}

	model = append(model, rest...)

	// Assumed variables are excluded from every free-variable block, so any
	// the descent did not reach carry their pinned polarity here.
	seen := make(map[int]bool, len(model))
	for _, lit := range model {
		seen[lit.Var()] = true
	}
	for _, v := range tb.Assumed.Vars() {
		if !seen[v] {
			model = append(model, graph.NewLiteral(v, tb.Polarity[v]))
		}
	}

	return model, nil
}

// descend retrieves the local-index-th model contribution of v, where idx
// is already known to lie within [0, tb.Counts[v]).
func descend(tb *count.Table, v graph.NodeID, idx *big.Int) (Model, error) {
	switch tb.G.Kind(v) {
	case graph.TrueLeaf:
		return nil, nil
	case graph.FalseLeaf:
		return nil, &graph.InvalidStructureError{Node: v, Msg: "direct access descended into an unsatisfiable node"}
	case graph.And:
		return descendAnd(tb, v, idx)
	case graph.Or:
		return descendOr(tb, v, idx)
	default:
		return nil, nil
	}
}

func descendAnd(tb *count.Table, v graph.NodeID, idx *big.Int) (Model, error) {
	children := tb.G.Children(v)
	counts := make([]*big.Int, len(children))
	for i, c := range children {
		counts[i] = tb.Counts[c]
	}
	idxs := decomposeMixedRadix(idx, counts)

	var model Model
	for i, c := range children {
		sub, err := descend(tb, c, idxs[i])
		if err != nil {
			return nil, err
		}
		model = append(model, sub...)
	}

	return model, nil
}

func descendOr(tb *count.Table, v graph.NodeID, idx *big.Int) (Model, error) {
	r := new(big.Int).Set(idx)
	vOr := tb.IX.Vars(v)

	for _, b := range tb.G.Branches(v) {
		if branchContradicted(tb, b.Labels) {
			continue
		}
		free := vOr.Sub(tb.IX.Vars(b.Child)).Sub(labelVars(b.Labels)).Sub(tb.Assumed)
		blockSize := new(big.Int).Lsh(tb.Counts[b.Child], uint(free.Cardinality()))

		if r.Cmp(blockSize) < 0 {
			childIdx, maskIdx := new(big.Int), new(big.Int)
			maskIdx.DivMod(r, tb.Counts[b.Child], childIdx)

			model := freeVarLiterals(free.Vars(), maskIdx)
			model = append(model, b.Labels...)
			sub, err := descend(tb, b.Child, childIdx)
			if err != nil {
				return nil, err
			}

			return append(model, sub...), nil
		}

		r.Sub(r, blockSize)
	}

	return nil, &graph.InvalidStructureError{Node: v, Msg: "direct access index exceeded every branch's block size"}
}

// decomposeMixedRadix splits idx across len(counts) positions with the
// LAST position varying fastest, matching enum's And-node nesting order.
func decomposeMixedRadix(idx *big.Int, counts []*big.Int) []*big.Int {
	idxs := make([]*big.Int, len(counts))
	r := new(big.Int).Set(idx)
	for i := len(counts) - 1; i >= 0; i-- {
		q, m := new(big.Int), new(big.Int)
		q.DivMod(r, counts[i], m)
		idxs[i] = m
		r = q
	}

	return idxs
}

// freeVarLiterals decodes mask bit i as vars[i]'s polarity: 0 = negative,
// 1 = positive, ascending over vars.
func freeVarLiterals(vars []int, mask *big.Int) Model {
	model := make(Model, 0, len(vars))
	for i, v := range vars {
		model = append(model, graph.NewLiteral(v, mask.Bit(i) == 1))
	}

	return model
}

func labelVars(labels []graph.Literal) varset.Set {
	s := varset.Empty()
	for _, l := range labels {
		s = s.WithVar(l.Var())
	}

	return s
}

func branchContradicted(tb *count.Table, labels []graph.Literal) bool {
	for _, lit := range labels {
		if want, seen := tb.Polarity[lit.Var()]; seen && want != lit.Positive() {
			return true
		}
	}

	return false
}
