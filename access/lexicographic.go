// File: lexicographic.go
package access

import (
	"math/big"

	"github.com/go-dnnf/decdnnf/count"
	"github.com/go-dnnf/decdnnf/graph"
)

// accessLexicographic retrieves the k-th model (0-based) in lexicographic
// order — variable 1..NVars ascending, negative literal before positive —
// among models consistent with assumptions. It fixes one variable at a
// time, asking c for the count of models with that variable pinned
// negative; no separate descent structure is needed, the existing counter
// is the whole algorithm.
func accessLexicographic(g *graph.Graph, c *count.Counter, k *big.Int, assumptions []graph.Literal) (Model, error) {
	total, err := c.Count(assumptions)
	if err != nil {
		return nil, err
	}
	if k.Sign() < 0 || k.Cmp(total) >= 0 {
		return nil, &graph.IndexOutOfRangeError{Index: new(big.Int).Set(k), Total: total}
	}

	pinned := make(map[int]bool, len(assumptions))
	for _, lit := range assumptions {
		pinned[lit.Var()] = lit.Positive()
	}

	remaining := new(big.Int).Set(k)
	prefix := append([]graph.Literal(nil), assumptions...)
	model := make(Model, 0, g.NVars())

	for v := 1; v <= g.NVars(); v++ {
		if want, ok := pinned[v]; ok {
			model = append(model, graph.NewLiteral(v, want))
			continue
		}

		neg := graph.NewLiteral(v, false)
		negCount, err := c.Count(append(prefix, neg))
		if err != nil {
			return nil, err
		}

		if remaining.Cmp(negCount) < 0 {
			prefix = append(prefix, neg)
			model = append(model, neg)
			continue
		}

		remaining.Sub(remaining, negCount)
		pos := graph.NewLiteral(v, true)
		prefix = append(prefix, pos)
		model = append(model, pos)
	}

	return model, nil
}
