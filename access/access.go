// File: access.go
package access

import (
	"math/big"

	"github.com/go-dnnf/decdnnf/count"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// Access retrieves the k-th model (0-based) of g under the configured
// assumptions and order. Returns a *graph.IndexOutOfRangeError if k is
// negative or at least the conditional model count.
func Access(g *graph.Graph, ix *varset.Index, k *big.Int, opts ...Option) (Model, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	c := count.New(g, ix)

	if o.order == Lexicographic {
		return accessLexicographic(g, c, k, o.assumptions)
	}

	tb, err := c.Table(o.assumptions)
	if err != nil {
		return nil, err
	}

	return accessStructural(tb, k)
}
