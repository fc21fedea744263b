// File: enum.go
package enum

import (
	"errors"

	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// EnumerateFull walks g's decision tree, calling visit once per total
// assignment: every variable in [1, g.NVars()] appears, variables never
// touched along a given path are expanded into both polarities. The number
// of emissions equals the unassumed model count.
func EnumerateFull(g *graph.Graph, ix *varset.Index, visit Visitor, opts ...Option) error {
	return run(g, ix, visit, true, opts)
}

// EnumerateDisjointPartial walks the same decision tree but leaves
// variables never named along the path unassigned, trading resolution for
// a (generally much smaller) number of emissions. Every emitted partial
// assignment's set of total extensions is disjoint from every other's, and
// together they partition the full model set.
func EnumerateDisjointPartial(g *graph.Graph, ix *varset.Index, visit Visitor, opts ...Option) error {
	return run(g, ix, visit, false, opts)
}

func run(g *graph.Graph, ix *varset.Index, visit Visitor, expandFree bool, opts []Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	var c canceller = noopCanceller{}
	if o.ctx != nil {
		c = o.ctx
	}

	w := &walker{g: g, ix: ix, visit: visit, ctx: c, expandFree: expandFree}
	err := w.run()
	if errors.Is(err, ErrStop) {
		return nil
	}

	return err
}
