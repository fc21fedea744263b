// File: index.go
//
// Build computes vars(v) for every node of a graph.Graph with a single
// iterative post-order traversal: an explicit work stack, not native
// recursion, since graphs with tens of thousands of nodes are common and
// native recursion risks a stack overflow. The traversal state machine
// (White/Gray/Black, cycle detected on a Gray revisit) is the standard
// iterative-DFS idiom for post-order traversal with cycle detection.
package varset

import (
	"github.com/go-dnnf/decdnnf/graph"
)

type color uint8

const (
	white color = iota
	gray
	black
)

// Index holds the precomputed variable set of every node in a Graph,
// indexed by NodeID.
type Index struct {
	vars []Set
}

// Vars returns vars(v), the set of variables appearing in v's subgraph.
func (ix *Index) Vars(v graph.NodeID) Set { return ix.vars[v] }

// Cardinality returns |vars(v)|.
func (ix *Index) Cardinality(v graph.NodeID) int { return ix.vars[v].Cardinality() }

// frame is one stack entry of the iterative post-order walk: the node
// being processed and how many of its out-edges have been pushed so far.
type frame struct {
	id  graph.NodeID
	pos int
}

// outEdges returns the child node references of v, regardless of whether v
// is an And (Children) or an Or (one per Branch). Leaves have none.
func outEdges(g *graph.Graph, v graph.NodeID) []graph.NodeID {
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

// computeVars derives vars(v) from the already-computed vars of v's
// children (post-order: children are always Black by the time v is
// processed).
func computeVars(g *graph.Graph, v graph.NodeID, ix *Index) Set {
	switch g.Kind(v) {
	case graph.TrueLeaf, graph.FalseLeaf:
		return Empty()
	case graph.And:
		s := Empty()
		for _, c := range g.Children(v) {
			s = s.Union(ix.vars[c])
		}

		return s
	case graph.Or:
		s := Empty()
		for _, b := range g.Branches(v) {
			s = s.Union(ix.vars[b.Child])
			for _, lit := range b.Labels {
				s = s.WithVar(lit.Var())
			}
		}

		return s
	default:
		return Empty()
	}
}

// Build computes the variable-set index of g in a single pass, visiting
// each shared node exactly once. Returns an InvalidStructureError (wrapping
// graph.ErrInvalidStructure) if g contains a cycle.
func Build(g *graph.Graph) (*Index, error) {
	n := g.NNodes()
	ix := &Index{vars: make([]Set, n)}
	colors := make([]color, n)
	var stack []frame

	push := func(id graph.NodeID) error {
		if colors[id] == gray {
			return &graph.InvalidStructureError{Node: id, Msg: "cycle detected while indexing variable sets"}
		}
		colors[id] = gray
		stack = append(stack, frame{id: id})

		return nil
	}

	if err := push(g.Root()); err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := outEdges(g, top.id)
		if top.pos < len(kids) {
			child := kids[top.pos]
			top.pos++
			switch colors[child] {
			case white:
				if err := push(child); err != nil {
					return nil, err
				}
			case gray:
				return nil, &graph.InvalidStructureError{Node: child, Msg: "cycle detected while indexing variable sets"}
			case black:
				// already computed via another parent; nothing to do
			}

			continue
		}

		// All children processed (or none): compute and pop.
		ix.vars[top.id] = computeVars(g, top.id, ix)
		colors[top.id] = black
		stack = stack[:len(stack)-1]
	}

	return ix, nil
}
