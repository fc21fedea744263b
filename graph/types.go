// File: types.go
//
// Declares the four-way Node variant, the Graph arena, and the Literal type
// that labels Or branches. Dispatch on a Node is always by Kind (a tag
// match), never by dynamic subtyping.
package graph

// Literal is a signed nonzero integer: abs(l) is a variable in
// [1, n_vars], and the sign is the polarity (positive = true, negative =
// false).
type Literal int32

// Var returns the variable this literal references, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}

	return int(l)
}

// Positive reports whether this literal asserts its variable true.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the complementary literal (-l).
func (l Literal) Negate() Literal { return -l }

// NewLiteral builds a Literal for variable v (1-based) with the given
// polarity. Panics if v <= 0: a zero or negative variable index is a
// programmer error, not a runtime input to validate.
func NewLiteral(v int, positive bool) Literal {
	if v <= 0 {
		panic("graph: variable index must be positive")
	}
	if positive {
		return Literal(v)
	}

	return Literal(-v)
}

// NodeKind tags the four possible roles a Node can play.
type NodeKind uint8

const (
	// TrueLeaf is always satisfiable; one model over the empty var set.
	TrueLeaf NodeKind = iota
	// FalseLeaf is never satisfiable.
	FalseLeaf
	// And is a decomposable conjunction of Children.
	And
	// Or is a deterministic disjunction of Branches.
	Or
)

// String renders a NodeKind for diagnostics; never used on a hot path.
func (k NodeKind) String() string {
	switch k {
	case TrueLeaf:
		return "TrueLeaf"
	case FalseLeaf:
		return "FalseLeaf"
	case And:
		return "And"
	case Or:
		return "Or"
	default:
		return "Unknown"
	}
}

// NodeID is a dense, arena-indexed node identifier. The zero value is a
// valid id (the first node ever built).
type NodeID int32

// Branch is one arm of an Or node: a child gated by a set of propagated
// literals forced true when this branch is taken.
type Branch struct {
	Labels []Literal
	Child  NodeID
}

// Node is the four-way tagged variant stored in a Graph's arena. Only the
// fields relevant to Kind are populated: Children for And, Branches for Or,
// both nil for leaves.
type Node struct {
	Kind     NodeKind
	Children []NodeID
	Branches []Branch
}

// Graph is a rooted, immutable DAG produced by a Builder. Node identifiers
// are dense indices into nodes; a shared subgraph is stored once and
// referenced by every parent. Iteration order over Children/Branches is the
// builder's insertion order, the "structural order" used by direct access
// and sampling when lexicographic mode is off.
type Graph struct {
	nodes []Node
	root  NodeID
	nVars int
}

// Kind returns the tag of node v.
func (g *Graph) Kind(v NodeID) NodeKind { return g.nodes[v].Kind }

// Children returns the And-node children of v, in builder insertion order.
// Returns nil for any other node kind.
func (g *Graph) Children(v NodeID) []NodeID { return g.nodes[v].Children }

// Branches returns the Or-node branches of v, in builder insertion order.
// Returns nil for any other node kind.
func (g *Graph) Branches(v NodeID) []Branch { return g.nodes[v].Branches }

// NNodes returns the number of nodes in the arena.
func (g *Graph) NNodes() int { return len(g.nodes) }

// Root returns the identifier of the graph's root node.
func (g *Graph) Root() NodeID { return g.root }

// NVars returns the declared number of variables, 1..NVars.
func (g *Graph) NVars() int { return g.nVars }
