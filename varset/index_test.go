package varset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

func TestBuild_AndIsUnionOfChildren(t *testing.T) {
	// And(Or(+1->T,-1->T), Or(+2->T,-2->T)), n_vars=2.
	b := graph.NewBuilder(2)
	t1, _ := b.TrueLeaf(1)
	or1, _ := b.OrNode(2)
	require.NoError(t, b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)}))
	require.NoError(t, b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)}))

	t2, _ := b.TrueLeaf(3)
	or2, _ := b.OrNode(4)
	require.NoError(t, b.AddBranch(4, 3, []graph.Literal{graph.NewLiteral(2, true)}))
	require.NoError(t, b.AddBranch(4, 3, []graph.Literal{graph.NewLiteral(2, false)}))

	and, _ := b.AndNode(5)
	require.NoError(t, b.AddChild(5, 2))
	require.NoError(t, b.AddChild(5, 4))
	require.NoError(t, b.SetRoot(5))

	g, err := b.Build()
	require.NoError(t, err)

	ix, err := varset.Build(g)
	require.NoError(t, err)

	assert.True(t, ix.Vars(t1).IsEmpty())
	assert.True(t, ix.Vars(t2).IsEmpty())
	assert.Equal(t, varset.Of(1), ix.Vars(or1))
	assert.Equal(t, varset.Of(2), ix.Vars(or2))
	assert.Equal(t, varset.Of(1, 2), ix.Vars(and))
	assert.Equal(t, 2, ix.Cardinality(and))
}

func TestBuild_SharedSubgraphVisitedOnce(t *testing.T) {
	// Two And parents sharing the same Or child: vars() must still be
	// correct and the traversal must terminate (no cycle false-positive).
	b := graph.NewBuilder(1)
	leaf, _ := b.TrueLeaf(1)
	or, _ := b.OrNode(2)
	require.NoError(t, b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)}))
	require.NoError(t, b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)}))
	_ = leaf

	andA, _ := b.AndNode(3)
	require.NoError(t, b.AddChild(3, 2))
	andB, _ := b.AndNode(4)
	require.NoError(t, b.AddChild(4, 2))
	root, _ := b.OrNode(5)
	require.NoError(t, b.AddBranch(5, 3, nil))
	require.NoError(t, b.AddBranch(5, 4, nil))
	require.NoError(t, b.SetRoot(5))

	g, err := b.Build()
	require.NoError(t, err)

	ix, err := varset.Build(g)
	require.NoError(t, err)
	assert.Equal(t, varset.Of(1), ix.Vars(andA))
	assert.Equal(t, varset.Of(1), ix.Vars(andB))
}

func TestBuild_CycleDetected(t *testing.T) {
	b := graph.NewBuilder(1)
	_, err := b.AndNode(1)
	require.NoError(t, err)
	_, err = b.AndNode(2)
	require.NoError(t, err)
	require.NoError(t, b.AddChild(1, 2))
	require.NoError(t, b.AddChild(2, 1))
	require.NoError(t, b.SetRoot(1))

	g, err := b.Build()
	require.NoError(t, err)

	_, err = varset.Build(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrInvalidStructure))
}

func TestSet_UnionIntersectSub(t *testing.T) {
	a := varset.Of(1, 2, 3)
	b := varset.Of(2, 3, 4)
	assert.Equal(t, varset.Of(1, 2, 3, 4), a.Union(b))
	assert.Equal(t, varset.Of(2, 3), a.Intersect(b))
	assert.Equal(t, varset.Of(1), a.Sub(b))
	assert.False(t, a.Disjoint(b))
	assert.True(t, varset.Of(1).Disjoint(varset.Of(2)))
}

func TestFullRange(t *testing.T) {
	fr := varset.FullRange(5)
	assert.Equal(t, 5, fr.Cardinality())
	for v := 1; v <= 5; v++ {
		assert.True(t, fr.Contains(v))
	}
	assert.False(t, fr.Contains(0))
	assert.False(t, fr.Contains(6))
}
