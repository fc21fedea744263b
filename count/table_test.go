package count_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dnnf/decdnnf/count"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

func buildGraph(t *testing.T, build func(b *graph.Builder)) (*graph.Graph, *varset.Index) {
	t.Helper()
	b := graph.NewBuilder(0)
	build(b)
	g, err := b.Build()
	require.NoError(t, err)
	ix, err := varset.Build(g)
	require.NoError(t, err)

	return g, ix
}

// Single TrueLeaf, n_vars=3 -> count 8.
func TestCount_SingleTrueLeaf(t *testing.T) {
	g, ix := buildGraph(t, func(b *graph.Builder) {
		b.RaiseNVars(3)
		_, _ = b.TrueLeaf(1)
		_ = b.SetRoot(1)
	})
	c := count.New(g, ix)
	got, err := c.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(8), got)
}

// Scenario 2: Or(+1->T, -1->T), n_vars=1 -> count 2.
func TestCount_OrOfLiterals(t *testing.T) {
	g, ix := buildGraph(t, func(b *graph.Builder) {
		b.RaiseNVars(1)
		_, _ = b.TrueLeaf(1)
		_, _ = b.OrNode(2)
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)})
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)})
		_ = b.SetRoot(2)
	})
	c := count.New(g, ix)
	got, err := c.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), got)
}

// Scenario 3: same graph with n_vars=2 -> count 4 (one free variable).
func TestCount_OrOfLiterals_ExtraFreeVar(t *testing.T) {
	g, ix := buildGraph(t, func(b *graph.Builder) {
		b.RaiseNVars(2)
		_, _ = b.TrueLeaf(1)
		_, _ = b.OrNode(2)
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)})
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)})
		_ = b.SetRoot(2)
	})
	c := count.New(g, ix)
	got, err := c.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(4), got)
}

func buildScenario4(t *testing.T) (*graph.Graph, *varset.Index) {
	return buildGraph(t, func(b *graph.Builder) {
		b.RaiseNVars(2)
		_, _ = b.TrueLeaf(1)
		_, _ = b.OrNode(2)
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)})
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)})
		_, _ = b.TrueLeaf(3)
		_, _ = b.OrNode(4)
		_ = b.AddBranch(4, 3, []graph.Literal{graph.NewLiteral(2, true)})
		_ = b.AddBranch(4, 3, []graph.Literal{graph.NewLiteral(2, false)})
		_, _ = b.AndNode(5)
		_ = b.AddChild(5, 2)
		_ = b.AddChild(5, 4)
		_ = b.SetRoot(5)
	})
}

// Scenario 4: And(Or(+1->T,-1->T), Or(+2->T,-2->T)), n_vars=2 -> count 4.
func TestCount_AndOfTwoOrs(t *testing.T) {
	g, ix := buildScenario4(t)
	c := count.New(g, ix)
	got, err := c.Count(nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(4), got)
}

// Scenario 5: counting under assumption {+1} on scenario 4 -> 2.
func TestCount_WithAssumption(t *testing.T) {
	g, ix := buildScenario4(t)
	c := count.New(g, ix)
	got, err := c.Count([]graph.Literal{graph.NewLiteral(1, true)})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), got)
}

func TestCount_OutOfRangeLiteral(t *testing.T) {
	g, ix := buildScenario4(t)
	c := count.New(g, ix)
	_, err := c.Count([]graph.Literal{graph.NewLiteral(99, true)})
	require.Error(t, err)
}

func TestCount_ContradictoryAssumptionsIsZero(t *testing.T) {
	g, ix := buildScenario4(t)
	c := count.New(g, ix)
	got, err := c.Count([]graph.Literal{graph.NewLiteral(1, true), graph.NewLiteral(1, false)})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), got)
}

func TestExists(t *testing.T) {
	g, _ := buildScenario4(t)
	ok, err := count.Exists(g, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = count.Exists(g, []graph.Literal{graph.NewLiteral(1, true), graph.NewLiteral(1, false)})
	require.NoError(t, err)
	assert.False(t, ok)
}
