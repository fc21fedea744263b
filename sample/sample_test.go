package sample_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/sample"
	"github.com/go-dnnf/decdnnf/varset"
)

func buildScenario(t *testing.T) (*graph.Graph, *varset.Index) {
	t.Helper()
	b := graph.NewBuilder(0)
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
	g, err := b.Build()
	require.NoError(t, err)
	ix, err := varset.Build(g)
	require.NoError(t, err)

	return g, ix
}

func TestSampleN_DrawsAreModels(t *testing.T) {
	g, ix := buildScenario(t)
	models, err := sample.SampleN(g, ix, 50, sample.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, models, 50)

	for _, m := range models {
		require.Len(t, m, 2)
		seen := map[int]bool{}
		for _, lit := range m {
			seen[lit.Var()] = true
		}
		assert.True(t, seen[1] && seen[2])
	}
}

func TestSampleN_RequiresRandSource(t *testing.T) {
	g, ix := buildScenario(t)
	_, err := sample.SampleN(g, ix, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sample.ErrNeedRandSource))
}

func TestSample_NoModelUnderContradictoryAssumptions(t *testing.T) {
	g, ix := buildScenario(t)
	_, err := sample.Sample(g, ix, sample.WithSeed(1),
		sample.WithAssumptions(graph.NewLiteral(1, true), graph.NewLiteral(1, false)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrNoModel))
}

func TestSample_ReproducibleWithSeed(t *testing.T) {
	g, ix := buildScenario(t)
	a, err := sample.SampleN(g, ix, 10, sample.WithSeed(42))
	require.NoError(t, err)
	b, err := sample.SampleN(g, ix, 10, sample.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
