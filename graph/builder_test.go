package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dnnf/decdnnf/graph"
)

// buildOrOfLiterals constructs Or(+1 -> T, -1 -> T) over n_vars, scenario 2
// of the concrete scenarios used throughout this module's tests.
func buildOrOfLiterals(t *testing.T, nVars int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(nVars)
	trueID, err := b.TrueLeaf(1)
	require.NoError(t, err)
	orID, err := b.OrNode(2)
	require.NoError(t, err)
	require.NoError(t, b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)}))
	require.NoError(t, b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)}))
	require.NoError(t, b.SetRoot(2))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, graph.Or, g.Kind(orID))
	assert.Equal(t, graph.TrueLeaf, g.Kind(trueID))

	return g
}

func TestBuilder_SingleTrueLeaf(t *testing.T) {
	b := graph.NewBuilder(3)
	id, err := b.TrueLeaf(1)
	require.NoError(t, err)
	require.NoError(t, b.SetRoot(1))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, id, g.Root())
	assert.Equal(t, 3, g.NVars())
	assert.Equal(t, graph.TrueLeaf, g.Kind(g.Root()))
}

func TestBuilder_DefaultRootIsSmallestExternalID(t *testing.T) {
	b := graph.NewBuilder(1)
	_, err := b.FalseLeaf(5)
	require.NoError(t, err)
	smallest, err := b.TrueLeaf(2)
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, smallest, g.Root())
}

func TestBuilder_OrOfLiterals(t *testing.T) {
	g := buildOrOfLiterals(t, 1)
	branches := g.Branches(g.Root())
	require.Len(t, branches, 2)
	assert.Equal(t, graph.NewLiteral(1, true), branches[0].Labels[0])
	assert.Equal(t, graph.NewLiteral(1, false), branches[1].Labels[0])
}

func TestBuilder_DuplicateDeclarationIsParseError(t *testing.T) {
	b := graph.NewBuilder(1)
	_, err := b.TrueLeaf(1)
	require.NoError(t, err)
	_, err = b.FalseLeaf(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrParse))
}

func TestBuilder_AddChildUndeclaredNode(t *testing.T) {
	b := graph.NewBuilder(1)
	_, err := b.AndNode(1)
	require.NoError(t, err)
	err = b.AddChild(1, 99)
	assert.True(t, errors.Is(err, graph.ErrParse))
}

func TestBuilder_EmptyGraphIsParseError(t *testing.T) {
	b := graph.NewBuilder(1)
	_, err := b.Build()
	assert.True(t, errors.Is(err, graph.ErrParse))
}

func TestLiteral_VarAndPolarity(t *testing.T) {
	pos := graph.NewLiteral(4, true)
	neg := graph.NewLiteral(4, false)
	assert.Equal(t, 4, pos.Var())
	assert.Equal(t, 4, neg.Var())
	assert.True(t, pos.Positive())
	assert.False(t, neg.Positive())
	assert.Equal(t, neg, pos.Negate())
}
