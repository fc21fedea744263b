package access_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dnnf/decdnnf/access"
	"github.com/go-dnnf/decdnnf/enum"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// And(Or(+1->T,-1->T), Or(+2->T,-2->T)), n_vars=2 -> 4 models
// scenario 4/6.
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

func asSet(m []graph.Literal) map[graph.Literal]bool {
	s := make(map[graph.Literal]bool, len(m))
	for _, l := range m {
		s[l] = true
	}

	return s
}

func TestAccess_StructuralMatchesEnumerationOrder(t *testing.T) {
	g, ix := buildScenario(t)

	var want [][]graph.Literal
	require.NoError(t, enum.EnumerateFull(g, ix, func(m enum.Model) error {
		want = append(want, append([]graph.Literal(nil), m...))
		return nil
	}))
	require.Len(t, want, 4)

	for i, exp := range want {
		got, err := access.Access(g, ix, big.NewInt(int64(i)))
		require.NoError(t, err)
		assert.Equal(t, asSet(exp), asSet(got), "index %d", i)
	}
}

func TestAccess_Lexicographic(t *testing.T) {
	g, ix := buildScenario(t)

	want := [][]graph.Literal{
		{graph.NewLiteral(1, false), graph.NewLiteral(2, false)},
		{graph.NewLiteral(1, false), graph.NewLiteral(2, true)},
		{graph.NewLiteral(1, true), graph.NewLiteral(2, false)},
		{graph.NewLiteral(1, true), graph.NewLiteral(2, true)},
	}

	for i, exp := range want {
		got, err := access.Access(g, ix, big.NewInt(int64(i)), access.WithLexicographic())
		require.NoError(t, err)
		assert.Equal(t, asSet(exp), asSet(got), "index %d", i)
	}
}

func TestAccess_OutOfRange(t *testing.T) {
	g, ix := buildScenario(t)

	_, err := access.Access(g, ix, big.NewInt(4))
	require.Error(t, err)
	var outOfRange *graph.IndexOutOfRangeError
	assert.True(t, errors.As(err, &outOfRange))

	_, err = access.Access(g, ix, big.NewInt(-1))
	require.Error(t, err)
}

func TestAccess_WithAssumptions(t *testing.T) {
	g, ix := buildScenario(t)

	got, err := access.Access(g, ix, big.NewInt(0), access.WithAssumptions(graph.NewLiteral(1, true)))
	require.NoError(t, err)
	assert.Contains(t, asSet(got), graph.NewLiteral(1, true))

	_, err = access.Access(g, ix, big.NewInt(2), access.WithAssumptions(graph.NewLiteral(1, true)))
	require.Error(t, err)
}
