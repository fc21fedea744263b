package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dnnf/decdnnf/enum"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

func build(t *testing.T, fn func(b *graph.Builder)) (*graph.Graph, *varset.Index) {
	t.Helper()
	b := graph.NewBuilder(0)
	fn(b)
	g, err := b.Build()
	require.NoError(t, err)
	ix, err := varset.Build(g)
	require.NoError(t, err)

	return g, ix
}

func collect(t *testing.T, run func(enum.Visitor) error) []enum.Model {
	t.Helper()
	var got []enum.Model
	require.NoError(t, run(func(m enum.Model) error {
		cp := append(enum.Model(nil), m...)
		got = append(got, cp)
		return nil
	}))

	return got
}

// Scenario 2: Or(+1->T, -1->T), n_vars=1 -> two full models, [+1] and [-1].
func TestEnumerateFull_OrOfLiterals(t *testing.T) {
	g, ix := build(t, func(b *graph.Builder) {
		b.RaiseNVars(1)
		_, _ = b.TrueLeaf(1)
		_, _ = b.OrNode(2)
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)})
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)})
		_ = b.SetRoot(2)
	})

	models := collect(t, func(v enum.Visitor) error { return enum.EnumerateFull(g, ix, v) })
	require.Len(t, models, 2)
	assert.ElementsMatch(t, []enum.Model{
		{graph.NewLiteral(1, true)},
		{graph.NewLiteral(1, false)},
	}, models)
}

// Same graph with n_vars=2: full mode expands the free var 2 (absent from
// vars(root)), disjoint-partial mode leaves it unassigned.
func TestEnumerate_FreeVariableFrontier(t *testing.T) {
	g, ix := build(t, func(b *graph.Builder) {
		b.RaiseNVars(2)
		_, _ = b.TrueLeaf(1)
		_, _ = b.OrNode(2)
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)})
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)})
		_ = b.SetRoot(2)
	})

	full := collect(t, func(v enum.Visitor) error { return enum.EnumerateFull(g, ix, v) })
	assert.Len(t, full, 4)
	for _, m := range full {
		assert.Len(t, m, 2)
	}

	partial := collect(t, func(v enum.Visitor) error { return enum.EnumerateDisjointPartial(g, ix, v) })
	assert.Len(t, partial, 2)
	for _, m := range partial {
		assert.Len(t, m, 1)
	}
}

// And(Or(+1->T,-1->T), Or(+2->T,-2->T)), n_vars=2: both modes agree on 4
// models since neither Or has an internal free variable.
func TestEnumerate_AndOfTwoOrs(t *testing.T) {
	g, ix := build(t, func(b *graph.Builder) {
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

	full := collect(t, func(v enum.Visitor) error { return enum.EnumerateFull(g, ix, v) })
	assert.Len(t, full, 4)

	partial := collect(t, func(v enum.Visitor) error { return enum.EnumerateDisjointPartial(g, ix, v) })
	assert.Len(t, partial, 4)
	for _, m := range partial {
		assert.Len(t, m, 2)
	}
}

func TestEnumerateFull_StopSentinelHaltsCleanly(t *testing.T) {
	g, ix := build(t, func(b *graph.Builder) {
		b.RaiseNVars(1)
		_, _ = b.TrueLeaf(1)
		_, _ = b.OrNode(2)
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, true)})
		_ = b.AddBranch(2, 1, []graph.Literal{graph.NewLiteral(1, false)})
		_ = b.SetRoot(2)
	})

	n := 0
	err := enum.EnumerateFull(g, ix, func(enum.Model) error {
		n++
		return enum.ErrStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEnumerateFull_FalseLeafPruned(t *testing.T) {
	g, ix := build(t, func(b *graph.Builder) {
		b.RaiseNVars(1)
		_, _ = b.FalseLeaf(1)
		_ = b.SetRoot(1)
	})

	models := collect(t, func(v enum.Visitor) error { return enum.EnumerateFull(g, ix, v) })
	assert.Empty(t, models)
}
