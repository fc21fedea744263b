// File: sample.go
package sample

import (
	"math/big"

	"github.com/go-dnnf/decdnnf/access"
	"github.com/go-dnnf/decdnnf/count"
	"github.com/go-dnnf/decdnnf/graph"
	"github.com/go-dnnf/decdnnf/varset"
)

// Sample draws one model uniformly at random from g's model set under the
// configured assumptions.
func Sample(g *graph.Graph, ix *varset.Index, opts ...Option) (access.Model, error) {
	models, err := SampleN(g, ix, 1, opts...)
	if err != nil {
		return nil, err
	}

	return models[0], nil
}

// SampleN draws n models independently and uniformly at random (with
// replacement — repeats are possible, exactly as a uniform i.i.d. draw
// implies) from g's model set under the configured assumptions. The
// structural-order path (the default) reuses one count.Table across every
// draw; WithLexicographic trades that reuse for access's lexicographic
// decode, one count.New Counter build per draw.
func SampleN(g *graph.Graph, ix *varset.Index, n int, opts ...Option) ([]access.Model, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		return nil, ErrNeedRandSource
	}

	if o.lexicographic {
		return sampleNLexicographic(g, ix, n, o)
	}

	tb, err := count.New(g, ix).Table(o.assumptions)
	if err != nil {
		return nil, err
	}
	if tb.Total.Sign() <= 0 {
		return nil, graph.ErrNoModel
	}

	out := make([]access.Model, n)
	for i := 0; i < n; i++ {
		k := new(big.Int).Rand(o.rng, tb.Total)
		model, err := access.FromTable(tb, k)
		if err != nil {
			return nil, err
		}
		out[i] = model
	}

	return out, nil
}

// sampleNLexicographic draws n uniform indices and decodes each through
// access's lexicographic order. Its own Counter only supplies the total;
// each access.Access call builds a fresh Counter for its decode.
func sampleNLexicographic(g *graph.Graph, ix *varset.Index, n int, o Options) ([]access.Model, error) {
	total, err := count.New(g, ix).Count(o.assumptions)
	if err != nil {
		return nil, err
	}
	if total.Sign() <= 0 {
		return nil, graph.ErrNoModel
	}

	out := make([]access.Model, n)
	for i := 0; i < n; i++ {
		k := new(big.Int).Rand(o.rng, total)
		model, err := access.Access(g, ix, k, access.WithAssumptions(o.assumptions...), access.WithLexicographic())
		if err != nil {
			return nil, err
		}
		out[i] = model
	}

	return out, nil
}
