// File: options.go
package sample

import (
	"math/rand"

	"github.com/go-dnnf/decdnnf/graph"
)

// Options configures a sampling run. The zero value has no RNG and no
// assumptions; Sample/SampleN reject a missing RNG with ErrNeedRandSource.
type Options struct {
	rng           *rand.Rand
	assumptions   []graph.Literal
	lexicographic bool
}

// Option mutates Options before sampling runs.
type Option func(*Options)

// WithRand sets an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with seed, for reproducible
// draws.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithAssumptions restricts sampling to models consistent with the given
// literals.
func WithAssumptions(assumptions ...graph.Literal) Option {
	return func(o *Options) { o.assumptions = assumptions }
}

// WithLexicographic draws the random index through access's lexicographic
// decoding instead of the structural one. The draw is still uniform either
// way (both are bijections over the same [0, total) index space); this
// only changes which literal ordering convention backs the decode, for
// symmetry with direct-access's own --lexicographic-order flag.
func WithLexicographic() Option {
	return func(o *Options) { o.lexicographic = true }
}
