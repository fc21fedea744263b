// File: options.go
package access

import "github.com/go-dnnf/decdnnf/graph"

// Order selects which total ordering over models k indexes into.
type Order int

const (
	// Structural follows the graph's own builder-insertion order at every
	// And and Or node — the cheapest order to compute, and the one
	// enum.EnumerateFull would produce if it were run to completion.
	Structural Order = iota
	// Lexicographic orders models by variable index ascending, negative
	// literal before positive at each variable.
	Lexicographic
)

// Options configures Access. The zero value is structural order with no
// assumptions.
type Options struct {
	order       Order
	assumptions []graph.Literal
}

// Option mutates Options before Access runs.
type Option func(*Options)

// WithLexicographic selects lexicographic order in place of the default
// structural order.
func WithLexicographic() Option {
	return func(o *Options) { o.order = Lexicographic }
}

// WithAssumptions restricts Access to models consistent with the given
// literals; k then indexes the (generally smaller) conditional model set.
func WithAssumptions(assumptions ...graph.Literal) Option {
	return func(o *Options) { o.assumptions = assumptions }
}
