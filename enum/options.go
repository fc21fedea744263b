// File: options.go
package enum

import "context"

// Options configures an enumeration run. The zero value enumerates with no
// cancellation hook.
type Options struct {
	ctx context.Context
}

// Option mutates Options before a walk starts, applied in order.
type Option func(*Options)

// WithContext supplies a context checked between emissions; cancellation is
// reported as ctx.Err() from EnumerateFull/EnumerateDisjointPartial.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}
