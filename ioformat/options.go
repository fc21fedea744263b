// File: options.go
package ioformat

// Config configures a reader. The zero value infers n_vars from the
// largest variable referenced by any literal in the input.
type Config struct {
	nVars    int
	hasNVars bool
}

// Option mutates a Config before a reader runs.
type Option func(*Config)

// WithNVars fixes n_vars explicitly rather than inferring it from the
// input (the CLI's "--n-vars N" common flag).
func WithNVars(n int) Option {
	return func(c *Config) {
		c.nVars = n
		c.hasNVars = true
	}
}
