// File: model.go
package access

import "github.com/go-dnnf/decdnnf/graph"

// Model is one retrieved total assignment: every variable in [1, NVars]
// appears exactly once.
type Model []graph.Literal
