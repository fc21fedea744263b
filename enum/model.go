// File: model.go
package enum

import "github.com/go-dnnf/decdnnf/graph"

// Model is one emitted assignment: in full mode every variable in
// [1, NVars] is represented exactly once; in disjoint-partial mode
// variables never named along the walked path are simply absent.
type Model []graph.Literal
