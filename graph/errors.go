// File: errors.go
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed at package scope.
//   - Callers MUST use errors.Is(err, ErrX) to branch on error class.
//   - Every sentinel that needs payload (an offending line, node id, or
//     literal) is wrapped in a typed error that implements Unwrap() error,
//     so errors.Is still reaches the sentinel and errors.As still reaches
//     the payload.
package graph

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel error classes.
var (
	// ErrParse indicates malformed input to a parser (d4, c2d, binary).
	ErrParse = errors.New("decdnnf: parse error")

	// ErrInvalidStructure indicates a decomposability or determinism
	// violation discovered by the checker.
	ErrInvalidStructure = errors.New("decdnnf: invalid structure")

	// ErrOutOfRangeLiteral indicates a literal whose variable exceeds n_vars.
	ErrOutOfRangeLiteral = errors.New("decdnnf: literal out of range")

	// ErrIndexOutOfRange indicates a direct-access index k >= total_count.
	ErrIndexOutOfRange = errors.New("decdnnf: index out of range")

	// ErrNoModel indicates a query found no satisfying assignment; the
	// sampler returns it when the model count is zero. (The CLI's
	// compute-model prints a sentinel line instead.)
	ErrNoModel = errors.New("decdnnf: no model")

	// ErrIO indicates a read/write failure in an external format collaborator.
	ErrIO = errors.New("decdnnf: io error")
)

// ParseError reports a malformed input line to a parser.
type ParseError struct {
	Line int    // 1-based source line, 0 if not line-oriented
	Text string // offending line text
	Msg  string // human-readable description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decdnnf: parse error at line %d (%q): %s", e.Line, e.Text, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// InvalidStructureError reports which node failed decomposability or
// determinism, and which of the two invariants it violated.
type InvalidStructureError struct {
	Node NodeID
	Msg  string
}

func (e *InvalidStructureError) Error() string {
	return fmt.Sprintf("decdnnf: node %d violates structural invariant: %s", e.Node, e.Msg)
}

func (e *InvalidStructureError) Unwrap() error { return ErrInvalidStructure }

// OutOfRangeLiteralError reports a literal whose variable exceeds n_vars.
type OutOfRangeLiteralError struct {
	Lit   Literal
	NVars int
}

func (e *OutOfRangeLiteralError) Error() string {
	return fmt.Sprintf("decdnnf: literal %d references variable %d > n_vars=%d",
		int(e.Lit), e.Lit.Var(), e.NVars)
}

func (e *OutOfRangeLiteralError) Unwrap() error { return ErrOutOfRangeLiteral }

// IndexOutOfRangeError reports a direct-access index outside [0, total).
type IndexOutOfRangeError struct {
	Index *big.Int
	Total *big.Int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("decdnnf: index %s out of range [0, %s)", e.Index.String(), e.Total.String())
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// IOError wraps an underlying read/write failure from an external format.
type IOError struct {
	Op  string // e.g. "read d4", "write c2d", "read binary"
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("decdnnf: %s: %v", e.Op, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO as the class sentinel, in addition to the wrapped cause,
// so errors.Is(err, ErrIO) succeeds without climbing past a foreign Err.
func (e *IOError) Is(target error) bool { return target == ErrIO }
