// File: visitor.go
package enum

import "errors"

// Visitor receives one emitted Model. Returning a non-nil error aborts the
// walk; returning ErrStop (or any error wrapping it) aborts cleanly, without
// being surfaced to the caller of EnumerateFull/EnumerateDisjointPartial as
// a failure. Any other error propagates unchanged.
type Visitor func(Model) error

// ErrStop is the sentinel a Visitor returns to request an early, successful
// stop.
var ErrStop = errors.New("enum: enumeration stopped by visitor")
