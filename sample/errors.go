// File: errors.go
package sample

import "errors"

// ErrNeedRandSource indicates that Sample or SampleN was called without an
// RNG.
var ErrNeedRandSource = errors.New("sample: rng is required")
