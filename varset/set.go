// File: set.go
package varset

import (
	"math/big"
	"math/bits"
)

// Set is an immutable bitset over variable indices 1..n_vars. The zero
// value is not meaningful; use Empty().
type Set struct {
	bits *big.Int
}

// Empty returns the set with no members.
func Empty() Set { return Set{bits: new(big.Int)} }

// Of returns the set containing exactly the given variables.
func Of(vars ...int) Set {
	s := Empty()
	for _, v := range vars {
		s = s.WithVar(v)
	}

	return s
}

// FullRange returns the set {1, 2, ..., n}.
func FullRange(n int) Set {
	if n <= 0 {
		return Empty()
	}
	one := big.NewInt(1)
	full := new(big.Int).Lsh(one, uint(n+1))
	full.Sub(full, one)     // bits 0..n set
	full.SetBit(full, 0, 0) // variable indices start at 1, clear bit 0

	return Set{bits: full}
}

// clone returns a private copy of the backing integer so a mutation never
// aliases the receiver.
func (s Set) clone() *big.Int {
	if s.bits == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(s.bits)
}

// WithVar returns a new Set equal to s with v added.
func (s Set) WithVar(v int) Set {
	b := s.clone()
	b.SetBit(b, v, 1)

	return Set{bits: b}
}

// Contains reports whether v is a member of s.
func (s Set) Contains(v int) bool {
	if s.bits == nil {
		return false
	}

	return s.bits.Bit(v) == 1
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	out := new(big.Int)
	out.Or(s.clone(), o.clone())

	return Set{bits: out}
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	out := new(big.Int)
	out.And(s.clone(), o.clone())

	return Set{bits: out}
}

// Sub returns s \ o, the members of s absent from o.
func (s Set) Sub(o Set) Set {
	out := new(big.Int)
	out.AndNot(s.clone(), o.clone())

	return Set{bits: out}
}

// Disjoint reports whether s ∩ o = ∅.
func (s Set) Disjoint(o Set) bool { return s.Intersect(o).IsEmpty() }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s.bits == nil || s.bits.Sign() == 0 }

// Cardinality returns |s|.
func (s Set) Cardinality() int {
	if s.bits == nil {
		return 0
	}
	count := 0
	for _, w := range s.bits.Bits() {
		count += bits.OnesCount(uint(w))
	}

	return count
}

// Vars returns the members of s in ascending order. Used by enumeration and
// diagnostics, not on any hot path.
func (s Set) Vars() []int {
	if s.bits == nil {
		return nil
	}
	var out []int
	for v := 1; v <= s.bits.BitLen(); v++ {
		if s.bits.Bit(v) == 1 {
			out = append(out, v)
		}
	}

	return out
}
