// Package bset implements a compact set of small non-negative integers as a
// bit-vector: bit i of the vector is set exactly when i is a member. The
// vector grows in 64-bit words as larger members are added.
package bset

import (
	"github.com/bits-and-blooms/bitset"
)

// BSet is a bit-vector set. The zero value is an empty set ready to use.
// A BSet is not safe for concurrent use.
type BSet struct {
	bits *bitset.BitSet
}

// New returns an empty set with room for members below capacity without
// growing.
func New(capacity int) *BSet {
	if capacity < 0 {
		capacity = 0
	}
	return &BSet{bits: bitset.New(uint(capacity))}
}

func (s *BSet) vector() *bitset.BitSet {
	if s.bits == nil {
		s.bits = bitset.New(0)
	}
	return s.bits
}

// Add inserts i into the set. Negative values panic.
func (s *BSet) Add(i int) {
	if i < 0 {
		panic("bset: negative member")
	}
	s.vector().Set(uint(i))
}

// Remove deletes i from the set and reports whether it was present. Trailing
// zero words are dropped afterwards.
func (s *BSet) Remove(i int) bool {
	if !s.Contains(i) {
		return false
	}
	b := s.vector().Clear(uint(i))
	if b.None() {
		s.bits = bitset.New(0)
	} else {
		b.Compact()
	}
	return true
}

// Contains reports whether i is a member.
func (s *BSet) Contains(i int) bool {
	if i < 0 || s.bits == nil {
		return false
	}
	return s.bits.Test(uint(i))
}

// Len returns the number of members.
func (s *BSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// IsEmpty reports whether the set has no members.
func (s *BSet) IsEmpty() bool {
	return s.bits == nil || s.bits.None()
}

// Words exposes the raw bit pattern, least significant word first. Bit b of
// word w stands for the member w*64+b. The slice aliases the set and must not
// be modified.
func (s *BSet) Words() []uint64 {
	if s.bits == nil {
		return nil
	}
	return s.bits.Bytes()
}

// Width returns the number of bit positions currently held by the vector.
func (s *BSet) Width() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Len())
}

// Members returns every member in ascending order. The scan is linear in
// Width.
func (s *BSet) Members() []int {
	members := make([]int, 0, s.Len())
	if s.bits == nil {
		return members
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		members = append(members, int(i))
	}
	return members
}

// Clear removes all members.
func (s *BSet) Clear() {
	s.bits = bitset.New(0)
}
