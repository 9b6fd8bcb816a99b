// SPDX-License-Identifier: MIT
// Package: cpkit/scanner
//
// types.go — Value constraint, RangePolicy and Range[T].

package scanner

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Value is the set of types Next and NextN can parse.
// Named types (type Count uint16) are accepted as well.
type Value interface {
	constraints.Integer | constraints.Float
}

// RangePolicy decides what happens when a parsed value violates its Range.
type RangePolicy int

const (
	// RangeStrict rejects out-of-range values with ErrOutOfRange.
	RangeStrict RangePolicy = iota

	// RangeUnchecked accepts any value that parses. Declared ranges become
	// documentation only, and out-of-range input flows through unnoticed.
	RangeUnchecked
)

// String returns the policy name accepted by ParseRangePolicy.
func (p RangePolicy) String() string {
	switch p {
	case RangeStrict:
		return "strict"
	case RangeUnchecked:
		return "unchecked"
	}
	return fmt.Sprintf("RangePolicy(%d)", int(p))
}

// ParseRangePolicy maps "strict" or "unchecked" (case-insensitive) to a RangePolicy.
func ParseRangePolicy(s string) (RangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return RangeStrict, nil
	case "unchecked":
		return RangeUnchecked, nil
	}
	return 0, fmt.Errorf("scanner: unknown range policy %q", s)
}

// Range is a declared interval of admissible values.
// The zero value is Unbounded.
//
// Constructors mirror the usual interval notations:
//
//	Closed(1, 100_000)   1..=100000
//	HalfOpen(0, 10)      0..10
//	AtLeast(5)           5..
//	AtMost(7)            ..=7
//	Unbounded[int]()     ..
type Range[T Value] struct {
	lo, hi       T
	hasLo, hasHi bool
	hiExclusive  bool
}

// Closed returns the range lo ≤ v ≤ hi.
func Closed[T Value](lo, hi T) Range[T] {
	return Range[T]{lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// HalfOpen returns the range lo ≤ v < hi.
func HalfOpen[T Value](lo, hi T) Range[T] {
	return Range[T]{lo: lo, hi: hi, hasLo: true, hasHi: true, hiExclusive: true}
}

// AtLeast returns the range v ≥ lo.
func AtLeast[T Value](lo T) Range[T] {
	return Range[T]{lo: lo, hasLo: true}
}

// AtMost returns the range v ≤ hi.
func AtMost[T Value](hi T) Range[T] {
	return Range[T]{hi: hi, hasHi: true}
}

// Unbounded returns the range that admits every value of T.
func Unbounded[T Value]() Range[T] {
	return Range[T]{}
}

// Contains reports whether v lies inside r.
// A NaN is contained only by an unbounded range.
func (r Range[T]) Contains(v T) bool {
	if r.hasLo && !(v >= r.lo) {
		return false
	}
	if r.hasHi {
		if r.hiExclusive {
			return v < r.hi
		}
		return v <= r.hi
	}
	return true
}

// String renders r in interval notation, e.g. "1..=100000" or "0..10".
func (r Range[T]) String() string {
	var b strings.Builder
	if r.hasLo {
		fmt.Fprint(&b, r.lo)
	}
	b.WriteString("..")
	if r.hasHi {
		if !r.hiExclusive {
			b.WriteByte('=')
		}
		fmt.Fprint(&b, r.hi)
	}
	return b.String()
}
