// SPDX-License-Identifier: MIT
// Package: cpkit/window
//
// types.go — Span and the symbol counter used by MinCover.

package window

import "fmt"

// Span is a half-open window [Left, Right) into a sequence.
// The zero Span is the empty window at index 0.
type Span struct {
	Left  int
	Right int
}

// Len returns the number of symbols inside the window.
func (s Span) Len() int {
	return s.Right - s.Left
}

// String renders the span as "[Left,Right)".
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Left, s.Right)
}

// counter is the active window: symbol → occurrences inside the window.
// Only positive counts are stored, so len(c) is the window's coverage.
type counter[S comparable] map[S]int

// push records one more occurrence of sym.
func (c counter[S]) push(sym S) {
	c[sym]++
}

// pop removes one occurrence of sym, evicting it when none remain.
func (c counter[S]) pop(sym S) {
	if c[sym] <= 1 {
		delete(c, sym)
		return
	}
	c[sym]--
}
