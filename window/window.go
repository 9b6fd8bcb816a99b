// SPDX-License-Identifier: MIT
// Package: cpkit/window
//
// window.go — MinCover and its wrappers.
//
// Complexity: O(n) time, O(k) memory for k distinct symbols.

package window

// Distinct returns the number of unique symbols in seq.
// Complexity: O(n) time, O(σ) memory.
func Distinct[S comparable](seq []S) int {
	seen := make(map[S]struct{})
	for _, sym := range seq {
		seen[sym] = struct{}{}
	}

	return len(seen)
}

// MinCover returns the leftmost shortest window of seq that contains every
// distinct symbol of seq at least once.
//
// Edge cases:
//   - empty seq           → Span{} (length 0)
//   - one distinct symbol → a window of length 1
//
// MinCover never fails: any non-empty sequence is covered by itself.
// Complexity: O(n) time, O(σ) memory.
func MinCover[S comparable](seq []S) Span {
	n := len(seq)
	if n == 0 {
		return Span{}
	}
	need := Distinct(seq)
	active := make(counter[S], need)
	best := Span{Left: 0, Right: n}

	left, right := 0, 0
	for right < n {
		// Grow until every symbol is covered or the input runs out.
		for len(active) < need && right < n {
			active.push(seq[right])
			right++
		}
		// Shrink while still covered; the first window seen for a given
		// length is the leftmost one, so ties keep it.
		for len(active) == need {
			if right-left < best.Len() {
				best = Span{Left: left, Right: right}
			}
			active.pop(seq[left])
			left++
		}
	}

	return best
}

// MinCoverLen returns the length of the shortest window of seq containing
// every distinct symbol of seq. It is 0 for an empty seq and in 1..len(seq)
// otherwise.
func MinCoverLen[S comparable](seq []S) int {
	return MinCover(seq).Len()
}

// MinCoverString is MinCoverLen over the bytes of s. Case matters:
// 'A' and 'a' are different symbols.
func MinCoverString(s string) int {
	return MinCoverLen([]byte(s))
}
