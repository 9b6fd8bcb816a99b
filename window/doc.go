// Package window finds the shortest contiguous window of a sequence that
// contains every distinct symbol of the whole sequence at least once.
//
// 🚀 What is it?
//
//	Given "bcAAcbc" the distinct symbols are {b, c, A}; the shortest window
//	holding all three is "Acb" at [3,6), length 3. The classic
//	use is the "catch one of every kind" puzzle: a row of flats, each with
//	one creature type, and the visitor wants to walk the fewest flats.
//
// ✨ Key features:
//   - generic over any comparable symbol type (bytes, runes, IDs)
//   - MinCoverLen for the length alone, MinCover for the leftmost bounds
//   - empty input is not an error: the answer is 0
//
// Algorithm (two pointers, half-open window [left, right)):
//  1. need = number of distinct symbols in the whole sequence.
//  2. Grow: while the window covers fewer than need symbols, push seq[right].
//  3. Shrink: while it covers all of them, record right-left, pop seq[left].
//     A symbol whose count drops to zero is evicted, so the map size always
//     equals the number of distinct symbols inside the window.
//  4. Repeat until right reaches the end.
//
// Complexity:
//
//	Time   = O(n)       (each pointer moves at most n times)
//	Memory = O(σ)       (σ = alphabet size)
//
// See example_test.go for runnable scenarios.
package window
