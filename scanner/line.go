// SPDX-License-Identifier: MIT
// Package: cpkit/scanner
//
// line.go — Line: typed, range-checked token reads within one line.
//
// Contract:
//   • Next/NextN parse by the bit size of T and never wrap on overflow.
//   • NextN checks the token count before allocating.

package scanner

import (
	"fmt"
	"reflect"
	"strconv"
)

// Line is a transient token view over one input line, produced by
// Scanner.NextLine. Tokens are consumed left to right.
type Line struct {
	tokens []string
	pos    int // tokens consumed so far
	no     int // 1-based line number
	policy RangePolicy
	closed bool
}

// Number returns the 1-based position of this line in the input.
func (l *Line) Number() int {
	return l.no
}

// Remaining returns the number of tokens not yet consumed.
func (l *Line) Remaining() int {
	return len(l.tokens) - l.pos
}

// NextString consumes the next token and returns it unparsed.
func (l *Line) NextString() (string, error) {
	tok, _, err := l.take()
	return tok, err
}

// Close verifies that every token on the line was consumed.
// Returns ErrUnconsumedToken otherwise. Calling Close more than once
// returns nil.
func (l *Line) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if rest := l.Remaining(); rest > 0 {
		return tokenErrorf(l.no, l.pos+1, fmt.Errorf("%w: %d left, next %q", ErrUnconsumedToken, rest, l.tokens[l.pos]))
	}

	return nil
}

// take consumes one token and returns it with its 1-based index.
func (l *Line) take() (string, int, error) {
	if l.closed {
		return "", 0, lineErrorf(l.no, ErrClosed)
	}
	if l.pos >= len(l.tokens) {
		return "", 0, tokenErrorf(l.no, l.pos+1, ErrMissingToken)
	}
	tok := l.tokens[l.pos]
	l.pos++

	return tok, l.pos, nil
}

// Next consumes the next token of l, parses it as T and checks it against r.
//
// Errors:
//   - ErrMissingToken — the line has no tokens left.
//   - ErrParse        — the token is not a valid T (syntax or overflow).
//   - ErrOutOfRange   — the value is outside r and the policy is RangeStrict.
//
// A token that fails to parse is still consumed.
func Next[T Value](l *Line, r Range[T]) (T, error) {
	var zero T
	tok, idx, err := l.take()
	if err != nil {
		return zero, err
	}
	v, err := parse[T](tok)
	if err != nil {
		return zero, tokenErrorf(l.no, idx, fmt.Errorf("%w: %q as %T: %w", ErrParse, tok, zero, err))
	}
	if l.policy == RangeStrict && !r.Contains(v) {
		return zero, tokenErrorf(l.no, idx, fmt.Errorf("%w: %v not in %s", ErrOutOfRange, v, r))
	}

	return v, nil
}

// NextN consumes exactly n tokens, each parsed as T and checked against r.
// n is the count the caller read from an earlier field; NextN never infers it.
// Returns ErrBadCount if n < 0, ErrMissingToken without consuming anything if
// fewer than n tokens remain, and the first failing token's error otherwise.
func NextN[T Value](l *Line, n int, r Range[T]) ([]T, error) {
	if n < 0 {
		return nil, lineErrorf(l.no, fmt.Errorf("%w: %d", ErrBadCount, n))
	}
	if n > l.Remaining() {
		return nil, tokenErrorf(l.no, len(l.tokens)+1, ErrMissingToken)
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := Next(l, r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// parse converts tok to T using the bit size of T's underlying kind,
// so "300" fails for uint8 instead of wrapping.
func parse[T Value](tok string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(tok, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	}

	return v, nil
}
