// SPDX-License-Identifier: MIT
// Package: cpkit/scanner
//
// errors.go — sentinel errors for the scanner package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Position context ("line N, token M") is attached with %w wrapping.
//   • ErrParse additionally wraps the underlying strconv error.

package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLine indicates the source was exhausted while a line was expected.
	ErrMissingLine = errors.New("scanner: missing line")

	// ErrMissingToken indicates the current line ran out of tokens.
	ErrMissingToken = errors.New("scanner: missing token")

	// ErrParse indicates a token could not be converted to the requested type,
	// including values that overflow its width.
	ErrParse = errors.New("scanner: parse failure")

	// ErrOutOfRange indicates a parsed value lies outside its declared Range.
	// Only reported under RangeStrict.
	ErrOutOfRange = errors.New("scanner: value out of range")

	// ErrUnconsumedToken is returned by Line.Close when tokens remain.
	ErrUnconsumedToken = errors.New("scanner: unconsumed token")

	// ErrUnconsumedLine is returned by Scanner.Close when lines remain.
	ErrUnconsumedLine = errors.New("scanner: unconsumed line")

	// ErrBadCount indicates a negative element count passed to NextN.
	ErrBadCount = errors.New("scanner: negative count")

	// ErrClosed indicates a read from a Scanner or Line after Close.
	ErrClosed = errors.New("scanner: use after close")
)

// lineErrorf prefixes err with its 1-based line number.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// tokenErrorf prefixes err with its 1-based line and token numbers.
func tokenErrorf(line, token int, err error) error {
	return fmt.Errorf("line %d, token %d: %w", line, token, err)
}
