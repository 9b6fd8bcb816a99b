// SPDX-License-Identifier: MIT
// Package: cpkit/scanner
//
// options.go — functional options for New and FromString.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Reads never panic; they return sentinel errors.

package scanner

import "fmt"

// DefaultMaxLineSize bounds a single input line. It fits 2·10^5 ten-digit
// values plus separators; bufio's 64 KiB default does not.
const DefaultMaxLineSize = 4 << 20

// initialBufferSize is the starting capacity of the line buffer.
const initialBufferSize = 64 * 1024

// Option customizes a Scanner.
type Option func(*config)

type config struct {
	policy      RangePolicy
	maxLineSize int
	skipBlank   bool
}

func defaultConfig() config {
	return config{
		policy:      RangeStrict,
		maxLineSize: DefaultMaxLineSize,
	}
}

// WithRangePolicy selects how declared ranges are enforced.
// Panics on a policy other than RangeStrict or RangeUnchecked.
func WithRangePolicy(p RangePolicy) Option {
	if p != RangeStrict && p != RangeUnchecked {
		panic(fmt.Sprintf("scanner: WithRangePolicy(%d)", int(p)))
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
// Panics if n ≤ 0.
func WithMaxLineSize(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("scanner: WithMaxLineSize(%d)", n))
	}
	return func(c *config) {
		c.maxLineSize = n
	}
}

// WithTrailingBlankLines makes Close accept whitespace-only lines after the
// last consumed one. A non-blank leftover line is still ErrUnconsumedLine.
func WithTrailingBlankLines() Option {
	return func(c *config) {
		c.skipBlank = true
	}
}
