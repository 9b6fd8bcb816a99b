// SPDX-License-Identifier: MIT
// Package: cpkit/scanner
//
// scanner.go — Scanner: line source over an io.Reader.
//
// Contract:
//   • Lines are read lazily, one bufio token per call.
//   • Close reports leftover lines; blank ones count unless skipped.

package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Scanner pulls lines from an input source and hands them out as *Line views.
// A Scanner owns its source for its whole lifetime and is not safe for
// concurrent use.
type Scanner struct {
	src    *bufio.Scanner
	cfg    config
	lineNo int // lines handed out so far
	closed bool
}

// New returns a Scanner reading lines from r.
// Line terminators "\n" and "\r\n" are both accepted.
func New(r io.Reader, opts ...Option) *Scanner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	src := bufio.NewScanner(r)
	src.Buffer(make([]byte, 0, min(initialBufferSize, cfg.maxLineSize)), cfg.maxLineSize)

	return &Scanner{src: src, cfg: cfg}
}

// FromString returns a Scanner over the lines of s.
func FromString(s string, opts ...Option) *Scanner {
	return New(strings.NewReader(s), opts...)
}

// Policy reports the range policy lines from this Scanner apply.
func (s *Scanner) Policy() RangePolicy {
	return s.cfg.policy
}

// NextLine advances to the next input line and returns a token view over it.
// Returns ErrMissingLine when the source is exhausted.
func (s *Scanner) NextLine() (*Line, error) {
	text, err := s.next()
	if err != nil {
		return nil, err
	}

	return &Line{
		tokens: strings.Fields(text),
		no:     s.lineNo,
		policy: s.cfg.policy,
	}, nil
}

// NextRaw returns the next input line verbatim, without its terminator.
// Use it when a whole line is a single value, such as a symbol string.
func (s *Scanner) NextRaw() (string, error) {
	return s.next()
}

// Scan fetches the next line, passes it to fn and closes it afterwards.
// The close check runs even when fn fails; both errors are joined.
func (s *Scanner) Scan(fn func(*Line) error) error {
	l, err := s.NextLine()
	if err != nil {
		return err
	}

	return errors.Join(fn(l), l.Close())
}

// Close verifies that every input line was consumed.
// Returns ErrUnconsumedLine if the source still holds a line; with
// WithTrailingBlankLines, whitespace-only lines are skipped first.
// Calling Close more than once returns nil.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for s.src.Scan() {
		s.lineNo++
		if !s.cfg.skipBlank || strings.TrimSpace(s.src.Text()) != "" {
			return lineErrorf(s.lineNo, ErrUnconsumedLine)
		}
	}
	if err := s.src.Err(); err != nil {
		return lineErrorf(s.lineNo+1, err)
	}

	return nil
}

func (s *Scanner) next() (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	if !s.src.Scan() {
		if err := s.src.Err(); err != nil {
			return "", lineErrorf(s.lineNo+1, err)
		}
		return "", lineErrorf(s.lineNo+1, ErrMissingLine)
	}
	s.lineNo++

	return s.src.Text(), nil
}
