package main

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cpkit/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_Samples(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"3\nAaA\n", 2},
		{"7\nbcAAcbc\n", 3},
		{"6\naaBCCe\n", 5},
		{"16\nAAccaaaAAccAcaaa", 3},
		{"1\r\nz\r\n", 1},
		{"7\nbcAAcbc\n\n", 3},
		{"3\nAaA\n \n\r\n", 2},
	}
	for _, tc := range cases {
		got, err := solve(strings.NewReader(tc.input))
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestSolve_LargeInput(t *testing.T) {
	flats := strings.Repeat("AbCd", 25_000)
	got, err := solve(strings.NewReader("100000\n" + flats + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", scanner.ErrMissingLine},
		{"NoTypes", "3\n", scanner.ErrMissingLine},
		{"CountNotNumber", "three\nAaA\n", scanner.ErrParse},
		{"CountZero", "0\n\n", scanner.ErrOutOfRange},
		{"CountTooLarge", "100001\nA\n", scanner.ErrOutOfRange},
		{"ExtraToken", "3 4\nAaA\n", scanner.ErrUnconsumedToken},
		{"ExtraLine", "3\nAaA\nAaA\n", scanner.ErrUnconsumedLine},
		{"ExtraLineAfterBlank", "3\nAaA\n\nAaA\n", scanner.ErrUnconsumedLine},
		{"ShortTypes", "4\nAaA\n", ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solve(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSolve_Unchecked reproduces the lenient behaviour: a wrong count is
// accepted and the answer is computed from the symbols actually present.
func TestSolve_Unchecked(t *testing.T) {
	got, err := solve(strings.NewReader("0\nbcAAcbc\n"), scanner.WithRangePolicy(scanner.RangeUnchecked))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
