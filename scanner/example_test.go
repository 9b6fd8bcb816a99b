package scanner_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cpkit/scanner"
)

////////////////////////////////////////////////////////////////////////////////
// Example: self-describing counts
////////////////////////////////////////////////////////////////////////////////

// ExampleNextN reads a count N from the first line and then exactly N
// strengths from the second, each within 1..=10^9.
func ExampleNextN() {
	s := scanner.FromString("4\n10 20 5 7\n")

	var n int
	err := s.Scan(func(l *scanner.Line) (err error) {
		n, err = scanner.Next(l, scanner.Closed(1, 1000))
		return err
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var strengths []uint32
	err = s.Scan(func(l *scanner.Line) (err error) {
		strengths, err = scanner.NextN(l, n, scanner.Closed[uint32](1, 1e9))
		return err
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(n, strengths, s.Close())
	// Output: 4 [10 20 5 7] <nil>
}

// ExampleScanner_Close shows the teardown check catching a stray line.
func ExampleScanner_Close() {
	s := scanner.FromString("1\n2\n")
	_ = s.Scan(func(l *scanner.Line) error {
		_, err := scanner.Next(l, scanner.Unbounded[int]())
		return err
	})

	err := s.Close()
	fmt.Println(err)
	fmt.Println(errors.Is(err, scanner.ErrUnconsumedLine))
	// Output:
	// line 2: scanner: unconsumed line
	// true
}

// ExampleNext_outOfRange contrasts the strict and unchecked range policies.
func ExampleNext_outOfRange() {
	for _, p := range []scanner.RangePolicy{scanner.RangeStrict, scanner.RangeUnchecked} {
		l, _ := scanner.FromString("0", scanner.WithRangePolicy(p)).NextLine()
		v, err := scanner.Next(l, scanner.Closed(1, 100_000))
		fmt.Printf("%s: v=%d err=%v\n", p, v, err)
	}
	// Output:
	// strict: v=0 err=line 1, token 1: scanner: value out of range: 0 not in 1..=100000
	// unchecked: v=0 err=<nil>
}
