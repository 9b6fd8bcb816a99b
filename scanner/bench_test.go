package scanner_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/cpkit/scanner"
)

// benchmarkNextN scans a header line "n" followed by n random uint32 values.
func benchmarkNextN(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte('\n')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(rng.Int31n(1e9)+1), 10))
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := scanner.FromString(input)
		var count int
		err := s.Scan(func(l *scanner.Line) (err error) {
			count, err = scanner.Next(l, scanner.Closed(1, 200_000))
			return err
		})
		if err != nil {
			b.Fatalf("header: %v", err)
		}
		err = s.Scan(func(l *scanner.Line) error {
			_, err := scanner.NextN(l, count, scanner.Closed[uint32](1, 1e9))
			return err
		})
		if err != nil {
			b.Fatalf("values: %v", err)
		}
		if err := s.Close(); err != nil {
			b.Fatalf("close: %v", err)
		}
	}
}

// BenchmarkNextN_1K measures a 1000-value line.
func BenchmarkNextN_1K(b *testing.B) { benchmarkNextN(b, 1_000) }

// BenchmarkNextN_100K measures a 100000-value line, close to the largest judge inputs.
func BenchmarkNextN_100K(b *testing.B) { benchmarkNextN(b, 100_000) }
