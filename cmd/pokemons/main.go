// Command pokemons prints the fewest consecutive flats a visitor must walk
// through to meet every creature type living in the building.
//
// Input (stdin or -input):
//
//	N            number of flats, 1 ≤ N ≤ 100000
//	<types>      N letters, one per flat; case matters
//
// Output: the minimum window length on a single line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/katalvlaran/cpkit/internal/config"
	"github.com/katalvlaran/cpkit/internal/logging"
	"github.com/katalvlaran/cpkit/scanner"
	"github.com/katalvlaran/cpkit/window"
)

// ErrLengthMismatch indicates the symbol line does not hold exactly N symbols.
var ErrLengthMismatch = errors.New("pokemons: flat count does not match type line")

// flatCount is the declared range of N.
var flatCount = scanner.Closed(1, 100_000)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		inputPath  string
		configPath string
		profileDir string
	)
	flag.StringVar(&inputPath, "input", "", "read the problem from this file instead of stdin")
	flag.StringVar(&configPath, "config", "", "YAML configuration file")
	flag.StringVar(&profileDir, "cpuprofile", "", "write a CPU profile into this directory")
	flag.Parse()

	if err := config.LoadDotEnv(os.Getenv("ENV"), ".env"); err != nil {
		slog.Warn("Failed to load .env, continuing with existing environment variables", "error", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	if _, err := logging.Setup(os.Stderr, cfg.Log); err != nil {
		slog.Error("Failed to set up logging", "error", err)
		return 1
	}
	opts, err := cfg.Scanner.Options()
	if err != nil {
		slog.Error("Invalid scanner configuration", "error", err)
		return 1
	}

	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	}

	in := io.Reader(os.Stdin)
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			slog.Error("Failed to open input", "path", inputPath, "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	answer, err := solve(in, opts...)
	if err != nil {
		slog.Error("Failed to solve", "error", err)
		return 1
	}
	fmt.Println(answer)

	return 0
}

// solve reads one problem from r and returns the minimum window length.
// Blank lines after the type line are ignored; any other leftover is an error.
func solve(r io.Reader, opts ...scanner.Option) (int, error) {
	s := scanner.New(r, append([]scanner.Option{scanner.WithTrailingBlankLines()}, opts...)...)
	flats, err := readFlats(s)
	if err != nil {
		return 0, err
	}
	if err := s.Close(); err != nil {
		return 0, err
	}

	answer := window.MinCoverString(flats)
	slog.Debug("Solved", "flats", len(flats), "types", window.Distinct([]byte(flats)), "answer", answer)

	return answer, nil
}

// readFlats reads the count line and the type line.
func readFlats(s *scanner.Scanner) (string, error) {
	var n int
	err := s.Scan(func(l *scanner.Line) (err error) {
		n, err = scanner.Next(l, flatCount)
		return err
	})
	if err != nil {
		return "", err
	}

	flats, err := s.NextRaw()
	if err != nil {
		return "", err
	}
	if len(flats) != n && s.Policy() == scanner.RangeStrict {
		return "", fmt.Errorf("%w: declared %d, got %d", ErrLengthMismatch, n, len(flats))
	}

	return flats, nil
}
