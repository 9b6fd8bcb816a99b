// Package cpkit is a small toolkit distilled from competitive-programming
// solutions: the parts that kept being rewritten from problem to problem.
//
// 🚀 What is in the box?
//
//	• scanner/ — strict, line-oriented reader of typed, range-checked tokens
//	• window/  — shortest window covering every distinct symbol (two pointers)
//
// ✨ Why?
//
//   - Judge inputs are self-describing ("N, then N values in 1..=10^9");
//     scanner makes every count, range and leftover token explicit.
//   - Both packages are pure Go, synchronous and allocation-light, with no
//     shared state between calls.
//
// Layout:
//
//	scanner/          — Scanner, Line, Range, Next/NextN
//	window/           — MinCover, MinCoverLen, MinCoverString, Distinct
//	cmd/pokemons/     — driver: "N\n<types>\n" → minimum window length
//	internal/config/  — YAML + .env + environment configuration for drivers
//	internal/logging/ — slog setup for drivers
//
// Quick example:
//
//	echo -e "7\nbcAAcbc" | go run ./cmd/pokemons
//	3
//
//	go get github.com/katalvlaran/cpkit
package cpkit
