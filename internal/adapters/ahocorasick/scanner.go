// Package ahocorasick implements ports.PatternScanner using an Aho-Corasick
// automaton. It wraps the petar-dambovaliev/aho-corasick library for
// O(n + m + z) multi-pattern matching — one pass over the input finds hits
// for every category keyword at once.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/sutra/internal/ports"
)

// Scanner implements ports.PatternScanner. The automaton is built once and
// read-only afterwards, so a Scanner may be shared across goroutines.
type Scanner struct {
	automaton aho.AhoCorasick
	count     int
}

// NewScanner compiles a DFA automaton from the given patterns.
func NewScanner(patterns []string) *Scanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Scanner{
		automaton: builder.Build(patterns),
		count:     len(patterns),
	}
}

// Build is a BuildScanner-compatible constructor returning the port type.
func Build(patterns []string) ports.PatternScanner {
	return NewScanner(patterns)
}

// Scan returns the indices of every distinct pattern found in text.
func (s *Scanner) Scan(text string) []int {
	if s.count == 0 || text == "" {
		return nil
	}
	matches := s.automaton.FindAll(text)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(matches))
	var out []int
	for i := range matches {
		pi := matches[i].Pattern()
		if !seen[pi] {
			seen[pi] = true
			out = append(out, pi)
		}
	}
	return out
}
