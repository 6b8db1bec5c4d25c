package ports

// PatternScanner finds keyword patterns in text using multi-pattern matching
// (Aho-Corasick). A single pass over the text finds all matching patterns
// simultaneously, regardless of how many patterns are in the set. This is
// O(n + m + z) where n=text length, m=total pattern length, z=match count.
//
// The scanner is built once from the fixed category keyword tables at startup
// and is read-only afterwards, so it may be shared across callers.
type PatternScanner interface {
	// Scan returns the indices (into the original pattern slice) of every
	// distinct pattern found in text. Patterns are matched case-sensitively;
	// the caller lowercases text first. Returns nil when nothing matches.
	Scan(text string) []int
}
