// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Storage caches compiled lexicons in durable storage so the source CSV is
// parsed once, not on every invocation. Each lexicon fingerprint (content
// hash of the source file) gets its own namespace.
//
// Crash safety: SaveLexicon must be transactional. A crash mid-write must
// not corrupt a previously committed snapshot.
type Storage interface {
	// SaveLexicon persists a compiled lexicon snapshot under its fingerprint.
	// Overwrites any prior snapshot for the same fingerprint.
	SaveLexicon(fingerprint string, snap *LexiconSnapshot) error

	// LoadLexicon retrieves the snapshot for a fingerprint.
	// Returns nil, nil if no snapshot exists (fresh or changed source).
	LoadLexicon(fingerprint string) (*LexiconSnapshot, error)

	// DeleteLexicon removes the snapshot for a fingerprint.
	// Idempotent: deleting a missing snapshot is not an error.
	DeleteLexicon(fingerprint string) error

	// Close releases the underlying database handle.
	Close() error
}

// LexiconSnapshot is the serializable form of a compiled lexicon: the raw
// entry rows plus the character-map rows extracted from reserved entries.
// The in-memory lexicon (concept index included) is rebuilt from these rows
// on load; derived structures are cheap relative to CSV parsing and are not
// persisted.
type LexiconSnapshot struct {
	Entries []EntryRow        `json:"entries"`
	CharMap map[string]string `json:"char_map"` // char -> script glyph
}

// EntryRow is one lexicon row in wire form. Multi-value fields are already
// split; frequency weights are already parsed and clamped to [0,1].
type EntryRow struct {
	ID             string             `json:"id"`
	Gloss          string             `json:"gloss"`
	SemanticFrame  []string           `json:"semantic_frame,omitempty"`
	Triggers       []string           `json:"triggers,omitempty"`
	Anchors        []string           `json:"anchors,omitempty"`
	Resolvers      []string           `json:"resolvers,omitempty"`
	UsageFrequency map[string]float64 `json:"usage_frequency,omitempty"`
	Neighbors      []string           `json:"neighbors,omitempty"`
	ScriptForm     string             `json:"script_form"`
}
