// Package data embeds the starter lexicon for compile-time inclusion.
// The resource is a CSV of annotated Sanskrit entries plus the reserved
// character-map rows ("#a".."#z", "#0".."#9", "#_") that supply the
// transliteration fallback glyphs.
//
// Usage:
//
//	f, _ := data.FS.Open(data.LexiconPath)
//	rows, charMap, err := lexiconcsv.Load(f)
package data

import "embed"

// LexiconPath is the embedded starter lexicon location inside FS.
const LexiconPath = "lexicon.csv"

//go:embed lexicon.csv
var FS embed.FS
