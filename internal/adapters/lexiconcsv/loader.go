// Package lexiconcsv ingests the lexicon resource from its CSV form into
// entry rows plus the character map supplied by reserved control rows.
// Multi-value columns are pipe-separated; the frequency column holds
// "category:weight" pairs. Rows whose id begins with '#' are reserved: they
// define one fallback glyph each ("#a".."#z", "#0".."#9", "#_" for space).
package lexiconcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corey/sutra/internal/ports"
)

// reservedPrefix marks character-map control rows.
const reservedPrefix = "#"

// column names in the resource header. Matching is case-insensitive because
// the historical resource mixes cases.
const (
	colID        = "sanskrit"
	colGloss     = "english"
	colFrame     = "semantic_frame"
	colTriggers  = "contextual_triggers"
	colAnchors   = "conceptual_anchors"
	colResolvers = "ambiguity_resolvers"
	colFrequency = "usage_frequency_index"
	colNeighbors = "semantic_neighbors"
	colScript    = "script_form"
)

// Load parses the resource. Returns the entry rows, the raw character map,
// or an error when the header is missing required columns or a row is
// malformed. Optional fields default to empty; frequency weights are clamped
// to [0,1] here so the lexicon never sees out-of-range values.
func Load(r io.Reader) ([]ports.EntryRow, map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate trailing optional columns

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("lexicon csv: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colID, colGloss, colScript} {
		if _, ok := col[required]; !ok {
			return nil, nil, fmt.Errorf("lexicon csv: missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []ports.EntryRow
	charMap := make(map[string]string)
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("lexicon csv: line %d: %w", line, err)
		}

		id := field(record, colID)
		if id == "" {
			continue
		}

		if strings.HasPrefix(id, reservedPrefix) {
			ch := strings.TrimPrefix(id, reservedPrefix)
			if ch == "_" {
				ch = " "
			}
			glyph := field(record, colScript)
			if len([]rune(ch)) != 1 || glyph == "" {
				return nil, nil, fmt.Errorf("lexicon csv: line %d: malformed reserved row %q", line, id)
			}
			charMap[strings.ToLower(ch)] = glyph
			continue
		}

		rows = append(rows, ports.EntryRow{
			ID:             id,
			Gloss:          field(record, colGloss),
			SemanticFrame:  splitPipes(field(record, colFrame)),
			Triggers:       splitPipes(field(record, colTriggers)),
			Anchors:        splitPipes(field(record, colAnchors)),
			Resolvers:      splitPipes(field(record, colResolvers)),
			UsageFrequency: parseFrequency(field(record, colFrequency)),
			Neighbors:      splitPipes(field(record, colNeighbors)),
			ScriptForm:     field(record, colScript),
		})
	}
	return rows, charMap, nil
}

// splitPipes splits a pipe-separated field, trimming and lowercasing pieces.
// Empty pieces are dropped.
func splitPipes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(s, "|") {
		piece = strings.ToLower(strings.TrimSpace(piece))
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// parseFrequency parses "category:weight|category:weight" pairs. Unparsable
// pieces are skipped rather than fatal — missing data scores 0, it does not
// abort the load. Weights clamp to [0,1].
func parseFrequency(s string) map[string]float64 {
	if s == "" {
		return nil
	}
	out := make(map[string]float64)
	for _, piece := range strings.Split(s, "|") {
		piece = strings.TrimSpace(piece)
		i := strings.LastIndex(piece, ":")
		if i <= 0 {
			continue
		}
		cat := strings.ToLower(strings.TrimSpace(piece[:i]))
		w, err := strconv.ParseFloat(strings.TrimSpace(piece[i+1:]), 64)
		if err != nil || cat == "" {
			continue
		}
		if w < 0 {
			w = 0
		} else if w > 1 {
			w = 1
		}
		out[cat] = w
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
