// Package app wires the domain components into the two public operations:
// Tokenize (English → Sanskrit token stream) and Decode (the inverse). It
// owns construction order — lexicon before matcher, character map from the
// lexicon's reserved entries — so initialization is complete before any
// matching call can run.
package app

import (
	"github.com/corey/sutra/internal/adapters/ahocorasick"
	"github.com/corey/sutra/internal/domain/contextdet"
	"github.com/corey/sutra/internal/domain/expand"
	"github.com/corey/sutra/internal/domain/lexicon"
	"github.com/corey/sutra/internal/domain/match"
	"github.com/corey/sutra/internal/domain/score"
	"github.com/corey/sutra/internal/domain/textproc"
	"github.com/corey/sutra/internal/domain/translit"
	"github.com/corey/sutra/internal/ports"
)

// App is the assembled tokenizer. Immutable after New; safe to share across
// goroutines (the expander cache is internally synchronized).
type App struct {
	cfg      match.Config
	warnings []string

	lex     *lexicon.Lexicon
	exp     *expand.Expander
	det     *contextdet.Detector
	scorer  *score.Scorer
	finder  *score.Finder
	matcher *match.Matcher
	cmap    *translit.CharacterMap
	decoder *translit.Decoder
}

// New builds an App from ingested lexicon rows. Config values outside their
// expected ranges are clamped; the repairs are retained as warnings for the
// caller to log, never treated as fatal.
func New(rows []ports.EntryRow, charMap map[string]string, cfg match.Config) (*App, error) {
	warnings := cfg.Normalize()

	exp := expand.New(cfg.CacheCapacity)
	lex, err := lexicon.New(rows, charMap, exp.Expand)
	if err != nil {
		return nil, err
	}

	det := contextdet.NewDetector(ahocorasick.Build)
	scorer := score.NewScorer(lex, exp, det, cfg.Weights)
	finder := score.NewFinder(lex, exp, det, scorer, cfg.PhraseFloor)
	cmap := translit.NewCharacterMap(lex.CharMap())

	a := &App{
		cfg:      cfg,
		warnings: warnings,
		lex:      lex,
		exp:      exp,
		det:      det,
		scorer:   scorer,
		finder:   finder,
		matcher:  match.NewMatcher(lex, finder, cmap, cfg),
		cmap:     cmap,
	}
	a.decoder = translit.NewDecoder(a.glossOf, cmap)
	return a, nil
}

func (a *App) glossOf(id string) (string, bool) {
	e := a.lex.Entry(id)
	if e == nil {
		return "", false
	}
	return e.Gloss, true
}

// Tokenize converts English text to the encoded token stream. Empty input
// yields a zero-segment result, not an error. Every input word (after stop
// word filtering) is covered by exactly one segment.
func (a *App) Tokenize(text string, hints score.Hints) *match.Result {
	tokens := textproc.Filter(textproc.Tokenize(text))
	return a.matcher.Tokenize(tokens, hints)
}

// Decode converts an encoded token stream back to English. Unknown tokens
// pass through unchanged.
func (a *App) Decode(encoded string) string {
	return a.decoder.Decode(encoded)
}

// Matches returns the top-n ranked candidates for a span, for inspection.
func (a *App) Matches(span string, topN int, hints score.Hints) []score.Candidate {
	return a.finder.FindBest(textproc.Fold(span), topN, hints)
}

// Context runs context detection over the whole text.
func (a *App) Context(text string) contextdet.Detection {
	return a.det.Detect(textproc.Fold(text))
}

// Lexicon exposes the loaded lexicon (read-only).
func (a *App) Lexicon() *lexicon.Lexicon { return a.lex }

// Config returns the normalized configuration in effect.
func (a *App) Config() match.Config { return a.cfg }

// Warnings returns the configuration repairs recorded at construction.
func (a *App) Warnings() []string { return a.warnings }
