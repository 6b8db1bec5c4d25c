package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/corey/sutra/internal/app"
	"github.com/corey/sutra/internal/domain/match"
	"github.com/corey/sutra/internal/domain/score"
)

// printResult renders per-segment details and aggregate metrics.
func printResult(w io.Writer, res *match.Result) {
	for _, seg := range res.Segments {
		switch seg.Kind {
		case match.Dictionary:
			fmt.Fprintf(w, "  %-10s %-20s <- %q (%.1f%%)\n",
				seg.Kind, seg.Token, strings.Join(seg.Words, " "), seg.Score*100)
		default:
			fmt.Fprintf(w, "  %-10s %-20s <- %q\n",
				seg.Kind, seg.Token, seg.Words[0])
		}
	}
	fmt.Fprintf(w, "  words=%d segments=%d reduction=%.1f%% confidence=%.1f%% iterations=%d\n",
		res.OriginalWords, len(res.Segments), res.ReductionRatio*100,
		res.AvgConfidence*100, res.Iterations)
}

// printCandidates renders a ranked candidate table with breakdowns.
func printCandidates(w io.Writer, span string, cands []score.Candidate, a *app.App) {
	if len(cands) == 0 {
		fmt.Fprintf(w, "no candidates for %q\n", span)
		return
	}
	fmt.Fprintf(w, "candidates for %q (context: %s):\n", span, cands[0].Context)
	for i, c := range cands {
		gloss := ""
		if e := a.Lexicon().Entry(c.ID); e != nil {
			gloss = e.Gloss
		}
		b := c.Breakdown
		fmt.Fprintf(w, "%2d. %-14s %5.1f%%  frame=%.2f trig=%.2f anchor=%.2f freq=%.2f boost=%.2f  %s\n",
			i+1, c.ID, c.Total*100,
			b.FrameOverlap, b.TriggerHitRate, b.AnchorHitRate, b.FrequencyWeight, b.Boosts,
			gloss)
	}
}
