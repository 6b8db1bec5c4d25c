package match

// Decision classifies one scoring outcome.
type Decision int

const (
	// Reject discards the candidate: score below the continue band, or
	// context loss past the limit regardless of score.
	Reject Decision = iota
	// Continue keeps refining: mid-band score with iteration budget left.
	Continue
	// Accept trusts the candidate outright.
	Accept
)

// String returns the canonical decision label.
func (d Decision) String() string {
	switch d {
	case Accept:
		return "ACCEPT"
	case Continue:
		return "CONTINUE"
	default:
		return "REJECT"
	}
}

// Thresholds parameterizes Decide so it stays a pure function.
type Thresholds struct {
	Accept        float64
	Continue      float64
	ContextLoss   float64
	MaxIterations int
}

// Decide classifies a (score, contextLoss) pair given the remaining
// iteration budget. No hidden state, no side effects:
//
//	ACCEPT    score >= accept  AND loss < lossLimit
//	CONTINUE  continue <= score < accept  AND iteration < max
//	REJECT    everything else — low score, or excessive context loss
//	          regardless of score.
func Decide(scoreVal, contextLoss float64, iteration int, t Thresholds) Decision {
	if contextLoss >= t.ContextLoss {
		return Reject
	}
	if scoreVal >= t.Accept {
		return Accept
	}
	if scoreVal >= t.Continue && iteration < t.MaxIterations {
		return Continue
	}
	return Reject
}
