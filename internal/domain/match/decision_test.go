package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultThresholds() Thresholds {
	return Thresholds{Accept: 0.80, Continue: 0.60, ContextLoss: 0.40, MaxIterations: 5}
}

func TestDecide_AcceptAtThreshold(t *testing.T) {
	assert.Equal(t, Accept, Decide(0.80, 0.0, 1, defaultThresholds()))
	assert.Equal(t, Accept, Decide(0.95, 0.39, 1, defaultThresholds()))
}

func TestDecide_ContextLossOverridesScore(t *testing.T) {
	// Excessive loss rejects even a near-perfect score.
	assert.Equal(t, Reject, Decide(0.95, 0.40, 1, defaultThresholds()))
	assert.Equal(t, Reject, Decide(0.95, 1.0, 1, defaultThresholds()))
}

func TestDecide_ContinueBand(t *testing.T) {
	assert.Equal(t, Continue, Decide(0.60, 0.0, 1, defaultThresholds()))
	assert.Equal(t, Continue, Decide(0.79, 0.0, 4, defaultThresholds()))
}

func TestDecide_ContinueBandExhaustedIterations(t *testing.T) {
	assert.Equal(t, Reject, Decide(0.79, 0.0, 5, defaultThresholds()))
	assert.Equal(t, Reject, Decide(0.79, 0.0, 6, defaultThresholds()))
}

func TestDecide_LowScore(t *testing.T) {
	assert.Equal(t, Reject, Decide(0.59, 0.0, 1, defaultThresholds()))
	assert.Equal(t, Reject, Decide(0.0, 0.0, 1, defaultThresholds()))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "ACCEPT", Accept.String())
	assert.Equal(t, "CONTINUE", Continue.String())
	assert.Equal(t, "REJECT", Reject.String())
}
