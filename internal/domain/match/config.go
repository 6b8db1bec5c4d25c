package match

import (
	"fmt"

	"github.com/corey/sutra/internal/domain/expand"
	"github.com/corey/sutra/internal/domain/score"
)

// Config holds every tunable of the matching pipeline. Values are constants
// in spirit: set once at startup, never mutated during matching.
type Config struct {
	Weights score.Weights

	// PhraseFloor is the acceptance floor for windows of length >= 2.
	// Deliberately loose to favor compression.
	PhraseFloor float64
	// SingleFloor is the acceptance floor for single-word windows, looser
	// still since single words carry less evidence.
	SingleFloor float64

	// AcceptThreshold and ContinueThreshold drive the decision policy.
	AcceptThreshold   float64
	ContinueThreshold float64
	// ContextLossLimit rejects a candidate outright regardless of score.
	ContextLossLimit float64

	// MaxIterations bounds the refinement loop per position.
	MaxIterations int
	// MaxWindow is the widest span attempted at each position.
	MaxWindow int
	// CacheCapacity bounds the expander memoization cache.
	CacheCapacity int
	// TopN is how many candidates the finder keeps per span.
	TopN int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Weights:           score.DefaultWeights(),
		PhraseFloor:       0.12,
		SingleFloor:       0.08,
		AcceptThreshold:   0.80,
		ContinueThreshold: 0.60,
		ContextLossLimit:  0.40,
		MaxIterations:     5,
		MaxWindow:         6,
		CacheCapacity:     expand.DefaultCacheCapacity,
		TopN:              5,
	}
}

// Normalize clamps out-of-range values and returns one warning per repair.
// Warnings are logged by the caller, never fatal: the system proceeds with
// the clamped values.
func (c *Config) Normalize() []string {
	var warns []string
	clamp := func(name string, v *float64) {
		if *v < 0 || *v > 1 {
			warns = append(warns, fmt.Sprintf("%s %.2f outside [0,1], clamped", name, *v))
			if *v < 0 {
				*v = 0
			} else {
				*v = 1
			}
		}
	}
	clamp("weight frame", &c.Weights.Frame)
	clamp("weight trigger", &c.Weights.Trigger)
	clamp("weight anchor", &c.Weights.Anchor)
	clamp("weight frequency", &c.Weights.Frequency)
	clamp("phrase floor", &c.PhraseFloor)
	clamp("single floor", &c.SingleFloor)
	clamp("accept threshold", &c.AcceptThreshold)
	clamp("continue threshold", &c.ContinueThreshold)
	clamp("context loss limit", &c.ContextLossLimit)

	if sum := c.Weights.Sum(); sum > 1 {
		warns = append(warns, fmt.Sprintf("weights sum to %.2f > 1; acceptance thresholds shift meaning", sum))
	}
	if c.MaxIterations < 1 {
		warns = append(warns, "max iterations < 1, reset to 1")
		c.MaxIterations = 1
	}
	if c.MaxWindow < 1 {
		warns = append(warns, "max window < 1, reset to 1")
		c.MaxWindow = 1
	}
	if c.TopN < 1 {
		warns = append(warns, "top-n < 1, reset to 1")
		c.TopN = 1
	}
	return warns
}
