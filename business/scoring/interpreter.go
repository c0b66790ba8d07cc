package scoring

import (
	"math"

	"insureAdvisor/domain"
)

// FallbackScore is served when the predictor is unavailable. Availability
// over correctness, carried over from the trained system's behavior.
const FallbackScore = 36

// Tier thresholds on the 0-100 prominence scale.
const (
	eliteThreshold    = 70
	valuableThreshold = 40
)

// InterpretRaw rescales a raw predictor output to an integer prominence
// score in [0,100]. The model is calibrated to emit a 0-1 fraction, so
// values at or below 1 scale up by 100; values up to 100 are taken as
// already percent-scaled; anything larger divides by its own magnitude.
// The heuristic has no stated rationale in the model's documentation and
// may mask calibration bugs; it is preserved as observed.
func InterpretRaw(raw float64) int {
	normalized := raw
	switch {
	case raw > 100:
		normalized = raw / math.Max(math.Abs(raw), 1e-10)
	case raw > 1:
		normalized = raw / 100.0
	}

	score := int(math.Round(normalized * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// CategoryForScore discretizes the prominence score into a customer tier.
// Monotonic in the score; thresholds are fixed.
func CategoryForScore(score int) string {
	switch {
	case score >= eliteThreshold:
		return domain.CategoryElite
	case score >= valuableThreshold:
		return domain.CategoryValuable
	default:
		return domain.CategoryStandard
	}
}
