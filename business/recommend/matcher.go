package recommend

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"insureAdvisor/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Candidates scoring at or below the cutoff are discarded outright.
const matchCutoff = 50

// The final list never exceeds this many entries.
const maxRecommendations = 4

// tierRule holds the per-tier matching parameters: the midpoint of the
// tier's qualifying score range, the coverage/premium adjustment factors,
// and which catalog policy types the tier may be offered.
type tierRule struct {
	targetScore    float64
	coverageFactor float64
	premiumFactor  float64
	eligibleTypes  map[string]bool
}

var tierRules = map[string]tierRule{
	domain.CategoryElite: {
		targetScore:    72.5,
		coverageFactor: 1.3,
		premiumFactor:  1.1,
		eligibleTypes: map[string]bool{
			domain.PolicyTypeElite: true,
		},
	},
	domain.CategoryValuable: {
		targetScore:    54.5,
		coverageFactor: 1.2,
		premiumFactor:  1.05,
		eligibleTypes: map[string]bool{
			domain.PolicyTypePremium: true,
			domain.PolicyTypeBasic:   true,
			domain.PolicyTypeElite:   true,
			domain.PolicyTypeHome:    true,
			domain.PolicyTypeTravel:  true,
		},
	},
	domain.CategoryStandard: {
		targetScore:    36.5,
		coverageFactor: 1.0,
		premiumFactor:  1.0,
		eligibleTypes: map[string]bool{
			domain.PolicyTypeBasic: true,
		},
	},
}

// matchPolicy evaluates one catalog candidate against a scored user.
// Returns false when the candidate's type is not eligible for the user's
// tier or its match percentage falls at or below the cutoff.
func matchPolicy(user domain.User, policy domain.Policy, now time.Time) (domain.Recommendation, bool) {
	rule, ok := tierRules[user.CustomerCategory]
	if !ok {
		rule = tierRules[domain.CategoryStandard]
	}

	if !rule.eligibleTypes[policy.Type] {
		return domain.Recommendation{}, false
	}

	match := 100.0 - math.Abs(float64(user.ProminenceScore)-rule.targetScore)
	if match < 0 {
		match = 0
	}
	if match > 100 {
		match = 100
	}
	if match <= matchCutoff {
		return domain.Recommendation{}, false
	}

	baseCoverage := 0.0
	adjustedLimits := datatypes.JSONMap{}
	for component, v := range policy.CoverageLimits {
		limit, ok := numericLimit(v)
		if !ok {
			continue
		}
		baseCoverage += limit
		adjustedLimits[component] = math.Round(limit * rule.coverageFactor)
	}

	rec := domain.Recommendation{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Name:            "Recommended " + capitalize(policy.Type) + " " + policy.Name,
		Description:     "Enhanced " + policy.Type + " coverage tailored to your profile",
		Coverage:        int64(math.Round(baseCoverage * rule.coverageFactor)),
		Premium:         int64(math.Round(policy.Premium * rule.premiumFactor)),
		CoverageLimits:  adjustedLimits,
		Type:            policy.Type,
		MatchPercentage: int(math.Round(match)),
		CompanyName:     policy.CompanyName,
		GeneratedAt:     now.UTC(),
	}

	return rec, true
}

// numericLimit extracts a numeric coverage component. JSONB round-trips
// numbers as float64, but rows built in Go may carry ints; boolean and
// string components do not contribute to the coverage total.
func numericLimit(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
