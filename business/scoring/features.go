package scoring

import "strings"

// FeatureDim is the arity of the model input vector. The trained scaler and
// model head both expect exactly this many features, in this order:
// [age, annual_income, dependents, risk_tolerance, credit_score, history_score].
const FeatureDim = 6

// Field defaults applied when a value is missing or out of range.
const (
	DefaultAge           = 30
	DefaultAnnualIncome  = 0.0
	DefaultDependents    = 0
	DefaultRiskTolerance = 50
	DefaultCreditScore   = 300

	DefaultInsuranceHistory = "poor"
	DefaultClaimHistory     = "none"
)

const (
	minAge         = 0
	maxAge         = 120
	minCreditScore = 300
	maxCreditScore = 900
)

// historyScores maps categorical insurance/claim history labels to the small
// integer the model was trained on. Unrecognized labels score 2.
var historyScores = map[string]int{
	"excellent": 4,
	"good":      3,
	"no":        3,
	"average":   2,
	"poor":      1,
	"yes":       1,
	"several":   1,
}

const defaultHistoryScore = 2

// ProfileInput carries the raw, optional profile fields of a scoring request.
// Nil numeric fields fall back to defaults during normalization.
type ProfileInput struct {
	Age              *int
	AnnualIncome     *float64
	Dependents       *int
	RiskTolerance    *int
	CreditScore      *int
	InsuranceHistory string
	ClaimHistory     string
}

// NormalizedProfile holds the cleaned field values plus the derived history
// score used as the sixth model feature.
type NormalizedProfile struct {
	Age              int
	AnnualIncome     float64
	Dependents       int
	RiskTolerance    int
	CreditScore      int
	InsuranceHistory string
	ClaimHistory     string
	HistoryScore     int
}

// NormalizeProfile substitutes defaults for missing or out-of-range values.
// Pure function; invalid input never surfaces as an error here.
func NormalizeProfile(in ProfileInput) NormalizedProfile {
	n := NormalizedProfile{
		Age:              intOrDefault(in.Age, DefaultAge, minAge, maxAge),
		AnnualIncome:     DefaultAnnualIncome,
		Dependents:       intOrDefault(in.Dependents, DefaultDependents, 0, 1<<31-1),
		RiskTolerance:    intOrDefault(in.RiskTolerance, DefaultRiskTolerance, 0, 100),
		CreditScore:      intOrDefault(in.CreditScore, DefaultCreditScore, minCreditScore, maxCreditScore),
		InsuranceHistory: normalizeHistory(in.InsuranceHistory, insuranceHistoryOptions, DefaultInsuranceHistory),
		ClaimHistory:     normalizeHistory(in.ClaimHistory, claimHistoryOptions, DefaultClaimHistory),
	}

	if in.AnnualIncome != nil && *in.AnnualIncome >= 0 {
		n.AnnualIncome = *in.AnnualIncome
	}

	n.HistoryScore = HistoryScore(n.InsuranceHistory, n.ClaimHistory)

	return n
}

// FeatureVector lays the profile out in model order. Reordering these
// silently changes model inputs, so the order is fixed here and nowhere else.
func (n NormalizedProfile) FeatureVector() [FeatureDim]float64 {
	return [FeatureDim]float64{
		float64(n.Age),
		n.AnnualIncome,
		float64(n.Dependents),
		float64(n.RiskTolerance),
		float64(n.CreditScore),
		float64(n.HistoryScore),
	}
}

// HistoryScore resolves the categorical history pair to the model's small
// integer. The insurance label wins when present, mirroring how the model
// was trained.
func HistoryScore(insuranceHistory, claimHistory string) int {
	key := strings.ToLower(strings.TrimSpace(insuranceHistory))
	if key == "" {
		key = strings.ToLower(strings.TrimSpace(claimHistory))
	}

	if score, ok := historyScores[key]; ok {
		return score
	}
	return defaultHistoryScore
}

var insuranceHistoryOptions = map[string]bool{
	"excellent": true,
	"good":      true,
	"average":   true,
	"poor":      true,
}

var claimHistoryOptions = map[string]bool{
	"none":    true,
	"few":     true,
	"several": true,
}

func normalizeHistory(value string, options map[string]bool, def string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if options[v] {
		return v
	}
	return def
}

func intOrDefault(v *int, def, min, max int) int {
	if v == nil || *v < min || *v > max {
		return def
	}
	return *v
}
