package recommend

import (
	"testing"
	"time"

	"insureAdvisor/domain"

	"gorm.io/datatypes"
)

func testUser(score int, category string) domain.User {
	return domain.User{
		ID:               7,
		Email:            "match@test.local",
		ProminenceScore:  score,
		CustomerCategory: category,
	}
}

func testPolicy(name, policyType string, premium float64, limits datatypes.JSONMap) domain.Policy {
	return domain.Policy{
		Name:           name,
		Type:           policyType,
		Premium:        premium,
		CoverageLimits: limits,
		CompanyName:    "Acme Mutual",
		Status:         "active",
	}
}

func TestMatchPolicyEliteTier(t *testing.T) {
	user := testUser(72, domain.CategoryElite)
	policy := testPolicy("Shield Plus", domain.PolicyTypeElite, 1000, datatypes.JSONMap{
		"home": 100000.0,
		"life": 50000.0,
	})

	rec, ok := matchPolicy(user, policy, time.Now())
	if !ok {
		t.Fatal("elite policy should match an elite user")
	}

	// |72 - 72.5| = 0.5, match rounds to 100
	if rec.MatchPercentage != 100 {
		t.Errorf("match = %d, want 100", rec.MatchPercentage)
	}
	if rec.Coverage != 195000 {
		t.Errorf("coverage = %d, want 195000 (150000 x 1.3)", rec.Coverage)
	}
	if rec.Premium != 1100 {
		t.Errorf("premium = %d, want 1100 (1000 x 1.1)", rec.Premium)
	}
	if rec.Name != "Recommended Elite Shield Plus" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.CompanyName != "Acme Mutual" {
		t.Errorf("company = %q", rec.CompanyName)
	}
	if got := rec.CoverageLimits["home"]; got != 130000.0 {
		t.Errorf("home limit = %v, want 130000", got)
	}
}

func TestMatchPolicyEligibility(t *testing.T) {
	cases := []struct {
		name     string
		category string
		policy   string
		eligible bool
	}{
		{"elite user basic policy", domain.CategoryElite, domain.PolicyTypeBasic, false},
		{"elite user elite policy", domain.CategoryElite, domain.PolicyTypeElite, true},
		{"standard user basic policy", domain.CategoryStandard, domain.PolicyTypeBasic, true},
		{"standard user travel policy", domain.CategoryStandard, domain.PolicyTypeTravel, false},
		{"valuable user home policy", domain.CategoryValuable, domain.PolicyTypeHome, true},
		{"valuable user travel policy", domain.CategoryValuable, domain.PolicyTypeTravel, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := map[string]int{
				domain.CategoryElite:    72,
				domain.CategoryValuable: 55,
				domain.CategoryStandard: 36,
			}[tc.category]

			user := testUser(score, tc.category)
			policy := testPolicy("P", tc.policy, 500, datatypes.JSONMap{"base": 1000.0})

			_, ok := matchPolicy(user, policy, time.Now())
			if ok != tc.eligible {
				t.Errorf("eligible = %v, want %v", ok, tc.eligible)
			}
		})
	}
}

func TestMatchPolicyCutoff(t *testing.T) {
	// a score far from the tier target drops the candidate at the cutoff
	user := testUser(90, domain.CategoryStandard)
	policy := testPolicy("Budget", domain.PolicyTypeBasic, 100, datatypes.JSONMap{"base": 1000.0})

	if _, ok := matchPolicy(user, policy, time.Now()); ok {
		t.Error("match 46.5 should be discarded at the 50 cutoff")
	}
}

func TestMatchPolicyUnknownCategoryFallsBackToStandard(t *testing.T) {
	user := testUser(36, "Platinum")
	basic := testPolicy("Budget", domain.PolicyTypeBasic, 100, datatypes.JSONMap{"base": 1000.0})
	elite := testPolicy("Shield", domain.PolicyTypeElite, 100, datatypes.JSONMap{"base": 1000.0})

	if _, ok := matchPolicy(user, basic, time.Now()); !ok {
		t.Error("unknown category should use the standard rule for basic policies")
	}
	if _, ok := matchPolicy(user, elite, time.Now()); ok {
		t.Error("unknown category should not be offered elite policies")
	}
}

func TestMatchPolicyNonNumericLimitsIgnored(t *testing.T) {
	user := testUser(36, domain.CategoryStandard)
	policy := testPolicy("Mixed", domain.PolicyTypeBasic, 100, datatypes.JSONMap{
		"base":       2000.0,
		"deductible": "500",
		"renewable":  true,
	})

	rec, ok := matchPolicy(user, policy, time.Now())
	if !ok {
		t.Fatal("expected match")
	}
	if rec.Coverage != 2000 {
		t.Errorf("coverage = %d, want 2000 (string and bool components ignored)", rec.Coverage)
	}
	if _, present := rec.CoverageLimits["deductible"]; present {
		t.Error("non-numeric component should not appear in adjusted limits")
	}
}
