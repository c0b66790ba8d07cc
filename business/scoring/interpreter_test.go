package scoring

import (
	"testing"

	"insureAdvisor/domain"
)

func TestInterpretRaw(t *testing.T) {
	cases := []struct {
		raw  float64
		want int
	}{
		{85, 85},
		{100, 100},
		{42.4, 42},
		{0, 0},
		// raw calibrated to 0-1 scales up to the full range
		{0.72, 72},
		{0.85, 85},
		{1, 100},
		// above 100 the value divides by its own magnitude
		{150, 100},
		{100.0001, 100},
		// negatives clamp to zero
		{-20, 0},
	}

	for _, tc := range cases {
		got := InterpretRaw(tc.raw)
		if got != tc.want {
			t.Errorf("InterpretRaw(%v) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestCategoryForScore(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, domain.CategoryElite},
		{70, domain.CategoryElite},
		{69, domain.CategoryValuable},
		{40, domain.CategoryValuable},
		{39, domain.CategoryStandard},
		{0, domain.CategoryStandard},
	}

	for _, tc := range cases {
		got := CategoryForScore(tc.score)
		if got != tc.want {
			t.Errorf("CategoryForScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestInterpretRawDeterministic(t *testing.T) {
	for _, raw := range []float64{0, 0.85, 36, 85, 100, 150, -3} {
		first := InterpretRaw(raw)
		second := InterpretRaw(raw)
		if first != second {
			t.Errorf("InterpretRaw(%v) not deterministic: %d vs %d", raw, first, second)
		}
		if CategoryForScore(first) != CategoryForScore(second) {
			t.Errorf("tier for raw %v not deterministic", raw)
		}
	}
}

func TestFallbackScoreCategory(t *testing.T) {
	// the fallback score must land in the Standard tier
	if got := CategoryForScore(FallbackScore); got != domain.CategoryStandard {
		t.Errorf("fallback score maps to %q, want %q", got, domain.CategoryStandard)
	}
}
