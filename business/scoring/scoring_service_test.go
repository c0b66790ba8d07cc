package scoring

import (
	"context"
	"errors"
	"testing"

	"insureAdvisor/domain"
)

type fakeUserRepo struct {
	user    domain.User
	updated *domain.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if email != f.user.Email {
		return domain.User{}, domain.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	f.updated = user
	return nil
}

type stubPredictor struct {
	raw float64
	err error
}

func (p *stubPredictor) Predict(ctx context.Context, features [FeatureDim]float64) (float64, error) {
	return p.raw, p.err
}

func TestCalculateProminence(t *testing.T) {
	repo := &fakeUserRepo{user: domain.User{ID: 1, Email: "score@test.local"}}
	svc := NewScoringService(repo, &stubPredictor{raw: 85})

	result, err := svc.CalculateProminence(context.Background(), "score@test.local", ProfileInput{
		Age:          intPtr(45),
		CreditScore:  intPtr(760),
		AnnualIncome: floatPtr(90000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProminenceScore != 85 {
		t.Errorf("score = %d, want 85", result.ProminenceScore)
	}
	if result.CustomerCategory != domain.CategoryElite {
		t.Errorf("category = %q, want Elite", result.CustomerCategory)
	}

	if repo.updated == nil {
		t.Fatal("profile was not persisted")
	}
	if repo.updated.ProminenceScore != 85 || repo.updated.CustomerCategory != domain.CategoryElite {
		t.Errorf("persisted score/category = %d/%q", repo.updated.ProminenceScore, repo.updated.CustomerCategory)
	}
	if repo.updated.Age != 45 || repo.updated.CreditScore != 760 {
		t.Errorf("persisted profile = %+v", repo.updated)
	}
}

func TestCalculateProminenceFractionOutput(t *testing.T) {
	// the model emits a 0-1 fraction; 0.72 must land at 72, not collapse to 1
	repo := &fakeUserRepo{user: domain.User{ID: 1, Email: "score@test.local"}}
	svc := NewScoringService(repo, &stubPredictor{raw: 0.72})

	result, err := svc.CalculateProminence(context.Background(), "score@test.local", ProfileInput{
		Age:              intPtr(25),
		AnnualIncome:     floatPtr(600000),
		Dependents:       intPtr(1),
		RiskTolerance:    intPtr(80),
		CreditScore:      intPtr(750),
		InsuranceHistory: "good",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProminenceScore != 72 {
		t.Errorf("score = %d, want 72", result.ProminenceScore)
	}
	if result.CustomerCategory != domain.CategoryElite {
		t.Errorf("category = %q, want Elite", result.CustomerCategory)
	}
}

func TestCalculateProminenceFallback(t *testing.T) {
	repo := &fakeUserRepo{user: domain.User{ID: 1, Email: "score@test.local"}}
	svc := NewScoringService(repo, &stubPredictor{err: errors.New("model unavailable")})

	result, err := svc.CalculateProminence(context.Background(), "score@test.local", ProfileInput{})
	if err != nil {
		t.Fatalf("fallback must not surface the predictor error, got %v", err)
	}

	if result.ProminenceScore != FallbackScore {
		t.Errorf("score = %d, want fallback %d", result.ProminenceScore, FallbackScore)
	}
	if result.CustomerCategory != domain.CategoryStandard {
		t.Errorf("category = %q, want Standard", result.CustomerCategory)
	}
	if repo.updated == nil || repo.updated.ProminenceScore != FallbackScore {
		t.Error("fallback score must still be persisted")
	}
}

func TestCalculateProminenceBackfillsStoredProfile(t *testing.T) {
	repo := &fakeUserRepo{user: domain.User{
		ID:               1,
		Email:            "score@test.local",
		Age:              52,
		CreditScore:      640,
		InsuranceHistory: "good",
	}}

	var seen [FeatureDim]float64
	svc := NewScoringService(repo, predictorFunc(func(features [FeatureDim]float64) float64 {
		seen = features
		return 50
	}))

	if _, err := svc.CalculateProminence(context.Background(), "score@test.local", ProfileInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seen[0] != 52 {
		t.Errorf("age feature = %v, want stored 52", seen[0])
	}
	if seen[4] != 640 {
		t.Errorf("credit feature = %v, want stored 640", seen[4])
	}
	if seen[5] != 3 {
		t.Errorf("history feature = %v, want 3 for %q", seen[5], "good")
	}
}

func TestCalculateProminenceUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{user: domain.User{Email: "someone@test.local"}}
	svc := NewScoringService(repo, &stubPredictor{raw: 50})

	if _, err := svc.CalculateProminence(context.Background(), "nobody@test.local", ProfileInput{}); err == nil {
		t.Error("expected error for unknown user")
	}
}

type predictorFunc func(features [FeatureDim]float64) float64

func (f predictorFunc) Predict(ctx context.Context, features [FeatureDim]float64) (float64, error) {
	return f(features), nil
}
