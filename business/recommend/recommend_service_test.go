package recommend

import (
	"context"
	"testing"

	"insureAdvisor/domain"

	"gorm.io/datatypes"
)

type fakePolicyRepo struct {
	policies []domain.Policy
}

func (f *fakePolicyRepo) FindActive(ctx context.Context) ([]domain.Policy, error) {
	return f.policies, nil
}

type fakeRecoRepo struct {
	saved []domain.Recommendation
}

func (f *fakeRecoRepo) Save(ctx context.Context, rec *domain.Recommendation) error {
	f.saved = append(f.saved, *rec)
	return nil
}

func (f *fakeRecoRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Recommendation, error) {
	return f.saved, nil
}

func TestRecommendRequiresScore(t *testing.T) {
	svc := NewRecommendService(&fakePolicyRepo{}, &fakeRecoRepo{})

	result, err := svc.Recommend(context.Background(), testUser(0, domain.CategoryStandard))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0", len(result.Recommendations))
	}
	if result.Message != "No recommendations available. Please calculate your prominence score first." {
		t.Errorf("message = %q", result.Message)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	svc := NewRecommendService(&fakePolicyRepo{}, &fakeRecoRepo{})

	result, err := svc.Recommend(context.Background(), testUser(72, domain.CategoryElite))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0", len(result.Recommendations))
	}
	if result.Message != "No policies available. Please check the catalog." {
		t.Errorf("message = %q", result.Message)
	}
}

func TestRecommendNoSurvivors(t *testing.T) {
	policyRepo := &fakePolicyRepo{policies: []domain.Policy{
		testPolicy("Shield", domain.PolicyTypeElite, 100, datatypes.JSONMap{"base": 1000.0}),
	}}
	svc := NewRecommendService(policyRepo, &fakeRecoRepo{})

	result, err := svc.Recommend(context.Background(), testUser(36, domain.CategoryStandard))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0", len(result.Recommendations))
	}
	if result.Message != "No suitable policies found for your profile." {
		t.Errorf("message = %q", result.Message)
	}
}

func TestRecommendRanksAndTruncates(t *testing.T) {
	limits := datatypes.JSONMap{"base": 1000.0}
	policyRepo := &fakePolicyRepo{policies: []domain.Policy{
		testPolicy("A", domain.PolicyTypeBasic, 100, limits),
		testPolicy("B", domain.PolicyTypePremium, 200, limits),
		testPolicy("C", domain.PolicyTypeHome, 300, limits),
		testPolicy("D", domain.PolicyTypeTravel, 400, limits),
		testPolicy("E", domain.PolicyTypeElite, 500, limits),
	}}
	recoRepo := &fakeRecoRepo{}
	svc := NewRecommendService(policyRepo, recoRepo)

	result, err := svc.Recommend(context.Background(), testUser(55, domain.CategoryValuable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Recommendations) != 4 {
		t.Fatalf("recommendations = %d, want 4", len(result.Recommendations))
	}
	if result.Message != "" {
		t.Errorf("unexpected message %q", result.Message)
	}

	// every survivor was persisted, including the one trimmed from the top 4
	if len(recoRepo.saved) != 5 {
		t.Errorf("persisted = %d, want 5", len(recoRepo.saved))
	}

	for i := 1; i < len(result.Recommendations); i++ {
		if result.Recommendations[i-1].MatchPercentage < result.Recommendations[i].MatchPercentage {
			t.Errorf("result not sorted by match desc at index %d", i)
		}
	}
}
