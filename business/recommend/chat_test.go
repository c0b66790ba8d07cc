package recommend

import (
	"context"
	"strings"
	"testing"

	"insureAdvisor/domain"

	"gorm.io/datatypes"
)

func TestChatEmptyMessage(t *testing.T) {
	svc := NewRecommendService(&fakePolicyRepo{}, &fakeRecoRepo{})

	reply, err := svc.Chat(context.Background(), testUser(72, domain.CategoryElite), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != chatPromptMessage {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatNoKeyword(t *testing.T) {
	svc := NewRecommendService(&fakePolicyRepo{}, &fakeRecoRepo{})

	reply, err := svc.Chat(context.Background(), testUser(72, domain.CategoryElite), "what is the weather")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != chatUnknownMessage {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatBestMatchByScoreBand(t *testing.T) {
	recoRepo := &fakeRecoRepo{saved: []domain.Recommendation{
		{
			Type:        domain.PolicyTypeBasic,
			Name:        "Recommended Basic Starter",
			CompanyName: "Acme Mutual",
			Coverage:    50000,
			Premium:     900,
			CoverageLimits: datatypes.JSONMap{
				"default": float64(50000),
			},
		},
		{
			Type:        domain.PolicyTypeElite,
			Name:        "Recommended Elite Shield Plus",
			CompanyName: "Acme Mutual",
			Coverage:    195000,
			Premium:     1100,
			CoverageLimits: datatypes.JSONMap{
				"home": float64(130000),
				"life": float64(65000),
			},
		},
	}}
	svc := NewRecommendService(&fakePolicyRepo{}, recoRepo)

	reply, err := svc.Chat(context.Background(), testUser(72, domain.CategoryElite), "what is my best policy?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// high scorers get the elite entry, never the basic one
	if !strings.Contains(reply, "Recommended Elite Shield Plus") {
		t.Errorf("reply = %q, want the elite policy named", reply)
	}
	if !strings.Contains(reply, "prominence score of 72") {
		t.Errorf("reply = %q, want the score named", reply)
	}
	if !strings.Contains(reply, "home: ₹130000.00") || !strings.Contains(reply, "life: ₹65000.00") {
		t.Errorf("reply = %q, want coverage limits listed", reply)
	}

	reply, err = svc.Chat(context.Background(), testUser(36, domain.CategoryStandard), "recommend something")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "Recommended Basic Starter") {
		t.Errorf("reply = %q, want the basic policy named", reply)
	}
}

func TestChatNoSavedMatch(t *testing.T) {
	// a mid-band user with only an elite entry saved has nothing to offer
	recoRepo := &fakeRecoRepo{saved: []domain.Recommendation{
		{Type: domain.PolicyTypeElite, Name: "Recommended Elite Shield Plus"},
	}}
	svc := NewRecommendService(&fakePolicyRepo{}, recoRepo)

	reply, err := svc.Chat(context.Background(), testUser(55, domain.CategoryValuable), "premium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "No premium policy found. Please try again or check your data." {
		t.Errorf("reply = %q", reply)
	}
}
