package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
)

// PolicyRepository contract interface
type PolicyRepository interface {
	FindActive(ctx context.Context) ([]domain.Policy, error)
}

// RecommendationRepository contract interface
type RecommendationRepository interface {
	Save(ctx context.Context, rec *domain.Recommendation) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Recommendation, error)
}

// Result carries the ranked recommendations, or an explanatory message when
// the list is legitimately empty. An empty list is a documented state, not
// a failure.
type Result struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Message         string                  `json:"message,omitempty"`
}

type RecommendService struct {
	policyRepo PolicyRepository
	recoRepo   RecommendationRepository
}

func NewRecommendService(policyRepo PolicyRepository, recoRepo RecommendationRepository) *RecommendService {
	return &RecommendService{
		policyRepo: policyRepo,
		recoRepo:   recoRepo,
	}
}

// Recommend ranks the active policy catalog against the user's prominence
// score and tier, persists every surviving candidate, and returns the top
// matches sorted by match percentage.
func (s *RecommendService) Recommend(ctx context.Context, user domain.User) (Result, error) {
	if user.ProminenceScore == 0 {
		return Result{
			Recommendations: []domain.Recommendation{},
			Message:         "No recommendations available. Please calculate your prominence score first.",
		}, nil
	}

	policies, err := s.policyRepo.FindActive(ctx)
	if err != nil {
		logger.Error("Failed to load policy catalog", err, "email", user.Email)
		return Result{}, fmt.Errorf("load policy catalog: %w", err)
	}

	if len(policies) == 0 {
		logger.Warn("Policy catalog is empty", "email", user.Email)
		return Result{
			Recommendations: []domain.Recommendation{},
			Message:         "No policies available. Please check the catalog.",
		}, nil
	}

	now := time.Now()
	recs := make([]domain.Recommendation, 0, len(policies))
	for _, policy := range policies {
		rec, ok := matchPolicy(user, policy, now)
		if !ok {
			continue
		}

		if err := s.recoRepo.Save(ctx, &rec); err != nil {
			logger.Error("Failed to persist recommendation", err,
				"email", user.Email,
				"policy", policy.Name,
			)
			return Result{}, fmt.Errorf("persist recommendation: %w", err)
		}

		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		logger.Warn("No policy survived matching",
			"email", user.Email,
			"score", user.ProminenceScore,
			"category", user.CustomerCategory,
		)
		return Result{
			Recommendations: []domain.Recommendation{},
			Message:         "No suitable policies found for your profile.",
		}, nil
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	logger.Info("Recommendations generated",
		"email", user.Email,
		"count", len(recs),
		"score", user.ProminenceScore,
	)

	return Result{Recommendations: recs}, nil
}

// History returns the user's persisted recommendation log.
func (s *RecommendService) History(ctx context.Context, userID uint) ([]domain.Recommendation, error) {
	recs, err := s.recoRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load recommendation history", err, "user_id", userID)
		return nil, err
	}

	return recs, nil
}
