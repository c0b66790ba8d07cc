package scoring

import (
	"context"
	"fmt"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/metrics"
)

// Predictor is the opaque pre-trained scoring model: normalized features in,
// a raw scalar prediction out. Initialized once at startup and injected;
// the service never inspects its internals.
type Predictor interface {
	Predict(ctx context.Context, features [FeatureDim]float64) (float64, error)
}

// UserRepository contract interface
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type ScoreResult struct {
	ProminenceScore  int    `json:"prominenceScore"`
	CustomerCategory string `json:"customerCategory"`
}

type ScoringService struct {
	userRepo  UserRepository
	predictor Predictor
}

func NewScoringService(userRepo UserRepository, predictor Predictor) *ScoringService {
	return &ScoringService{
		userRepo:  userRepo,
		predictor: predictor,
	}
}

// CalculateProminence runs the scoring pipeline for the given user:
// normalize the submitted profile, predict, interpret, persist. Fields the
// request leaves out fall back to the user's stored profile before the
// normalizer applies its own defaults.
func (s *ScoringService) CalculateProminence(ctx context.Context, email string, in ProfileInput) (ScoreResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to load user for scoring", err, "email", email)
		return ScoreResult{}, err
	}

	fillFromStored(&in, user)
	profile := NormalizeProfile(in)

	score := FallbackScore
	raw, err := s.predictor.Predict(ctx, profile.FeatureVector())
	if err != nil {
		metrics.ScoreFallbackTotal.Inc()
		logger.Error("Predictor unavailable, serving fallback score", err, "email", email)
	} else {
		score = InterpretRaw(raw)
	}

	category := CategoryForScore(score)

	user.Age = profile.Age
	user.AnnualIncome = profile.AnnualIncome
	user.Dependents = profile.Dependents
	user.RiskTolerance = profile.RiskTolerance
	user.CreditScore = profile.CreditScore
	user.InsuranceHistory = profile.InsuranceHistory
	user.ClaimHistory = profile.ClaimHistory
	user.ProminenceScore = score
	user.CustomerCategory = category
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateProfile(ctx, &user); err != nil {
		logger.Error("Failed to persist prominence score", err, "email", email)
		return ScoreResult{}, fmt.Errorf("persist prominence score: %w", err)
	}

	logger.Info("Prominence score calculated",
		"email", email,
		"score", score,
		"category", category,
	)

	return ScoreResult{
		ProminenceScore:  score,
		CustomerCategory: category,
	}, nil
}

// fillFromStored backfills request fields from the stored profile so a
// partial submission re-scores against the user's known attributes.
func fillFromStored(in *ProfileInput, user domain.User) {
	if in.Age == nil && user.Age > 0 {
		age := user.Age
		in.Age = &age
	}
	if in.AnnualIncome == nil && user.AnnualIncome > 0 {
		income := user.AnnualIncome
		in.AnnualIncome = &income
	}
	if in.Dependents == nil && user.Dependents > 0 {
		dep := user.Dependents
		in.Dependents = &dep
	}
	if in.RiskTolerance == nil && user.RiskTolerance > 0 {
		rt := user.RiskTolerance
		in.RiskTolerance = &rt
	}
	if in.CreditScore == nil && user.CreditScore > 0 {
		cs := user.CreditScore
		in.CreditScore = &cs
	}
	if in.InsuranceHistory == "" {
		in.InsuranceHistory = user.InsuranceHistory
	}
	if in.ClaimHistory == "" {
		in.ClaimHistory = user.ClaimHistory
	}
}
