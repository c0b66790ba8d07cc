package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
)

const (
	chatPromptMessage  = "Please provide a message to get recommendations! Ask about 'basic', 'premium', 'elite', or your best option."
	chatUnknownMessage = "Sorry, I couldn't find a matching policy. Ask about 'basic', 'premium', 'elite', or your best option!"
)

var chatKeywords = []string{"basic", "premium", "elite", "best", "policy", "recommend"}

// Chat answers a free-text question against the user's saved recommendation
// log. The reply always names the single best saved policy for the user's
// prominence score; the message only decides whether the question is about
// policies at all.
func (s *RecommendService) Chat(ctx context.Context, user domain.User, message string) (string, error) {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return chatPromptMessage, nil
	}

	recs, err := s.recoRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		logger.Error("Failed to load recommendations for chat", err, "email", user.Email)
		return "", fmt.Errorf("load recommendations: %w", err)
	}

	asksAboutPolicies := false
	for _, keyword := range chatKeywords {
		if strings.Contains(message, keyword) {
			asksAboutPolicies = true
			break
		}
	}
	if !asksAboutPolicies {
		return chatUnknownMessage, nil
	}

	best, ok := bestSavedMatch(user.ProminenceScore, recs)
	if !ok {
		return fmt.Sprintf("No %s policy found. Please try again or check your data.", message), nil
	}

	return formatChatReply(user.ProminenceScore, best), nil
}

// bestSavedMatch picks the first saved recommendation whose type fits the
// score band: elite for high scorers, premium/home/travel for the middle
// band, basic below that.
func bestSavedMatch(score int, recs []domain.Recommendation) (domain.Recommendation, bool) {
	var wanted map[string]bool
	switch {
	case score >= 70:
		wanted = map[string]bool{domain.PolicyTypeElite: true}
	case score >= 40:
		wanted = map[string]bool{
			domain.PolicyTypePremium: true,
			domain.PolicyTypeHome:    true,
			domain.PolicyTypeTravel:  true,
		}
	default:
		wanted = map[string]bool{domain.PolicyTypeBasic: true}
	}

	for _, rec := range recs {
		if wanted[rec.Type] {
			return rec, true
		}
	}
	return domain.Recommendation{}, false
}

func formatChatReply(score int, rec domain.Recommendation) string {
	limits := make([]string, 0, len(rec.CoverageLimits))
	for component, v := range rec.CoverageLimits {
		if limit, ok := numericLimit(v); ok {
			limits = append(limits, fmt.Sprintf("%s: ₹%.2f", component, limit))
		}
	}
	sort.Strings(limits)

	return fmt.Sprintf(
		"Based on your prominence score of %d, the best %s policy for you is %s from %s: Coverage ₹%.2f, Premium ₹%.2f/year with coverage limits: %s",
		score, rec.Type, rec.Name, rec.CompanyName,
		float64(rec.Coverage), float64(rec.Premium),
		strings.Join(limits, ", "),
	)
}
