package premium

import (
	"errors"

	"insureAdvisor/pkg/logger"
)

// Property rating: coverage is 120% of the declared value, premium is a
// per-mille rate on the value plus an age loading per year.
const (
	propertyCoverageRate = 1.2
	propertyPremiumRate  = 0.001
	propertyAgeLoading   = 50
)

// Trip rating: flat coverage with a duration surcharge on the base premium.
const (
	tripCoverage    = 500000
	tripBasePremium = 2000
)

var tripSurcharges = map[string]float64{
	"short":    0,
	"medium":   500,
	"long":     1000,
	"extended": 2000,
}

var ErrInvalidQuoteInput = errors.New("invalid input for premium calculation")

type QuoteInput struct {
	PropertyValue *float64
	PropertyAge   *int
	TripDuration  string
}

type Quote struct {
	Coverage float64 `json:"coverage"`
	Premium  float64 `json:"premium"`
}

type PremiumService struct{}

func NewPremiumService() *PremiumService {
	return &PremiumService{}
}

// Calculate quotes either a property or a travel policy depending on which
// fields the request carries. Pure arithmetic; nothing is persisted.
func (s *PremiumService) Calculate(email string, in QuoteInput) (Quote, error) {
	switch {
	case in.PropertyValue != nil && in.PropertyAge != nil:
		quote := Quote{
			Coverage: *in.PropertyValue * propertyCoverageRate,
			Premium:  *in.PropertyValue*propertyPremiumRate + float64(*in.PropertyAge)*propertyAgeLoading,
		}
		logger.Info("Premium calculated", "email", email, "kind", "property", "premium", quote.Premium)
		return quote, nil

	case in.TripDuration != "":
		quote := Quote{
			Coverage: tripCoverage,
			Premium:  tripBasePremium + tripSurcharges[in.TripDuration],
		}
		logger.Info("Premium calculated", "email", email, "kind", "travel", "premium", quote.Premium)
		return quote, nil

	default:
		logger.Warn("Invalid premium calculation input", "email", email)
		return Quote{}, ErrInvalidQuoteInput
	}
}
