package premium

import (
	"errors"
	"testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestCalculateProperty(t *testing.T) {
	svc := NewPremiumService()

	quote, err := svc.Calculate("quote@test.local", QuoteInput{
		PropertyValue: floatPtr(1000000),
		PropertyAge:   intPtr(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Coverage != 1200000 {
		t.Errorf("coverage = %v, want 1200000", quote.Coverage)
	}
	if quote.Premium != 1500 {
		t.Errorf("premium = %v, want 1500 (1000000 x 0.001 + 10 x 50)", quote.Premium)
	}
}

func TestCalculateTrip(t *testing.T) {
	svc := NewPremiumService()

	cases := []struct {
		duration string
		premium  float64
	}{
		{"short", 2000},
		{"medium", 2500},
		{"long", 3000},
		{"extended", 4000},
	}

	for _, tc := range cases {
		quote, err := svc.Calculate("quote@test.local", QuoteInput{TripDuration: tc.duration})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.duration, err)
		}
		if quote.Coverage != 500000 {
			t.Errorf("%s: coverage = %v, want 500000", tc.duration, quote.Coverage)
		}
		if quote.Premium != tc.premium {
			t.Errorf("%s: premium = %v, want %v", tc.duration, quote.Premium, tc.premium)
		}
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	svc := NewPremiumService()

	_, err := svc.Calculate("quote@test.local", QuoteInput{})
	if !errors.Is(err, ErrInvalidQuoteInput) {
		t.Errorf("error = %v, want ErrInvalidQuoteInput", err)
	}

	// a property value without an age is not a full property quote
	_, err = svc.Calculate("quote@test.local", QuoteInput{PropertyValue: floatPtr(50000)})
	if !errors.Is(err, ErrInvalidQuoteInput) {
		t.Errorf("error = %v, want ErrInvalidQuoteInput", err)
	}
}
