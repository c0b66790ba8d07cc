package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"insureAdvisor/business/scoring"
)

// artifact is the exported form of the trained prominence model: a standard
// scaler (per-feature mean/scale) and a linear head. Produced offline by the
// training pipeline; this package only consumes it.
type artifact struct {
	Weights     []float64 `json:"weights"`
	Bias        float64   `json:"bias"`
	ScalerMean  []float64 `json:"scaler_mean"`
	ScalerScale []float64 `json:"scaler_scale"`
}

// Linear predicts a raw prominence value from a fixed-order feature vector.
// Loaded once at startup, read-only afterwards; there is no reload path.
type Linear struct {
	weights [scoring.FeatureDim]float64
	bias    float64
	mean    [scoring.FeatureDim]float64
	scale   [scoring.FeatureDim]float64
}

// LoadLinear reads the model artifact from the configured path and validates
// its dimensions against the scoring feature order.
func LoadLinear(path string) (*Linear, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	if len(a.Weights) != scoring.FeatureDim {
		return nil, fmt.Errorf("model artifact has %d weights, expected %d", len(a.Weights), scoring.FeatureDim)
	}
	if len(a.ScalerMean) != scoring.FeatureDim || len(a.ScalerScale) != scoring.FeatureDim {
		return nil, fmt.Errorf("scaler dimensions do not match feature dim %d", scoring.FeatureDim)
	}

	m := &Linear{bias: a.Bias}
	for i := 0; i < scoring.FeatureDim; i++ {
		if a.ScalerScale[i] == 0 {
			return nil, fmt.Errorf("scaler scale is zero at feature %d", i)
		}
		m.weights[i] = a.Weights[i]
		m.mean[i] = a.ScalerMean[i]
		m.scale[i] = a.ScalerScale[i]
	}

	return m, nil
}

// Predict applies the standard scaling and the linear head. The raw output
// is intentionally uninterpreted here; the score interpreter owns rescaling.
func (m *Linear) Predict(ctx context.Context, features [scoring.FeatureDim]float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	sum := m.bias
	for i := 0; i < scoring.FeatureDim; i++ {
		sum += m.weights[i] * ((features[i] - m.mean[i]) / m.scale[i])
	}

	return sum, nil
}
