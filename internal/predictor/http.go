package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPPredictor calls a model-serving endpoint that accepts a feature
// vector as JSON and answers {"probability": p}. It is the production
// implementation of SuccessPredictor; tests and default deployments run
// without one.
type HTTPPredictor struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

type predictResponse struct {
	Probability float64 `json:"probability"`
}

func NewHTTPPredictor(url string, timeout time.Duration, logger *zap.Logger) *HTTPPredictor {
	return &HTTPPredictor{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Predict posts the feature vector to the model endpoint and returns the
// probability. Any transport failure, non-200 status, or out-of-range
// probability is an error; callers fall back to the deterministic scorer.
func (p *HTTPPredictor) Predict(ctx context.Context, features FeatureVector) (float64, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return 0, fmt.Errorf("encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call predictor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("predictor returned status %d", resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decode predictor response: %w", err)
	}
	if parsed.Probability < 0 || parsed.Probability > 1 {
		return 0, fmt.Errorf("predictor probability %f out of range", parsed.Probability)
	}

	p.logger.Debug("external predictor answered",
		zap.Float64("probability", parsed.Probability),
	)
	return parsed.Probability, nil
}
