package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"findash/pkg/config"

	"go.uber.org/zap"
)

// CandidateLabels is the fixed label set sent to the zero-shot
// classification endpoint.
var CandidateLabels = []string{
	"Groceries", "Dining Out", "Transportation", "Entertainment",
	"Housing", "Utilities", "Healthcare", "Shopping", "Fitness",
	"Bills", "Insurance", "Travel", "Education", "Personal Care",
}

// Classifier returns the best-ranked category label for a free-text
// expense title, or an error when no confident label is available.
type Classifier interface {
	Classify(ctx context.Context, title string) (string, error)
}

// ZeroShotClassifier calls a remote zero-shot text classification
// endpoint (HuggingFace inference API shape). One attempt per call,
// bounded by the configured client timeout; every failure is returned
// to the caller so the cascade can fall through to the pattern rules.
type ZeroShotClassifier struct {
	endpoint   string
	apiToken   string
	labels     []string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewZeroShotClassifier(cfg *config.ClassifierConfig, logger *zap.Logger) *ZeroShotClassifier {
	return &ZeroShotClassifier{
		endpoint: cfg.Endpoint,
		apiToken: cfg.APIToken,
		labels:   CandidateLabels,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type classifyResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

func (c *ZeroShotClassifier) Classify(ctx context.Context, title string) (string, error) {
	payload, err := json.Marshal(classifyRequest{
		Inputs:     title,
		Parameters: classifyParameters{CandidateLabels: c.labels},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("classification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("classification failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode classification response: %w", err)
	}

	if len(result.Labels) == 0 {
		return "", fmt.Errorf("classification response contains no labels")
	}

	// Labels are ranked best-first
	return result.Labels[0], nil
}
