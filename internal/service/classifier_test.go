package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"findash/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClassifier(endpoint string, timeout time.Duration) *ZeroShotClassifier {
	return NewZeroShotClassifier(&config.ClassifierConfig{
		Endpoint: endpoint,
		Timeout:  timeout,
	}, zap.NewNop())
}

func TestClassifyReturnsTopLabel(t *testing.T) {
	var gotBody classifyRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(classifyResponse{
			Labels: []string{"Dining Out", "Groceries"},
			Scores: []float64{0.91, 0.04},
		})
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, time.Second)

	label, err := classifier.Classify(context.Background(), "Pizza with friends")
	require.NoError(t, err)
	assert.Equal(t, "Dining Out", label)

	assert.Equal(t, "Pizza with friends", gotBody.Inputs)
	assert.Equal(t, CandidateLabels, gotBody.Parameters.CandidateLabels)
}

func TestClassifyNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, time.Second)

	_, err := classifier.Classify(context.Background(), "anything")
	assert.Error(t, err)
}

func TestClassifyEmptyLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(classifyResponse{Labels: []string{}})
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, time.Second)

	_, err := classifier.Classify(context.Background(), "anything")
	assert.Error(t, err)
}

func TestClassifyMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, time.Second)

	_, err := classifier.Classify(context.Background(), "anything")
	assert.Error(t, err)
}

func TestClassifyTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	classifier := newTestClassifier(server.URL, 20*time.Millisecond)

	_, err := classifier.Classify(context.Background(), "anything")
	assert.Error(t, err)
}
