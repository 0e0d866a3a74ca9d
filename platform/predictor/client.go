// Package predictor provides a client for the external ML prediction service.
// The service is an optional collaborator: when it is unreachable, times out,
// or returns a non-200 response, callers fall back to the in-process heuristic
// scoring engine.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the prediction service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config configures the prediction service client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new prediction service client. The timeout is kept short
// on purpose: a slow predictor must not stall lead capture, the heuristic
// fallback is always available.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// LeadQualityRequest is the request body for lead quality prediction.
type LeadQualityRequest struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Channel     string  `json:"channel"`
	Budget      float64 `json:"budget"`
	Urgency     int     `json:"urgency"`
	ServiceType string  `json:"service_type"`
}

// LeadQualityResponse is the response from the lead quality endpoint.
type LeadQualityResponse struct {
	QualityLabel  string             `json:"quality_label"`
	QualityScore  float64            `json:"quality_score"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// PredictLeadQuality asks the prediction service to score a lead.
func (c *Client) PredictLeadQuality(ctx context.Context, req LeadQualityRequest) (LeadQualityResponse, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return LeadQualityResponse{}, fmt.Errorf("failed to marshal lead quality request: %w", err)
	}

	url := c.baseURL + "/predict/lead-quality"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return LeadQualityResponse{}, fmt.Errorf("failed to create lead quality request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return LeadQualityResponse{}, fmt.Errorf("lead quality request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return LeadQualityResponse{}, fmt.Errorf("lead quality request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out LeadQualityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return LeadQualityResponse{}, fmt.Errorf("failed to decode lead quality response: %w", err)
	}

	return out, nil
}
