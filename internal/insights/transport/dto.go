// Package transport defines the insights module's response shapes.
package transport

import "customer_intel_backend/internal/scoring"

// SummaryResponse is the aggregated insights payload for the dashboard.
type SummaryResponse struct {
	Text  string          `json:"text"`
	Stats scoring.Summary `json:"stats"`
}
