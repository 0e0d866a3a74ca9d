// Package transport defines the leads module's request and response shapes.
package transport

// CreateLeadRequest captures a new lead from the conversational form.
// Urgency and budget bounds are validated here and again inside the scoring
// engine before any arithmetic runs.
type CreateLeadRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	City        string  `json:"city" validate:"required,min=1,max=120"`
	Budget      float64 `json:"budget" validate:"min=0"`
	Urgency     int     `json:"urgency" validate:"required,min=1,max=5"`
	ServiceType string  `json:"service_type" validate:"required,oneof=social_ads search_ads seo other"`
	Channel     string  `json:"channel" validate:"omitempty,max=80"`
}

// PredictRequest asks for a quality prediction without storing the lead.
type PredictRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	City        string  `json:"city" validate:"required,min=1,max=120"`
	Budget      float64 `json:"budget" validate:"min=0"`
	Urgency     int     `json:"urgency" validate:"required,min=1,max=5"`
	ServiceType string  `json:"service_type" validate:"required,max=80"`
	Channel     string  `json:"channel" validate:"omitempty,max=80"`
}

// PredictionResponse mirrors the prediction wire format shared with the
// external ML service.
type PredictionResponse struct {
	QualityLabel  string             `json:"quality_label"`
	QualityScore  float64            `json:"quality_score"`
	ScoringMode   string             `json:"scoring_mode,omitempty"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// LeadResponse is a stored lead with its prediction.
type LeadResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Budget       float64 `json:"budget"`
	Urgency      int     `json:"urgency"`
	ServiceType  string  `json:"service_type"`
	Channel      string  `json:"channel"`
	QualityLabel string  `json:"quality_label"`
	QualityScore float64 `json:"quality_score"`
	ScoringMode  string  `json:"scoring_mode,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
