// Package service provides business logic for lead capture and scoring.
package service

import (
	"context"
	"time"

	"customer_intel_backend/internal/dataset"
	"customer_intel_backend/internal/leads/repository"
	"customer_intel_backend/internal/leads/transport"
	"customer_intel_backend/internal/scoring"
	"customer_intel_backend/platform/apperr"
	"customer_intel_backend/platform/logger"
	"customer_intel_backend/platform/predictor"

	"github.com/google/uuid"
)

// defaultChannel is assumed when a lead arrives without an acquisition
// channel; the conversational form is the main intake path.
const defaultChannel = "WhatsApp Bot"

// Service provides lead capture, scoring and listing.
type Service struct {
	repo      repository.Repository
	datasets  *dataset.Store
	predictor *predictor.Client
	log       *logger.Logger
}

// New creates a new leads service. The predictor client may be nil, in which
// case all predictions come from the in-process engine.
func New(repo repository.Repository, datasets *dataset.Store, pred *predictor.Client, log *logger.Logger) *Service {
	return &Service{repo: repo, datasets: datasets, predictor: pred, log: log}
}

// Capture scores a new lead against the historical dataset and stores it.
// A failed historical-data load degrades to reduced-mode scoring instead of
// rejecting the lead.
func (s *Service) Capture(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	lead := leadFromCreateRequest(req)

	pred, err := scoring.ScoreLead(lead, s.history(ctx))
	if err != nil {
		return transport.LeadResponse{}, err
	}

	stored := repository.StoredLead{
		ID:           uuid.NewString(),
		Name:         lead.Name,
		City:         lead.City,
		Budget:       lead.Budget,
		Urgency:      lead.Urgency,
		ServiceType:  lead.ServiceType,
		Channel:      lead.Channel,
		QualityLabel: string(pred.QualityLabel),
		QualityScore: pred.QualityScore,
		ScoringMode:  pred.Mode,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, stored); err != nil {
		s.log.DatabaseError("insert lead", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to store lead", err)
	}

	s.log.Info("lead captured",
		"id", stored.ID,
		"quality_label", stored.QualityLabel,
		"quality_score", stored.QualityScore,
		"scoring_mode", stored.ScoringMode,
	)

	return toLeadResponse(stored), nil
}

// List returns all captured leads in insertion order.
func (s *Service) List(ctx context.Context) ([]transport.LeadResponse, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("list leads", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	out := make([]transport.LeadResponse, 0, len(stored))
	for _, lead := range stored {
		out = append(out, toLeadResponse(lead))
	}
	return out, nil
}

// Records returns the prediction-bearing view of all captured leads for the
// insights summarizer.
func (s *Service) Records(ctx context.Context) ([]scoring.LeadRecord, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	out := make([]scoring.LeadRecord, 0, len(stored))
	for _, lead := range stored {
		out = append(out, scoring.LeadRecord{
			Channel:      lead.Channel,
			ServiceType:  lead.ServiceType,
			Budget:       lead.Budget,
			QualityLabel: scoring.QualityLabel(lead.QualityLabel),
			QualityScore: lead.QualityScore,
		})
	}
	return out, nil
}

// Predict returns a quality prediction without storing the lead. The external
// prediction service is tried first when configured; any failure falls back
// to the heuristic engine.
func (s *Service) Predict(ctx context.Context, req transport.PredictRequest) (transport.PredictionResponse, error) {
	if s.predictor != nil {
		resp, err := s.predictor.PredictLeadQuality(ctx, predictor.LeadQualityRequest{
			Name:        req.Name,
			City:        req.City,
			Channel:     channelOrDefault(req.Channel),
			Budget:      req.Budget,
			Urgency:     req.Urgency,
			ServiceType: req.ServiceType,
		})
		if err == nil {
			return transport.PredictionResponse{
				QualityLabel:  resp.QualityLabel,
				QualityScore:  resp.QualityScore,
				Probabilities: resp.Probabilities,
			}, nil
		}
		s.log.PredictorFallback(err.Error())
	}

	pred, err := scoring.ScoreLead(leadFromPredictRequest(req), s.history(ctx))
	if err != nil {
		return transport.PredictionResponse{}, err
	}

	return transport.PredictionResponse{
		QualityLabel: string(pred.QualityLabel),
		QualityScore: pred.QualityScore,
		ScoringMode:  pred.Mode,
	}, nil
}

// history loads the historical lead dataset, returning an empty History when
// the load fails so scoring degrades to reduced mode.
func (s *Service) history(ctx context.Context) *scoring.History {
	if s.datasets == nil {
		return nil
	}
	leads, err := s.datasets.HistoricalLeads(ctx)
	if err != nil {
		s.log.Warn("historical leads unavailable, scoring in reduced mode", "error", err)
		return nil
	}
	return scoring.NewHistory(leads)
}

func channelOrDefault(channel string) string {
	if channel == "" {
		return defaultChannel
	}
	return channel
}

func leadFromCreateRequest(req transport.CreateLeadRequest) scoring.NewLead {
	return scoring.NewLead{
		Name:        req.Name,
		City:        req.City,
		Budget:      req.Budget,
		Urgency:     req.Urgency,
		ServiceType: req.ServiceType,
		Channel:     channelOrDefault(req.Channel),
	}
}

func leadFromPredictRequest(req transport.PredictRequest) scoring.NewLead {
	return scoring.NewLead{
		Name:        req.Name,
		City:        req.City,
		Budget:      req.Budget,
		Urgency:     req.Urgency,
		ServiceType: req.ServiceType,
		Channel:     channelOrDefault(req.Channel),
	}
}

func toLeadResponse(lead repository.StoredLead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:           lead.ID,
		Name:         lead.Name,
		City:         lead.City,
		Budget:       lead.Budget,
		Urgency:      lead.Urgency,
		ServiceType:  lead.ServiceType,
		Channel:      lead.Channel,
		QualityLabel: lead.QualityLabel,
		QualityScore: lead.QualityScore,
		ScoringMode:  lead.ScoringMode,
		CreatedAt:    lead.CreatedAt.Format(time.RFC3339),
	}
}
