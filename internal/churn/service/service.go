// Package service provides business logic for churn risk reporting.
package service

import (
	"context"
	"sort"

	"customer_intel_backend/internal/dataset"
	"customer_intel_backend/internal/scoring"
	"customer_intel_backend/platform/apperr"
	"customer_intel_backend/platform/logger"
)

// Service computes churn risk over the client datasets.
type Service struct {
	datasets *dataset.Store
	log      *logger.Logger
}

// New creates a new churn service.
func New(datasets *dataset.Store, log *logger.Logger) *Service {
	return &Service{datasets: datasets, log: log}
}

// AtRisk scores every matched client and returns the collection sorted by
// churn probability, highest risk first. Behavior rows without a matching
// transaction are excluded by the scorer; the exclusion count is logged, it
// is not an error.
func (s *Service) AtRisk(ctx context.Context) ([]scoring.ChurnClient, error) {
	behavior, txns, err := s.datasets.ChurnInputs(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "client datasets unavailable", err)
	}

	clients, dropped := scoring.ScoreChurn(behavior, txns)
	if dropped > 0 {
		s.log.Info("behavior rows without transaction match excluded", "dropped", dropped)
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].ChurnProbability > clients[j].ChurnProbability
	})

	return clients, nil
}
