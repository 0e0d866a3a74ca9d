// Package service aggregates scored leads and churn clients into
// population-level insights.
package service

import (
	"context"
	"fmt"
	"strings"

	"customer_intel_backend/internal/insights/transport"
	"customer_intel_backend/internal/scoring"
	"customer_intel_backend/platform/logger"
)

// LeadRecordSource provides the prediction-bearing lead population.
type LeadRecordSource interface {
	Records(ctx context.Context) ([]scoring.LeadRecord, error)
}

// ChurnSource provides the scored client population.
type ChurnSource interface {
	AtRisk(ctx context.Context) ([]scoring.ChurnClient, error)
}

// Service produces the insights summary.
type Service struct {
	leads LeadRecordSource
	churn ChurnSource
	log   *logger.Logger
}

// New creates a new insights service.
func New(leads LeadRecordSource, churn ChurnSource, log *logger.Logger) *Service {
	return &Service{leads: leads, churn: churn, log: log}
}

// Summary reduces both populations to distribution statistics plus a short
// narrative for the dashboard. A missing churn dataset degrades to
// lead-only insights rather than failing the whole summary.
func (s *Service) Summary(ctx context.Context) (transport.SummaryResponse, error) {
	records, err := s.leads.Records(ctx)
	if err != nil {
		return transport.SummaryResponse{}, err
	}

	clients, err := s.churn.AtRisk(ctx)
	if err != nil {
		s.log.Warn("churn data unavailable for insights", "error", err)
		clients = nil
	}

	stats := scoring.Summarize(records, clients)

	return transport.SummaryResponse{
		Text:  renderNarrative(stats),
		Stats: stats,
	}, nil
}

// renderNarrative produces the dashboard's insight text from the summary
// statistics.
func renderNarrative(s scoring.Summary) string {
	var b strings.Builder

	b.WriteString("**Captured Leads:**\n\n")
	fmt.Fprintf(&b, "- Of %d captured leads, %d%% are hot (high conversion likelihood), %d%% warm and %d%% cold.\n",
		s.TotalLeads, s.PctHotLeads, s.PctWarmLeads, s.PctColdLeads)
	if s.BestChannel != "N/A" {
		fmt.Fprintf(&b, "- The best performing channel is **%s** with a %d%% hot-lead rate.\n",
			s.BestChannel, int(s.BestChannelHotRate*100))
	}
	if s.HotLeads > 0 {
		fmt.Fprintf(&b, "- Prioritize immediate follow-up on the %d hot leads to maximize conversions.\n", s.HotLeads)
	}

	b.WriteString("\n**Churn Risk:**\n\n")
	fmt.Fprintf(&b, "- %d clients have a churn probability above %d%%.\n",
		s.HighRiskClients, int(scoring.HighRiskThreshold*100))
	fmt.Fprintf(&b, "- The total potential loss from high-risk clients is $%.0f COP per month.\n",
		s.HighRiskPotentialLoss)

	return strings.TrimSpace(b.String())
}
