package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"customer_intel_backend/internal/scoring"
	"customer_intel_backend/platform/logger"
)

type stubLeads struct {
	records []scoring.LeadRecord
	err     error
}

func (s stubLeads) Records(context.Context) ([]scoring.LeadRecord, error) {
	return s.records, s.err
}

type stubChurn struct {
	clients []scoring.ChurnClient
	err     error
}

func (s stubChurn) AtRisk(context.Context) ([]scoring.ChurnClient, error) {
	return s.clients, s.err
}

func TestSummaryCombinesBothPopulations(t *testing.T) {
	leads := stubLeads{records: []scoring.LeadRecord{
		{Channel: "Web", ServiceType: "seo", Budget: 100, QualityLabel: scoring.LabelHot, QualityScore: 0.9},
		{Channel: "Web", ServiceType: "seo", Budget: 300, QualityLabel: scoring.LabelCold, QualityScore: 0.3},
	}}
	churn := stubChurn{clients: []scoring.ChurnClient{
		{ClientID: 1, ChurnProbability: 0.9, PotentialLoss: 5000},
	}}

	svc := New(leads, churn, logger.New("development"))
	resp, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Stats.TotalLeads != 2 || resp.Stats.HotLeads != 1 {
		t.Fatalf("unexpected lead stats: %+v", resp.Stats)
	}
	if resp.Stats.TotalClients != 1 || resp.Stats.HighRiskClients != 1 {
		t.Fatalf("unexpected churn stats: %+v", resp.Stats)
	}
	if !strings.Contains(resp.Text, "Captured Leads") || !strings.Contains(resp.Text, "Churn Risk") {
		t.Fatalf("narrative missing sections: %q", resp.Text)
	}
	if !strings.Contains(resp.Text, "Web") {
		t.Fatalf("narrative should name the best channel: %q", resp.Text)
	}
}

func TestSummaryDegradesWithoutChurnData(t *testing.T) {
	leads := stubLeads{records: []scoring.LeadRecord{
		{Channel: "Web", QualityLabel: scoring.LabelWarm, QualityScore: 0.5},
	}}
	churn := stubChurn{err: errors.New("datasets unavailable")}

	svc := New(leads, churn, logger.New("development"))
	resp, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("expected degraded summary, got error: %v", err)
	}
	if resp.Stats.TotalLeads != 1 || resp.Stats.TotalClients != 0 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

func TestSummaryFailsWhenLeadsUnavailable(t *testing.T) {
	svc := New(stubLeads{err: errors.New("db down")}, stubChurn{}, logger.New("development"))

	if _, err := svc.Summary(context.Background()); err == nil {
		t.Fatal("expected error when lead records cannot be listed")
	}
}
