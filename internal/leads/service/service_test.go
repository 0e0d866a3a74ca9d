package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"customer_intel_backend/internal/dataset"
	"customer_intel_backend/internal/leads/repository"
	"customer_intel_backend/internal/leads/transport"
	"customer_intel_backend/platform/apperr"
	"customer_intel_backend/platform/logger"
	"customer_intel_backend/platform/predictor"
)

func emptyDataDir(t *testing.T) *dataset.Store {
	t.Helper()
	return dataset.NewStore(t.TempDir(), logger.New("development"))
}

func seededDataDir(t *testing.T) *dataset.Store {
	t.Helper()
	dir := t.TempDir()
	content := "lead_id,fuente_meta,ciudad,urgencia_compra,compro\n" +
		"L-1,Web,Bogotá,4,Sí\n" +
		"L-2,Web,Cali,2,No\n"
	if err := os.WriteFile(filepath.Join(dir, "leads_historicos.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed data dir: %v", err)
	}
	return dataset.NewStore(dir, logger.New("development"))
}

func TestCaptureReducedModeWhenDatasetMissing(t *testing.T) {
	repo := repository.NewMemory()
	svc := New(repo, emptyDataDir(t), nil, logger.New("development"))

	resp, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:        "Ana",
		City:        "Cali",
		Budget:      600_000,
		Urgency:     5,
		ServiceType: "seo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ID == "" {
		t.Fatal("expected a generated lead id")
	}
	if resp.Channel != defaultChannel {
		t.Fatalf("expected default channel %q, got %q", defaultChannel, resp.Channel)
	}
	if resp.ScoringMode != "reduced" {
		t.Fatalf("expected reduced scoring mode, got %q", resp.ScoringMode)
	}
	if resp.QualityScore != 1.0 || resp.QualityLabel != "hot" {
		t.Fatalf("expected saturated hot lead, got %s/%v", resp.QualityLabel, resp.QualityScore)
	}

	stored, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != resp.ID {
		t.Fatalf("expected the captured lead to be stored, got %+v", stored)
	}
}

func TestCaptureFullModeWithHistory(t *testing.T) {
	svc := New(repository.NewMemory(), seededDataDir(t), nil, logger.New("development"))

	resp, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:        "Luis",
		City:        "Cali",
		Budget:      0,
		Urgency:     1,
		ServiceType: "social_ads",
		Channel:     "Web",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ScoringMode != "full" {
		t.Fatalf("expected full scoring mode, got %q", resp.ScoringMode)
	}
	// base 0.5, urgency 1/5*0.30, channel Web 0.5*0.20, city Cali 0*0.10.
	if resp.QualityScore != 0.66 {
		t.Fatalf("expected quality score 0.66, got %v", resp.QualityScore)
	}
	if resp.QualityLabel != "warm" {
		t.Fatalf("expected warm label, got %q", resp.QualityLabel)
	}
}

func TestCaptureRejectsInvalidUrgency(t *testing.T) {
	svc := New(repository.NewMemory(), emptyDataDir(t), nil, logger.New("development"))

	_, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:        "Eva",
		City:        "Cali",
		Urgency:     0,
		ServiceType: "seo",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation kind, got %v", apperr.GetKind(err))
	}
}

func TestPredictUsesEngineWithoutPredictor(t *testing.T) {
	svc := New(repository.NewMemory(), emptyDataDir(t), nil, logger.New("development"))

	resp, err := svc.Predict(context.Background(), transport.PredictRequest{
		Name:        "Ana",
		City:        "Cali",
		Budget:      600_000,
		Urgency:     5,
		ServiceType: "seo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.QualityLabel != "hot" || resp.QualityScore != 1.0 {
		t.Fatalf("unexpected prediction: %+v", resp)
	}
	if resp.ScoringMode != "reduced" {
		t.Fatalf("expected reduced scoring mode, got %q", resp.ScoringMode)
	}
}

func TestPredictPrefersExternalService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/lead-quality" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req predictor.LeadQualityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Channel != defaultChannel {
			t.Errorf("expected default channel to be forwarded, got %q", req.Channel)
		}
		json.NewEncoder(w).Encode(predictor.LeadQualityResponse{
			QualityLabel:  "hot",
			QualityScore:  0.91,
			Probabilities: map[string]float64{"hot": 0.91, "warm": 0.07, "cold": 0.02},
		})
	}))
	defer srv.Close()

	client := predictor.NewClient(predictor.Config{BaseURL: srv.URL})
	svc := New(repository.NewMemory(), emptyDataDir(t), client, logger.New("development"))

	resp, err := svc.Predict(context.Background(), transport.PredictRequest{
		Name:        "Ana",
		City:        "Cali",
		Budget:      100_000,
		Urgency:     3,
		ServiceType: "seo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.QualityLabel != "hot" || resp.QualityScore != 0.91 {
		t.Fatalf("expected the external prediction, got %+v", resp)
	}
	if resp.Probabilities == nil {
		t.Fatal("expected probabilities from the external service")
	}
	if resp.ScoringMode != "" {
		t.Fatalf("external predictions carry no scoring mode, got %q", resp.ScoringMode)
	}
}

func TestPredictFallsBackOnPredictorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := predictor.NewClient(predictor.Config{BaseURL: srv.URL})
	svc := New(repository.NewMemory(), emptyDataDir(t), client, logger.New("development"))

	resp, err := svc.Predict(context.Background(), transport.PredictRequest{
		Name:        "Ana",
		City:        "Cali",
		Budget:      600_000,
		Urgency:     5,
		ServiceType: "seo",
	})
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if resp.ScoringMode != "reduced" {
		t.Fatalf("expected the heuristic fallback, got %+v", resp)
	}
	if resp.QualityLabel != "hot" || resp.QualityScore != 1.0 {
		t.Fatalf("unexpected fallback prediction: %+v", resp)
	}
}

func TestRecordsReflectStoredLeads(t *testing.T) {
	repo := repository.NewMemory()
	svc := New(repo, emptyDataDir(t), nil, logger.New("development"))

	for _, urgency := range []int{5, 1} {
		_, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
			Name:        "x",
			City:        "Cali",
			Urgency:     urgency,
			ServiceType: "seo",
			Channel:     "Web",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := svc.Records(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Channel != "Web" || records[0].QualityLabel == "" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}
