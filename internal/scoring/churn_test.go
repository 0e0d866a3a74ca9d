package scoring

import (
	"testing"

	"customer_intel_backend/internal/dataset"
)

func TestScoreChurnZeroRiskClient(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 1, Frequency: 10, Engagement: 1.0, Satisfaction: 10, DaysSinceLastPurchase: 0},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 1, MonthlyBudget: 1_000_000, Industry: "Retail", CompanySize: "mediana"},
	}

	clients, dropped := ScoreChurn(behavior, txns)
	if dropped != 0 {
		t.Fatalf("expected no dropped rows, got %d", dropped)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	if clients[0].ChurnProbability != 0 {
		t.Fatalf("expected churn probability 0, got %v", clients[0].ChurnProbability)
	}
	if clients[0].PotentialLoss != 0 {
		t.Fatalf("expected potential loss 0, got %v", clients[0].PotentialLoss)
	}
	if clients[0].MonthsAsClient != 20 {
		t.Fatalf("expected 20 months as client, got %d", clients[0].MonthsAsClient)
	}
}

func TestScoreChurnFullSaturation(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 2, Frequency: 0, Engagement: 0, Satisfaction: 0, DaysSinceLastPurchase: 200},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 2, MonthlyBudget: 750_000},
	}

	clients, _ := ScoreChurn(behavior, txns)
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	if clients[0].ChurnProbability != 1.0 {
		t.Fatalf("expected churn probability 1.0, got %v", clients[0].ChurnProbability)
	}
	if clients[0].PotentialLoss != 750_000 {
		t.Fatalf("expected potential loss equal to investment, got %v", clients[0].PotentialLoss)
	}
	if clients[0].MonthsAsClient != 1 {
		t.Fatalf("expected minimum tenure of 1 month, got %d", clients[0].MonthsAsClient)
	}
}

func TestScoreChurnDropsUnmatchedBehavior(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 1, Frequency: 5, Engagement: 0.5, Satisfaction: 5, DaysSinceLastPurchase: 30},
		{ClientID: 99, Frequency: 5, Engagement: 0.5, Satisfaction: 5, DaysSinceLastPurchase: 30},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 1, MonthlyBudget: 100},
	}

	clients, dropped := ScoreChurn(behavior, txns)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	for _, c := range clients {
		if c.ClientID == 99 {
			t.Fatal("unmatched behavior record must be absent from output")
		}
	}
}

func TestScoreChurnFirstTransactionWins(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 3, Frequency: 5, Engagement: 0.5, Satisfaction: 5, DaysSinceLastPurchase: 30},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 3, MonthlyBudget: 100, Industry: "Retail"},
		{ClientID: 3, MonthlyBudget: 200, Industry: "Salud"},
	}

	clients, _ := ScoreChurn(behavior, txns)
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	if clients[0].MonthlyInvestment != 100 {
		t.Fatalf("expected first transaction to win, got investment %v", clients[0].MonthlyInvestment)
	}
	if clients[0].Industry != "Retail" {
		t.Fatalf("expected industry from first transaction, got %s", clients[0].Industry)
	}
}

func TestScoreChurnClampsNegativeInputs(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 4, Frequency: -1, Engagement: -0.5, Satisfaction: -2, DaysSinceLastPurchase: -5},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 4, MonthlyBudget: 100},
	}

	clients, _ := ScoreChurn(behavior, txns)
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	// Negative sources clamp to zero first: recency 0, frequency 0.25,
	// satisfaction 0.20, engagement 0.20.
	if clients[0].ChurnProbability != 0.65 {
		t.Fatalf("expected churn probability 0.65, got %v", clients[0].ChurnProbability)
	}
}

func TestScoreChurnProbabilityBounds(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 1, Frequency: 3, Engagement: 0.4, Satisfaction: 6, DaysSinceLastPurchase: 90},
		{ClientID: 2, Frequency: 20, Engagement: 1.5, Satisfaction: 15, DaysSinceLastPurchase: 500},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 1, MonthlyBudget: 100},
		{ClientID: 2, MonthlyBudget: 100},
	}

	clients, _ := ScoreChurn(behavior, txns)
	for _, c := range clients {
		if c.ChurnProbability < 0 || c.ChurnProbability > 1 {
			t.Fatalf("churn probability %v out of [0,1] for client %d", c.ChurnProbability, c.ClientID)
		}
	}
}

func TestScoreChurnIdempotent(t *testing.T) {
	behavior := []dataset.ClientBehavior{
		{ClientID: 1, Frequency: 4, Engagement: 0.6, Satisfaction: 7, DaysSinceLastPurchase: 45},
	}
	txns := []dataset.ClientTransaction{
		{ClientID: 1, MonthlyBudget: 1_200_000, Industry: "Salud", CompanySize: "mediana"},
	}

	first, _ := ScoreChurn(behavior, txns)
	second, _ := ScoreChurn(behavior, txns)
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("scoring is not idempotent: %+v vs %+v", first[i], second[i])
		}
	}
}
