package scoring

import (
	"fmt"
	"math"

	"customer_intel_backend/internal/dataset"
)

// Churn model constants.
const (
	// recencySaturationDays is the days-since-last-purchase value at which
	// the recency factor reaches full risk.
	recencySaturationDays = 180
	// frequencyCeiling is the purchase count at which the frequency factor
	// contributes zero risk.
	frequencyCeiling = 10
	// satisfactionScale is the top of the satisfaction scale.
	satisfactionScale = 10
)

// churnFactor is one independent risk factor of the churn model, normalized
// to [0,1] before weighting. Negative source values are clamped to zero
// first: the loader's lenient coercion may turn malformed cells into
// negatives, and a negative risk factor must never propagate.
type churnFactor struct {
	name      string
	weight    float64
	normalize func(b dataset.ClientBehavior) float64
}

var churnFactors = []churnFactor{
	{
		name:   "recency",
		weight: 0.35,
		normalize: func(b dataset.ClientBehavior) float64 {
			return math.Min(nonNegative(float64(b.DaysSinceLastPurchase))/recencySaturationDays, 1)
		},
	},
	{
		name:   "frequency",
		weight: 0.25,
		normalize: func(b dataset.ClientBehavior) float64 {
			return math.Max(0, 1-nonNegative(float64(b.Frequency))/frequencyCeiling)
		},
	},
	{
		name:   "satisfaction",
		weight: 0.20,
		normalize: func(b dataset.ClientBehavior) float64 {
			return clamp01(1 - nonNegative(float64(b.Satisfaction))/satisfactionScale)
		},
	},
	{
		name:   "engagement",
		weight: 0.20,
		normalize: func(b dataset.ClientBehavior) float64 {
			return clamp01(1 - nonNegative(b.Engagement))
		},
	},
}

// ScoreChurn joins behavior records with transaction records by client ID and
// computes a churn probability and potential monthly loss per matched client.
// Behavior records without a matching transaction are excluded, not defaulted;
// the dropped count is returned so callers can surface it for observability.
// When duplicate transactions exist for a client, the first one wins.
func ScoreChurn(behavior []dataset.ClientBehavior, txns []dataset.ClientTransaction) ([]ChurnClient, int) {
	byID := make(map[int]dataset.ClientTransaction, len(txns))
	for _, t := range txns {
		if _, ok := byID[t.ClientID]; !ok {
			byID[t.ClientID] = t
		}
	}

	out := make([]ChurnClient, 0, len(behavior))
	dropped := 0
	for _, b := range behavior {
		txn, ok := byID[b.ClientID]
		if !ok {
			dropped++
			continue
		}

		prob := 0.0
		for _, f := range churnFactors {
			prob += f.normalize(b) * f.weight
		}
		prob = round2(clamp01(prob))

		out = append(out, ChurnClient{
			ClientID:          b.ClientID,
			Name:              fmt.Sprintf("Cliente %d", b.ClientID),
			MonthlyInvestment: txn.MonthlyBudget,
			// Tenure is a proxy estimated from purchase frequency, not
			// observed ground truth.
			MonthsAsClient:        maxInt(1, b.Frequency*2),
			ChurnProbability:      prob,
			PotentialLoss:         math.Round(prob * txn.MonthlyBudget),
			Engagement:            b.Engagement,
			Satisfaction:          b.Satisfaction,
			DaysSinceLastPurchase: b.DaysSinceLastPurchase,
			Industry:              txn.Industry,
			CompanySize:           txn.CompanySize,
		})
	}

	return out, dropped
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
