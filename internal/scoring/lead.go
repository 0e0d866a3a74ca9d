package scoring

import (
	"math"

	"customer_intel_backend/platform/apperr"
)

// Domain constants for the lead quality heuristic.
const (
	// baseScore is the neutral starting point before any feature weighs in.
	baseScore = 0.5
	// referenceBudget is a typical monthly budget in COP; a lead at twice
	// the reference saturates the budget feature.
	referenceBudget = 300_000
	// defaultPriorRate is the assumed conversion rate for channels and
	// cities with no historical observations.
	defaultPriorRate = 0.30

	hotThreshold  = 0.70
	warmThreshold = 0.40
)

// leadFeature is one entry of the additive weighted model. normalize returns
// the feature value in [0,1] and whether the feature applies to this call;
// history-backed features drop out when no historical context is available.
type leadFeature struct {
	name      string
	weight    float64
	normalize func(lead NewLead, hist *History) (float64, bool)
}

// leadFeatures is the full scoring model. Keeping it as an explicit table
// makes the weights reviewable and each normalization testable in isolation.
var leadFeatures = []leadFeature{
	{
		name:   "urgency",
		weight: 0.30,
		normalize: func(lead NewLead, _ *History) (float64, bool) {
			return float64(lead.Urgency) / 5, true
		},
	},
	{
		name:   "budget",
		weight: 0.25,
		normalize: func(lead NewLead, _ *History) (float64, bool) {
			return math.Min(lead.Budget/(2*referenceBudget), 1), true
		},
	},
	{
		name:   "channel_history",
		weight: 0.20,
		normalize: func(lead NewLead, hist *History) (float64, bool) {
			if hist.Empty() {
				return 0, false
			}
			return hist.channelRate(lead.Channel), true
		},
	},
	{
		name:   "city_history",
		weight: 0.10,
		normalize: func(lead NewLead, hist *History) (float64, bool) {
			if hist.Empty() {
				return 0, false
			}
			return hist.cityRate(lead.City), true
		},
	},
}

// ScoreLead computes a quality prediction for a new lead. When hist is nil or
// empty the scorer runs in reduced mode using only the urgency and budget
// features; it never fails for missing history.
//
// The label is derived from the full-precision score; rounding happens only
// for the reported QualityScore, so a borderline value can never flip labels
// through rounding.
func ScoreLead(lead NewLead, hist *History) (LeadPrediction, error) {
	if err := validateLead(lead); err != nil {
		return LeadPrediction{}, err
	}

	score := baseScore
	for _, f := range leadFeatures {
		if v, ok := f.normalize(lead, hist); ok {
			score += v * f.weight
		}
	}
	score = clamp01(score)

	mode := ModeReduced
	if !hist.Empty() {
		mode = ModeFull
	}

	return LeadPrediction{
		QualityLabel: labelFor(score),
		QualityScore: round2(score),
		Mode:         mode,
	}, nil
}

// labelFor maps a full-precision score to its quality label. Thresholds are
// monotonic and non-overlapping, closed-open except at the top.
func labelFor(score float64) QualityLabel {
	switch {
	case score >= hotThreshold:
		return LabelHot
	case score >= warmThreshold:
		return LabelWarm
	default:
		return LabelCold
	}
}

// validateLead rejects out-of-range input before any arithmetic runs.
func validateLead(lead NewLead) error {
	if lead.Urgency < 1 || lead.Urgency > 5 {
		return apperr.Validation("urgency must be between 1 and 5")
	}
	if lead.Budget < 0 {
		return apperr.Validation("budget must be non-negative")
	}
	return nil
}
