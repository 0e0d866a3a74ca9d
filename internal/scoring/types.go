// Package scoring implements the deterministic customer intelligence engine:
// lead quality scoring, churn risk scoring and population-level insight
// aggregation. Every function in this package is a pure transformation over
// immutable inputs; scoring calls are safe to run concurrently.
package scoring

// QualityLabel is the three-way classification of a lead's conversion
// likelihood, ordered by intensity.
type QualityLabel string

const (
	LabelHot  QualityLabel = "hot"
	LabelWarm QualityLabel = "warm"
	LabelCold QualityLabel = "cold"
)

// Scoring modes. Reduced mode is used when no historical context is
// available; it applies only the urgency and budget features and yields
// systematically lower-confidence scores. Results from the two modes should
// not be mixed silently, which is why the mode travels with the prediction.
const (
	ModeFull    = "full"
	ModeReduced = "reduced"
)

// NewLead is the input to the lead quality scorer.
type NewLead struct {
	Name        string
	City        string
	Budget      float64
	Urgency     int
	ServiceType string
	Channel     string
}

// LeadPrediction is the output of the lead quality scorer. QualityScore is
// rounded to two decimals for reporting; the label is derived from the
// full-precision internal score before rounding.
type LeadPrediction struct {
	QualityLabel QualityLabel `json:"quality_label"`
	QualityScore float64      `json:"quality_score"`
	Mode         string       `json:"scoring_mode,omitempty"`
}

// ChurnClient is the output of the churn risk scorer for one matched client.
type ChurnClient struct {
	ClientID              int     `json:"client_id"`
	Name                  string  `json:"name"`
	MonthlyInvestment     float64 `json:"monthly_investment"`
	MonthsAsClient        int     `json:"months_as_client"`
	ChurnProbability      float64 `json:"churn_probability"`
	PotentialLoss         float64 `json:"potential_loss"`
	Engagement            float64 `json:"engagement"`
	Satisfaction          int     `json:"satisfaction"`
	DaysSinceLastPurchase int     `json:"days_since_last_purchase"`
	Industry              string  `json:"industry"`
	CompanySize           string  `json:"company_size"`
}
