package scoring

// HighRiskThreshold is the fixed churn probability above which a client is
// considered high risk.
const HighRiskThreshold = 0.70

// noBestChannel is reported when no lead population exists to rank channels.
const noBestChannel = "N/A"

// LeadRecord is the prediction-bearing view of a captured lead consumed by
// the summarizer.
type LeadRecord struct {
	Channel      string
	ServiceType  string
	Budget       float64
	QualityLabel QualityLabel
	QualityScore float64
}

// Summary holds population-level statistics over scored leads and churn
// clients.
type Summary struct {
	TotalLeads int `json:"total_leads"`

	HotLeads  int `json:"hot_leads"`
	WarmLeads int `json:"warm_leads"`
	ColdLeads int `json:"cold_leads"`

	PctHotLeads  int `json:"pct_hot_leads"`
	PctWarmLeads int `json:"pct_warm_leads"`
	PctColdLeads int `json:"pct_cold_leads"`

	AvgQualityScore float64 `json:"avg_quality_score"`
	AvgBudget       float64 `json:"avg_budget"`

	LeadsByChannel     map[string]int `json:"leads_by_channel"`
	LeadsByServiceType map[string]int `json:"leads_by_service_type"`

	BestChannel        string  `json:"best_channel"`
	BestChannelHotRate float64 `json:"best_channel_hot_rate"`

	TotalClients          int     `json:"total_clients"`
	HighRiskClients       int     `json:"high_risk_clients"`
	HighRiskPotentialLoss float64 `json:"high_risk_potential_loss"`
}

// Summarize reduces a population of scored leads and churn clients to
// distribution statistics. It is a pure read-only consumer: an empty
// population yields zero counts and zero-valued rates, never an error.
func Summarize(leads []LeadRecord, clients []ChurnClient) Summary {
	s := Summary{
		TotalLeads:         len(leads),
		TotalClients:       len(clients),
		LeadsByChannel:     make(map[string]int),
		LeadsByServiceType: make(map[string]int),
		BestChannel:        noBestChannel,
	}

	type channelStats struct {
		total int
		hot   int
	}
	stats := make(map[string]*channelStats)
	// First-appearance order decides ties for the best channel.
	var channelOrder []string

	var scoreSum, budgetSum float64
	for _, lead := range leads {
		switch lead.QualityLabel {
		case LabelHot:
			s.HotLeads++
		case LabelWarm:
			s.WarmLeads++
		default:
			s.ColdLeads++
		}

		scoreSum += lead.QualityScore
		budgetSum += lead.Budget
		s.LeadsByChannel[lead.Channel]++
		s.LeadsByServiceType[lead.ServiceType]++

		cs, ok := stats[lead.Channel]
		if !ok {
			cs = &channelStats{}
			stats[lead.Channel] = cs
			channelOrder = append(channelOrder, lead.Channel)
		}
		cs.total++
		if lead.QualityLabel == LabelHot {
			cs.hot++
		}
	}

	if s.TotalLeads > 0 {
		s.PctHotLeads = roundPct(s.HotLeads, s.TotalLeads)
		s.PctWarmLeads = roundPct(s.WarmLeads, s.TotalLeads)
		s.PctColdLeads = roundPct(s.ColdLeads, s.TotalLeads)
		s.AvgQualityScore = round2(scoreSum / float64(s.TotalLeads))
		s.AvgBudget = round2(budgetSum / float64(s.TotalLeads))
	}

	bestRate := 0.0
	for _, channel := range channelOrder {
		cs := stats[channel]
		if cs.total == 0 {
			continue
		}
		rate := float64(cs.hot) / float64(cs.total)
		if rate > bestRate {
			bestRate = rate
			s.BestChannel = channel
		}
	}
	s.BestChannelHotRate = round2(bestRate)

	for _, client := range clients {
		if client.ChurnProbability > HighRiskThreshold {
			s.HighRiskClients++
			s.HighRiskPotentialLoss += client.PotentialLoss
		}
	}

	return s
}

func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
