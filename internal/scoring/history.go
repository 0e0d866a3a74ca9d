package scoring

import "customer_intel_backend/internal/dataset"

type conversion struct {
	converted int
	total     int
}

// History holds empirical conversion rates precomputed from the historical
// lead dataset, keyed by acquisition channel and by city. It is built once
// per dataset snapshot and shared read-only across scoring calls.
type History struct {
	byChannel map[string]conversion
	byCity    map[string]conversion
}

// NewHistory computes conversion-rate tables from historical leads. A nil or
// empty slice yields an empty History, which puts the scorer into reduced
// mode.
func NewHistory(leads []dataset.HistoricalLead) *History {
	h := &History{
		byChannel: make(map[string]conversion, 16),
		byCity:    make(map[string]conversion, 16),
	}

	for _, lead := range leads {
		ch := h.byChannel[lead.Channel]
		ch.total++
		if lead.DidPurchase() {
			ch.converted++
		}
		h.byChannel[lead.Channel] = ch

		city := h.byCity[lead.City]
		city.total++
		if lead.DidPurchase() {
			city.converted++
		}
		h.byCity[lead.City] = city
	}

	return h
}

// Empty reports whether the history carries no observations.
func (h *History) Empty() bool {
	return h == nil || len(h.byChannel) == 0
}

// channelRate returns the historical conversion rate for a channel, falling
// back to the default prior for unseen channels.
func (h *History) channelRate(channel string) float64 {
	if c, ok := h.byChannel[channel]; ok && c.total > 0 {
		return float64(c.converted) / float64(c.total)
	}
	return defaultPriorRate
}

// cityRate returns the historical conversion rate for a city, falling back
// to the default prior for unseen cities.
func (h *History) cityRate(city string) float64 {
	if c, ok := h.byCity[city]; ok && c.total > 0 {
		return float64(c.converted) / float64(c.total)
	}
	return defaultPriorRate
}
