// Package metrics turns campaign and prediction records into the aggregates
// shown on the CAC dashboard. Every function is pure and allocates its own
// result.
package metrics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"cac-insights/internal/core/domain"
)

// DefaultBaselineCAC is the acquisition cost the projection compares
// against when nothing else is configured.
const DefaultBaselineCAC = 250.0

// RowCAC returns cost divided by conversions, counting zero conversions as
// one.
func RowCAC(r domain.CampaignRecord) float64 {
	conv := r.Conversions
	if conv < 1 {
		conv = 1
	}
	return r.CostTotal / float64(conv)
}

// CACPerChannel groups campaigns by channel and averages the per-row CAC of
// each group. The result is ordered by ascending CAC, ties broken by
// channel name.
func CACPerChannel(campaigns []domain.CampaignRecord) []domain.ChannelValue {
	type acc struct {
		sum float64
		n   int
	}
	groups := make(map[string]*acc)
	for _, r := range campaigns {
		g, ok := groups[r.Channel]
		if !ok {
			g = &acc{}
			groups[r.Channel] = g
		}
		g.sum += RowCAC(r)
		g.n++
	}

	out := make([]domain.ChannelValue, 0, len(groups))
	for ch, g := range groups {
		out = append(out, domain.ChannelValue{Channel: ch, Value: g.sum / float64(g.n)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Channel < out[j].Channel
	})
	return out
}

// ConversionsPerChannel sums conversions per channel, ordered by channel
// name.
func ConversionsPerChannel(campaigns []domain.CampaignRecord) []domain.ChannelCount {
	groups := make(map[string]int64)
	for _, r := range campaigns {
		groups[r.Channel] += r.Conversions
	}
	out := make([]domain.ChannelCount, 0, len(groups))
	for ch, n := range groups {
		out = append(out, domain.ChannelCount{Channel: ch, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Channel < out[j].Channel })
	return out
}

// OverallCAC divides total cost by total conversions and projects the
// reduction and savings against baseline.
//
// With guard set, zero total conversions are floored at one like the
// per-row path. Without it the division is left as is: OverallCAC becomes
// +Inf (or NaN when cost is zero too) and the summary is marked undefined.
func OverallCAC(campaigns []domain.CampaignRecord, baseline float64, guard bool) domain.CACSummary {
	s := domain.CACSummary{
		BaselineCAC:      baseline,
		Guarded:          guard,
		ReductionPct:     decimal.Zero,
		EstimatedSavings: decimal.Zero,
	}
	for _, r := range campaigns {
		s.TotalCost += r.CostTotal
		s.TotalConversions += r.Conversions
	}

	divisor := float64(s.TotalConversions)
	if guard && divisor < 1 {
		divisor = 1
	}
	s.OverallCAC = s.TotalCost / divisor
	if math.IsInf(s.OverallCAC, 0) || math.IsNaN(s.OverallCAC) {
		return s
	}
	s.Defined = true

	base := decimal.NewFromFloat(baseline)
	diff := base.Sub(decimal.NewFromFloat(s.OverallCAC))
	if !base.IsZero() {
		s.ReductionPct = diff.Div(base).Mul(decimal.NewFromInt(100))
	}
	s.EstimatedSavings = diff.Mul(decimal.NewFromInt(s.TotalConversions))
	return s
}
