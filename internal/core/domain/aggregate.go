package domain

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// ChannelValue pairs a channel with a floating point aggregate such as its
// mean CAC.
type ChannelValue struct {
	Channel string  `json:"channel"`
	Value   float64 `json:"value"`
}

// ChannelCount pairs a channel with an integer aggregate such as its total
// conversions.
type ChannelCount struct {
	Channel string `json:"channel"`
	Count   int64  `json:"count"`
}

// CACSummary is the campaign-wide acquisition cost projection measured
// against a fixed baseline CAC.
//
// Defined is false when total conversions were zero and the zero guard was
// disabled. OverallCAC then holds +Inf or NaN, and ReductionPct and
// EstimatedSavings stay zero.
type CACSummary struct {
	TotalCost        float64         `json:"total_cost"`
	TotalConversions int64           `json:"total_conversions"`
	OverallCAC       float64         `json:"overall_cac"`
	BaselineCAC      float64         `json:"baseline_cac"`
	ReductionPct     decimal.Decimal `json:"reduction_pct"`
	EstimatedSavings decimal.Decimal `json:"estimated_savings"`
	Guarded          bool            `json:"guarded"`
	Defined          bool            `json:"defined"`
}

// OverallCACOrNil returns the overall CAC, or nil when it is not a finite
// number. JSON cannot carry Inf or NaN.
func (s CACSummary) OverallCACOrNil() *float64 {
	if !s.Defined || math.IsInf(s.OverallCAC, 0) || math.IsNaN(s.OverallCAC) {
		return nil
	}
	v := s.OverallCAC
	return &v
}

// MarshalJSON writes an undefined overall CAC as null.
func (s CACSummary) MarshalJSON() ([]byte, error) {
	type plain CACSummary
	return json.Marshal(struct {
		plain
		OverallCAC *float64 `json:"overall_cac"`
	}{plain: plain(s), OverallCAC: s.OverallCACOrNil()})
}

// Histogram holds bucket counts over an equal-width partition of [Min, Max].
// Edges has len(Counts)+1 entries.
type Histogram struct {
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Edges  []float64 `json:"edges"`
	Counts []int64   `json:"counts"`
}

// Total returns the number of values counted across all buckets.
func (h Histogram) Total() int64 {
	var n int64
	for _, c := range h.Counts {
		n += c
	}
	return n
}
