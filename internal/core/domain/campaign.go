package domain

// CampaignRecord is one campaign/channel/day observation from the
// campaign dataset. Records are read-only once loaded.
type CampaignRecord struct {
	Channel     string  `json:"channel"`
	CostTotal   float64 `json:"cost_total"`  // monetary amount, never negative
	Conversions int64   `json:"conversions"` // may be zero
}
