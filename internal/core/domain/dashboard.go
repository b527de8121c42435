package domain

import "time"

// Tab identifies one section of the dashboard page.
type Tab string

const (
	TabDashboard       Tab = "dashboard"
	TabModel           Tab = "model"
	TabRecommendations Tab = "recommendations"
	TabData            Tab = "data"
)

// RecommendationBlock is a static piece of advice rendered on the
// recommendations tab.
type RecommendationBlock struct {
	Key   string   `yaml:"key" json:"key"`
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

// Dashboard is everything the presentation layer needs for one page load.
// It is rebuilt from the sources on every request and never stored.
type Dashboard struct {
	ID                    string                `json:"id"`
	GeneratedAt           time.Time             `json:"generated_at"`
	CACPerChannel         []ChannelValue        `json:"cac_per_channel"`
	ConversionsPerChannel []ChannelCount        `json:"conversions_per_channel"`
	Summary               CACSummary            `json:"summary"`
	Histogram             Histogram             `json:"histogram"`
	Model                 ModelMetrics          `json:"model"`
	LabelSource           LabelSource           `json:"label_source"`
	Campaigns             []CampaignRecord      `json:"campaigns_preview"`
	Predictions           []PredictionRecord    `json:"predictions_preview"`
	CampaignRows          int                   `json:"campaign_rows"`
	PredictionRows        int                   `json:"prediction_rows"`
	Recommendations       []RecommendationBlock `json:"recommendations,omitempty"`
}
