package configs

// Model metrics modes.
const (
	ModelMetricsStatic   = "static"
	ModelMetricsComputed = "computed"
)

// Dashboard holds the presentation options and aggregation policies that
// used to differ between hand-copied versions of the page.
type Dashboard struct {
	// Tabs lists the visible tabs in order.
	Tabs []string `env:"TABS" envDefault:"dashboard,model,recommendations,data" validate:"min=1,dive,oneof=dashboard model recommendations data"`
	// Recommendations lists the recommendation block keys to render. Empty
	// shows every block.
	Recommendations     []string `env:"RECOMMENDATIONS"`
	RecommendationsFile string   `env:"RECOMMENDATIONS_FILE"`

	HistogramBins int     `env:"HISTOGRAM_BINS" envDefault:"20" validate:"gt=0"`
	Threshold     float64 `env:"THRESHOLD" envDefault:"0.5" validate:"gte=0,lte=1"`
	PreviewRows   int     `env:"PREVIEW_ROWS" envDefault:"10" validate:"gte=0"`

	// BaselineCAC is the previous acquisition cost the projection is
	// measured against.
	BaselineCAC float64 `env:"BASELINE_CAC" envDefault:"250" validate:"gt=0"`
	// GuardZeroConversions floors total conversions at one in the overall
	// CAC. When false a dataset without conversions yields an undefined
	// overall CAC, as the per-row guard never applied to the total.
	GuardZeroConversions bool `env:"GUARD_ZERO_CONVERSIONS" envDefault:"true"`

	// ModelMetrics is "static" to show the configured placeholder figures
	// or "computed" to derive them from the predictions at Threshold.
	ModelMetrics string       `env:"MODEL_METRICS" envDefault:"static" validate:"oneof=static computed"`
	Static       StaticMetrics `envPrefix:"STATIC_"`
}

// StaticMetrics are placeholder model figures. They were never computed by
// this system and no upstream source for them is known.
type StaticMetrics struct {
	Accuracy  float64 `env:"ACCURACY" envDefault:"0.86" validate:"gte=0,lte=1"`
	Precision float64 `env:"PRECISION" envDefault:"0.82" validate:"gte=0,lte=1"`
	Recall    float64 `env:"RECALL" envDefault:"0.79" validate:"gte=0,lte=1"`
	ROCAUC    float64 `env:"ROC_AUC" envDefault:"0.87" validate:"gte=0,lte=1"`
}
