package domain

// MetricsSource says where the model metrics shown on the dashboard came
// from.
type MetricsSource string

const (
	// MetricsStatic means the values are configured placeholders. Nothing in
	// this system trains or evaluates a model.
	MetricsStatic MetricsSource = "static"
	// MetricsComputed means the values were derived from the loaded
	// predictions at the configured threshold.
	MetricsComputed MetricsSource = "computed"
	// MetricsUnavailable means computation was requested but the labels were
	// degenerate.
	MetricsUnavailable MetricsSource = "unavailable"
)

// ModelMetrics are the headline classification figures for the positive
// class. ROCAUC is nil when it could not be determined.
type ModelMetrics struct {
	Source    MetricsSource `json:"source"`
	Threshold float64       `json:"threshold,omitempty"`
	Accuracy  float64       `json:"accuracy"`
	Precision float64       `json:"precision"`
	Recall    float64       `json:"recall"`
	F1        float64       `json:"f1"`
	ROCAUC    *float64      `json:"roc_auc,omitempty"`
	Support   int64         `json:"support"`
	Reason    string        `json:"reason,omitempty"`
}

// Available reports whether the metrics carry values worth displaying.
func (m ModelMetrics) Available() bool {
	return m.Source != MetricsUnavailable
}

// ConfusionMatrix counts binary outcomes for the positive class.
type ConfusionMatrix struct {
	TP int64 `json:"tp"`
	FP int64 `json:"fp"`
	TN int64 `json:"tn"`
	FN int64 `json:"fn"`
}

// Total returns the number of classified rows.
func (c ConfusionMatrix) Total() int64 {
	return c.TP + c.FP + c.TN + c.FN
}
