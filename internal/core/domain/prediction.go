package domain

// PredictionRecord is one scored instance from the predictions dataset.
// Channel is empty when the source has no channel column. Converted holds
// the ground-truth label (0 or 1); it is 0 for every row when the source
// carries no ground-truth column at all.
type PredictionRecord struct {
	Channel               string  `json:"channel,omitempty"`
	ConversionProbability float64 `json:"conversion_probability"`
	Converted             int     `json:"converted"`
}

// LabelSource tells where the Converted labels of a prediction set came
// from.
type LabelSource string

const (
	// LabelConverted means the dataset carried the converted column itself.
	LabelConverted LabelSource = "converteu"
	// LabelRealConverted means labels were copied from real_converteu.
	LabelRealConverted LabelSource = "real_converteu"
	// LabelDefaulted means no ground-truth column existed and every label is 0.
	LabelDefaulted LabelSource = "default"
)

// PredictionSet is a loaded predictions dataset together with the origin of
// its ground-truth labels.
type PredictionSet struct {
	Records     []PredictionRecord
	LabelSource LabelSource
}
