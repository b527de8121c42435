package metrics

import (
	"errors"
	"sort"

	"cac-insights/internal/core/domain"
)

// DefaultThreshold is the probability above which a prediction counts as a
// conversion.
const DefaultThreshold = 0.5

// ErrDegenerateLabels is returned when the labels or predictions do not
// allow precision and recall to be defined: no rows, a single ground-truth
// class, or no positive predictions. Callers show the metrics as
// unavailable instead of failing.
var ErrDegenerateLabels = errors.New("degenerate labels for classification metrics")

// Confusion classifies every prediction at threshold (strictly greater
// means positive) against its ground-truth label.
func Confusion(predictions []domain.PredictionRecord, threshold float64) domain.ConfusionMatrix {
	var cm domain.ConfusionMatrix
	for _, p := range predictions {
		predicted := p.ConversionProbability > threshold
		actual := p.Converted == 1
		switch {
		case predicted && actual:
			cm.TP++
		case predicted && !actual:
			cm.FP++
		case !predicted && actual:
			cm.FN++
		default:
			cm.TN++
		}
	}
	return cm
}

// ClassificationMetrics computes accuracy, precision, recall and F1 for
// the positive class plus the ROC-AUC of the raw probabilities.
func ClassificationMetrics(predictions []domain.PredictionRecord, threshold float64) (domain.ModelMetrics, error) {
	cm := Confusion(predictions, threshold)
	positives := cm.TP + cm.FN
	negatives := cm.TN + cm.FP
	if cm.Total() == 0 || positives == 0 || negatives == 0 || cm.TP+cm.FP == 0 {
		return domain.ModelMetrics{}, ErrDegenerateLabels
	}

	m := domain.ModelMetrics{
		Source:    domain.MetricsComputed,
		Threshold: threshold,
		Accuracy:  float64(cm.TP+cm.TN) / float64(cm.Total()),
		Precision: float64(cm.TP) / float64(cm.TP+cm.FP),
		Recall:    float64(cm.TP) / float64(positives),
		Support:   positives,
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	auc := rocAUC(predictions, positives, negatives)
	m.ROCAUC = &auc
	return m, nil
}

// rocAUC uses the rank-sum form: the probability that a random positive
// scores above a random negative, ties counting half.
func rocAUC(predictions []domain.PredictionRecord, positives, negatives int64) float64 {
	sorted := make([]domain.PredictionRecord, len(predictions))
	copy(sorted, predictions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ConversionProbability < sorted[j].ConversionProbability
	})

	var rankSum float64
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].ConversionProbability == sorted[i].ConversionProbability {
			j++
		}
		// ranks are 1-based; tied rows share the average rank
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			if sorted[k].Converted == 1 {
				rankSum += avg
			}
		}
		i = j
	}
	p := float64(positives)
	return (rankSum - p*(p+1)/2) / (p * float64(negatives))
}

// StaticModelMetrics wraps configured placeholder figures.
func StaticModelMetrics(accuracy, precision, recall, rocAUC float64) domain.ModelMetrics {
	auc := rocAUC
	return domain.ModelMetrics{
		Source:    domain.MetricsStatic,
		Accuracy:  accuracy,
		Precision: precision,
		Recall:    recall,
		ROCAUC:    &auc,
	}
}
