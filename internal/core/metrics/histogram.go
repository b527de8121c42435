package metrics

import (
	"errors"
	"math"
	"sort"

	"cac-insights/internal/core/domain"
)

// DefaultHistogramBins is the bucket count used by the model tab.
const DefaultHistogramBins = 20

// ErrInvalidBins is returned when a histogram is requested with fewer than
// one bucket.
var ErrInvalidBins = errors.New("histogram needs at least one bin")

// ProbabilityHistogram counts conversion probabilities in bins equal-width
// buckets over [0,1]. Buckets are closed-open except the last, which also
// holds 1.0. Values outside [0,1] and NaN are not counted.
func ProbabilityHistogram(predictions []domain.PredictionRecord, bins int) (domain.Histogram, error) {
	values := make([]float64, len(predictions))
	for i, p := range predictions {
		values[i] = p.ConversionProbability
	}
	return histogram(values, bins, 0, 1)
}

func histogram(values []float64, bins int, lo, hi float64) (domain.Histogram, error) {
	if bins < 1 {
		return domain.Histogram{}, ErrInvalidBins
	}
	h := domain.Histogram{
		Min:    lo,
		Max:    hi,
		Edges:  make([]float64, bins+1),
		Counts: make([]int64, bins),
	}
	// i/bins is divided last so that edges such as 0.15 equal the parsed
	// decimal literal.
	for i := range h.Edges {
		h.Edges[i] = lo + (hi-lo)*float64(i)/float64(bins)
	}
	h.Edges[bins] = hi

	for _, v := range values {
		if math.IsNaN(v) || v < lo || v > hi {
			continue
		}
		h.Counts[bucket(h.Edges, v)]++
	}
	return h, nil
}

// bucket returns the index of the closed-open bucket holding v. v equal to
// the last edge goes to the last bucket.
func bucket(edges []float64, v float64) int {
	bins := len(edges) - 1
	idx := sort.SearchFloat64s(edges, v)
	if idx == len(edges) || edges[idx] != v {
		idx--
	}
	return max(0, min(idx, bins-1))
}
