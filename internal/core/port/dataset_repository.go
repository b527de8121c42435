package port

import (
	"context"
	"errors"

	"cac-insights/internal/core/domain"
)

// ErrMissingColumn is returned by a repository when a required column is
// absent from its source.
var ErrMissingColumn = errors.New("required column missing")

// DatasetRepository defines the read-only sources feeding the dashboard. It
// is an outbound port in hexagonal architecture. Every call reads the
// source afresh; implementations keep no state between calls.
type DatasetRepository interface {
	// LoadCampaigns returns every campaign record in source order.
	LoadCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)
	// LoadPredictions returns every prediction record in source order with
	// the ground-truth label already derived.
	LoadPredictions(ctx context.Context) (domain.PredictionSet, error)
}
